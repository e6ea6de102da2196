package model

import "testing"

func TestClientState_IsActive(t *testing.T) {
	tests := []struct {
		state    ClientState
		expected bool
	}{
		{StateIdle, false},
		{StateSubmitting, true},
		{StatePolling, true},
		{StateDone, false},
		{StateFailed, false},
	}

	for _, test := range tests {
		result := test.state.IsActive()
		if result != test.expected {
			t.Errorf("ClientState(%s).IsActive() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestClientState_IsFinished(t *testing.T) {
	tests := []struct {
		state    ClientState
		expected bool
	}{
		{StateIdle, false},
		{StateSubmitting, false},
		{StatePolling, false},
		{StateDone, true},
		{StateFailed, true},
	}

	for _, test := range tests {
		result := test.state.IsFinished()
		if result != test.expected {
			t.Errorf("ClientState(%s).IsFinished() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestClientState_Panels(t *testing.T) {
	tests := []struct {
		state    ClientState
		expected Panels
	}{
		{StateIdle, Panels{SubmitEnabled: true}},
		{StateSubmitting, Panels{Progress: true}},
		{StatePolling, Panels{Progress: true}},
		{StateDone, Panels{Download: true, SubmitEnabled: true}},
		{StateFailed, Panels{Error: true, SubmitEnabled: true}},
	}

	for _, test := range tests {
		result := test.state.Panels()
		if result != test.expected {
			t.Errorf("ClientState(%s).Panels() = %+v, expected %+v", test.state, result, test.expected)
		}

		visible := 0
		for _, shown := range []bool{result.Progress, result.Download, result.Error} {
			if shown {
				visible++
			}
		}
		if visible > 1 {
			t.Errorf("ClientState(%s) shows %d panels at once", test.state, visible)
		}

		// Submission is enabled exactly when no attempt is running
		if result.SubmitEnabled == test.state.IsActive() {
			t.Errorf("ClientState(%s): SubmitEnabled=%v while IsActive=%v", test.state, result.SubmitEnabled, test.state.IsActive())
		}
	}
}

func TestClientState_String(t *testing.T) {
	state := StatePolling
	expected := "Polling"
	result := state.String()

	if result != expected {
		t.Errorf("ClientState.String() = %s, expected %s", result, expected)
	}
}
