package model

import (
	"testing"
	"time"
)

func TestIsTerminalProgress(t *testing.T) {
	tests := []struct {
		progress int
		expected bool
	}{
		{-1, true},
		{0, false},
		{45, false},
		{99, false},
		{100, true},
	}

	for _, test := range tests {
		if result := IsTerminalProgress(test.progress); result != test.expected {
			t.Errorf("IsTerminalProgress(%d) = %v, expected %v", test.progress, result, test.expected)
		}
	}
}

func TestValidateProgress(t *testing.T) {
	valid := []int{-1, 0, 1, 50, 100}
	for _, p := range valid {
		if err := ValidateProgress(p); err != nil {
			t.Errorf("ValidateProgress(%d) returned error: %v", p, err)
		}
	}

	invalid := []int{-2, 101, 1000}
	for _, p := range invalid {
		if err := ValidateProgress(p); err == nil {
			t.Errorf("ValidateProgress(%d) expected error, got nil", p)
		}
	}
}

func TestConversionTask_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		outputPath string
		url        string
		expected   string
	}{
		{"/home/user/Downloads/Song Title.mp3", "https://youtube.com/watch?v=123", "Song Title.mp3"},
		{`C:\Users\me\Downloads\track.mp3`, "https://youtube.com/watch?v=123", "track.mp3"},
		{"", "https://youtube.com/watch?v=456", "https://youtube.com/watch?v=456"},
		{"", "", ""},
	}

	for _, test := range tests {
		task := ConversionTask{OutputPath: test.outputPath, URL: test.url}
		result := task.GetDisplayTitle()
		if result != test.expected {
			t.Errorf("GetDisplayTitle() with output='%s', url='%s' = '%s', expected '%s'",
				test.outputPath, test.url, result, test.expected)
		}
	}
}

func TestConversionTask_GetElapsedString(t *testing.T) {
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		finished time.Time
		now      time.Time
		expected string
	}{
		{time.Time{}, start.Add(30 * time.Second), "00:30"},
		{start.Add(90 * time.Second), start.Add(time.Hour), "01:30"},
		{time.Time{}, start.Add(3661 * time.Second), "01:01:01"},
	}

	for _, test := range tests {
		task := ConversionTask{StartedAt: start, FinishedAt: test.finished}
		result := task.GetElapsedString(test.now)
		if result != test.expected {
			t.Errorf("GetElapsedString() = %s, expected %s", result, test.expected)
		}
	}

	if got := (ConversionTask{}).GetElapsedString(start); got != "—" {
		t.Errorf("GetElapsedString() without start = %s, expected —", got)
	}
}

func TestConversionTask_HasTask(t *testing.T) {
	if (ConversionTask{}).HasTask() {
		t.Error("Expected empty task to hold no reference")
	}
	if !(ConversionTask{ID: "abc"}).HasTask() {
		t.Error("Expected task with ID to hold a reference")
	}
}
