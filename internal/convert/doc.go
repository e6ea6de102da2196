package convert

// Package convert implements the conversion client: a JSON-over-HTTP backend
// for the external conversion service and the Service state machine that
// submits a URL, polls progress once per interval and saves the artifact.
