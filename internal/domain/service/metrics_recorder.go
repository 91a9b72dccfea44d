package service

// Outcome labels for MetricsRecorder.
const (
	OutcomeSuccess  = "success"
	OutcomeConflict = "conflict"
	OutcomeError    = "error"
)

// MetricsRecorder counts domain events for monitoring.
type MetricsRecorder interface {
	// RecordTransition counts one donation lifecycle attempt by event and outcome.
	RecordTransition(event, outcome string)

	// RecordPush counts one push fan-out by donation event type and outcome.
	RecordPush(eventType, outcome string)
}
