package entities

import "time"

// Activity event names emitted by the core.
const (
	ActionEstimateCalculated  = "ESTIMATE_CALCULATED"
	ActionProjectCreated      = "PROJECT_CREATED"
	ActionContractorSelected  = "CONTRACTOR_SELECTED"
	ActionQuotesRequested     = "QUOTES_REQUESTED"
	ActionQuotesReceived      = "QUOTES_RECEIVED"
	ActionContractorFinalized = "CONTRACTOR_FINALIZED"
	ActionScheduleConfirmed   = "SCHEDULE_CONFIRMED"
)

// ActivityEvent is one append-only entry of the activity log.
//
// Payloads must never carry raw file content: file arrays are replaced by
// their count and fields flagged sensitive are redacted before the event is
// handed to a sink.
type ActivityEvent struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	SessionID string         `json:"sessionId,omitempty"`
	UserID    string         `json:"userId"`
	Action    string         `json:"action"`
	Payload   map[string]any `json:"payload"`
}
