package entities

import "time"

// QuoteStatus is the per-contractor quote lifecycle within a quote session.
//
//	pending   -> quote requested, contractor has not responded yet
//	received  -> simulated response arrived (perturbed total)
//	finalized -> the user committed to this contractor
type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "pending"
	QuoteStatusReceived  QuoteStatus = "received"
	QuoteStatusFinalized QuoteStatus = "finalized"
)

// Quote is a contractor's simulated one-time offer: the asking
// ContractorPricing with a random adjustment (up to +/-5%) applied to Total.
// Immutable after creation.
type Quote struct {
	ContractorID string            `json:"contractorId"`
	Pricing      ContractorPricing `json:"pricing"`
	Status       QuoteStatus       `json:"status"`
	Message      string            `json:"message,omitempty"`
	Confirmed    bool              `json:"confirmed"`
	RespondedAt  time.Time         `json:"respondedAt,omitempty"`
}
