package request

// RequestQuotesRequest starts a quote session for the selected contractors.
type RequestQuotesRequest struct {
	ContractorIDs []string `json:"contractor_ids"`
	UserID        string   `json:"user_id"`
}

// FinalizeContractorRequest commits the user to one contractor's quote.
type FinalizeContractorRequest struct {
	UserID string `json:"user_id"`
}
