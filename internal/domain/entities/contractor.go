package entities

// ContractorTier drives the technician-side commission rate.
type ContractorTier string

const (
	TierGold   ContractorTier = "gold"
	TierSilver ContractorTier = "silver"
	TierBronze ContractorTier = "bronze"
)

// Contractor is a marketplace technician profile. The directory is static
// mock data and read-only to the core.
//
// CommissionRate is the technician-side percentage retained by the platform
// from the payout. It is a separate fee concept from the customer-facing
// platform fee (10%/5% capped) and the two are never reconciled here.
type Contractor struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	HourlyRate     float64        `json:"hourlyRate"`
	Rating         float64        `json:"rating"`
	CompletedJobs  int            `json:"completedJobs"`
	Specialties    []string       `json:"specialties"`
	Tier           ContractorTier `json:"tier"`
	CommissionRate float64        `json:"commissionRate"`
	Availability   string         `json:"availability"`
	Distance       string         `json:"distance"`
	Reviews        int            `json:"reviews"`
	ProfileImage   string         `json:"profileImage"`
}

// ContractorPricing is an Estimate resolved against one contractor's hourly
// rate: labor cost, platform fee and GST included. It is derived data,
// recomputed whenever the rate or the base estimate changes.
type ContractorPricing struct {
	MaterialCost   float64 `json:"materialCost"`
	LaborCost      float64 `json:"laborCost"`
	LaborHours     float64 `json:"laborHours"`
	HourlyRate     float64 `json:"hourlyRate"`
	Transportation float64 `json:"transportation"`
	Disposal       float64 `json:"disposal"`
	Subtotal       float64 `json:"subtotal"`
	PlatformFee    float64 `json:"platformFee"`
	GST            float64 `json:"gst"`
	Total          float64 `json:"total"`
}

// PayoutBreakdown splits a project total between the platform and the
// technician according to the technician's commission rate.
type PayoutBreakdown struct {
	PlatformCommission float64 `json:"platformCommission"`
	TechnicianPayout   float64 `json:"technicianPayout"`
}
