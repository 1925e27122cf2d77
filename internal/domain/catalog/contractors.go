package catalog

import "renohub/internal/domain/entities"

// Mock contractor directory. Hourly rates feed customer-facing pricing;
// commission rates feed the technician payout side.
var contractors = []entities.Contractor{
	{
		ID:             "contractor-1",
		Name:           "Mike Johnson",
		HourlyRate:     65,
		Rating:         4.9,
		CompletedJobs:  127,
		Specialties:    []string{"Deck Refresh", "Outdoor Projects"},
		Tier:           entities.TierGold,
		CommissionRate: 15,
		Availability:   "2 days",
		Distance:       "3.2 miles",
		Reviews:        89,
		ProfileImage:   "/api/placeholder/64/64",
	},
	{
		ID:             "contractor-2",
		Name:           "Sarah Wilson",
		HourlyRate:     55,
		Rating:         4.8,
		CompletedJobs:  94,
		Specialties:    []string{"Garden Design", "Landscaping"},
		Tier:           entities.TierSilver,
		CommissionRate: 20,
		Availability:   "1 week",
		Distance:       "5.1 miles",
		Reviews:        72,
		ProfileImage:   "/api/placeholder/64/64",
	},
	{
		ID:             "contractor-3",
		Name:           "David Chen",
		HourlyRate:     75,
		Rating:         4.7,
		CompletedJobs:  156,
		Specialties:    []string{"Pressure Washing", "Maintenance"},
		Tier:           entities.TierBronze,
		CommissionRate: 25,
		Availability:   "3 days",
		Distance:       "7.8 miles",
		Reviews:        134,
		ProfileImage:   "/api/placeholder/64/64",
	},
}

// Contractors returns the full mock directory.
func Contractors() []entities.Contractor {
	out := make([]entities.Contractor, len(contractors))
	copy(out, contractors)
	return out
}

// Contractor returns one contractor by id.
func Contractor(id string) (entities.Contractor, bool) {
	for _, c := range contractors {
		if c.ID == id {
			return c, true
		}
	}
	return entities.Contractor{}, false
}
