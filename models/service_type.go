package models

// ServiceCategory is the closed set of practice areas. Staff specializations
// and service categories share this type so eligibility checks cannot drift
// on free-form strings.
type ServiceCategory string

const (
	CategoryFamily       ServiceCategory = "family"
	CategoryCriminal     ServiceCategory = "criminal"
	CategoryImmigration  ServiceCategory = "immigration"
	CategoryConveyancing ServiceCategory = "conveyancing"
	CategoryWills        ServiceCategory = "wills"
)

// AllCategories lists every recognized category, in display order.
func AllCategories() []ServiceCategory {
	return []ServiceCategory{
		CategoryFamily,
		CategoryCriminal,
		CategoryImmigration,
		CategoryConveyancing,
		CategoryWills,
	}
}

func (c ServiceCategory) Valid() bool {
	switch c {
	case CategoryFamily, CategoryCriminal, CategoryImmigration, CategoryConveyancing, CategoryWills:
		return true
	}
	return false
}

// ServiceType describes a bookable service. Records are immutable after
// catalog load.
type ServiceType struct {
	ID                string          `json:"id" mapstructure:"id"`
	Name              string          `json:"name" mapstructure:"name"`
	Description       string          `json:"description,omitempty" mapstructure:"description"`
	DurationMinutes   int             `json:"durationMinutes" mapstructure:"duration_minutes"`
	PricePence        int64           `json:"pricePence" mapstructure:"price_pence"`
	Category          ServiceCategory `json:"category" mapstructure:"category"`
	EmergencyEligible bool            `json:"emergencyEligible" mapstructure:"emergency_eligible"`
	BufferMinutes     int             `json:"bufferMinutes,omitempty" mapstructure:"buffer_minutes"`
}
