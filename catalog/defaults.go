package catalog

import (
	"time"

	"lexbook/models"
)

// Built-in catalog used when no catalog file is configured, mirroring the
// firm's standard consultation offering.

func defaultServices() []models.ServiceType {
	return []models.ServiceType{
		{
			ID:              "consultation-30",
			Name:            "Initial Consultation (30 min)",
			Description:     "Fixed-fee initial assessment of your matter.",
			DurationMinutes: 30,
			PricePence:      7500,
			Category:        models.CategoryFamily,
			BufferMinutes:   10,
		},
		{
			ID:                "consultation-60",
			Name:              "Full Consultation (60 min)",
			Description:       "In-depth consultation with a senior solicitor.",
			DurationMinutes:   60,
			PricePence:        15000,
			Category:          models.CategoryFamily,
			EmergencyEligible: true,
			BufferMinutes:     10,
		},
		{
			ID:                "criminal-urgent-45",
			Name:              "Urgent Criminal Advice (45 min)",
			Description:       "Police station and pre-charge advice.",
			DurationMinutes:   45,
			PricePence:        12000,
			Category:          models.CategoryCriminal,
			EmergencyEligible: true,
		},
		{
			ID:              "immigration-60",
			Name:            "Immigration Consultation (60 min)",
			DurationMinutes: 60,
			PricePence:      14000,
			Category:        models.CategoryImmigration,
		},
		{
			ID:              "conveyancing-30",
			Name:            "Conveyancing Review (30 min)",
			DurationMinutes: 30,
			PricePence:      6500,
			Category:        models.CategoryConveyancing,
		},
		{
			ID:              "wills-45",
			Name:            "Wills & Probate Consultation (45 min)",
			DurationMinutes: 45,
			PricePence:      9000,
			Category:        models.CategoryWills,
		},
	}
}

func defaultStaff() []models.StaffMember {
	weekdays := func(start, end int) map[time.Weekday]models.DayHours {
		open := models.DayHours{Start: start, End: end, Working: true}
		return map[time.Weekday]models.DayHours{
			time.Monday:    open,
			time.Tuesday:   open,
			time.Wednesday: open,
			time.Thursday:  open,
			time.Friday:    open,
		}
	}

	return []models.StaffMember{
		{
			ID:               "sarah-mitchell",
			Name:             "Sarah Mitchell",
			Email:            "s.mitchell@example-chambers.co.uk",
			Specializations:  []models.ServiceCategory{models.CategoryFamily, models.CategoryWills},
			Available:        true,
			EmergencyContact: true,
			WorkingHours:     weekdays(9*60, 17*60+30),
		},
		{
			ID:               "james-okafor",
			Name:             "James Okafor",
			Email:            "j.okafor@example-chambers.co.uk",
			Specializations:  []models.ServiceCategory{models.CategoryCriminal},
			Available:        true,
			EmergencyContact: true,
			WorkingHours:     weekdays(8*60, 18*60),
		},
		{
			ID:              "priya-shah",
			Name:            "Priya Shah",
			Email:           "p.shah@example-chambers.co.uk",
			Specializations: []models.ServiceCategory{models.CategoryImmigration, models.CategoryFamily},
			Available:       true,
			WorkingHours:    weekdays(9*60+30, 17*60),
		},
		{
			ID:              "tom-davies",
			Name:            "Tom Davies",
			Email:           "t.davies@example-chambers.co.uk",
			Specializations: []models.ServiceCategory{models.CategoryConveyancing, models.CategoryWills},
			Available:       true,
			WorkingHours:    weekdays(9*60, 17*60+30),
		},
	}
}
