package booking

import (
	"time"

	"lexbook/models"
)

// EmergencyPolicy governs how urgent requests are admitted.
//
// Two modes exist, selected by configuration. With ReservedSlotsPerDay > 0,
// the last N grid slots of each day are carved out as emergency capacity:
// emergency queries see only those slots and normal queries never see them.
// With ReservedSlotsPerDay == 0 there is no hard reservation; instead the
// minimum-notice rule is bypassed entirely and standard free/busy logic
// applies immediately, because crisis cases cannot wait out routine
// scheduling lead times.
type EmergencyPolicy struct {
	ReservedSlotsPerDay int
	MinNoticeMinutes    int
}

// EarliestStart computes the policy cutoff for candidate slot starts.
// Normal requests must respect the minimum-notice window; emergencies may
// start immediately.
func (p EmergencyPolicy) EarliestStart(now time.Time, isEmergency bool) time.Time {
	if isEmergency {
		return now
	}
	return now.Add(time.Duration(p.MinNoticeMinutes) * time.Minute)
}

// Partition applies the reservation split to a day's candidate grid.
func (p EmergencyPolicy) Partition(slots []models.TimeSlot, isEmergency bool) []models.TimeSlot {
	if p.ReservedSlotsPerDay <= 0 || len(slots) == 0 {
		return slots
	}
	reserved := p.ReservedSlotsPerDay
	if reserved > len(slots) {
		reserved = len(slots)
	}
	cut := len(slots) - reserved
	if isEmergency {
		carved := slots[cut:]
		for i := range carved {
			carved[i].IsEmergency = true
		}
		return carved
	}
	return slots[:cut]
}

// CheckServiceEligible rejects emergency requests against services not
// flagged for them. The rejection is explicit: silently downgrading to a
// normal booking would mask a caller's urgent need.
func (p EmergencyPolicy) CheckServiceEligible(svc *models.ServiceType) error {
	if !svc.EmergencyEligible {
		return newEngineError(CodeEmergencyPolicyViolation,
			"service %s is not eligible for emergency booking", svc.ID)
	}
	return nil
}
