package booking

import (
	"time"

	"lexbook/models"
)

// DefaultStrideMinutes is the fixed gap between candidate start times,
// independent of service duration. Fixed-stride generation lets start times
// stagger across services without alignment gaps; the partial overlaps it
// produces across durations are resolved by the conflict pass, not here.
const DefaultStrideMinutes = 30

// BuildCandidateSlots generates the full candidate grid for one working
// window. Slots are dropped when their start precedes earliestStart (the
// policy cutoff, already past "now") or their end would run past the window
// close. A slot ending exactly at the close is kept.
func BuildCandidateSlots(windowStart, windowEnd time.Time, durationMinutes, strideMinutes int, earliestStart time.Time) []models.TimeSlot {
	if strideMinutes <= 0 {
		strideMinutes = DefaultStrideMinutes
	}
	duration := time.Duration(durationMinutes) * time.Minute
	stride := time.Duration(strideMinutes) * time.Minute

	var slots []models.TimeSlot
	for start := windowStart; !start.After(windowEnd); start = start.Add(stride) {
		end := start.Add(duration)
		if end.After(windowEnd) {
			break
		}
		if start.Before(earliestStart) {
			continue
		}
		slots = append(slots, models.TimeSlot{
			StartTime: start,
			EndTime:   end,
		})
	}
	return slots
}

// EffectiveDuration resolves the query's duration override against the
// service default.
func EffectiveDuration(svc *models.ServiceType, overrideMinutes int) int {
	if overrideMinutes > 0 {
		return overrideMinutes
	}
	return svc.DurationMinutes
}
