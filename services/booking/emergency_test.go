package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexbook/models"
)

func TestEarliestStartAppliesNoticeToNormalRequests(t *testing.T) {
	policy := EmergencyPolicy{MinNoticeMinutes: 24 * 60}

	assert.Equal(t, testNow.Add(24*time.Hour), policy.EarliestStart(testNow, false))
	assert.Equal(t, testNow, policy.EarliestStart(testNow, true))
}

func gridOf(n int) []models.TimeSlot {
	base := localTime(2026, time.September, 9, 9, 0)
	slots := make([]models.TimeSlot, n)
	for i := range slots {
		slots[i] = models.TimeSlot{
			StartTime: base.Add(time.Duration(i) * 30 * time.Minute),
			EndTime:   base.Add(time.Duration(i+1) * 30 * time.Minute),
		}
	}
	return slots
}

func TestPartitionReservesTailForEmergencies(t *testing.T) {
	policy := EmergencyPolicy{ReservedSlotsPerDay: 2}
	grid := gridOf(6)

	normal := policy.Partition(gridOf(6), false)
	require.Len(t, normal, 4)
	assert.Equal(t, grid[3].StartTime, normal[3].StartTime)

	emergency := policy.Partition(gridOf(6), true)
	require.Len(t, emergency, 2)
	assert.Equal(t, grid[4].StartTime, emergency[0].StartTime)
	for _, s := range emergency {
		assert.True(t, s.IsEmergency)
	}
}

func TestPartitionWithoutReservationPassesThrough(t *testing.T) {
	policy := EmergencyPolicy{}
	grid := gridOf(4)

	assert.Len(t, policy.Partition(grid, false), 4)
	assert.Len(t, policy.Partition(grid, true), 4)
}

func TestPartitionReservationLargerThanGrid(t *testing.T) {
	policy := EmergencyPolicy{ReservedSlotsPerDay: 10}

	assert.Empty(t, policy.Partition(gridOf(3), false))
	assert.Len(t, policy.Partition(gridOf(3), true), 3)
}

func TestCheckServiceEligible(t *testing.T) {
	policy := EmergencyPolicy{}

	err := policy.CheckServiceEligible(&models.ServiceType{ID: "immigration-60"})
	require.Error(t, err)
	assert.Equal(t, CodeEmergencyPolicyViolation, ErrorCode(err))

	assert.NoError(t, policy.CheckServiceEligible(&models.ServiceType{ID: "consultation-60", EmergencyEligible: true}))
}
