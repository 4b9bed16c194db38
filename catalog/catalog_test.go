package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexbook/models"
)

func TestLoadDefaultsWhenNoPathConfigured(t *testing.T) {
	repo, err := Load("")
	require.NoError(t, err)

	services := repo.GetAllServices()
	assert.NotEmpty(t, services)
	staff := repo.GetAllStaff()
	assert.NotEmpty(t, staff)
}

func TestGetService(t *testing.T) {
	repo, err := Load("")
	require.NoError(t, err)

	svc, err := repo.GetService("consultation-30")
	require.NoError(t, err)
	assert.Equal(t, 30, svc.DurationMinutes)
	assert.Equal(t, models.CategoryFamily, svc.Category)

	_, err = repo.GetService("divorce-90")
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestGetStaffMember(t *testing.T) {
	repo, err := Load("")
	require.NoError(t, err)

	m, err := repo.GetStaffMember("james-okafor")
	require.NoError(t, err)
	assert.True(t, m.EmergencyContact)

	_, err = repo.GetStaffMember("nobody")
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestGetServicesByCategory(t *testing.T) {
	repo, err := Load("")
	require.NoError(t, err)

	family := repo.GetServicesByCategory(models.CategoryFamily)
	require.NotEmpty(t, family)
	for _, svc := range family {
		assert.Equal(t, models.CategoryFamily, svc.Category)
	}

	assert.Empty(t, repo.GetServicesByCategory(models.ServiceCategory("maritime")))
}

func TestGetAvailableStaffFiltersByCategoryAndAvailability(t *testing.T) {
	services := []models.ServiceType{
		{ID: "svc", Name: "Advice", DurationMinutes: 30, Category: models.CategoryCriminal},
	}
	open := models.DayHours{Start: 9 * 60, End: 17 * 60, Working: true}
	hours := map[time.Weekday]models.DayHours{time.Monday: open}
	staff := []models.StaffMember{
		{ID: "match", Available: true, Specializations: []models.ServiceCategory{models.CategoryCriminal}, WorkingHours: hours},
		{ID: "off-duty", Available: false, Specializations: []models.ServiceCategory{models.CategoryCriminal}, WorkingHours: hours},
		{ID: "wrong-field", Available: true, Specializations: []models.ServiceCategory{models.CategoryWills}, WorkingHours: hours},
	}

	repo, err := NewInMemoryRepository(services, staff)
	require.NoError(t, err)

	eligible, err := repo.GetAvailableStaff("svc")
	require.NoError(t, err)
	require.Len(t, eligible, 1)
	assert.Equal(t, "match", eligible[0].ID)
}

func TestNewInMemoryRepositoryRejectsBadEntries(t *testing.T) {
	_, err := NewInMemoryRepository([]models.ServiceType{
		{ID: "svc", Name: "Advice", DurationMinutes: 30, Category: models.CategoryCriminal},
		{ID: "svc", Name: "Duplicate", DurationMinutes: 30, Category: models.CategoryCriminal},
	}, nil)
	assert.Error(t, err)

	_, err = NewInMemoryRepository([]models.ServiceType{
		{ID: "svc", Name: "Advice", DurationMinutes: 0, Category: models.CategoryCriminal},
	}, nil)
	assert.Error(t, err)

	_, err = NewInMemoryRepository([]models.ServiceType{
		{ID: "svc", Name: "Advice", DurationMinutes: 30, Category: models.ServiceCategory("astrology")},
	}, nil)
	assert.Error(t, err)
}
