// Package catalog is the read-only registry of services and staff. It is
// populated once at startup and never mutated afterwards, so lookups need no
// locking.
package catalog

import (
	"errors"
	"fmt"

	"lexbook/models"
)

var (
	ErrServiceNotFound = errors.New("catalog: service not found")
	ErrStaffNotFound   = errors.New("catalog: staff member not found")
)

// Repository defines read access to the catalog.
type Repository interface {
	GetService(id string) (*models.ServiceType, error)
	GetServicesByCategory(cat models.ServiceCategory) []models.ServiceType
	GetAllServices() []models.ServiceType
	GetStaffMember(id string) (*models.StaffMember, error)
	GetAllStaff() []models.StaffMember
	// GetAvailableStaff returns staff filtered to Available == true with a
	// specialization matching the service's category.
	GetAvailableStaff(serviceID string) ([]models.StaffMember, error)
}

// InMemoryRepository implements Repository over fixed maps.
type InMemoryRepository struct {
	services     map[string]models.ServiceType
	staff        map[string]models.StaffMember
	serviceOrder []string
	staffOrder   []string
}

// NewInMemoryRepository builds a repository from catalog records. Duplicate
// or malformed entries fail loading outright rather than being skipped.
func NewInMemoryRepository(services []models.ServiceType, staff []models.StaffMember) (*InMemoryRepository, error) {
	repo := &InMemoryRepository{
		services: make(map[string]models.ServiceType, len(services)),
		staff:    make(map[string]models.StaffMember, len(staff)),
	}
	for _, svc := range services {
		if svc.ID == "" || svc.DurationMinutes <= 0 {
			return nil, fmt.Errorf("catalog: invalid service entry %q", svc.ID)
		}
		if !svc.Category.Valid() {
			return nil, fmt.Errorf("catalog: service %q has unknown category %q", svc.ID, svc.Category)
		}
		if _, dup := repo.services[svc.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate service id %q", svc.ID)
		}
		repo.services[svc.ID] = svc
		repo.serviceOrder = append(repo.serviceOrder, svc.ID)
	}
	for _, m := range staff {
		if m.ID == "" {
			return nil, errors.New("catalog: staff entry missing id")
		}
		for _, spec := range m.Specializations {
			if !spec.Valid() {
				return nil, fmt.Errorf("catalog: staff %q has unknown specialization %q", m.ID, spec)
			}
		}
		if _, dup := repo.staff[m.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate staff id %q", m.ID)
		}
		repo.staff[m.ID] = m
		repo.staffOrder = append(repo.staffOrder, m.ID)
	}
	return repo, nil
}

func (r *InMemoryRepository) GetService(id string) (*models.ServiceType, error) {
	svc, ok := r.services[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrServiceNotFound, id)
	}
	return &svc, nil
}

func (r *InMemoryRepository) GetServicesByCategory(cat models.ServiceCategory) []models.ServiceType {
	var out []models.ServiceType
	for _, id := range r.serviceOrder {
		if svc := r.services[id]; svc.Category == cat {
			out = append(out, svc)
		}
	}
	return out
}

func (r *InMemoryRepository) GetAllServices() []models.ServiceType {
	out := make([]models.ServiceType, 0, len(r.serviceOrder))
	for _, id := range r.serviceOrder {
		out = append(out, r.services[id])
	}
	return out
}

func (r *InMemoryRepository) GetStaffMember(id string) (*models.StaffMember, error) {
	m, ok := r.staff[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrStaffNotFound, id)
	}
	return &m, nil
}

func (r *InMemoryRepository) GetAllStaff() []models.StaffMember {
	out := make([]models.StaffMember, 0, len(r.staffOrder))
	for _, id := range r.staffOrder {
		out = append(out, r.staff[id])
	}
	return out
}

func (r *InMemoryRepository) GetAvailableStaff(serviceID string) ([]models.StaffMember, error) {
	svc, err := r.GetService(serviceID)
	if err != nil {
		return nil, err
	}
	var out []models.StaffMember
	for _, id := range r.staffOrder {
		m := r.staff[id]
		if m.Available && m.SpecializesIn(svc.Category) {
			out = append(out, m)
		}
	}
	return out, nil
}
