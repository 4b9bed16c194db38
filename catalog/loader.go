package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"lexbook/models"
)

type staffEntry struct {
	ID               string                     `mapstructure:"id"`
	Name             string                     `mapstructure:"name"`
	Email            string                     `mapstructure:"email"`
	Specializations  []models.ServiceCategory   `mapstructure:"specializations"`
	Available        bool                       `mapstructure:"available"`
	EmergencyContact bool                       `mapstructure:"emergency_contact"`
	WorkingHours     map[string]models.DayHours `mapstructure:"working_hours"`
}

type catalogFile struct {
	Services []models.ServiceType `mapstructure:"services"`
	Staff    []staffEntry         `mapstructure:"staff"`
}

// weekday names are fixed English identifiers in the config file, so the
// parse cannot shift with runtime locale.
var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Load reads a catalog yaml file. An empty path falls back to the built-in
// default catalog.
func Load(path string) (*InMemoryRepository, error) {
	if path == "" {
		return NewInMemoryRepository(defaultServices(), defaultStaff())
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("catalog: reading %s: %w", path, err)
	}

	var file catalogFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("catalog: parsing %s: %w", path, err)
	}

	staff := make([]models.StaffMember, 0, len(file.Staff))
	for _, entry := range file.Staff {
		hours := make(map[time.Weekday]models.DayHours, len(entry.WorkingHours))
		for name, day := range entry.WorkingHours {
			wd, ok := weekdayNames[strings.ToLower(name)]
			if !ok {
				return nil, fmt.Errorf("catalog: staff %q has unknown weekday %q", entry.ID, name)
			}
			hours[wd] = day
		}
		staff = append(staff, models.StaffMember{
			ID:               entry.ID,
			Name:             entry.Name,
			Email:            entry.Email,
			Specializations:  entry.Specializations,
			Available:        entry.Available,
			EmergencyContact: entry.EmergencyContact,
			WorkingHours:     hours,
		})
	}

	return NewInMemoryRepository(file.Services, staff)
}
