package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Availability represents the readiness state of a doctor
type Availability string

const (
	AvailabilityAvailable Availability = "available"
	AvailabilityBusy      Availability = "busy"
	AvailabilityOffline   Availability = "offline"
)

// availabilityOrder is the ranking used when sorting by availability.
// Position in the slice is the rank.
var availabilityOrder = []Availability{
	AvailabilityAvailable,
	AvailabilityBusy,
	AvailabilityOffline,
}

// Rank returns the sort rank of the availability. Unknown values rank after
// every known one.
func (a Availability) Rank() int {
	for i, v := range availabilityOrder {
		if v == a {
			return i
		}
	}
	return len(availabilityOrder)
}

// IsValid checks if availability is one of the known states
func (a Availability) IsValid() bool {
	return a.Rank() < len(availabilityOrder)
}

// Label returns the display text shown next to a doctor
func (a Availability) Label(estimatedWait string) string {
	switch a {
	case AvailabilityAvailable:
		return "Available Now"
	case AvailabilityBusy:
		return fmt.Sprintf("Busy - %s wait", estimatedWait)
	case AvailabilityOffline:
		return "Offline"
	default:
		return "Unknown"
	}
}

// Availabilities returns the known availability states in rank order
func Availabilities() []Availability {
	out := make([]Availability, len(availabilityOrder))
	copy(out, availabilityOrder)
	return out
}

// Doctor represents one practitioner in the directory.
// Records are read-only once loaded.
type Doctor struct {
	ID              string          `gorm:"type:varchar(64);primaryKey" json:"id" validate:"required"`
	Name            string          `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Specialty       string          `gorm:"type:varchar(100);not null;index" json:"specialty" validate:"required"`
	Experience      int             `gorm:"not null;default:0" json:"experience" validate:"gte=0"`
	Rating          float64         `gorm:"type:numeric(2,1);not null;default:0" json:"rating" validate:"gte=0,lte=5"`
	Reviews         int             `gorm:"not null;default:0" json:"reviews" validate:"gte=0"`
	Distance        string          `gorm:"type:varchar(32);not null" json:"distance" validate:"required"`
	Availability    Availability    `gorm:"type:varchar(16);not null;index" json:"availability" validate:"required,oneof=available busy offline"`
	ConsultationFee decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"consultation_fee"`
	CurrentPatients int             `gorm:"not null;default:0" json:"current_patients" validate:"gte=0"`
	WorkingHours    string          `gorm:"type:varchar(100)" json:"working_hours,omitempty"`
	EstimatedWait   string          `gorm:"type:varchar(50)" json:"estimated_wait,omitempty"`
	Image           string          `gorm:"type:text" json:"image,omitempty"`
	Bio             string          `gorm:"type:text" json:"bio,omitempty"`
	Education       StringList      `gorm:"type:jsonb" json:"education,omitempty"`
	Languages       StringList      `gorm:"type:jsonb" json:"languages,omitempty"`
	Phone           string          `gorm:"type:varchar(32)" json:"phone,omitempty"`
	Email           string          `gorm:"type:varchar(255)" json:"email,omitempty" validate:"omitempty,email"`
	NextAvailable   string          `gorm:"type:varchar(100)" json:"next_available,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// IsAvailable checks if the doctor can take a patient right now
func (d *Doctor) IsAvailable() bool {
	return d.Availability == AvailabilityAvailable
}

// IsBusy checks if the doctor is seeing patients with a queue
func (d *Doctor) IsBusy() bool {
	return d.Availability == AvailabilityBusy
}

// IsOffline checks if the doctor is not taking patients
func (d *Doctor) IsOffline() bool {
	return d.Availability == AvailabilityOffline
}

// StringList type for GORM JSONB arrays
type StringList []string

// Value returns json value, implement driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	return json.Marshal([]string(l))
}

// Scan scan value into StringList, implements sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	var result []string
	err := json.Unmarshal(bytes, &result)
	*l = StringList(result)
	return err
}
