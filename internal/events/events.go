package events

import (
	"context"

	"go-doctor-directory/internal/domain/entity"
)

// Event topic constants
const (
	TopicAppointmentBooked   = "directory.appointment.booked"
	TopicAppointmentQueued   = "directory.appointment.queued"
	TopicAppointmentRejected = "directory.appointment.rejected"
)

// Event types

type AppointmentBooked struct {
	Appointment *entity.Appointment `json:"appointment"`
}

type AppointmentQueued struct {
	Appointment *entity.Appointment `json:"appointment"`
}

type AppointmentRejected struct {
	DoctorID   string `json:"doctor_id"`
	DoctorName string `json:"doctor_name"`
	Reason     string `json:"reason"`
}

// Publisher is the interface for emitting events.
type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
	Close() error
}
