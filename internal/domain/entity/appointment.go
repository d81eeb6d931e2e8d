package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the outcome of a booking request
type AppointmentStatus string

const (
	AppointmentStatusBooked   AppointmentStatus = "booked"
	AppointmentStatusQueued   AppointmentStatus = "queued"
	AppointmentStatusRejected AppointmentStatus = "rejected"
)

// Appointment is a booking made against a directory doctor.
// It is published as an event and returned to the caller, never stored.
type Appointment struct {
	Reference     string            `json:"reference"`
	DoctorID      string            `json:"doctor_id"`
	DoctorName    string            `json:"doctor_name"`
	PatientID     *uuid.UUID        `json:"patient_id,omitempty"`
	Status        AppointmentStatus `json:"status"`
	QueueNumber   int               `json:"queue_number,omitempty"`
	EstimatedWait string            `json:"estimated_wait,omitempty"`
	BookedAt      time.Time         `json:"booked_at"`
}

// IsQueued checks if the patient joined a busy doctor's queue
func (a *Appointment) IsQueued() bool {
	return a.Status == AppointmentStatusQueued
}

// DirectoryStats summarises a result set
type DirectoryStats struct {
	DoctorsFound    int
	AvailableNow    int
	PatientsInQueue int
}
