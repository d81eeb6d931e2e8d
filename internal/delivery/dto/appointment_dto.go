package dto

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentResponse struct {
	Reference     string     `json:"reference"`
	DoctorID      string     `json:"doctor_id"`
	DoctorName    string     `json:"doctor_name"`
	PatientID     *uuid.UUID `json:"patient_id,omitempty"`
	Status        string     `json:"status"`
	QueueNumber   int        `json:"queue_number"`
	EstimatedWait string     `json:"estimated_wait,omitempty"`
	Title         string     `json:"title"`
	Message       string     `json:"message"`
	BookedAt      time.Time  `json:"booked_at"`
}
