package converter

import (
	"fmt"

	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		Reference:     appointment.Reference,
		DoctorID:      appointment.DoctorID,
		DoctorName:    appointment.DoctorName,
		PatientID:     appointment.PatientID,
		Status:        string(appointment.Status),
		QueueNumber:   appointment.QueueNumber,
		EstimatedWait: appointment.EstimatedWait,
		BookedAt:      appointment.BookedAt,
	}

	if appointment.IsQueued() {
		response.Title = "Added to Queue"
		response.Message = fmt.Sprintf(
			"You have been added to Dr. %s's queue. You are patient #%d. Estimated wait: %s",
			appointment.DoctorName, appointment.QueueNumber, appointment.EstimatedWait,
		)
	} else {
		response.Title = "Appointment Booked!"
		response.Message = fmt.Sprintf(
			"Your appointment with Dr. %s has been scheduled. You are patient #%d in the queue.",
			appointment.DoctorName, appointment.QueueNumber,
		)
	}

	return response
}
