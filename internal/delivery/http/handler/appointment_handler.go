package handler

import (
	"errors"
	"fmt"
	"net/http"

	"go-doctor-directory/internal/usecase"
	"go-doctor-directory/pkg/response"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase) *AppointmentHandler {
	return &AppointmentHandler{appointmentUsecase: appointmentUsecase}
}

func (h *AppointmentHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	doctorID := mux.Vars(r)["id"]

	appointment, err := h.appointmentUsecase.BookAppointment(r.Context(), doctorID)
	if err != nil {
		var offline *usecase.DoctorOfflineError
		switch {
		case errors.As(err, &offline):
			response.Conflict(w, fmt.Sprintf(
				"Dr. %s is currently offline. Please check back later or choose another doctor.", offline.DoctorName))
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to book appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, appointment.Message, appointment)
}
