package handler

import (
	"errors"
	"net/http"

	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/usecase"
	"go-doctor-directory/pkg/response"
	"go-doctor-directory/pkg/validator"

	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	directoryUsecase usecase.DoctorDirectoryUsecase
	validator        *validator.CustomValidator
}

func NewDoctorHandler(directoryUsecase usecase.DoctorDirectoryUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		directoryUsecase: directoryUsecase,
		validator:        validator,
	}
}

func (h *DoctorHandler) SearchDoctors(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := dto.SearchDoctorsRequest{
		Search:       q.Get("search"),
		Specialty:    q.Get("specialty"),
		Availability: q.Get("availability"),
		Sort:         q.Get("sort"),
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctors, err := h.directoryUsecase.SearchDoctors(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to search doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID := mux.Vars(r)["id"]

	doctor, err := h.directoryUsecase.GetDoctor(r.Context(), doctorID)
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to get doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

func (h *DoctorHandler) GetSpecialties(w http.ResponseWriter, r *http.Request) {
	specialties, err := h.directoryUsecase.GetSpecialties(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get specialties")
		return
	}

	response.Success(w, http.StatusOK, "Specialties retrieved successfully", specialties)
}
