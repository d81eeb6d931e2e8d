package dto

import (
	"github.com/shopspring/decimal"
)

// Request DTOs

// SearchDoctorsRequest carries the directory query string
type SearchDoctorsRequest struct {
	Search       string `json:"search" validate:"omitempty,max=100"`
	Specialty    string `json:"specialty" validate:"omitempty,max=100"`
	Availability string `json:"availability" validate:"omitempty,oneof=available busy offline"`
	Sort         string `json:"sort" validate:"omitempty,oneof=distance rating experience fee availability"`
}

// Response DTOs

type DoctorResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Specialty         string          `json:"specialty"`
	Experience        int             `json:"experience"`
	Rating            float64         `json:"rating"`
	Reviews           int             `json:"reviews"`
	Distance          string          `json:"distance"`
	Availability      string          `json:"availability"`
	AvailabilityLabel string          `json:"availability_label"`
	ConsultationFee   decimal.Decimal `json:"consultation_fee"`
	CurrentPatients   int             `json:"current_patients"`
	WorkingHours      string          `json:"working_hours,omitempty"`
	EstimatedWait     string          `json:"estimated_wait,omitempty"`
	Image             string          `json:"image,omitempty"`
}

type DoctorDetailResponse struct {
	DoctorResponse
	Bio           string   `json:"bio,omitempty"`
	Education     []string `json:"education,omitempty"`
	Languages     []string `json:"languages,omitempty"`
	Phone         string   `json:"phone,omitempty"`
	Email         string   `json:"email,omitempty"`
	NextAvailable string   `json:"next_available,omitempty"`
}

type DirectoryStatsResponse struct {
	DoctorsFound    int `json:"doctors_found"`
	AvailableNow    int `json:"available_now"`
	PatientsInQueue int `json:"patients_in_queue"`
}

type AppliedFiltersResponse struct {
	Search           string `json:"search"`
	Specialty        string `json:"specialty"`
	Availability     string `json:"availability"`
	Sort             string `json:"sort"`
	HasActiveFilters bool   `json:"has_active_filters"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse       `json:"doctors"`
	Total   int                    `json:"total"`
	Stats   DirectoryStatsResponse `json:"stats"`
	Filters AppliedFiltersResponse `json:"filters"`
}

type SpecialtyListResponse struct {
	Specialties []string `json:"specialties"`
	Total       int      `json:"total"`
}
