package converter

import (
	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:                doctor.ID,
		Name:              doctor.Name,
		Specialty:         doctor.Specialty,
		Experience:        doctor.Experience,
		Rating:            doctor.Rating,
		Reviews:           doctor.Reviews,
		Distance:          doctor.Distance,
		Availability:      string(doctor.Availability),
		AvailabilityLabel: doctor.Availability.Label(doctor.EstimatedWait),
		ConsultationFee:   doctor.ConsultationFee,
		CurrentPatients:   doctor.CurrentPatients,
		WorkingHours:      doctor.WorkingHours,
		EstimatedWait:     doctor.EstimatedWait,
		Image:             doctor.Image,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

// DoctorToDetailResponse converts a Doctor entity to the full detail DTO
func DoctorToDetailResponse(doctor *entity.Doctor) *dto.DoctorDetailResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorDetailResponse{
		DoctorResponse: *DoctorToResponse(doctor),
		Bio:            doctor.Bio,
		Education:      doctor.Education,
		Languages:      doctor.Languages,
		Phone:          doctor.Phone,
		Email:          doctor.Email,
		NextAvailable:  doctor.NextAvailable,
	}
}

// SearchRequestToFilter converts query parameters to a domain filter.
// An empty specialty selects all specialties.
func SearchRequestToFilter(req *dto.SearchDoctorsRequest) entity.DoctorFilter {
	filter := entity.DefaultDoctorFilter()
	if req == nil {
		return filter
	}

	filter.SearchText = req.Search
	if req.Specialty != "" {
		filter.Specialty = req.Specialty
	}
	filter.Availability = entity.Availability(req.Availability)
	filter.SortBy = entity.SortKey(req.Sort).OrDefault()
	return filter
}

// FilterToResponse echoes the applied filter back to the caller
func FilterToResponse(filter entity.DoctorFilter) dto.AppliedFiltersResponse {
	specialty := filter.Specialty
	if specialty == "" {
		specialty = entity.AllSpecialties
	}

	return dto.AppliedFiltersResponse{
		Search:           filter.SearchText,
		Specialty:        specialty,
		Availability:     string(filter.Availability),
		Sort:             string(filter.SortBy.OrDefault()),
		HasActiveFilters: filter.HasActiveFilters(),
	}
}

// StatsToResponse converts directory stats to DTO
func StatsToResponse(stats entity.DirectoryStats) dto.DirectoryStatsResponse {
	return dto.DirectoryStatsResponse{
		DoctorsFound:    stats.DoctorsFound,
		AvailableNow:    stats.AvailableNow,
		PatientsInQueue: stats.PatientsInQueue,
	}
}
