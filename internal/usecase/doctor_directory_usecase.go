package usecase

import (
	"context"
	"errors"

	"go-doctor-directory/internal/converter"
	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/domain/entity"
	"go-doctor-directory/internal/domain/query"
	"go-doctor-directory/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrDoctorNotFound = errors.New("doctor not found")
)

type DoctorDirectoryUsecase interface {
	SearchDoctors(ctx context.Context, req *dto.SearchDoctorsRequest) (*dto.DoctorListResponse, error)
	GetDoctor(ctx context.Context, doctorID string) (*dto.DoctorDetailResponse, error)
	GetSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error)
}

type doctorDirectoryUsecase struct {
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
}

func NewDoctorDirectoryUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
) DoctorDirectoryUsecase {
	return &doctorDirectoryUsecase{
		log:        log,
		doctorRepo: doctorRepo,
	}
}

// SearchDoctors filters and sorts the directory, returning the matches with
// their stats and the filter that produced them.
func (u *doctorDirectoryUsecase) SearchDoctors(ctx context.Context, req *dto.SearchDoctorsRequest) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all doctors: %+v", err)
		return nil, err
	}

	filter := converter.SearchRequestToFilter(req)
	matches := query.Evaluate(doctors, filter)

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(matches),
		Total:   len(matches),
		Stats:   converter.StatsToResponse(query.Summarize(matches)),
		Filters: converter.FilterToResponse(filter),
	}, nil
}

func (u *doctorDirectoryUsecase) GetDoctor(ctx context.Context, doctorID string) (*dto.DoctorDetailResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToDetailResponse(doctor), nil
}

// GetSpecialties lists the default specialties followed by any others found
// in the directory, in the order they first appear.
func (u *doctorDirectoryUsecase) GetSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all doctors: %+v", err)
		return nil, err
	}

	specialties := make([]string, 0, len(entity.DefaultSpecialties))
	seen := make(map[string]bool, len(entity.DefaultSpecialties))
	for _, s := range entity.DefaultSpecialties {
		specialties = append(specialties, s)
		seen[s] = true
	}
	for _, d := range doctors {
		if d.Specialty == "" || seen[d.Specialty] {
			continue
		}
		seen[d.Specialty] = true
		specialties = append(specialties, d.Specialty)
	}

	return &dto.SpecialtyListResponse{
		Specialties: specialties,
		Total:       len(specialties),
	}, nil
}
