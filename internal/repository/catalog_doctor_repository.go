package repository

import (
	"context"
	"errors"
	"fmt"

	"go-doctor-directory/internal/domain/entity"
	domainRepo "go-doctor-directory/internal/domain/repository"
	"go-doctor-directory/pkg/validator"
)

var (
	ErrDuplicateDoctorID = errors.New("duplicate doctor id")
	ErrNegativeFee       = errors.New("consultation fee must not be negative")
)

// catalogDoctorRepository serves a fixed, validated snapshot of the directory.
// The snapshot is never modified after construction, so reads need no locking.
type catalogDoctorRepository struct {
	doctors []entity.Doctor
	byID    map[string]int
}

// NewCatalogDoctorRepository validates every record and indexes the snapshot.
// Input order is preserved and becomes the tie-break order of every query.
func NewCatalogDoctorRepository(doctors []entity.Doctor, v *validator.CustomValidator) (domainRepo.DoctorRepository, error) {
	snapshot := make([]entity.Doctor, len(doctors))
	byID := make(map[string]int, len(doctors))

	for i := range doctors {
		doctor := doctors[i]
		if err := v.Validate(&doctor); err != nil {
			return nil, fmt.Errorf("doctor %d (%q): %w", i, doctor.ID, v.Describe(err))
		}
		if doctor.ConsultationFee.IsNegative() {
			return nil, fmt.Errorf("doctor %q: %w", doctor.ID, ErrNegativeFee)
		}
		if _, exists := byID[doctor.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateDoctorID, doctor.ID)
		}

		byID[doctor.ID] = i
		snapshot[i] = cloneDoctor(doctor)
	}

	return &catalogDoctorRepository{
		doctors: snapshot,
		byID:    byID,
	}, nil
}

func (r *catalogDoctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	doctors := make([]entity.Doctor, len(r.doctors))
	for i := range r.doctors {
		doctors[i] = cloneDoctor(r.doctors[i])
	}
	return doctors, nil
}

func (r *catalogDoctorRepository) FindByID(ctx context.Context, id string) (*entity.Doctor, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	doctor := cloneDoctor(r.doctors[i])
	return &doctor, nil
}

// cloneDoctor copies the slice fields so callers cannot reach the snapshot
func cloneDoctor(d entity.Doctor) entity.Doctor {
	if d.Education != nil {
		d.Education = append(entity.StringList(nil), d.Education...)
	}
	if d.Languages != nil {
		d.Languages = append(entity.StringList(nil), d.Languages...)
	}
	return d
}
