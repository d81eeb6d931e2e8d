package repository

import (
	"context"

	"go-doctor-directory/internal/domain/entity"
)

// DoctorRepository is the read-only view over the loaded directory
type DoctorRepository interface {
	FindAll(ctx context.Context) ([]entity.Doctor, error)
	FindByID(ctx context.Context, id string) (*entity.Doctor, error)
}

// DoctorLoader reads the directory dataset once at startup
type DoctorLoader interface {
	Load(ctx context.Context) ([]entity.Doctor, error)
}
