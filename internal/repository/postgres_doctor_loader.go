package repository

import (
	"context"

	"go-doctor-directory/internal/domain/entity"
	domainRepo "go-doctor-directory/internal/domain/repository"

	"gorm.io/gorm"
)

type postgresDoctorLoader struct {
	db *gorm.DB
}

// NewPostgresDoctorLoader reads the directory from the doctors table in
// insertion order, which becomes the tie-break order of every query.
func NewPostgresDoctorLoader(db *gorm.DB) domainRepo.DoctorLoader {
	return &postgresDoctorLoader{db: db}
}

func (l *postgresDoctorLoader) Load(ctx context.Context) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := l.db.WithContext(ctx).Order("position ASC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}
