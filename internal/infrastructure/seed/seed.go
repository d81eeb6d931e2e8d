// Package seed loads the directory dataset from YAML, either the copy
// embedded in the binary or a file on disk.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"go-doctor-directory/internal/domain/entity"
	domainRepo "go-doctor-directory/internal/domain/repository"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed doctors.yaml
var embeddedDataset []byte

type datasetFile struct {
	Doctors []doctorRecord `yaml:"doctors"`
}

type doctorRecord struct {
	ID              string   `yaml:"id"`
	Name            string   `yaml:"name"`
	Specialty       string   `yaml:"specialty"`
	Experience      int      `yaml:"experience"`
	Rating          float64  `yaml:"rating"`
	Reviews         int      `yaml:"reviews"`
	Distance        string   `yaml:"distance"`
	Availability    string   `yaml:"availability"`
	ConsultationFee string   `yaml:"consultation_fee"`
	WorkingHours    string   `yaml:"working_hours"`
	CurrentPatients int      `yaml:"current_patients"`
	EstimatedWait   string   `yaml:"estimated_wait"`
	Image           string   `yaml:"image"`
	Bio             string   `yaml:"bio"`
	Education       []string `yaml:"education"`
	Languages       []string `yaml:"languages"`
	Phone           string   `yaml:"phone"`
	Email           string   `yaml:"email"`
	NextAvailable   string   `yaml:"next_available"`
}

// YAMLLoader implements repository.DoctorLoader over a YAML dataset.
type YAMLLoader struct {
	path string
}

var _ domainRepo.DoctorLoader = (*YAMLLoader)(nil)

// NewEmbeddedLoader returns a loader for the dataset compiled into the binary.
func NewEmbeddedLoader() *YAMLLoader {
	return &YAMLLoader{}
}

// NewFileLoader returns a loader reading the dataset at path.
func NewFileLoader(path string) *YAMLLoader {
	return &YAMLLoader{path: path}
}

func (l *YAMLLoader) Load(ctx context.Context) ([]entity.Doctor, error) {
	if l.path == "" {
		return Parse(embeddedDataset)
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", l.path, err)
	}
	doctors, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", l.path, err)
	}
	return doctors, nil
}

// Parse decodes a YAML dataset. Field-level validation is left to the catalog.
func Parse(data []byte) ([]entity.Doctor, error) {
	var file datasetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	doctors := make([]entity.Doctor, 0, len(file.Doctors))
	for i, rec := range file.Doctors {
		doctor, err := rec.toEntity()
		if err != nil {
			return nil, fmt.Errorf("doctor %d (%q): %w", i, rec.ID, err)
		}
		doctors = append(doctors, doctor)
	}
	return doctors, nil
}

func (r doctorRecord) toEntity() (entity.Doctor, error) {
	fee := decimal.Zero
	if r.ConsultationFee != "" {
		parsed, err := decimal.NewFromString(r.ConsultationFee)
		if err != nil {
			return entity.Doctor{}, fmt.Errorf("consultation_fee: %w", err)
		}
		fee = parsed
	}

	return entity.Doctor{
		ID:              r.ID,
		Name:            r.Name,
		Specialty:       r.Specialty,
		Experience:      r.Experience,
		Rating:          r.Rating,
		Reviews:         r.Reviews,
		Distance:        r.Distance,
		Availability:    entity.Availability(r.Availability),
		ConsultationFee: fee,
		CurrentPatients: r.CurrentPatients,
		WorkingHours:    r.WorkingHours,
		EstimatedWait:   r.EstimatedWait,
		Image:           r.Image,
		Bio:             r.Bio,
		Education:       entity.StringList(r.Education),
		Languages:       entity.StringList(r.Languages),
		Phone:           r.Phone,
		Email:           r.Email,
		NextAvailable:   r.NextAvailable,
	}, nil
}
