package usecase

import (
	"context"

	"go-doctor-directory/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockDoctorRepository provides a mock doctor repository for testing
type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	args := m.Called(ctx)
	doctors, _ := args.Get(0).([]entity.Doctor)
	return doctors, args.Error(1)
}

func (m *MockDoctorRepository) FindByID(ctx context.Context, id string) (*entity.Doctor, error) {
	args := m.Called(ctx, id)
	doctor, _ := args.Get(0).(*entity.Doctor)
	return doctor, args.Error(1)
}

// MockQueueService provides a mock queue service for testing
type MockQueueService struct {
	mock.Mock
}

func (m *MockQueueService) Enqueue(ctx context.Context, doctorID string, currentPatients int) (int, error) {
	args := m.Called(ctx, doctorID, currentPatients)
	return args.Int(0), args.Error(1)
}

// MockPublisher provides a mock event publisher for testing
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, topic string, event any) error {
	args := m.Called(ctx, topic, event)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	return m.Called().Error(0)
}
