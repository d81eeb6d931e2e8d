package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-doctor-directory/internal/converter"
	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/delivery/http/middleware"
	"go-doctor-directory/internal/domain/entity"
	"go-doctor-directory/internal/domain/repository"
	"go-doctor-directory/internal/events"
	"go-doctor-directory/internal/idgen"
	"go-doctor-directory/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrDoctorOffline = errors.New("doctor is currently offline")
)

// DoctorOfflineError carries the name of the doctor who turned a booking away.
// It matches ErrDoctorOffline under errors.Is.
type DoctorOfflineError struct {
	DoctorName string
}

func (e *DoctorOfflineError) Error() string {
	return fmt.Sprintf("dr. %s is currently offline", e.DoctorName)
}

func (e *DoctorOfflineError) Unwrap() error {
	return ErrDoctorOffline
}

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, doctorID string) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	queueService service.QueueService
	publisher    events.Publisher
	now          func() time.Time
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	queueService service.QueueService,
	publisher events.Publisher,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:          log,
		doctorRepo:   doctorRepo,
		queueService: queueService,
		publisher:    publisher,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// BookAppointment places the caller in the doctor's queue.
//
// Flow:
// 1. Offline doctors are rejected and nothing is reserved
// 2. Reserve the next queue position
// 3. Available doctors yield a booked appointment, busy ones a queued one
// 4. Publish the outcome; publish failures never fail the booking
func (u *appointmentUsecase) BookAppointment(ctx context.Context, doctorID string) (*dto.AppointmentResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if doctor.IsOffline() {
		u.publish(ctx, events.TopicAppointmentRejected, events.AppointmentRejected{
			DoctorID:   doctor.ID,
			DoctorName: doctor.Name,
			Reason:     ErrDoctorOffline.Error(),
		})
		return nil, &DoctorOfflineError{DoctorName: doctor.Name}
	}

	position, err := u.queueService.Enqueue(ctx, doctor.ID, doctor.CurrentPatients)
	if err != nil {
		u.log.Warnf("Failed to reserve queue position for doctor %s: %+v", doctor.ID, err)
		return nil, err
	}

	reference, err := idgen.AppointmentReference()
	if err != nil {
		u.log.Warnf("Failed to generate appointment reference: %+v", err)
		return nil, err
	}

	appointment := &entity.Appointment{
		Reference:     reference,
		DoctorID:      doctor.ID,
		DoctorName:    doctor.Name,
		Status:        entity.AppointmentStatusBooked,
		QueueNumber:   position,
		EstimatedWait: doctor.EstimatedWait,
		BookedAt:      u.now(),
	}
	if patientID, ok := middleware.GetPatientIDFromContext(ctx); ok {
		appointment.PatientID = &patientID
	}

	if doctor.IsBusy() {
		appointment.Status = entity.AppointmentStatusQueued
		u.publish(ctx, events.TopicAppointmentQueued, events.AppointmentQueued{Appointment: appointment})
	} else {
		u.publish(ctx, events.TopicAppointmentBooked, events.AppointmentBooked{Appointment: appointment})
	}

	u.log.WithFields(logrus.Fields{
		"reference":    appointment.Reference,
		"doctor_id":    appointment.DoctorID,
		"status":       appointment.Status,
		"queue_number": appointment.QueueNumber,
	}).Info("Appointment created")

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) publish(ctx context.Context, topic string, event any) {
	if err := u.publisher.Publish(ctx, topic, event); err != nil {
		u.log.Warnf("Failed to publish %s: %+v", topic, err)
	}
}
