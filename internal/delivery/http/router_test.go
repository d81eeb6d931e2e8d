package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-doctor-directory/config"
	deliveryHttp "go-doctor-directory/internal/delivery/http"
	"go-doctor-directory/internal/delivery/http/handler"
	"go-doctor-directory/internal/delivery/http/middleware"
	"go-doctor-directory/internal/events"
	"go-doctor-directory/internal/infrastructure/seed"
	"go-doctor-directory/internal/repository"
	"go-doctor-directory/internal/service"
	"go-doctor-directory/internal/usecase"
	"go-doctor-directory/pkg/jwt"
	"go-doctor-directory/pkg/logger"
	"go-doctor-directory/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func newServer(t *testing.T, jwtService *jwt.JWTService) http.Handler {
	t.Helper()

	log := logger.Discard()
	v := validator.NewValidator()

	doctors, err := seed.NewEmbeddedLoader().Load(context.Background())
	require.NoError(t, err)
	repo, err := repository.NewCatalogDoctorRepository(doctors, v)
	require.NoError(t, err)

	directoryUsecase := usecase.NewDoctorDirectoryUsecase(log, repo)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, repo, service.NewMemoryQueueService(), &events.NoopPublisher{})

	var auth *middleware.AuthMiddleware
	if jwtService != nil {
		auth = middleware.NewAuthMiddleware(jwtService)
	}

	router := deliveryHttp.NewRouter(
		handler.NewDoctorHandler(directoryUsecase, v),
		handler.NewAppointmentHandler(appointmentUsecase),
		auth,
		middleware.NewCORSMiddleware(),
		middleware.NewLoggingMiddleware(log),
	)
	return router.Setup()
}

func do(t *testing.T, h http.Handler, method, target string, header map[string]string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return rec.Code, body
}

type listData struct {
	Doctors []struct {
		ID           string `json:"id"`
		Availability string `json:"availability"`
	} `json:"doctors"`
	Total int `json:"total"`
	Stats struct {
		DoctorsFound    int `json:"doctors_found"`
		AvailableNow    int `json:"available_now"`
		PatientsInQueue int `json:"patients_in_queue"`
	} `json:"stats"`
	Filters struct {
		Sort             string `json:"sort"`
		HasActiveFilters bool   `json:"has_active_filters"`
	} `json:"filters"`
}

func doctorIDs(data listData) []string {
	ids := make([]string, len(data.Doctors))
	for i, d := range data.Doctors {
		ids[i] = d.ID
	}
	return ids
}

func TestHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	newServer(t, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestSearchDoctors_DefaultDistanceOrder(t *testing.T) {
	code, body := do(t, newServer(t, nil), http.MethodGet, "/api/v1/doctors", nil)
	require.Equal(t, http.StatusOK, code)

	var data listData
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.Equal(t, 8, data.Total)
	assert.Equal(t, []string{"6", "1", "2", "5", "3", "7", "4", "8"}, doctorIDs(data))
	assert.Equal(t, "distance", data.Filters.Sort)
	assert.False(t, data.Filters.HasActiveFilters)
	assert.Equal(t, 4, data.Stats.AvailableNow)
	assert.Equal(t, 29, data.Stats.PatientsInQueue)
}

func TestSearchDoctors_FilterByAvailabilitySortByFee(t *testing.T) {
	code, body := do(t, newServer(t, nil), http.MethodGet, "/api/v1/doctors?availability=busy&sort=fee", nil)
	require.Equal(t, http.StatusOK, code)

	var data listData
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.Equal(t, []string{"5", "2", "7"}, doctorIDs(data))
	assert.True(t, data.Filters.HasActiveFilters)
}

func TestSearchDoctors_SearchAndSpecialty(t *testing.T) {
	code, body := do(t, newServer(t, nil), http.MethodGet, "/api/v1/doctors?search=CHEN&specialty=Neurology", nil)
	require.Equal(t, http.StatusOK, code)

	var data listData
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.Equal(t, []string{"2"}, doctorIDs(data))
}

func TestSearchDoctors_InvalidQuery(t *testing.T) {
	code, body := do(t, newServer(t, nil), http.MethodGet, "/api/v1/doctors?sort=popularity&availability=away", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, body.Success)

	var errs map[string]string
	require.NoError(t, json.Unmarshal(body.Error, &errs))
	assert.Contains(t, errs, "sort")
	assert.Contains(t, errs, "availability")
}

func TestGetDoctor(t *testing.T) {
	h := newServer(t, nil)

	code, body := do(t, h, http.MethodGet, "/api/v1/doctors/2", nil)
	require.Equal(t, http.StatusOK, code)

	var doctor struct {
		Name      string   `json:"name"`
		Languages []string `json:"languages"`
		Label     string   `json:"availability_label"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &doctor))
	assert.Equal(t, "Michael Chen", doctor.Name)
	assert.Equal(t, []string{"English", "Mandarin"}, doctor.Languages)
	assert.Equal(t, "Busy - 45 min wait", doctor.Label)

	code, body = do(t, h, http.MethodGet, "/api/v1/doctors/404", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Doctor not found", body.Message)
}

func TestGetSpecialties(t *testing.T) {
	code, body := do(t, newServer(t, nil), http.MethodGet, "/api/v1/specialties", nil)
	require.Equal(t, http.StatusOK, code)

	var data struct {
		Specialties []string `json:"specialties"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	require.NotEmpty(t, data.Specialties)
	assert.Equal(t, "All Specialties", data.Specialties[0])
}

type appointmentData struct {
	Status      string `json:"status"`
	QueueNumber int    `json:"queue_number"`
	Reference   string `json:"reference"`
	PatientID   string `json:"patient_id"`
}

func TestBookAppointment(t *testing.T) {
	h := newServer(t, nil)

	code, body := do(t, h, http.MethodPost, "/api/v1/doctors/1/appointments", nil)
	require.Equal(t, http.StatusCreated, code)

	var booked appointmentData
	require.NoError(t, json.Unmarshal(body.Data, &booked))
	assert.Equal(t, "booked", booked.Status)
	assert.Equal(t, 4, booked.QueueNumber)
	assert.Contains(t, body.Message, "You are patient #4 in the queue.")

	code, body = do(t, h, http.MethodPost, "/api/v1/doctors/2/appointments", nil)
	require.Equal(t, http.StatusCreated, code)
	var queued appointmentData
	require.NoError(t, json.Unmarshal(body.Data, &queued))
	assert.Equal(t, "queued", queued.Status)
	assert.Equal(t, 9, queued.QueueNumber)

	code, body = do(t, h, http.MethodPost, "/api/v1/doctors/4/appointments", nil)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "Dr. David Williams is currently offline. Please check back later or choose another doctor.", body.Message)

	code, _ = do(t, h, http.MethodPost, "/api/v1/doctors/404/appointments", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestBookAppointment_RequiresTokenWhenAuthEnabled(t *testing.T) {
	jwtService := jwt.NewJWTService(config.AuthConfig{JWTSecret: "secret", AccessExpiry: time.Minute})
	h := newServer(t, jwtService)

	code, _ := do(t, h, http.MethodPost, "/api/v1/doctors/1/appointments", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	patientID := uuid.New()
	token, err := jwtService.GenerateAccessToken(patientID)
	require.NoError(t, err)

	code, body := do(t, h, http.MethodPost, "/api/v1/doctors/1/appointments", map[string]string{
		"Authorization": "Bearer " + token,
	})
	require.Equal(t, http.StatusCreated, code)

	var booked appointmentData
	require.NoError(t, json.Unmarshal(body.Data, &booked))
	assert.Equal(t, patientID.String(), booked.PatientID)

	// Directory reads stay public
	code, _ = do(t, h, http.MethodGet, "/api/v1/doctors", nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestUnknownRoute(t *testing.T) {
	code, body := do(t, newServer(t, nil), http.MethodGet, "/api/v1/nope", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Route not found", body.Message)
}

func TestPreflightReachesCORS(t *testing.T) {
	jwtService := jwt.NewJWTService(config.AuthConfig{JWTSecret: "secret", AccessExpiry: time.Minute})

	for _, h := range []http.Handler{newServer(t, nil), newServer(t, jwtService)} {
		for _, target := range []string{"/api/v1/doctors", "/api/v1/doctors/1/appointments"} {
			req := httptest.NewRequest(http.MethodOptions, target, nil)
			req.Header.Set("Origin", "http://localhost:3000")
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			req.Header.Set("Access-Control-Request-Headers", "Authorization")
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code, target)
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"), target)
			assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost, target)
			assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization", target)
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"), target)
		}
	}
}

func TestUnknownRouteCarriesCORSHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
	rec := httptest.NewRecorder()
	newServer(t, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
