package middleware

import (
	"context"
	"net/http"
	"strings"

	"go-doctor-directory/pkg/jwt"
	"go-doctor-directory/pkg/response"

	"github.com/google/uuid"
)

type contextKey string

const (
	PatientIDKey contextKey = "patient_id"
	RequestIDKey contextKey = "request_id"
)

type AuthMiddleware struct {
	jwtService *jwt.JWTService
}

func NewAuthMiddleware(jwtService *jwt.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		if claims.TokenType != jwt.AccessToken {
			response.Unauthorized(w, "Invalid token type")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithPatientID(r.Context(), claims.PatientID)))
	})
}

// WithPatientID stores the authenticated patient on ctx
func WithPatientID(ctx context.Context, patientID uuid.UUID) context.Context {
	return context.WithValue(ctx, PatientIDKey, patientID)
}

// GetPatientIDFromContext extracts patient ID from context
func GetPatientIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	patientID, ok := ctx.Value(PatientIDKey).(uuid.UUID)
	return patientID, ok
}

// GetRequestIDFromContext extracts the request ID set by the logging middleware
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(RequestIDKey).(string)
	return requestID, ok
}
