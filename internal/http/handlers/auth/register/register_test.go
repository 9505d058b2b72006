package register

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/healthmon/auth-backend/internal/lib/fieldmap"
	"github.com/healthmon/auth-backend/internal/lib/sl"
	"github.com/healthmon/auth-backend/internal/models"
)

// Мок сервиса с методом Register
type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Register(ctx context.Context, fields fieldmap.FieldMap) models.AuthResult {
	args := m.Called(ctx, fields)
	return args.Get(0).(models.AuthResult)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestRegisterHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name       string
		decoder    fieldmap.Decoder
		body       string
		wantFields fieldmap.FieldMap
		result     models.AuthResult
		wantBody   string
	}{
		{
			name:    "registered",
			decoder: fieldmap.Legacy{},
			body:    `{"username":"ann","age":"30","email":"a@x.io","password":"p","userType":"patient"}`,
			wantFields: fieldmap.FieldMap{
				"username": "ann", "age": "30", "email": "a@x.io", "password": "p", "userType": "patient",
			},
			result:   models.Success(models.UserInfo{Username: "ann", Email: "a@x.io", UserType: "patient"}, "User Registered"),
			wantBody: `{"user":{"id":0,"username":"ann","email":"a@x.io","userType":"patient"},"message":"User Registered"}`,
		},
		{
			name:       "duplicate email is still 200",
			decoder:    fieldmap.Legacy{},
			body:       `{"email":"a@x.io"}`,
			wantFields: fieldmap.FieldMap{"email": "a@x.io"},
			result:     models.Failure("Email already exists"),
			wantBody:   `{"message":"Email already exists"}`,
		},
		{
			name:       "non-object body gives empty fields",
			decoder:    fieldmap.Legacy{},
			body:       `not json`,
			wantFields: fieldmap.FieldMap{},
			result:     models.Failure("Registration Failed"),
			wantBody:   `{"message":"Registration Failed"}`,
		},
		{
			name:       "strict decoder keeps commas inside values",
			decoder:    fieldmap.Strict{},
			body:       `{"username":"Doe, Jane","age":41}`,
			wantFields: fieldmap.FieldMap{"username": "Doe, Jane", "age": "41"},
			result:     models.Success(models.UserInfo{Username: "Doe, Jane"}, "User Registered"),
			wantBody:   `{"user":{"id":0,"username":"Doe, Jane","email":"","userType":""},"message":"User Registered"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			svc.On("Register", mock.Anything, tt.wantFields).Return(tt.result).Once()

			handler := New(sl.Discard(), svc, tt.decoder)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(tt.body))
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())

			svc.AssertExpectations(t)
		})
	}
}

func TestRegisterHandler_MethodNotAllowed(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodPatch} {
		t.Run(method, func(t *testing.T) {
			svc := new(ServiceMock)
			handler := New(sl.Discard(), svc, fieldmap.Legacy{})

			req := httptest.NewRequest(method, "/api/auth/register", strings.NewReader(`{"email":"a@x.io"}`))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			assert.Empty(t, rec.Body.String())
			svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
		})
	}
}

func TestRegisterHandler_BodyReadFailureAborts(t *testing.T) {
	svc := new(ServiceMock)
	handler := New(sl.Discard(), svc, fieldmap.Legacy{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", failingReader{})
	rec := httptest.NewRecorder()

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		handler.ServeHTTP(rec, req)
	})
	assert.Empty(t, rec.Body.String())
	svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestRegisterHandler_LogsOutcome(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := new(ServiceMock)
	svc.On("Register", mock.Anything, mock.Anything).Return(models.Failure("Email already exists")).Once()

	handler := New(logger, svc, fieldmap.Legacy{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{"email":"a@x.io"}`))
	req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), "ok=false")
	assert.Contains(t, buf.String(), `message="Email already exists"`)
	assert.Contains(t, buf.String(), "request_id=reqid123")
	svc.AssertExpectations(t)
}
