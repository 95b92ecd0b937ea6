package routers

import (
	"bytes"
	"clinibook-service/internal/app/config"
	"clinibook-service/internal/app/delivery/http/controllers"
	"clinibook-service/internal/app/delivery/http/middlewares"
	"clinibook-service/internal/app/models"
	"clinibook-service/internal/pkg/dto/requests"
	"clinibook-service/internal/pkg/dto/responses"
	"clinibook-service/internal/pkg/utils"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type MockBookingUsecase struct {
	mock.Mock
}

func (m *MockBookingUsecase) CreateDraft(ctx context.Context, sessionID string) (*responses.BookingDraft, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.BookingDraft), args.Error(1)
}

func (m *MockBookingUsecase) GetDraft(ctx context.Context, sessionID, draftID string) (*responses.BookingDraft, error) {
	args := m.Called(ctx, sessionID, draftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.BookingDraft), args.Error(1)
}

func (m *MockBookingUsecase) ApplyFieldChange(ctx context.Context, sessionID, draftID string, request *requests.FieldChange) (*responses.BookingDraft, error) {
	args := m.Called(ctx, sessionID, draftID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.BookingDraft), args.Error(1)
}

func (m *MockBookingUsecase) ResolveAvailability(ctx context.Context, sessionID, draftID, date string) (*responses.DayAvailability, error) {
	args := m.Called(ctx, sessionID, draftID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.DayAvailability), args.Error(1)
}

func (m *MockBookingUsecase) Next(ctx context.Context, sessionID, draftID string, request *requests.StageTransition) (*responses.BookingDraft, error) {
	args := m.Called(ctx, sessionID, draftID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.BookingDraft), args.Error(1)
}

func (m *MockBookingUsecase) Back(ctx context.Context, sessionID, draftID string, request *requests.StageTransition) (*responses.BookingDraft, error) {
	args := m.Called(ctx, sessionID, draftID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.BookingDraft), args.Error(1)
}

func (m *MockBookingUsecase) Submit(ctx context.Context, sessionID, draftID string, request *requests.StageTransition) (*responses.BookingSubmission, error) {
	args := m.Called(ctx, sessionID, draftID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.BookingSubmission), args.Error(1)
}

func (m *MockBookingUsecase) AttachReferral(ctx context.Context, sessionID, draftID, fileName string, size int64, content io.Reader) (*responses.ReferralAttachment, error) {
	args := m.Called(ctx, sessionID, draftID, fileName, size, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.ReferralAttachment), args.Error(1)
}

func TestBookingRouter(t *testing.T) {
	logger := zap.NewNop()
	testSecret := "test-jwt-secret"
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: testSecret},
	}

	sessionID := "session-1"
	token, err := utils.GenerateJWT(sessionID, testSecret, time.Hour)
	require.NoError(t, err)

	mockSessionService := new(MockSessionService)
	mockSessionService.On("GetSession", mock.Anything, sessionID).
		Return(&models.Session{SessionID: sessionID}, nil)

	mockBookingUsecase := new(MockBookingUsecase)
	bookingController := controllers.NewBookingController(logger, mockBookingUsecase)

	middlewareInstance := &middlewares.Middlewares{
		Log:            logger,
		SessionService: mockSessionService,
		InternalConfig: internalConfig,
	}

	router := chi.NewRouter()
	attachBookingRoutes(router, middlewareInstance, bookingController)

	t.Run("create draft with valid token", func(t *testing.T) {
		mockBookingUsecase.On("CreateDraft", mock.Anything, sessionID).
			Return(&responses.BookingDraft{ID: "draft-1", Stage: "personal_info"}, nil).Once()

		req := httptest.NewRequest("POST", "/drafts", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var response responses.ResponseDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.True(t, response.Success)
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		mockBookingUsecase.Calls = nil
		req := httptest.NewRequest("POST", "/drafts", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		mockBookingUsecase.AssertNotCalled(t, "CreateDraft", mock.Anything, mock.Anything)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/drafts", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("patch draft field", func(t *testing.T) {
		mockBookingUsecase.On("ApplyFieldChange", mock.Anything, sessionID, "draft-1", mock.AnythingOfType("*requests.FieldChange")).
			Return(&responses.BookingDraft{ID: "draft-1", Revision: 1}, nil).Once()

		body, _ := json.Marshal(requests.FieldChange{Revision: 0, Field: "fullName", Value: "Claire Dubois"})
		req := httptest.NewRequest("PATCH", "/drafts/draft-1", bytes.NewBuffer(body))
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("patch with unknown field fails validation", func(t *testing.T) {
		mockBookingUsecase.Calls = nil
		body, _ := json.Marshal(requests.FieldChange{Revision: 0, Field: "favoriteColor", Value: "bleu"})
		req := httptest.NewRequest("PATCH", "/drafts/draft-1", bytes.NewBuffer(body))
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockBookingUsecase.AssertNotCalled(t, "ApplyFieldChange", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("submit draft", func(t *testing.T) {
		mockBookingUsecase.On("Submit", mock.Anything, sessionID, "draft-1", mock.AnythingOfType("*requests.StageTransition")).
			Return(&responses.BookingSubmission{Stage: "done", AppointmentID: "appt-42"}, nil).Once()

		body, _ := json.Marshal(requests.StageTransition{Revision: 4})
		req := httptest.NewRequest("POST", "/drafts/draft-1/submit", bytes.NewBuffer(body))
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("availability passes the date through", func(t *testing.T) {
		mockBookingUsecase.On("ResolveAvailability", mock.Anything, sessionID, "draft-1", "2024-01-01").
			Return(&responses.DayAvailability{Date: "2024-01-01", Weekday: "Lundi", Available: true}, nil).Once()

		req := httptest.NewRequest("GET", "/drafts/draft-1/availability?date=2024-01-01", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
