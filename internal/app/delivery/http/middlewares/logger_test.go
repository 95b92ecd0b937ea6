package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"clinibook-service/internal/app/config"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRequestLogger_LogsOneLinePerRequest(t *testing.T) {
	logrusLogger, hook := test.NewNullLogger()
	middlewares := NewMiddlewares(zap.NewNop(), nil, &config.InternalConfig{})

	handler := middlewares.RequestLogger(config.App{Timezone: "Europe/Paris"}, logrusLogger)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		}),
	)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/booking/drafts", nil))

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Len(t, hook.Entries, 1)
	assert.Contains(t, hook.LastEntry().Message, "POST /booking/drafts")
	assert.Contains(t, hook.LastEntry().Message, "201")
}

func TestRequestLogger_UnknownTimezoneFallsBackToUTC(t *testing.T) {
	logrusLogger, hook := test.NewNullLogger()
	middlewares := NewMiddlewares(zap.NewNop(), nil, &config.InternalConfig{})

	handler := middlewares.RequestLogger(config.App{Timezone: "Mars/Olympus"}, logrusLogger)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}),
	)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/specialties", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	// one warning for the bad zone plus the access line
	assert.Len(t, hook.Entries, 2)
	assert.Contains(t, hook.LastEntry().Message, "GET /specialties")
	assert.Contains(t, hook.LastEntry().Message, "UTC")
}
