package middlewares

import (
	"clinibook-service/internal/app/config"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// RequestLogger emits one plain-text access line per request, timestamped in
// the configured clinic timezone. The structured zap logging middleware stays
// separate so this output can be tailed on its own.
func (m *Middlewares) RequestLogger(appConfig config.App, log *logrus.Logger) func(next http.Handler) http.Handler {
	location, err := time.LoadLocation(appConfig.Timezone)
	if err != nil {
		log.Printf("Invalid time zone %q, falling back to UTC: %v", appConfig.Timezone, err)
		location = time.UTC
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rec, r)

			log.Printf("%s | %s | %s %s | %d | %s",
				start.In(location).Format(time.RFC850),
				r.RemoteAddr,
				r.Method,
				r.RequestURI,
				rec.statusCode,
				time.Since(start),
			)
		})
	}
}
