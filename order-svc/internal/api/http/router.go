package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"overcooked-orders/logging"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func NewRouter(handler *Handler, log *slog.Logger) http.Handler {
	r := mux.NewRouter()
	r.Use(requestLogger(log))
	handler.RegisterRoutes(r)
	return cors.Default().Handler(r)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(base *slog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			l := base.With("method", r.Method, "path", r.URL.Path)
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			start := time.Now()
			next.ServeHTTP(rec, r.WithContext(logging.IntoContext(r.Context(), l)))
			dur := time.Since(start)

			switch {
			case rec.status >= 500:
				l.Error("request completed", "status", rec.status, "duration_ms", dur.Milliseconds())
			case rec.status >= 400:
				l.Warn("request completed", "status", rec.status, "duration_ms", dur.Milliseconds())
			default:
				l.Info("request completed", "status", rec.status, "duration_ms", dur.Milliseconds())
			}
		})
	}
}

// StartServer serves handler on addr in the background. A listen failure is
// delivered on the returned channel; a clean Shutdown sends nothing.
func StartServer(addr string, handler http.Handler, log *slog.Logger) (*http.Server, <-chan error) {
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info("order service listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server error", "err", err)
			errCh <- err
		}
	}()
	return srv, errCh
}
