package router

import (
	"log/slog"
	"net/http"

	"campusapi/internal/http-server/handlers/event/createEvent"
	"campusapi/internal/http-server/handlers/event/getAllEvents"
	"campusapi/internal/http-server/handlers/health"
	"campusapi/internal/http-server/handlers/student/createStudent"
	"campusapi/internal/http-server/middleware/mwlogger"
	"campusapi/internal/http-server/middleware/mwmetrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type EventStore interface {
	getAllEvents.EventsGetter
	createEvent.EventCreator
}

func Events(log *slog.Logger, events EventStore, ids createEvent.IDGenerator, reg *prometheus.Registry) http.Handler {
	router := base(log, reg, "events")

	router.Get("/", health.New(health.EventMessage))
	router.Get("/api/events", getAllEvents.New(log, events))
	router.Post("/api/events", createEvent.New(log, events, ids))

	return router
}

func Students(log *slog.Logger, students createStudent.StudentCreator, newID func() string, reg *prometheus.Registry) http.Handler {
	router := base(log, reg, "students")

	router.Get("/", health.New(health.StudentMessage))
	router.Post("/api/students", createStudent.New(log, students, newID))

	return router
}

func base(log *slog.Logger, reg *prometheus.Registry, service string) *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))
	router.Use(mwmetrics.New(reg, service).Handler)

	router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return router
}
