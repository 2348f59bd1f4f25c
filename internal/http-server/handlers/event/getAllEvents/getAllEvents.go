package getAllEvents

import (
	"context"
	"log/slog"
	"net/http"

	"campusapi/internal/lib/api/response"
	"campusapi/internal/lib/logger/sl"
	"campusapi/internal/models"

	"github.com/go-chi/render"
)

const msgReadFailed = "Failed to read events"

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsGetter
type EventsGetter interface {
	All(ctx context.Context) ([]models.Event, error)
}

func New(log *slog.Logger, eventsGetter EventsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getAllEvents.New"

		log := log.With(slog.String("op", op))

		events, err := eventsGetter.All(r.Context())
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			response.JSONError(w, r, http.StatusInternalServerError, msgReadFailed)
			return
		}

		log.Info("events retrieved successfully", slog.Int("count", len(events)))

		responseOK(w, r, events)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, events []models.Event) {
	if events == nil {
		events = []models.Event{}
	}

	render.JSON(w, r, events)
}
