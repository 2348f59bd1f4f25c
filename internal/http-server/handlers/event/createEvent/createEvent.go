package createEvent

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"campusapi/internal/lib/api/response"
	"campusapi/internal/lib/jsonval"
	"campusapi/internal/lib/logger/sl"
	"campusapi/internal/lib/validation"
	"campusapi/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

const (
	msgInvalidBody     = "Invalid JSON body"
	msgMissingFields   = "Missing required fields"
	msgInvalidCapacity = "maxAttendees must be a positive integer"
	msgCreateFailed    = "Failed to create event"
)

type EventRequest struct {
	Title        string        `json:"title" validate:"required"`
	Description  string        `json:"description"`
	Date         string        `json:"date" validate:"required"`
	Location     string        `json:"location" validate:"required"`
	MaxAttendees jsonval.Value `json:"maxAttendees" validate:"required,positive"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	Append(ctx context.Context, event models.Event) error
}

type IDGenerator interface {
	Next() string
}

func New(log *slog.Logger, event EventCreator, ids IDGenerator) http.HandlerFunc {
	validate := validation.New()

	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log := log.With(
			slog.String("op", op),
		)

		var req EventRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil && !errors.Is(err, io.EOF) {
			log.Error("failed to decode request body", sl.Err(err))
			response.JSONError(w, r, http.StatusBadRequest, msgInvalidBody)

			return
		}

		log.Debug("request body decoded", slog.Any("request", req))

		if err = req.validate(validate); err != nil {
			msg, _ := validation.IsError(err)

			log.Info("invalid request", sl.Err(err))
			response.JSONError(w, r, http.StatusBadRequest, msg)

			return
		}

		maxAttendees, _ := req.MaxAttendees.Number()

		newEvent := models.NewEvent(ids.Next(), req.Title, req.Description, req.Date, req.Location, maxAttendees)

		if err = event.Append(r.Context(), newEvent); err != nil {
			log.Error("failed to add event", sl.Err(err))
			response.JSONError(w, r, http.StatusInternalServerError, msgCreateFailed)

			return
		}

		log.Info("event added", slog.String("event_id", newEvent.EventID))

		responseCreated(w, r, newEvent)
	}
}

// validate reports missing fields before a bad maxAttendees value.
func (req EventRequest) validate(v *validator.Validate) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	for _, tag := range validation.Fields(err) {
		if tag == "required" {
			return validation.NewError(msgMissingFields)
		}
	}

	return validation.NewError(msgInvalidCapacity)
}

func responseCreated(w http.ResponseWriter, r *http.Request, event models.Event) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, event)
}
