package createStudent

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
	msgInvalidBody   = "Invalid JSON body"
	msgMissingFields = "Missing required fields"
	msgInvalidAge    = "Age must be a positive number"
	msgCreateFailed  = "Failed to create student"
)

type StudentRequest struct {
	Name   string        `json:"name" validate:"required"`
	Age    jsonval.Value `json:"age" validate:"strict_positive"`
	Course string        `json:"course" validate:"required"`
	Year   jsonval.Value `json:"year" validate:"required"`
	Status *string       `json:"status"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StudentCreator
type StudentCreator interface {
	Append(ctx context.Context, student models.Student) error
}

// New wires the handler. newID must return a fresh unique id on every call.
func New(log *slog.Logger, students StudentCreator, newID func() string) http.HandlerFunc {
	validate := validation.New()

	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.student.createStudent.New"

		log := log.With(slog.String("op", op))

		var req StudentRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil && !errors.Is(err, io.EOF) {
			log.Error("failed to decode request body", sl.Err(err))
			response.JSONError(w, r, http.StatusBadRequest, msgInvalidBody)
			return
		}

		if err = req.validate(validate); err != nil {
			msg, _ := validation.IsError(err)

			log.Info("invalid request", sl.Err(err))
			response.JSONError(w, r, http.StatusBadRequest, msg)
			return
		}

		age, _ := req.Age.Number()

		student := models.NewStudent(newID(), req.Name, age, req.Course, req.Year.Raw(), req.Status)

		if err = students.Append(r.Context(), student); err != nil {
			log.Error("failed to add student", sl.Err(err))
			response.JSONError(w, r, http.StatusInternalServerError, msgCreateFailed)
			return
		}

		log.Info("student added", slog.String("id", student.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, student)
	}
}

func (req StudentRequest) validate(v *validator.Validate) error {
	failed := validation.Fields(v.Struct(req))

	for field := range failed {
		if field != "Age" {
			return validation.NewError(msgMissingFields)
		}
	}

	if _, ok := failed["Age"]; ok {
		return validation.NewError(msgInvalidAge)
	}

	return nil
}
