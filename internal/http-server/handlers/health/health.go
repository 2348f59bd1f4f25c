package health

import (
	"net/http"

	"github.com/go-chi/render"
)

const (
	EventMessage   = "Event API is running ✅"
	StudentMessage = "Student API is running ✅"
)

func New(message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.PlainText(w, r, message)
	}
}
