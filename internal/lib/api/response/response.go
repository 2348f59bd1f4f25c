package response

import (
	"net/http"

	"github.com/go-chi/render"
)

type Response struct {
	Error string `json:"error"`
}

func Error(msg string) Response {
	return Response{Error: msg}
}

// JSONError writes {"error": msg} with the given status.
func JSONError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, Error(msg))
}
