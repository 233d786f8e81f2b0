package handlers

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/user-crud-service/internal/logger"
)

//go:embed templates/*.html
var templatesFS embed.FS

var usersTemplate = template.Must(template.ParseFS(templatesFS, "templates/users.html"))

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// MessageResponse represents a successful write without a body of its own
// swagger:model MessageResponse
type MessageResponse struct {
	// Success message
	// default: User updated successfully
	Message string `json:"message"`
}

const (
	errMsgInvalidBody    = "Invalid request body"
	errMsgMissingFields  = "Missing username or email"
	errMsgNotFound       = "User not found"
	errMsgAlreadyExists  = "Username or email already exists"
	errMsgInternalServer = "Internal server error"
)

// writeJSON writes v as a JSON body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeHTML renders tmpl into a buffer first so a template failure still
// produces a clean 500.
func writeHTML(w http.ResponseWriter, tmpl *template.Template, data any) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		logger.Log.Errorw("failed to render template", "template", tmpl.Name(), "err", err)
		http.Error(w, errMsgInternalServer, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// userIDParam parses the {id} URL parameter.
func userIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
