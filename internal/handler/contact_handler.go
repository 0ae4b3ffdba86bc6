package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/omkarinteriors/backend/internal/model"
	"github.com/omkarinteriors/backend/internal/service"
	"github.com/omkarinteriors/backend/internal/validate"
)

// ContactHandler handles contact form submission.
type ContactHandler struct {
	contactService service.ContactService
	production     bool
}

// NewContactHandler creates a ContactHandler with the given service.
// In production the 500 response hides the underlying error detail.
func NewContactHandler(contactService service.ContactService, production bool) *ContactHandler {
	return &ContactHandler{contactService: contactService, production: production}
}

// submitOK is the JSON body for a successful submission.
type submitOK struct {
	OK bool `json:"ok"`
}

// submitFailed is the JSON body for validation and delivery failures.
type submitFailed struct {
	OK     bool               `json:"ok"`
	Errors []model.FieldError `json:"errors,omitempty"`
	Error  string             `json:"error,omitempty"`
	Detail string             `json:"detail,omitempty"`
}

// Submit handles POST /api/contact. Validation failures return the full
// field-error list; notification failures return a generic server
// error; a ledger failure never changes the response.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, submitFailed{Error: "Method not allowed"})
		return
	}

	var in validate.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, submitFailed{
			Errors: []model.FieldError{{Path: "body", Msg: "Invalid JSON body"}},
		})
		return
	}

	inq, errs := validate.Validate(in)
	if len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, submitFailed{Errors: errs})
		return
	}

	inq.IP = clientIP(r)
	inq.UserAgent = r.UserAgent()

	if err := h.contactService.Submit(r.Context(), inq); err != nil {
		slog.Error("contact submission failed", "error", err)
		resp := submitFailed{Error: "Failed to send message"}
		if !h.production {
			resp.Detail = err.Error()
		}
		writeJSON(w, http.StatusInternalServerError, resp)
		return
	}

	writeJSON(w, http.StatusOK, submitOK{OK: true})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
