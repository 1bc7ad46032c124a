package handler

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"podkeeper/internal/model"
	"podkeeper/internal/pdf"
	"podkeeper/internal/service"
	"podkeeper/pkg/apierror"
)

// Renderer turns a record into receipt bytes. Satisfied by pdf.Renderer.
type Renderer interface {
	Render(rec model.PODRecord, generatedAt time.Time) ([]byte, error)
}

// Notifier delivers a rendered receipt by email. Satisfied by mailer.Mailer.
type Notifier interface {
	Send(ctx context.Context, to string, subject string, body string, attachment []byte, filename string) error
}

type RecordHandler struct {
	service  *service.RecordService
	renderer Renderer
	notifier Notifier
	now      func() time.Time
}

func NewRecordHandler(service *service.RecordService, renderer Renderer, notifier Notifier) *RecordHandler {
	return &RecordHandler{
		service:  service,
		renderer: renderer,
		notifier: notifier,
		now:      time.Now,
	}
}

func (h *RecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.BadRequest("invalid JSON body", ""))
		return
	}

	record, err := h.service.Create(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, record)
}

func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, summaries)
}

func (h *RecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	record, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, record)
}

// PDF renders the receipt and returns it hex-encoded inside the JSON
// envelope, with a suggested filename, matching the mobile client's
// expectations.
func (h *RecordHandler) PDF(w http.ResponseWriter, r *http.Request) {
	record, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	document, err := h.renderer.Render(record, h.now().UTC())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, model.DocumentResponse{
		Content:  hex.EncodeToString(document),
		Filename: pdf.Filename(record),
	})
}

// SendEmail renders the receipt and hands it to the notifier. One
// delivery attempt; a failed send surfaces as a 500 and is never
// queued for later.
func (h *RecordHandler) SendEmail(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.SendEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.BadRequest("invalid JSON body", ""))
		return
	}

	payload.ToEmail = strings.TrimSpace(payload.ToEmail)
	if payload.ToEmail == "" {
		writeError(w, apierror.BadRequest("to_email is required", "to_email"))
		return
	}

	record, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	document, err := h.renderer.Render(record, h.now().UTC())
	if err != nil {
		writeError(w, err)
		return
	}

	subject := payload.Subject
	if subject == "" {
		subject = fmt.Sprintf("POD - %s", record.CaseNumber)
	}
	body := payload.Body
	if body == "" {
		body = "Vedhæftet POD leveringskvittering."
	}

	if err := h.notifier.Send(r.Context(), payload.ToEmail, subject, body, document, pdf.Filename(record)); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"status": "success"})
}
