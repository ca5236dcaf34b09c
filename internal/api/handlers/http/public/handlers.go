package public

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/itsprakash91/flood-relief-connect/internal/domain"
	"github.com/itsprakash91/flood-relief-connect/internal/middleware"
	"github.com/itsprakash91/flood-relief-connect/pkg/validator"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type RequestWriter interface {
	Create(ctx context.Context, actor domain.Actor, req domain.CreateHelpRequest) (*domain.HelpRequest, error)
	Accept(ctx context.Context, actor domain.Actor, id, volunteerID uuid.UUID) (*domain.HelpRequest, error)
	Complete(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.HelpRequest, error)
}

type RequestReader interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.HelpRequest, error)
	List(ctx context.Context, filter domain.ListFilter) ([]*domain.HelpRequest, error)
	Nearby(ctx context.Context, q domain.NearbyQuery) ([]*domain.HelpRequest, error)
	Mine(ctx context.Context, actor domain.Actor) ([]*domain.HelpRequest, error)
	Assigned(ctx context.Context, actor domain.Actor) ([]*domain.HelpRequest, error)
}

type Donations interface {
	Create(ctx context.Context, actor domain.Actor, req domain.CreateDonation) (*domain.Donation, error)
	Mine(ctx context.Context, actor domain.Actor) ([]*domain.Donation, error)
}

type Handler struct {
	logger    *slog.Logger
	Writer    RequestWriter
	Reader    RequestReader
	Donations Donations
}

func NewHandler(logger *slog.Logger, writer RequestWriter, reader RequestReader, donations Donations) *Handler {
	return &Handler{
		logger:    logger,
		Writer:    writer,
		Reader:    reader,
		Donations: donations,
	}
}

func (h *Handler) RequestCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.CreateHelpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	actor := middleware.ActorFrom(r.Context())
	hr, err := h.Writer.Create(r.Context(), actor, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("help request created", slog.String("id", hr.ID.String()))
	h.writeJSON(w, http.StatusCreated, hr)
}

func (h *Handler) RequestList(w http.ResponseWriter, r *http.Request) {
	var filter domain.ListFilter
	if s := r.URL.Query().Get("status"); s != "" {
		status := domain.RequestStatus(s)
		filter.Status = &status
	}
	if c := r.URL.Query().Get("category"); c != "" {
		category := domain.Category(c)
		filter.Category = &category
	}

	requests, err := h.Reader.List(r.Context(), filter)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"count":    len(requests),
		"requests": requests,
	})
}

func (h *Handler) RequestNearby(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	lat, latErr := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lng, lngErr := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if latErr != nil || lngErr != nil {
		l.Warn("nearby missing coordinates", slog.String("query", r.URL.RawQuery))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "lat and lng are required"})
		return
	}

	q := domain.NearbyQuery{Lat: lat, Lng: lng}
	if radius := r.URL.Query().Get("radius"); radius != "" {
		if v, err := strconv.ParseFloat(radius, 64); err == nil {
			q.RadiusMeters = v
		}
	}

	requests, err := h.Reader.Nearby(r.Context(), q)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"count":    len(requests),
		"requests": requests,
	})
}

func (h *Handler) RequestGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	hr, err := h.Reader.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, hr)
}

// RequestUpdate drives the lifecycle: status=accepted assigns a volunteer,
// status=completed closes the request. The guard itself lives in the
// conditional commit, not here.
func (h *Handler) RequestUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var body domain.UpdateHelpRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(body); err != nil {
		l.Warn("update validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid status value or missing volunteer"})
		return
	}

	actor := middleware.ActorFrom(r.Context())

	var (
		hr  *domain.HelpRequest
		err error
	)
	switch body.Status {
	case domain.StatusAccepted:
		hr, err = h.Writer.Accept(r.Context(), actor, id, *body.AssignedVolunteer)
	case domain.StatusCompleted:
		hr, err = h.Writer.Complete(r.Context(), actor, id)
	default:
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid status value"})
		return
	}
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("help request updated",
		slog.String("id", hr.ID.String()),
		slog.String("status", string(hr.Status)),
	)
	h.writeJSON(w, http.StatusOK, hr)
}

func (h *Handler) MyRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Reader.Mine(r.Context(), middleware.ActorFrom(r.Context()))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"count":    len(requests),
		"requests": requests,
	})
}

func (h *Handler) MyAssignedRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Reader.Assigned(r.Context(), middleware.ActorFrom(r.Context()))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"count":    len(requests),
		"requests": requests,
	})
}

func (h *Handler) DonationCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.CreateDonation
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	d, err := h.Donations.Create(r.Context(), middleware.ActorFrom(r.Context()), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, d)
}

func (h *Handler) MyDonations(w http.ResponseWriter, r *http.Request) {
	donations, err := h.Donations.Mine(r.Context(), middleware.ActorFrom(r.Context()))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"count":     len(donations),
		"donations": donations,
	})
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
