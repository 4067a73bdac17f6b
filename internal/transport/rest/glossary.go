package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/glossary-backend/internal/domain"
	"github.com/heartmarshall/glossary-backend/internal/service/glossary"
)

const maxCreateBodyBytes = 64 << 10

// termCreator is satisfied by glossary.Dispatcher.
type termCreator interface {
	CreateGlossaryTerm(ctx context.Context, input glossary.CreateTermInput) (domain.CreationOutcome, error)
}

// GlossaryHandler serves glossary REST endpoints.
type GlossaryHandler struct {
	creator termCreator
	timeout time.Duration
	log     *slog.Logger
}

// NewGlossaryHandler creates a GlossaryHandler. A positive timeout bounds how
// long a request waits for its creation.
func NewGlossaryHandler(creator termCreator, timeout time.Duration, logger *slog.Logger) *GlossaryHandler {
	return &GlossaryHandler{
		creator: creator,
		timeout: timeout,
		log:     logger.With("handler", "glossary"),
	}
}

type createTermRequest struct {
	ID          *string `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	ParentNode  *string `json:"parentNode"`
}

type createTermResponse struct {
	Urn    string `json:"urn"`
	Status string `json:"status"`
}

// CreateTerm handles POST /api/glossary/terms.
func (h *GlossaryHandler) CreateTerm(w http.ResponseWriter, r *http.Request) {
	var req createTermRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxCreateBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	ctx := r.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	outcome, err := h.creator.CreateGlossaryTerm(ctx, glossary.CreateTermInput{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		ParentNode:  req.ParentNode,
	})
	if err != nil {
		h.handleError(w, r, outcome, err)
		return
	}

	writeJSON(w, http.StatusCreated, createTermResponse{
		Urn:    outcome.Urn.String(),
		Status: string(outcome.Status),
	})
}

func (h *GlossaryHandler) handleError(w http.ResponseWriter, r *http.Request, outcome domain.CreationOutcome, err error) {
	var ve *domain.ValidationError

	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  "validation error",
			Code:   "VALIDATION",
			Fields: toFieldErrors(ve),
		})
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "FORBIDDEN", "not allowed to create glossary terms here")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "ALREADY_EXISTS", "glossary term already exists")
	case errors.Is(err, domain.ErrOwnershipAssignment):
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error: "glossary term created but owner could not be assigned",
			Code:  "OWNERSHIP_ASSIGNMENT_FAILED",
			Urn:   outcome.Urn.String(),
		})
	case errors.Is(err, domain.ErrStoreFailure):
		writeError(w, http.StatusBadGateway, "STORE_FAILURE", "entity store rejected the term")
	case errors.Is(err, glossary.ErrDispatcherClosed):
		writeError(w, http.StatusServiceUnavailable, "UNAVAILABLE", "server is shutting down")
	case errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusGatewayTimeout, "TIMEOUT", "glossary term creation timed out")
	case errors.Is(err, context.Canceled):
		// Client is gone; the status is for the access log only.
		w.WriteHeader(http.StatusServiceUnavailable)
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "INTERNAL", "internal server error")
	}
}
