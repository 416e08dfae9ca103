package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/herizorandria/go-link-gate/internal/app/service"
	"github.com/herizorandria/go-link-gate/internal/models"
	"github.com/herizorandria/go-link-gate/internal/storage"
)

type LinkHandler struct {
	service service.LinkServiceIface
	logger  *zap.Logger
	baseURL string
}

func NewLinkHandler(s service.LinkServiceIface, logger *zap.Logger, baseURL string) *LinkHandler {
	return &LinkHandler{
		service: s,
		logger:  logger,
		baseURL: baseURL,
	}
}

// Create handles POST /api/links.
func (h *LinkHandler) Create(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	var body models.CreateLinkRequest
	if err := decodeJSONBody(res, req, &body); err != nil {
		var mr *malformedRequest
		if errors.As(err, &mr) {
			http.Error(res, mr.msg, mr.status)
			return
		}
		h.logger.Error("cannot decode create request", zap.Error(err))
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	record, err := h.service.Create(ctx, body)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidURL), errors.Is(err, service.ErrInvalidCode):
			http.Error(res, err.Error(), http.StatusBadRequest)
		case errors.Is(err, storage.ErrConflict):
			http.Error(res, "code already taken", http.StatusConflict)
		default:
			h.logger.Error("cannot create link", zap.Error(err))
			http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	response, err := json.Marshal(models.CreateLinkResponse{
		Result: h.baseURL + "/" + record.ShortCode,
		Code:   record.ShortCode,
	})
	if err != nil {
		res.WriteHeader(http.StatusInternalServerError)
		return
	}

	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(http.StatusCreated)
	_, _ = res.Write(response)
}

// PingDB reports storage health.
func (h *LinkHandler) PingDB(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	if err := h.service.PingContext(ctx); err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	res.WriteHeader(http.StatusOK)
}
