package http

import (
	"encoding/json"
	"net/http"

	"itemshare-backend/internal/domain"
	"itemshare-backend/internal/service"

	"github.com/go-playground/validator/v10"
)

type createItemRequestRequest struct {
	Description string `json:"description" validate:"required"`
}

type ItemRequestHandler struct {
	svc      service.ItemRequestService
	validate *validator.Validate
}

func NewItemRequestHandler(svc service.ItemRequestService) *ItemRequestHandler {
	return &ItemRequestHandler{svc: svc, validate: validator.New()}
}

func (h *ItemRequestHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req createItemRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.NewValidation("failed to decode request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, domain.NewValidation("invalid item request: %v", err))
		return
	}

	request, err := h.svc.CreateRequest(r.Context(), userID, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, request)
}

func (h *ItemRequestHandler) GetOwnRequests(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}
	requests, err := h.svc.GetOwnRequests(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

func (h *ItemRequestHandler) GetAllRequests(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}
	requests, err := h.svc.GetAllRequests(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

func (h *ItemRequestHandler) GetRequestByID(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}
	requestID, err := pathID(r, "requestId")
	if err != nil {
		writeError(w, err)
		return
	}
	request, err := h.svc.GetRequestByID(r.Context(), userID, requestID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, request)
}
