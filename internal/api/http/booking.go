package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"itemshare-backend/internal/domain"
	"itemshare-backend/internal/metrics"
	"itemshare-backend/internal/service"

	"github.com/go-playground/validator/v10"
)

type createBookingRequest struct {
	ItemID int64     `json:"item_id" validate:"required"`
	Start  time.Time `json:"start" validate:"required"`
	End    time.Time `json:"end" validate:"required"`
}

type BookingHandler struct {
	svc      service.BookingService
	validate *validator.Validate
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc, validate: validator.New()}
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.NewValidation("failed to decode request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, domain.NewValidation("invalid booking request: %v", err))
		return
	}

	booking, err := h.svc.CreateBooking(r.Context(), userID, req.ItemID, req.Start, req.End)
	if err != nil {
		writeError(w, err)
		return
	}
	metrics.IncBookingCreated()
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) ConfirmOrRejectBooking(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}
	bookingID, err := pathID(r, "bookingId")
	if err != nil {
		writeError(w, err)
		return
	}
	approved, err := strconv.ParseBool(r.URL.Query().Get("approved"))
	if err != nil {
		writeError(w, domain.NewValidation("invalid approved parameter"))
		return
	}

	booking, err := h.svc.ConfirmOrRejectBooking(r.Context(), userID, bookingID, approved)
	if err != nil {
		writeError(w, err)
		return
	}
	metrics.IncBookingDecision(approved)
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}
	bookingID, err := pathID(r, "bookingId")
	if err != nil {
		writeError(w, err)
		return
	}

	booking, err := h.svc.GetBookingByID(r.Context(), userID, bookingID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) GetBookingsForBooker(w http.ResponseWriter, r *http.Request) {
	h.listBookings(w, r, h.svc.GetBookingsForBooker)
}

func (h *BookingHandler) GetBookingsForOwner(w http.ResponseWriter, r *http.Request) {
	h.listBookings(w, r, h.svc.GetBookingsForOwner)
}

func (h *BookingHandler) listBookings(
	w http.ResponseWriter,
	r *http.Request,
	list func(ctx context.Context, userID int64, state domain.BookingState) ([]domain.Booking, error),
) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}
	token := r.URL.Query().Get("state")
	if token == "" {
		token = string(domain.BookingStateAll)
	}
	state, err := domain.ParseBookingState(token)
	if err != nil {
		writeError(w, err)
		return
	}

	bookings, err := list(r.Context(), userID, state)
	if err != nil {
		writeError(w, err)
		return
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	writeJSON(w, http.StatusOK, bookings)
}
