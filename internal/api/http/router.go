// Package http exposes the REST surface of the marketplace. Identity
// comes from the X-Sharer-User-Id header; authentication itself lives in
// the gateway in front of this service.
package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires all handlers into a mux router with request-id and
// logging/metrics middleware attached.
func NewRouter(
	users *UserHandler,
	items *ItemHandler,
	bookings *BookingHandler,
	requests *ItemRequestHandler,
) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestIDMiddleware, loggingMiddleware)

	r.HandleFunc("/users", users.CreateUser).Methods(http.MethodPost)
	r.HandleFunc("/users", users.GetAllUsers).Methods(http.MethodGet)
	r.HandleFunc("/users", users.DeleteAllUsers).Methods(http.MethodDelete)
	r.HandleFunc("/users/{userId}", users.UpdateUser).Methods(http.MethodPatch)
	r.HandleFunc("/users/{userId}", users.GetUserByID).Methods(http.MethodGet)
	r.HandleFunc("/users/{userId}", users.DeleteUserByID).Methods(http.MethodDelete)

	r.HandleFunc("/items", items.CreateItem).Methods(http.MethodPost)
	r.HandleFunc("/items", items.GetAllItemsFromUser).Methods(http.MethodGet)
	r.HandleFunc("/items", items.DeleteAllItems).Methods(http.MethodDelete)
	r.HandleFunc("/items/search", items.SearchItems).Methods(http.MethodGet)
	r.HandleFunc("/items/{itemId}", items.UpdateItem).Methods(http.MethodPatch)
	r.HandleFunc("/items/{itemId}", items.GetItemByID).Methods(http.MethodGet)
	r.HandleFunc("/items/{itemId}", items.DeleteItemByID).Methods(http.MethodDelete)
	r.HandleFunc("/items/{itemId}/comment", items.CreateComment).Methods(http.MethodPost)

	r.HandleFunc("/bookings", bookings.CreateBooking).Methods(http.MethodPost)
	r.HandleFunc("/bookings", bookings.GetBookingsForBooker).Methods(http.MethodGet)
	r.HandleFunc("/bookings/owner", bookings.GetBookingsForOwner).Methods(http.MethodGet)
	r.HandleFunc("/bookings/{bookingId}", bookings.ConfirmOrRejectBooking).Methods(http.MethodPatch)
	r.HandleFunc("/bookings/{bookingId}", bookings.GetBookingByID).Methods(http.MethodGet)

	r.HandleFunc("/requests", requests.CreateRequest).Methods(http.MethodPost)
	r.HandleFunc("/requests", requests.GetOwnRequests).Methods(http.MethodGet)
	r.HandleFunc("/requests/all", requests.GetAllRequests).Methods(http.MethodGet)
	r.HandleFunc("/requests/{requestId}", requests.GetRequestByID).Methods(http.MethodGet)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	return r
}
