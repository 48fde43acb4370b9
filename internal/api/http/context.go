package http

import (
	"net/http"
	"strconv"

	"itemshare-backend/internal/domain"

	"github.com/gorilla/mux"
)

// userIDHeader carries the identity of the caller. The gateway in front
// of this service authenticates users and injects the header; the server
// trusts it.
const userIDHeader = "X-Sharer-User-Id"

func userIDFromRequest(r *http.Request) (int64, error) {
	raw := r.Header.Get(userIDHeader)
	if raw == "" {
		return 0, domain.NewValidation("missing required header %s", userIDHeader)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.NewValidation("invalid %s header: %s", userIDHeader, raw)
	}
	return id, nil
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.NewValidation("invalid %s: %s", name, raw)
	}
	return id, nil
}
