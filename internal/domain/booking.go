package domain

import (
	"strings"
	"time"
)

type BookingStatus string

const (
	// BookingStatusWaiting is the sole initial status: the booking awaits
	// the owner's decision.
	BookingStatusWaiting BookingStatus = "WAITING"
	// BookingStatusApproved is terminal.
	BookingStatusApproved BookingStatus = "APPROVED"
	// BookingStatusRejected is terminal.
	BookingStatusRejected BookingStatus = "REJECTED"
	// BookingStatusCancelled is part of the status vocabulary but no
	// operation currently produces it.
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

type Booking struct {
	ID       int64         `json:"id"`
	Start    time.Time     `json:"start"`
	End      time.Time     `json:"end"`
	ItemID   int64         `json:"item_id"`
	BookerID int64         `json:"booker_id"`
	Status   BookingStatus `json:"status"`
	Item     *Item         `json:"item,omitempty"`
	Booker   *User         `json:"booker,omitempty"`
}

// OwnerID returns the id of the owner of the booked item. Ownership is
// always derived through the item, never stored on the booking itself.
func (b *Booking) OwnerID() int64 {
	if b.Item == nil {
		return 0
	}
	return b.Item.OwnerID
}

// BookingState is the classification token used to filter booking lists.
// Unlike BookingStatus it is a query concept, not a stored value.
type BookingState string

const (
	BookingStateAll      BookingState = "ALL"
	BookingStateCurrent  BookingState = "CURRENT"
	BookingStatePast     BookingState = "PAST"
	BookingStateFuture   BookingState = "FUTURE"
	BookingStateWaiting  BookingState = "WAITING"
	BookingStateRejected BookingState = "REJECTED"
)

// ParseBookingState converts a case-insensitive token into a BookingState.
// Unknown tokens fail with UnsupportedStateError so that callers can tell
// "unknown filter" apart from ordinary bad input.
func ParseBookingState(s string) (BookingState, error) {
	switch BookingState(strings.ToUpper(s)) {
	case BookingStateAll:
		return BookingStateAll, nil
	case BookingStateCurrent:
		return BookingStateCurrent, nil
	case BookingStatePast:
		return BookingStatePast, nil
	case BookingStateFuture:
		return BookingStateFuture, nil
	case BookingStateWaiting:
		return BookingStateWaiting, nil
	case BookingStateRejected:
		return BookingStateRejected, nil
	default:
		return "", NewUnsupportedState("Unknown state: %s", s)
	}
}
