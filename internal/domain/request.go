package domain

import "time"

// ItemRequest is a user's ask for an item nobody has listed yet. Items
// created in answer to a request carry its id.
type ItemRequest struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	RequestorID int64     `json:"requestor_id"`
	Created     time.Time `json:"created"`
	Items       []Item    `json:"items"`
}
