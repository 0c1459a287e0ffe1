package domain

import (
	"errors"
	"time"
)

var ErrClientNotFound = errors.New("client not found")
var ErrDuplicateClient = errors.New("client already exists")
var ErrStoreCorrupted = errors.New("client store corrupted")
var ErrStoreUnavailable = errors.New("client store unavailable")

// Client is the sole entity managed by the service. ID is assigned once at
// creation and never reassigned; CreatedAt is set at construction and survives
// every update.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	LastName  string    `json:"last_name"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"created_at"`
}

// ApplyPartial overwrites the mutable fields for which a value was supplied.
// Nil fields keep their current value; ID and CreatedAt are never touched.
func (c *Client) ApplyPartial(name, lastName *string, age *int) {
	if name != nil {
		c.Name = *name
	}
	if lastName != nil {
		c.LastName = *lastName
	}
	if age != nil {
		c.Age = *age
	}
}
