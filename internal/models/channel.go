package models

import (
	"time"

	"github.com/google/uuid"
)

// Channel is an admin-owned payment destination customers deposit into or withdraw from.
type Channel struct {
	ID        uuid.UUID `json:"id"`
	Kind      Kind      `json:"kind"`
	Name      string    `json:"name"`
	Number    string    `json:"number"`
	Admin     Contact   `json:"admin"`
	CreatedAt time.Time `json:"createdAt"`
}

type ChannelPatch struct {
	Name   *string `json:"name,omitempty"`
	Number *string `json:"number,omitempty"`
}
