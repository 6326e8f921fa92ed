package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new random UUID string, used as the primary key for
// vehicles, auctions, bids and interactions.
func GenerateID() string {
	return uuid.New().String()
}
