package helpers

import model "vehicle-marketplace/internal/models"

// Request/Response DTOs
type TrackInteractionRequest struct {
	VehicleID       string                `json:"vehicle_id"`
	InteractionType string                `json:"interaction_type" binding:"required"`
	Metadata        model.InteractionMeta `json:"metadata"`
}

type InteractionResponse struct {
	InteractionID   string                `json:"interaction_id"`
	UserID          string                `json:"user_id"`
	VehicleID       string                `json:"vehicle_id,omitempty"`
	InteractionType string                `json:"interaction_type"`
	Metadata        model.InteractionMeta `json:"metadata"`
	CreatedAt       string                `json:"created_at"`
}
