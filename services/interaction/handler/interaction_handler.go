package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	model "vehicle-marketplace/internal/models"
	"vehicle-marketplace/services/interaction/helpers"
	"vehicle-marketplace/utils"

	"github.com/gin-gonic/gin"
)

type InteractionServiceInterface interface {
	Track(ctx context.Context, userID, vehicleID string, kind model.InteractionType, meta model.InteractionMeta) (model.UserInteraction, error)
}

type InteractionHandler struct {
	service InteractionServiceInterface
}

func NewInteractionHandler(service InteractionServiceInterface) *InteractionHandler {
	return &InteractionHandler{service: service}
}

// TrackInteractionHandler handles POST /interactions
func (h *InteractionHandler) TrackInteractionHandler(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, fmt.Errorf("missing X-User-ID header"), "missing X-User-ID header")
		return
	}

	var req helpers.TrackInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "TrackInteractionHandler", err)
		return
	}

	interaction, err := h.service.Track(c.Request.Context(), userID, req.VehicleID, model.InteractionType(req.InteractionType), req.Metadata)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("TrackInteractionHandler: failed to track interaction", map[string]any{
			"handler":          "TrackInteractionHandler",
			"user_id":          userID,
			"interaction_type": req.InteractionType,
			"error":            err.Error(),
		})
		return
	}

	resp := helpers.InteractionResponse{
		InteractionID:   interaction.InteractionID,
		UserID:          interaction.UserID,
		VehicleID:       interaction.VehicleID,
		InteractionType: string(interaction.Type),
		Metadata:        interaction.Meta,
		CreatedAt:       interaction.CreatedAt.UTC().Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "interaction tracked successfully")
	helpers.LogSuccess("TrackInteractionHandler", "interaction tracked successfully", map[string]any{
		"interaction_id":   interaction.InteractionID,
		"user_id":          userID,
		"interaction_type": req.InteractionType,
	})
}
