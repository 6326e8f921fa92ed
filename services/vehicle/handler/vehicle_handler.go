package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	model "vehicle-marketplace/internal/models"
	"vehicle-marketplace/internal/repository"
	vehicle "vehicle-marketplace/internal/vehicleService"
	"vehicle-marketplace/services/vehicle/helpers"
	"vehicle-marketplace/utils"

	"github.com/gin-gonic/gin"
)

type VehicleServiceInterface interface {
	Create(ctx context.Context, input vehicle.CreateVehicleInput) (model.Vehicle, error)
	Get(ctx context.Context, vehicleID string) (model.Vehicle, error)
	List(ctx context.Context, filter repository.VehicleFilter, page, limit int) ([]model.Vehicle, int64, error)
	Compare(ctx context.Context, vehicleIDs []string) ([]model.Vehicle, error)
	Similar(ctx context.Context, vehicleID string, limit int) ([]model.Vehicle, error)
	Recommend(ctx context.Context, userID string, limit int) ([]model.Vehicle, error)
}

// InteractionTracker records implicit feedback from vehicle endpoints
type InteractionTracker interface {
	Track(ctx context.Context, userID, vehicleID string, kind model.InteractionType, meta model.InteractionMeta) (model.UserInteraction, error)
}

type VehicleHandler struct {
	service VehicleServiceInterface
	tracker InteractionTracker
}

func NewVehicleHandler(service VehicleServiceInterface, tracker InteractionTracker) *VehicleHandler {
	return &VehicleHandler{service: service, tracker: tracker}
}

// CreateVehicleHandler handles POST /vehicles
func (h *VehicleHandler) CreateVehicleHandler(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, fmt.Errorf("missing X-User-ID header"), "missing X-User-ID header")
		return
	}

	var req helpers.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateVehicleHandler", err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), vehicle.CreateVehicleInput{
		Title:            req.Title,
		Description:      req.Description,
		Brand:            req.Brand,
		Model:            req.Model,
		Year:             req.Year,
		Mileage:          req.Mileage,
		Color:            req.Color,
		Condition:        req.Condition,
		Price:            req.Price,
		Location:         req.Location,
		AftermarketParts: req.AftermarketParts,
		MissingParts:     req.MissingParts,
		Images:           req.Images,
		UserID:           userID,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateVehicleHandler: failed to create vehicle", map[string]any{
			"handler": "CreateVehicleHandler",
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, created, "vehicle created successfully")
	helpers.LogSuccess("CreateVehicleHandler", "vehicle created successfully", map[string]any{
		"vehicle_id": created.VehicleID,
		"user_id":    userID,
	})
}

// GetVehicleHandler handles GET /vehicles/:vehicle_id.
// A view interaction is tracked for the acting user; tracking failures are
// logged and never surfaced.
func (h *VehicleHandler) GetVehicleHandler(c *gin.Context) {
	vehicleID := c.Param("vehicle_id")
	userID := c.GetHeader("X-User-ID")

	found, err := h.service.Get(c.Request.Context(), vehicleID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetVehicleHandler: error retrieving vehicle", map[string]any{
			"vehicle_id": vehicleID,
			"error":      err.Error(),
		})
		return
	}

	if userID != "" {
		if _, err := h.tracker.Track(c.Request.Context(), userID, vehicleID, model.InteractionView, model.InteractionMeta{}); err != nil {
			utils.Warn("GetVehicleHandler: failed to track view interaction", map[string]any{
				"vehicle_id": vehicleID,
				"user_id":    userID,
				"error":      err.Error(),
			})
		}
	}

	utils.JSONResponse(c, http.StatusOK, found, "vehicle retrieved successfully")
	helpers.LogSuccess("GetVehicleHandler", "vehicle retrieved successfully", map[string]any{
		"vehicle_id": vehicleID,
	})
}

// ListVehiclesHandler handles GET /vehicles
func (h *VehicleHandler) ListVehiclesHandler(c *gin.Context) {
	filter := repository.VehicleFilter{
		Brand:    c.Query("brand"),
		Location: c.Query("location"),
	}
	filter.PriceMin, _ = strconv.ParseFloat(c.Query("price_min"), 64)
	filter.PriceMax, _ = strconv.ParseFloat(c.Query("price_max"), 64)

	h.listWithFilter(c, "ListVehiclesHandler", filter)
}

// SearchVehiclesHandler handles GET /vehicles/search with the full filter set
func (h *VehicleHandler) SearchVehiclesHandler(c *gin.Context) {
	filter := repository.VehicleFilter{
		Brand:     c.Query("brand"),
		Model:     c.Query("model"),
		Location:  c.Query("location"),
		Color:     c.Query("color"),
		Condition: c.Query("condition"),
	}
	filter.PriceMin, _ = strconv.ParseFloat(c.Query("price_min"), 64)
	filter.PriceMax, _ = strconv.ParseFloat(c.Query("price_max"), 64)
	filter.MileageMax, _ = strconv.Atoi(c.Query("mileage_max"))

	// a search with any filter set carries brand signal for recommendations
	if userID := c.GetHeader("X-User-ID"); userID != "" {
		meta := model.InteractionMeta{
			SearchQuery: c.Query("q"),
			Location:    filter.Location,
		}
		if filter.PriceMin > 0 || filter.PriceMax > 0 {
			meta.PriceRange = &model.PriceRange{Min: filter.PriceMin, Max: filter.PriceMax}
		}
		if _, err := h.tracker.Track(c.Request.Context(), userID, "", model.InteractionSearch, meta); err != nil {
			utils.Warn("SearchVehiclesHandler: failed to track search interaction", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
		}
	}

	h.listWithFilter(c, "SearchVehiclesHandler", filter)
}

func (h *VehicleHandler) listWithFilter(c *gin.Context, handlerName string, filter repository.VehicleFilter) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	vehicles, total, err := h.service.List(c.Request.Context(), filter, page, limit)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn(handlerName+": error listing vehicles", map[string]any{"error": err.Error()})
		return
	}

	if vehicles == nil {
		vehicles = []model.Vehicle{}
	}

	utils.JSONListResponse(c, http.StatusOK, vehicles, total, page, limit, "vehicles retrieved successfully")
	helpers.LogSuccess(handlerName, "vehicles retrieved successfully", map[string]any{
		"count": len(vehicles),
		"total": total,
	})
}

// CompareVehiclesHandler handles GET /vehicles/compare?ids=a,b,c
func (h *VehicleHandler) CompareVehiclesHandler(c *gin.Context) {
	raw := c.Query("ids")
	if raw == "" {
		utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("missing ids query parameter"), "missing ids query parameter")
		return
	}
	ids := strings.Split(raw, ",")

	vehicles, err := h.service.Compare(c.Request.Context(), ids)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CompareVehiclesHandler: error comparing vehicles", map[string]any{
			"vehicle_ids": raw,
			"error":       err.Error(),
		})
		return
	}

	if userID := c.GetHeader("X-User-ID"); userID != "" {
		if _, err := h.tracker.Track(c.Request.Context(), userID, "", model.InteractionCompare, model.InteractionMeta{VehicleIDs: ids}); err != nil {
			utils.Warn("CompareVehiclesHandler: failed to track compare interaction", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
		}
	}

	utils.JSONResponse(c, http.StatusOK, vehicles, "vehicles compared successfully")
	helpers.LogSuccess("CompareVehiclesHandler", "vehicles compared successfully", map[string]any{
		"count": len(vehicles),
	})
}

// SimilarVehiclesHandler handles GET /vehicles/:vehicle_id/suggestions
func (h *VehicleHandler) SimilarVehiclesHandler(c *gin.Context) {
	vehicleID := c.Param("vehicle_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "4"))

	suggestions, err := h.service.Similar(c.Request.Context(), vehicleID, limit)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("SimilarVehiclesHandler: error retrieving suggestions", map[string]any{
			"vehicle_id": vehicleID,
			"error":      err.Error(),
		})
		return
	}

	if suggestions == nil {
		suggestions = []model.Vehicle{}
	}

	utils.JSONResponse(c, http.StatusOK, suggestions, "suggestions retrieved successfully")
	helpers.LogSuccess("SimilarVehiclesHandler", "suggestions retrieved successfully", map[string]any{
		"vehicle_id": vehicleID,
		"count":      len(suggestions),
	})
}

// RecommendationsHandler handles GET /users/:user_id/recommendations
func (h *VehicleHandler) RecommendationsHandler(c *gin.Context) {
	userID := c.Param("user_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "8"))

	recommendations, err := h.service.Recommend(c.Request.Context(), userID, limit)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RecommendationsHandler: error computing recommendations", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	if recommendations == nil {
		recommendations = []model.Vehicle{}
	}

	utils.JSONResponse(c, http.StatusOK, recommendations, "recommendations retrieved successfully")
	helpers.LogSuccess("RecommendationsHandler", "recommendations retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(recommendations),
	})
}
