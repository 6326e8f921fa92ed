package vehicle

import (
	"context"
	"fmt"
	"sort"
	"time"

	"vehicle-marketplace/internal/marketerrors"
	model "vehicle-marketplace/internal/models"
	"vehicle-marketplace/internal/repository"
	"vehicle-marketplace/utils"
)

// Candidate scoring weights. A vehicle can score between 0 and 26 against a
// preference profile.
const (
	brandWeight     = 10
	modelWeight     = 8
	locationWeight  = 5
	conditionWeight = 3
)

// recentViewWindow is how many of the user's latest views are excluded from
// recommendations.
const recentViewWindow = 20

// PreferenceProvider supplies derived preference profiles and recently
// viewed vehicle IDs. Implemented by the interaction service.
type PreferenceProvider interface {
	DerivePreferences(ctx context.Context, userID string, lookbackDays int) (model.Preferences, error)
	RecentlyViewed(ctx context.Context, userID string, limit int) ([]string, error)
}

// CreateVehicleInput carries the fields a seller submits for a new listing
type CreateVehicleInput struct {
	Title            string
	Description      string
	Brand            string
	Model            string
	Year             int
	Mileage          int
	Color            string
	Condition        string
	Price            float64
	Location         string
	AftermarketParts []string
	MissingParts     []string
	Images           []string
	UserID           string
}

// VehicleService owns vehicle listings and the recommendation ranking
type VehicleService struct {
	vehicles    repository.VehicleStore
	preferences PreferenceProvider
	now         func() time.Time
}

// NewVehicleService creates a new VehicleService instance
func NewVehicleService(vehicles repository.VehicleStore, preferences PreferenceProvider) *VehicleService {
	return &VehicleService{
		vehicles:    vehicles,
		preferences: preferences,
		now:         time.Now,
	}
}

// WithClock overrides the service's time source. Intended for tests.
func (s *VehicleService) WithClock(now func() time.Time) *VehicleService {
	s.now = now
	return s
}

// Create validates and stores a new vehicle listing
func (s *VehicleService) Create(ctx context.Context, input CreateVehicleInput) (model.Vehicle, error) {
	if input.UserID == "" {
		return model.Vehicle{}, fmt.Errorf("service: %w - missing user ID", marketerrors.ErrInvalidInput)
	}
	if input.Title == "" || input.Brand == "" || input.Model == "" {
		return model.Vehicle{}, fmt.Errorf("service: %w - missing title, brand, or model", marketerrors.ErrInvalidInput)
	}
	if input.Price <= 0 {
		return model.Vehicle{}, fmt.Errorf("service: %w - non-positive price", marketerrors.ErrInvalidInput)
	}

	vehicle := model.Vehicle{
		VehicleID:        utils.GenerateID(),
		Title:            input.Title,
		Description:      input.Description,
		Brand:            input.Brand,
		Model:            input.Model,
		Year:             input.Year,
		Mileage:          input.Mileage,
		Color:            input.Color,
		Condition:        input.Condition,
		Price:            input.Price,
		Location:         input.Location,
		Status:           model.VehicleAvailable,
		AftermarketParts: input.AftermarketParts,
		MissingParts:     input.MissingParts,
		Images:           input.Images,
		UserID:           input.UserID,
		CreatedAt:        s.now().UTC(),
		UpdatedAt:        s.now().UTC(),
	}

	if err := s.vehicles.CreateVehicle(ctx, vehicle); err != nil {
		return model.Vehicle{}, fmt.Errorf("service: failed to create vehicle for user %s: %w", input.UserID, err)
	}

	utils.Info("vehicle created", map[string]any{
		"vehicle_id": vehicle.VehicleID,
		"user_id":    input.UserID,
		"brand":      input.Brand,
		"model":      input.Model,
	})
	return vehicle, nil
}

// Get returns a vehicle with its owner attached
func (s *VehicleService) Get(ctx context.Context, vehicleID string) (model.Vehicle, error) {
	if vehicleID == "" {
		return model.Vehicle{}, fmt.Errorf("service: %w - empty vehicle ID", marketerrors.ErrInvalidInput)
	}

	vehicle, err := s.vehicles.GetVehicle(ctx, vehicleID)
	if err != nil {
		return model.Vehicle{}, fmt.Errorf("service: failed to get vehicle %s: %w", vehicleID, err)
	}
	return vehicle, nil
}

// List returns available vehicles matching the filter, paginated
func (s *VehicleService) List(ctx context.Context, filter repository.VehicleFilter, page, limit int) ([]model.Vehicle, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	filter.Status = model.VehicleAvailable

	vehicles, total, err := s.vehicles.ListVehicles(ctx, filter, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("service: failed to list vehicles: %w", err)
	}
	return vehicles, total, nil
}

// Compare returns all requested vehicles or fails when any is missing
func (s *VehicleService) Compare(ctx context.Context, vehicleIDs []string) ([]model.Vehicle, error) {
	if len(vehicleIDs) == 0 {
		return nil, fmt.Errorf("service: %w - no vehicle IDs given", marketerrors.ErrInvalidInput)
	}

	vehicles, err := s.vehicles.GetVehicles(ctx, vehicleIDs)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load vehicles for comparison: %w", err)
	}
	if len(vehicles) != len(vehicleIDs) {
		return nil, fmt.Errorf("service: one or more vehicles missing: %w", marketerrors.ErrVehicleNotFound)
	}
	return vehicles, nil
}

// Similar returns available vehicles close to the given one: within a ±10%
// price band and sharing its brand or model, newest first.
func (s *VehicleService) Similar(ctx context.Context, vehicleID string, limit int) ([]model.Vehicle, error) {
	if limit <= 0 {
		limit = 4
	}

	vehicle, err := s.vehicles.GetVehicle(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load vehicle %s for suggestions: %w", vehicleID, err)
	}

	candidates, err := s.vehicles.ListCandidates(ctx, repository.CandidateFilter{
		Status:     model.VehicleAvailable,
		ExcludeIDs: []string{vehicleID},
		Brands:     []string{vehicle.Brand},
		Models:     []string{vehicle.Model},
		PriceMin:   vehicle.Price * 0.9,
		PriceMax:   vehicle.Price * 1.1,
		Limit:      limit,
	})
	if err != nil {
		return nil, fmt.Errorf("service: failed to load suggestions for vehicle %s: %w", vehicleID, err)
	}
	return candidates, nil
}

// Recommend returns up to limit vehicles ranked against the user's derived
// preference profile. Without any preference signal it falls back to the
// most recently listed available vehicles, excluding recently viewed ones.
func (s *VehicleService) Recommend(ctx context.Context, userID string, limit int) ([]model.Vehicle, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", marketerrors.ErrInvalidInput)
	}
	if limit <= 0 {
		limit = 8
	}

	prefs, err := s.preferences.DerivePreferences(ctx, userID, 0)
	if err != nil {
		return nil, fmt.Errorf("service: failed to derive preferences for user %s: %w", userID, err)
	}
	recentlyViewed, err := s.preferences.RecentlyViewed(ctx, userID, recentViewWindow)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load recently viewed vehicles for user %s: %w", userID, err)
	}

	if !prefs.HasSignal() {
		utils.Info("no preference signal, using fallback recommendations", map[string]any{
			"user_id": userID,
		})
		fallback, err := s.vehicles.ListCandidates(ctx, repository.CandidateFilter{
			Status:     model.VehicleAvailable,
			ExcludeIDs: recentlyViewed,
			Limit:      limit,
		})
		if err != nil {
			return nil, fmt.Errorf("service: failed to load fallback recommendations for user %s: %w", userID, err)
		}
		return fallback, nil
	}

	filter := repository.CandidateFilter{
		Status:     model.VehicleAvailable,
		ExcludeIDs: recentlyViewed,
		Brands:     prefs.PreferredBrands,
		Models:     prefs.PreferredModels,
		Locations:  prefs.PreferredLocations,
		Conditions: prefs.PreferredConditions,
	}
	if prefs.PriceRange.Min > 0 && prefs.PriceRange.Max > 0 {
		filter.PriceMin = prefs.PriceRange.Min
		filter.PriceMax = prefs.PriceRange.Max
	}
	if prefs.YearRange.Min > 0 && prefs.YearRange.Max > 0 {
		filter.YearMin = prefs.YearRange.Min
		filter.YearMax = prefs.YearRange.Max
	}

	candidates, err := s.vehicles.ListCandidates(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load recommendation candidates for user %s: %w", userID, err)
	}

	ranked := rank(candidates, prefs)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	utils.Info("recommendations computed", map[string]any{
		"user_id": userID,
		"count":   len(ranked),
	})
	return ranked, nil
}

// Score returns the additive preference-match score for one candidate
func Score(vehicle model.Vehicle, prefs model.Preferences) int {
	score := 0
	if containsString(prefs.PreferredBrands, vehicle.Brand) {
		score += brandWeight
	}
	if containsString(prefs.PreferredModels, vehicle.Model) {
		score += modelWeight
	}
	if containsString(prefs.PreferredLocations, vehicle.Location) {
		score += locationWeight
	}
	if containsString(prefs.PreferredConditions, vehicle.Condition) {
		score += conditionWeight
	}
	return score
}

// rank orders candidates by score descending. The input arrives newest
// first from the store and the sort is stable, so equal scores keep the
// recency order.
func rank(candidates []model.Vehicle, prefs model.Preferences) []model.Vehicle {
	ranked := append([]model.Vehicle(nil), candidates...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return Score(ranked[i], prefs) > Score(ranked[j], prefs)
	})
	return ranked
}

func containsString(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
