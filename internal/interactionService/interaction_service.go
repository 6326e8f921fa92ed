package interaction

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"vehicle-marketplace/internal/marketerrors"
	model "vehicle-marketplace/internal/models"
	"vehicle-marketplace/internal/repository"
	"vehicle-marketplace/utils"
)

// DefaultLookbackDays bounds the interaction window preference derivation reads.
const DefaultLookbackDays = 30

// searchableBrands maps the substrings matched against free-text search
// queries to the canonical brand name that gets counted.
var searchableBrands = []struct {
	needle string
	brand  string
}{
	{"toyota", "Toyota"},
	{"honda", "Honda"},
	{"bmw", "BMW"},
	{"mercedes", "Mercedes"},
	{"audi", "Audi"},
	{"ford", "Ford"},
	{"nissan", "Nissan"},
	{"hyundai", "Hyundai"},
	{"kia", "Kia"},
	{"mazda", "Mazda"},
}

// PreferenceCache caches derived preference profiles per user. Implementations
// must be safe for concurrent use; a nil cache disables caching.
type PreferenceCache interface {
	Get(ctx context.Context, userID string) (model.Preferences, bool)
	Set(ctx context.Context, userID string, prefs model.Preferences)
	Invalidate(ctx context.Context, userID string)
}

// InteractionService records user interactions and derives preference
// profiles from them.
type InteractionService struct {
	interactions repository.InteractionStore
	cache        PreferenceCache
	now          func() time.Time
}

// NewInteractionService creates a new InteractionService instance.
// cache may be nil, in which case preferences are derived on every call.
func NewInteractionService(interactions repository.InteractionStore, cache PreferenceCache) *InteractionService {
	return &InteractionService{
		interactions: interactions,
		cache:        cache,
		now:          time.Now,
	}
}

// WithClock overrides the service's time source. Intended for tests.
func (s *InteractionService) WithClock(now func() time.Time) *InteractionService {
	s.now = now
	return s
}

// Track appends an interaction to the log and invalidates the user's cached
// preference profile.
func (s *InteractionService) Track(ctx context.Context, userID, vehicleID string, kind model.InteractionType, meta model.InteractionMeta) (model.UserInteraction, error) {
	if userID == "" {
		return model.UserInteraction{}, fmt.Errorf("service: %w - empty user ID", marketerrors.ErrInvalidInput)
	}
	if !kind.Valid() {
		return model.UserInteraction{}, fmt.Errorf("service: %w - unknown interaction type %q", marketerrors.ErrInvalidInput, kind)
	}
	if !meta.AllowedFor(kind) {
		return model.UserInteraction{}, fmt.Errorf("service: %w - metadata does not match interaction type %q", marketerrors.ErrInvalidInput, kind)
	}

	interaction := model.UserInteraction{
		InteractionID: utils.GenerateID(),
		UserID:        userID,
		VehicleID:     vehicleID,
		Type:          kind,
		Meta:          meta,
		CreatedAt:     s.now().UTC(),
	}

	if err := s.interactions.CreateInteraction(ctx, interaction); err != nil {
		return model.UserInteraction{}, fmt.Errorf("service: failed to track %s interaction for user %s: %w", kind, userID, err)
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, userID)
	}

	utils.Info("interaction tracked", map[string]any{
		"interaction_id":   interaction.InteractionID,
		"user_id":          userID,
		"vehicle_id":       vehicleID,
		"interaction_type": string(kind),
	})
	return interaction, nil
}

// DerivePreferences builds the user's preference profile from interactions
// within the lookback window. Sparse or absent history is not an error: the
// profile simply carries no signal and callers fall back to recency.
func (s *InteractionService) DerivePreferences(ctx context.Context, userID string, lookbackDays int) (model.Preferences, error) {
	if userID == "" {
		return model.Preferences{}, fmt.Errorf("service: %w - empty user ID", marketerrors.ErrInvalidInput)
	}
	if lookbackDays <= 0 {
		lookbackDays = DefaultLookbackDays
	}

	if s.cache != nil {
		if prefs, ok := s.cache.Get(ctx, userID); ok {
			return prefs, nil
		}
	}

	cutoff := s.now().UTC().AddDate(0, 0, -lookbackDays)
	interactions, err := s.interactions.ListInteractionsSince(ctx, userID, cutoff)
	if err != nil {
		return model.Preferences{}, fmt.Errorf("service: failed to load interactions for user %s: %w", userID, err)
	}

	prefs := derive(interactions)

	if s.cache != nil {
		s.cache.Set(ctx, userID, prefs)
	}

	utils.Info("preferences derived", map[string]any{
		"user_id":      userID,
		"interactions": len(interactions),
		"brand_count":  len(prefs.PreferredBrands),
		"model_count":  len(prefs.PreferredModels),
	})
	return prefs, nil
}

// RecentlyViewed returns the vehicle IDs of the user's most recent view
// interactions, newest first.
func (s *InteractionService) RecentlyViewed(ctx context.Context, userID string, limit int) ([]string, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", marketerrors.ErrInvalidInput)
	}
	if limit <= 0 {
		limit = 10
	}

	ids, err := s.interactions.RecentlyViewedVehicleIDs(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load recently viewed vehicles for user %s: %w", userID, err)
	}
	return ids, nil
}

// derive aggregates one pass over the interaction list into a profile.
// All counting state is local to the call.
func derive(interactions []model.UserInteraction) model.Preferences {
	brands := newCounter()
	vehicleModels := newCounter()
	locations := newCounter()
	conditions := newCounter()
	var prices []float64
	var years []int

	for _, interaction := range interactions {
		if vehicle := interaction.Vehicle; vehicle != nil {
			brands.bump(vehicle.Brand)
			vehicleModels.bump(vehicle.Model)
			locations.bump(vehicle.Location)
			conditions.bump(vehicle.Condition)
			prices = append(prices, vehicle.Price)
			years = append(years, vehicle.Year)
		}

		if query := interaction.Meta.SearchQuery; query != "" {
			lowered := strings.ToLower(query)
			for _, candidate := range searchableBrands {
				if strings.Contains(lowered, candidate.needle) {
					brands.bump(candidate.brand)
				}
			}
		}
		if pr := interaction.Meta.PriceRange; pr != nil {
			prices = append(prices, pr.Min, pr.Max)
		}
		if loc := interaction.Meta.Location; loc != "" {
			locations.bump(loc)
		}
	}

	prefs := model.Preferences{
		PreferredBrands:     brands.top(5),
		PreferredModels:     vehicleModels.top(10),
		PreferredLocations:  locations.top(3),
		PreferredConditions: conditions.top(3),
	}

	if len(prices) > 0 {
		min, max := prices[0], prices[0]
		for _, p := range prices[1:] {
			if p < min {
				min = p
			}
			if p > max {
				max = p
			}
		}
		// 20% buffer on both ends
		prefs.PriceRange = model.PriceRange{Min: min * 0.8, Max: max * 1.2}
	}
	if len(years) > 0 {
		min, max := years[0], years[0]
		for _, y := range years[1:] {
			if y < min {
				min = y
			}
			if y > max {
				max = y
			}
		}
		// 2 year buffer on both ends
		prefs.YearRange = model.YearRange{Min: min - 2, Max: max + 2}
	}
	return prefs
}

// counter tallies string keys while remembering first-seen order, so that
// ties in top() resolve to the earliest-seen key.
type counter struct {
	keys   []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) bump(key string) {
	if key == "" {
		return
	}
	if _, seen := c.counts[key]; !seen {
		c.keys = append(c.keys, key)
	}
	c.counts[key]++
}

func (c *counter) top(n int) []string {
	ranked := append([]string(nil), c.keys...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return c.counts[ranked[i]] > c.counts[ranked[j]]
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
