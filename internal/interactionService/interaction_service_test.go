package interaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"vehicle-marketplace/internal/marketerrors"
	model "vehicle-marketplace/internal/models"
	"vehicle-marketplace/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func viewOf(vehicle *model.Vehicle, at time.Time) model.UserInteraction {
	interaction := model.UserInteraction{
		InteractionID: uuid.NewString(),
		UserID:        "user1",
		Type:          model.InteractionView,
		CreatedAt:     at,
	}
	if vehicle != nil {
		interaction.VehicleID = vehicle.VehicleID
		interaction.Vehicle = vehicle
	}
	return interaction
}

func searchOf(query string, meta model.InteractionMeta, at time.Time) model.UserInteraction {
	meta.SearchQuery = query
	return model.UserInteraction{
		InteractionID: uuid.NewString(),
		UserID:        "user1",
		Type:          model.InteractionSearch,
		Meta:          meta,
		CreatedAt:     at,
	}
}

// Tests Track
func TestInteractionService_Track(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := repository.NewMockInteractionStore(ctrl)
	service := NewInteractionService(mockStore, nil)

	ctx := context.Background()

	tests := []struct {
		name          string
		userID        string
		vehicleID     string
		kind          model.InteractionType
		meta          model.InteractionMeta
		mockSetup     func()
		expectError   bool
		expectedError error
	}{
		{
			name:      "view_with_duration",
			userID:    "user1",
			vehicleID: "veh1",
			kind:      model.InteractionView,
			meta:      model.InteractionMeta{Duration: 45},
			mockSetup: func() {
				mockStore.EXPECT().CreateInteraction(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectError: false,
		},
		{
			name:   "search_with_query_and_filters",
			userID: "user1",
			kind:   model.InteractionSearch,
			meta: model.InteractionMeta{
				SearchQuery: "toyota camry",
				PriceRange:  &model.PriceRange{Min: 10000, Max: 30000},
				Location:    "Berlin",
			},
			mockSetup: func() {
				mockStore.EXPECT().CreateInteraction(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectError: false,
		},
		{
			name:   "compare_with_vehicle_ids",
			userID: "user1",
			kind:   model.InteractionCompare,
			meta:   model.InteractionMeta{VehicleIDs: []string{"veh1", "veh2"}},
			mockSetup: func() {
				mockStore.EXPECT().CreateInteraction(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectError: false,
		},
		{
			name:          "empty_userID",
			userID:        "",
			kind:          model.InteractionView,
			mockSetup:     func() {},
			expectError:   true,
			expectedError: marketerrors.ErrInvalidInput,
		},
		{
			name:          "unknown_interaction_type",
			userID:        "user1",
			kind:          model.InteractionType("purchase"),
			mockSetup:     func() {},
			expectError:   true,
			expectedError: marketerrors.ErrInvalidInput,
		},
		{
			name:          "view_rejects_search_metadata",
			userID:        "user1",
			vehicleID:     "veh1",
			kind:          model.InteractionView,
			meta:          model.InteractionMeta{SearchQuery: "bmw"},
			mockSetup:     func() {},
			expectError:   true,
			expectedError: marketerrors.ErrInvalidInput,
		},
		{
			name:          "bid_rejects_any_metadata",
			userID:        "user1",
			vehicleID:     "veh1",
			kind:          model.InteractionBid,
			meta:          model.InteractionMeta{Duration: 10},
			mockSetup:     func() {},
			expectError:   true,
			expectedError: marketerrors.ErrInvalidInput,
		},
		{
			name:      "repo_write_fails",
			userID:    "user1",
			vehicleID: "veh1",
			kind:      model.InteractionFavorite,
			mockSetup: func() {
				mockStore.EXPECT().CreateInteraction(gomock.Any(), gomock.Any()).Return(errors.New("db write failed"))
			},
			expectError:   true,
			expectedError: nil, // Service wraps repo error
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			interaction, err := service.Track(ctx, tc.userID, tc.vehicleID, tc.kind, tc.meta)

			if tc.expectError {
				require.Error(t, err)
				if tc.expectedError != nil {
					require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				}
			} else {
				require.NoError(t, err)

				require.NotEmpty(t, interaction.InteractionID)
				_, parseErr := uuid.Parse(interaction.InteractionID)
				require.NoError(t, parseErr, "InteractionID should be a valid UUID")

				require.Equal(t, tc.userID, interaction.UserID)
				require.Equal(t, tc.vehicleID, interaction.VehicleID)
				require.Equal(t, tc.kind, interaction.Type)
				require.Equal(t, tc.meta, interaction.Meta)
			}
		})
	}
}

// Tests DerivePreferences end to end through a mocked store
func TestInteractionService_DerivePreferences(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := repository.NewMockInteractionStore(ctrl)

	frozen := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	service := NewInteractionService(mockStore, nil).WithClock(func() time.Time { return frozen })

	ctx := context.Background()

	camry := &model.Vehicle{VehicleID: "veh1", Brand: "Toyota", Model: "Camry", Location: "Berlin", Condition: "used", Price: 20000, Year: 2020}
	corolla := &model.Vehicle{VehicleID: "veh2", Brand: "Toyota", Model: "Corolla", Location: "Berlin", Condition: "used", Price: 18000, Year: 2021}
	civic := &model.Vehicle{VehicleID: "veh3", Brand: "Honda", Model: "Civic", Location: "Hamburg", Condition: "new", Price: 24000, Year: 2023}

	t.Run("counts_views_and_buffers_ranges", func(t *testing.T) {
		mockStore.EXPECT().ListInteractionsSince(gomock.Any(), "user1", frozen.AddDate(0, 0, -DefaultLookbackDays)).Return([]model.UserInteraction{
			viewOf(camry, frozen.Add(-time.Hour)),
			viewOf(corolla, frozen.Add(-2*time.Hour)),
			viewOf(civic, frozen.Add(-3*time.Hour)),
		}, nil)

		prefs, err := service.DerivePreferences(ctx, "user1", 0)
		require.NoError(t, err)

		require.Equal(t, []string{"Toyota", "Honda"}, prefs.PreferredBrands)
		require.Equal(t, []string{"Camry", "Corolla", "Civic"}, prefs.PreferredModels)
		require.Equal(t, []string{"Berlin", "Hamburg"}, prefs.PreferredLocations)
		require.Equal(t, []string{"used", "new"}, prefs.PreferredConditions)

		// 18000..24000 widened by 20% on each end
		require.InDelta(t, 14400, prefs.PriceRange.Min, 0.001)
		require.InDelta(t, 28800, prefs.PriceRange.Max, 0.001)

		// 2020..2023 widened by 2 years on each end
		require.Equal(t, model.YearRange{Min: 2018, Max: 2025}, prefs.YearRange)
	})

	t.Run("search_queries_count_brand_mentions", func(t *testing.T) {
		mockStore.EXPECT().ListInteractionsSince(gomock.Any(), "user1", gomock.Any()).Return([]model.UserInteraction{
			searchOf("Cheap TOYOTA near me", model.InteractionMeta{}, frozen.Add(-time.Hour)),
			searchOf("bmw 3 series", model.InteractionMeta{Location: "Munich"}, frozen.Add(-2*time.Hour)),
			searchOf("toyota camry hybrid", model.InteractionMeta{}, frozen.Add(-3*time.Hour)),
		}, nil)

		prefs, err := service.DerivePreferences(ctx, "user1", 0)
		require.NoError(t, err)

		require.Equal(t, []string{"Toyota", "BMW"}, prefs.PreferredBrands)
		require.Equal(t, []string{"Munich"}, prefs.PreferredLocations)
		require.Empty(t, prefs.PreferredModels)
	})

	t.Run("search_price_filter_feeds_price_range", func(t *testing.T) {
		mockStore.EXPECT().ListInteractionsSince(gomock.Any(), "user1", gomock.Any()).Return([]model.UserInteraction{
			searchOf("family car", model.InteractionMeta{PriceRange: &model.PriceRange{Min: 20000, Max: 24000}}, frozen.Add(-time.Hour)),
		}, nil)

		prefs, err := service.DerivePreferences(ctx, "user1", 0)
		require.NoError(t, err)

		require.InDelta(t, 16000, prefs.PriceRange.Min, 0.001)
		require.InDelta(t, 28800, prefs.PriceRange.Max, 0.001)
	})

	t.Run("top_n_truncation_keeps_first_seen_on_ties", func(t *testing.T) {
		// Six distinct brands seen once each; only the first five survive,
		// in the order they were encountered.
		brands := []string{"Mazda", "Kia", "Ford", "Audi", "Nissan", "Hyundai"}
		var history []model.UserInteraction
		for i, brand := range brands {
			v := &model.Vehicle{VehicleID: uuid.NewString(), Brand: brand, Model: "M" + brand, Price: 10000, Year: 2020}
			history = append(history, viewOf(v, frozen.Add(-time.Duration(i)*time.Hour)))
		}
		mockStore.EXPECT().ListInteractionsSince(gomock.Any(), "user1", gomock.Any()).Return(history, nil)

		prefs, err := service.DerivePreferences(ctx, "user1", 0)
		require.NoError(t, err)

		require.Equal(t, []string{"Mazda", "Kia", "Ford", "Audi", "Nissan"}, prefs.PreferredBrands)
	})

	t.Run("empty_history_has_no_signal", func(t *testing.T) {
		mockStore.EXPECT().ListInteractionsSince(gomock.Any(), "user1", gomock.Any()).Return([]model.UserInteraction{}, nil)

		prefs, err := service.DerivePreferences(ctx, "user1", 0)
		require.NoError(t, err)
		require.False(t, prefs.HasSignal())
	})

	t.Run("empty_userID", func(t *testing.T) {
		_, err := service.DerivePreferences(ctx, "", 0)
		require.ErrorIs(t, err, marketerrors.ErrInvalidInput)
	})

	t.Run("repo_error_is_wrapped", func(t *testing.T) {
		mockStore.EXPECT().ListInteractionsSince(gomock.Any(), "user1", gomock.Any()).Return(nil, errors.New("db failure"))

		_, err := service.DerivePreferences(ctx, "user1", 0)
		require.Error(t, err)
	})
}

// fakeCache is an in-memory PreferenceCache for cache-path tests
type fakeCache struct {
	store       map[string]model.Preferences
	invalidated []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string]model.Preferences)}
}

func (c *fakeCache) Get(_ context.Context, userID string) (model.Preferences, bool) {
	prefs, ok := c.store[userID]
	return prefs, ok
}

func (c *fakeCache) Set(_ context.Context, userID string, prefs model.Preferences) {
	c.store[userID] = prefs
}

func (c *fakeCache) Invalidate(_ context.Context, userID string) {
	delete(c.store, userID)
	c.invalidated = append(c.invalidated, userID)
}

// Tests the cache interplay: hits skip the store, Track invalidates
func TestInteractionService_PreferenceCaching(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := repository.NewMockInteractionStore(ctrl)
	cache := newFakeCache()
	service := NewInteractionService(mockStore, cache)

	ctx := context.Background()

	// First derivation misses the cache and hits the store.
	mockStore.EXPECT().ListInteractionsSince(gomock.Any(), "user1", gomock.Any()).Return([]model.UserInteraction{
		viewOf(&model.Vehicle{VehicleID: "veh1", Brand: "Audi", Model: "A4", Price: 30000, Year: 2022}, time.Now()),
	}, nil).Times(1)

	first, err := service.DerivePreferences(ctx, "user1", 0)
	require.NoError(t, err)
	require.Equal(t, []string{"Audi"}, first.PreferredBrands)

	// Second derivation is served from the cache; no store expectation set.
	second, err := service.DerivePreferences(ctx, "user1", 0)
	require.NoError(t, err)
	require.Equal(t, first, second)

	// Tracking a new interaction invalidates the cached profile.
	mockStore.EXPECT().CreateInteraction(gomock.Any(), gomock.Any()).Return(nil)
	_, err = service.Track(ctx, "user1", "veh2", model.InteractionFavorite, model.InteractionMeta{})
	require.NoError(t, err)
	require.Contains(t, cache.invalidated, "user1")

	// Next derivation goes back to the store.
	mockStore.EXPECT().ListInteractionsSince(gomock.Any(), "user1", gomock.Any()).Return([]model.UserInteraction{}, nil).Times(1)
	third, err := service.DerivePreferences(ctx, "user1", 0)
	require.NoError(t, err)
	require.False(t, third.HasSignal())
}

// Tests RecentlyViewed
func TestInteractionService_RecentlyViewed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := repository.NewMockInteractionStore(ctrl)
	service := NewInteractionService(mockStore, nil)

	ctx := context.Background()

	t.Run("returns_ids_newest_first", func(t *testing.T) {
		mockStore.EXPECT().RecentlyViewedVehicleIDs(gomock.Any(), "user1", 20).Return([]string{"veh3", "veh1"}, nil)

		ids, err := service.RecentlyViewed(ctx, "user1", 20)
		require.NoError(t, err)
		require.Equal(t, []string{"veh3", "veh1"}, ids)
	})

	t.Run("non_positive_limit_defaults", func(t *testing.T) {
		mockStore.EXPECT().RecentlyViewedVehicleIDs(gomock.Any(), "user1", 10).Return([]string{}, nil)

		_, err := service.RecentlyViewed(ctx, "user1", 0)
		require.NoError(t, err)
	})

	t.Run("empty_userID", func(t *testing.T) {
		_, err := service.RecentlyViewed(ctx, "", 5)
		require.ErrorIs(t, err, marketerrors.ErrInvalidInput)
	})
}
