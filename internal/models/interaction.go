package models

import "time"

// InteractionType classifies a logged user action
type InteractionType string

const (
	InteractionView     InteractionType = "view"
	InteractionSearch   InteractionType = "search"
	InteractionBid      InteractionType = "bid"
	InteractionFavorite InteractionType = "favorite"
	InteractionCompare  InteractionType = "compare"
)

// Valid reports whether t is one of the known interaction types
func (t InteractionType) Valid() bool {
	switch t {
	case InteractionView, InteractionSearch, InteractionBid, InteractionFavorite, InteractionCompare:
		return true
	}
	return false
}

// PriceRange is an inclusive price band
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// YearRange is an inclusive model-year band
type YearRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// InteractionMeta carries the type-specific payload of an interaction.
// Which fields may be set depends on the interaction type: view carries
// Duration, search carries SearchQuery/PriceRange/Location, compare carries
// VehicleIDs, bid and favorite carry nothing.
type InteractionMeta struct {
	SearchQuery string      `json:"search_query,omitempty"`
	PriceRange  *PriceRange `json:"price_range,omitempty"`
	Location    string      `json:"location,omitempty"`
	Duration    int         `json:"duration_seconds,omitempty"`
	VehicleIDs  []string    `json:"vehicle_ids,omitempty"`
}

// AllowedFor reports whether the populated fields are legal for the given
// interaction type.
func (m InteractionMeta) AllowedFor(t InteractionType) bool {
	switch t {
	case InteractionView:
		return m.SearchQuery == "" && m.PriceRange == nil && m.Location == "" && len(m.VehicleIDs) == 0
	case InteractionSearch:
		return m.Duration == 0 && len(m.VehicleIDs) == 0
	case InteractionCompare:
		return m.SearchQuery == "" && m.PriceRange == nil && m.Location == "" && m.Duration == 0
	case InteractionBid, InteractionFavorite:
		return m.SearchQuery == "" && m.PriceRange == nil && m.Location == "" && m.Duration == 0 && len(m.VehicleIDs) == 0
	}
	return false
}

// UserInteraction is an append-only record of implicit user feedback
type UserInteraction struct {
	InteractionID string          `json:"interaction_id" gorm:"primaryKey;column:interaction_id"`
	UserID        string          `json:"user_id" gorm:"index:idx_user_type_created,priority:1"`
	VehicleID     string          `json:"vehicle_id,omitempty"`
	Vehicle       *Vehicle        `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
	Type          InteractionType `json:"interaction_type" gorm:"column:interaction_type;index:idx_user_type_created,priority:2"`
	Meta          InteractionMeta `json:"metadata" gorm:"serializer:json"`
	CreatedAt     time.Time       `json:"created_at" gorm:"index:idx_user_type_created,priority:3"`
}

// Preferences is a user's derived preference profile
type Preferences struct {
	PreferredBrands     []string   `json:"preferred_brands"`
	PreferredModels     []string   `json:"preferred_models"`
	PreferredLocations  []string   `json:"preferred_locations"`
	PreferredConditions []string   `json:"preferred_conditions"`
	PriceRange          PriceRange `json:"price_range"`
	YearRange           YearRange  `json:"year_range"`
}

// HasSignal reports whether any preference field carries information.
// Callers treat a profile without signal as "recommend by recency instead".
func (p Preferences) HasSignal() bool {
	return len(p.PreferredBrands) > 0 ||
		len(p.PreferredModels) > 0 ||
		len(p.PreferredLocations) > 0 ||
		len(p.PreferredConditions) > 0 ||
		(p.PriceRange.Min > 0 && p.PriceRange.Max > 0) ||
		(p.YearRange.Min > 0 && p.YearRange.Max > 0)
}
