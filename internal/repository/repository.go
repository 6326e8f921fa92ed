package repository

import (
	"context"
	"time"

	model "vehicle-marketplace/internal/models"
)

// VehicleFilter narrows List and Search queries. Zero values mean "no filter".
type VehicleFilter struct {
	Status     string
	Brand      string
	Model      string
	PriceMin   float64
	PriceMax   float64
	Location   string
	MileageMax int
	Color      string
	Condition  string
}

// CandidateFilter selects recommendation candidates. When either Brands or
// Models is non-empty the two are OR-joined (a candidate matches if its brand
// is in Brands or its model is in Models); every other populated field is an
// additional AND condition. Results are ordered newest first.
type CandidateFilter struct {
	Status     string
	ExcludeIDs []string
	Brands     []string
	Models     []string
	PriceMin   float64
	PriceMax   float64
	Locations  []string
	YearMin    int
	YearMax    int
	Conditions []string
	Limit      int
}

// VehicleStore is the persistence interface for vehicles
type VehicleStore interface {
	CreateVehicle(ctx context.Context, vehicle model.Vehicle) error
	GetVehicle(ctx context.Context, vehicleID string) (model.Vehicle, error)
	GetVehicles(ctx context.Context, vehicleIDs []string) ([]model.Vehicle, error)
	ListVehicles(ctx context.Context, filter VehicleFilter, page, limit int) ([]model.Vehicle, int64, error)
	ListCandidates(ctx context.Context, filter CandidateFilter) ([]model.Vehicle, error)
}

// AuctionStore is the persistence interface for auctions and their bids
type AuctionStore interface {
	CreateAuction(ctx context.Context, auction model.Auction) error
	// GetAuction loads the auction with its vehicle, seller, and bids
	// (each bid with its bidder) attached.
	GetAuction(ctx context.Context, auctionID string) (model.Auction, error)
	// GetAuctionBasic loads the auction row without relations.
	GetAuctionBasic(ctx context.Context, auctionID string) (model.Auction, error)
	ListActiveAuctions(ctx context.Context, page, limit int) ([]model.Auction, int64, error)
	ListAuctionsByVehicle(ctx context.Context, vehicleID string) ([]model.Auction, error)
	// AcceptBid atomically records the bid and raises the auction's current
	// highest bid. The auction row is the serialization point: the update
	// only succeeds while bid.Amount is strictly greater than the highest
	// bid (start price when none), and a concurrent higher bid makes this
	// call fail with ErrBidTooLow instead of losing the update.
	AcceptBid(ctx context.Context, auctionID string, bid model.Bid) error
	// ListBids returns the auction's bids ordered by amount descending,
	// each with its bidder attached.
	ListBids(ctx context.Context, auctionID string) ([]model.Bid, error)
}

// InteractionStore is the persistence interface for the interaction log
type InteractionStore interface {
	CreateInteraction(ctx context.Context, interaction model.UserInteraction) error
	// ListInteractionsSince returns the user's interactions created at or
	// after cutoff, newest first, each with its vehicle attached when one
	// is linked.
	ListInteractionsSince(ctx context.Context, userID string, cutoff time.Time) ([]model.UserInteraction, error)
	// RecentlyViewedVehicleIDs returns the vehicle IDs of the user's most
	// recent view interactions, newest first, at most limit entries.
	RecentlyViewedVehicleIDs(ctx context.Context, userID string, limit int) ([]string, error)
}

// UserStore is the persistence interface for users
type UserStore interface {
	CreateUser(ctx context.Context, user model.User) error
	GetUser(ctx context.Context, userID string) (model.User, error)
}

// Store bundles every persistence interface the services consume
type Store interface {
	VehicleStore
	AuctionStore
	InteractionStore
	UserStore
}
