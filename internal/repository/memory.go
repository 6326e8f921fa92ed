package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"vehicle-marketplace/internal/marketerrors"
	model "vehicle-marketplace/internal/models"
)

// MemoryStore is a concurrency-safe in-memory implementation of Store
type MemoryStore struct {
	mu           sync.RWMutex
	users        map[string]model.User
	vehicles     map[string]model.Vehicle
	vehicleSeq   map[string]int // insertion order, used to stabilize recency ties
	auctions     map[string]model.Auction
	auctionOrder []string
	bids         map[string][]model.Bid // key: auctionID
	interactions []model.UserInteraction
	seq          int
}

// NewMemoryStore creates a new in-memory store instance
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:      make(map[string]model.User),
		vehicles:   make(map[string]model.Vehicle),
		vehicleSeq: make(map[string]int),
		auctions:   make(map[string]model.Auction),
		bids:       make(map[string][]model.Bid),
	}
}

// CreateUser stores a user
func (s *MemoryStore) CreateUser(ctx context.Context, user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.UserID] = user
	return nil
}

// GetUser returns a user by ID
func (s *MemoryStore) GetUser(ctx context.Context, userID string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, marketerrors.ErrUserNotFound)
	}
	return user, nil
}

// CreateVehicle stores a vehicle
func (s *MemoryStore) CreateVehicle(ctx context.Context, vehicle model.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.vehicles[vehicle.VehicleID] = vehicle
	s.vehicleSeq[vehicle.VehicleID] = s.seq
	return nil
}

// GetVehicle returns a vehicle with its owner attached
func (s *MemoryStore) GetVehicle(ctx context.Context, vehicleID string) (model.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getVehicleLocked(vehicleID)
}

func (s *MemoryStore) getVehicleLocked(vehicleID string) (model.Vehicle, error) {
	vehicle, ok := s.vehicles[vehicleID]
	if !ok {
		return model.Vehicle{}, fmt.Errorf("get vehicle %s: %w", vehicleID, marketerrors.ErrVehicleNotFound)
	}
	if owner, ok := s.users[vehicle.UserID]; ok {
		vehicle.Owner = &owner
	}
	return vehicle, nil
}

// GetVehicles returns the vehicles for the given IDs, skipping missing ones
func (s *MemoryStore) GetVehicles(ctx context.Context, vehicleIDs []string) ([]model.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vehicles := make([]model.Vehicle, 0, len(vehicleIDs))
	for _, id := range vehicleIDs {
		if vehicle, ok := s.vehicles[id]; ok {
			vehicles = append(vehicles, vehicle)
		}
	}
	return vehicles, nil
}

// ListVehicles returns vehicles matching the filter, paginated, with the total count
func (s *MemoryStore) ListVehicles(ctx context.Context, filter VehicleFilter, page, limit int) ([]model.Vehicle, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]model.Vehicle, 0)
	for _, vehicle := range s.vehicles {
		if s.matchVehicleFilter(vehicle, filter) {
			matched = append(matched, vehicle)
		}
	}
	// stable persisted order: insertion order
	sort.Slice(matched, func(i, j int) bool {
		return s.vehicleSeq[matched[i].VehicleID] < s.vehicleSeq[matched[j].VehicleID]
	})

	total := int64(len(matched))
	return paginate(matched, page, limit), total, nil
}

func (s *MemoryStore) matchVehicleFilter(v model.Vehicle, f VehicleFilter) bool {
	if f.Status != "" && v.Status != f.Status {
		return false
	}
	if f.Brand != "" && v.Brand != f.Brand {
		return false
	}
	if f.Model != "" && v.Model != f.Model {
		return false
	}
	if f.PriceMin > 0 && v.Price < f.PriceMin {
		return false
	}
	if f.PriceMax > 0 && v.Price > f.PriceMax {
		return false
	}
	if f.Location != "" && v.Location != f.Location {
		return false
	}
	if f.MileageMax > 0 && v.Mileage > f.MileageMax {
		return false
	}
	if f.Color != "" && v.Color != f.Color {
		return false
	}
	if f.Condition != "" && v.Condition != f.Condition {
		return false
	}
	return true
}

// ListCandidates returns recommendation candidates, newest first
func (s *MemoryStore) ListCandidates(ctx context.Context, filter CandidateFilter) ([]model.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	excluded := make(map[string]bool, len(filter.ExcludeIDs))
	for _, id := range filter.ExcludeIDs {
		excluded[id] = true
	}

	matched := make([]model.Vehicle, 0)
	for _, vehicle := range s.vehicles {
		if excluded[vehicle.VehicleID] {
			continue
		}
		if s.matchCandidateFilter(vehicle, filter) {
			matched = append(matched, vehicle)
		}
	}

	// newest first, insertion order breaking creation-time ties
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return s.vehicleSeq[matched[i].VehicleID] > s.vehicleSeq[matched[j].VehicleID]
	})

	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func (s *MemoryStore) matchCandidateFilter(v model.Vehicle, f CandidateFilter) bool {
	if f.Status != "" && v.Status != f.Status {
		return false
	}
	// brand and model groups are OR-joined
	if len(f.Brands) > 0 || len(f.Models) > 0 {
		if !contains(f.Brands, v.Brand) && !contains(f.Models, v.Model) {
			return false
		}
	}
	if f.PriceMin > 0 && f.PriceMax > 0 && (v.Price < f.PriceMin || v.Price > f.PriceMax) {
		return false
	}
	if len(f.Locations) > 0 && !contains(f.Locations, v.Location) {
		return false
	}
	if f.YearMin > 0 && f.YearMax > 0 && (v.Year < f.YearMin || v.Year > f.YearMax) {
		return false
	}
	if len(f.Conditions) > 0 && !contains(f.Conditions, v.Condition) {
		return false
	}
	return true
}

// CreateAuction stores an auction
func (s *MemoryStore) CreateAuction(ctx context.Context, auction model.Auction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	auction.Vehicle = nil
	auction.Seller = nil
	auction.Bids = nil
	s.auctions[auction.AuctionID] = auction
	s.auctionOrder = append(s.auctionOrder, auction.AuctionID)
	return nil
}

// GetAuction returns an auction with vehicle, seller, and bids (each with bidder) attached
func (s *MemoryStore) GetAuction(ctx context.Context, auctionID string) (model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	auction, ok := s.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, marketerrors.ErrAuctionNotFound)
	}

	if vehicle, err := s.getVehicleLocked(auction.VehicleID); err == nil {
		auction.Vehicle = &vehicle
	}
	if seller, ok := s.users[auction.SellerID]; ok {
		auction.Seller = &seller
	}
	auction.Bids = s.bidsWithBiddersLocked(auctionID)
	return auction, nil
}

// GetAuctionBasic returns the auction row without relations
func (s *MemoryStore) GetAuctionBasic(ctx context.Context, auctionID string) (model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	auction, ok := s.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, marketerrors.ErrAuctionNotFound)
	}
	return auction, nil
}

// ListActiveAuctions returns active auctions in persisted order, paginated
func (s *MemoryStore) ListActiveAuctions(ctx context.Context, page, limit int) ([]model.Auction, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]model.Auction, 0)
	for _, id := range s.auctionOrder {
		auction := s.auctions[id]
		if auction.Status != model.AuctionActive {
			continue
		}
		if vehicle, err := s.getVehicleLocked(auction.VehicleID); err == nil {
			auction.Vehicle = &vehicle
		}
		matched = append(matched, auction)
	}

	total := int64(len(matched))
	return paginate(matched, page, limit), total, nil
}

// ListAuctionsByVehicle returns every auction ever created for the vehicle
func (s *MemoryStore) ListAuctionsByVehicle(ctx context.Context, vehicleID string) ([]model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]model.Auction, 0)
	for _, id := range s.auctionOrder {
		if s.auctions[id].VehicleID == vehicleID {
			matched = append(matched, s.auctions[id])
		}
	}
	return matched, nil
}

// AcceptBid records the bid and raises the highest bid under one lock.
// The amount check and both writes happen inside the same critical section,
// so racing bidders cannot both pass the check.
func (s *MemoryStore) AcceptBid(ctx context.Context, auctionID string, bid model.Bid) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	auction, ok := s.auctions[auctionID]
	if !ok {
		return fmt.Errorf("accept bid for auction %s: %w", auctionID, marketerrors.ErrAuctionNotFound)
	}
	if bid.Amount <= auction.HighestOrStart() {
		return fmt.Errorf("accept bid for auction %s: current highest is %.2f: %w",
			auctionID, auction.HighestOrStart(), marketerrors.ErrBidTooLow)
	}

	s.bids[auctionID] = append(s.bids[auctionID], bid)
	amount := bid.Amount
	auction.CurrentHighestBid = &amount
	auction.UpdatedAt = bid.CreatedAt
	s.auctions[auctionID] = auction
	return nil
}

// ListBids returns the auction's bids ordered by amount descending
func (s *MemoryStore) ListBids(ctx context.Context, auctionID string) ([]model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.auctions[auctionID]; !ok {
		return nil, fmt.Errorf("list bids for auction %s: %w", auctionID, marketerrors.ErrAuctionNotFound)
	}

	bids := s.bidsWithBiddersLocked(auctionID)
	sort.SliceStable(bids, func(i, j int) bool { return bids[i].Amount > bids[j].Amount })
	return bids, nil
}

func (s *MemoryStore) bidsWithBiddersLocked(auctionID string) []model.Bid {
	bids := append([]model.Bid(nil), s.bids[auctionID]...)
	for i := range bids {
		if bidder, ok := s.users[bids[i].BidderID]; ok {
			bids[i].Bidder = &bidder
		}
	}
	return bids
}

// CreateInteraction appends an interaction to the log
func (s *MemoryStore) CreateInteraction(ctx context.Context, interaction model.UserInteraction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	interaction.Vehicle = nil
	s.interactions = append(s.interactions, interaction)
	return nil
}

// ListInteractionsSince returns the user's interactions since cutoff, newest first
func (s *MemoryStore) ListInteractionsSince(ctx context.Context, userID string, cutoff time.Time) ([]model.UserInteraction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]model.UserInteraction, 0)
	// walk backwards so the result is newest first
	for i := len(s.interactions) - 1; i >= 0; i-- {
		interaction := s.interactions[i]
		if interaction.UserID != userID || interaction.CreatedAt.Before(cutoff) {
			continue
		}
		if interaction.VehicleID != "" {
			if vehicle, ok := s.vehicles[interaction.VehicleID]; ok {
				interaction.Vehicle = &vehicle
			}
		}
		matched = append(matched, interaction)
	}
	return matched, nil
}

// RecentlyViewedVehicleIDs returns vehicle IDs of the most recent views, newest first
func (s *MemoryStore) RecentlyViewedVehicleIDs(ctx context.Context, userID string, limit int) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, limit)
	for i := len(s.interactions) - 1; i >= 0 && len(ids) < limit; i-- {
		interaction := s.interactions[i]
		if interaction.UserID == userID && interaction.Type == model.InteractionView && interaction.VehicleID != "" {
			ids = append(ids, interaction.VehicleID)
		}
	}
	return ids, nil
}

func paginate[T any](items []T, page, limit int) []T {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		return items
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return append([]T(nil), items[start:end]...)
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
