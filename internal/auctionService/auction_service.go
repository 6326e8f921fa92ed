package auction

import (
	"context"
	"fmt"
	"time"

	"vehicle-marketplace/internal/marketerrors"
	model "vehicle-marketplace/internal/models"
	"vehicle-marketplace/internal/repository"
	"vehicle-marketplace/utils"
)

// AuctionService owns the auction lifecycle: creation, bid acceptance,
// highest-bid tracking, and deadline checks.
type AuctionService struct {
	auctions repository.AuctionStore
	vehicles repository.VehicleStore
	now      func() time.Time
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(auctions repository.AuctionStore, vehicles repository.VehicleStore) *AuctionService {
	return &AuctionService{
		auctions: auctions,
		vehicles: vehicles,
		now:      time.Now,
	}
}

// WithClock overrides the service's time source. Intended for tests.
func (s *AuctionService) WithClock(now func() time.Time) *AuctionService {
	s.now = now
	return s
}

// CreateAuction opens an auction for a vehicle owned by sellerID.
// A vehicle that has ever had an auction, whatever its status, cannot be
// auctioned again; the check deliberately does not filter by status.
func (s *AuctionService) CreateAuction(ctx context.Context, vehicleID, sellerID string, startPrice float64, deadline time.Time) (model.Auction, error) {
	if vehicleID == "" || sellerID == "" {
		return model.Auction{}, fmt.Errorf("service: %w - missing vehicleID or sellerID", marketerrors.ErrInvalidInput)
	}
	if startPrice <= 0 {
		return model.Auction{}, fmt.Errorf("service: %w - non-positive start price", marketerrors.ErrInvalidInput)
	}

	vehicle, err := s.vehicles.GetVehicle(ctx, vehicleID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to load vehicle %s: %w", vehicleID, err)
	}
	if vehicle.UserID != sellerID {
		utils.Warn("auction creation rejected: user does not own vehicle", map[string]any{
			"vehicle_id": vehicleID,
			"seller_id":  sellerID,
			"owner_id":   vehicle.UserID,
		})
		return model.Auction{}, fmt.Errorf("service: %w", marketerrors.ErrNotVehicleOwner)
	}

	existing, err := s.auctions.ListAuctionsByVehicle(ctx, vehicleID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to check existing auctions for vehicle %s: %w", vehicleID, err)
	}
	if len(existing) > 0 {
		utils.Warn("auction creation rejected: vehicle already in auction", map[string]any{
			"vehicle_id": vehicleID,
		})
		return model.Auction{}, fmt.Errorf("service: %w", marketerrors.ErrVehicleAlreadyInAuction)
	}

	auction := model.Auction{
		AuctionID:         utils.GenerateID(),
		VehicleID:         vehicleID,
		SellerID:          sellerID,
		StartPrice:        startPrice,
		CurrentHighestBid: nil,
		Deadline:          deadline,
		Status:            model.AuctionActive,
		CreatedAt:         s.now().UTC(),
		UpdatedAt:         s.now().UTC(),
	}

	if err := s.auctions.CreateAuction(ctx, auction); err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to create auction for vehicle %s: %w", vehicleID, err)
	}

	utils.Info("auction created", map[string]any{
		"auction_id":  auction.AuctionID,
		"vehicle_id":  vehicleID,
		"seller_id":   sellerID,
		"start_price": startPrice,
	})
	return auction, nil
}

// PlaceBid validates and records a bid against an active auction.
// Checks run in order: auction exists, status is active, deadline has not
// passed, amount is strictly above the current highest bid (start price
// when none). The amount check is re-run atomically by the store, so two
// bidders racing the same auction cannot both win the comparison.
func (s *AuctionService) PlaceBid(ctx context.Context, auctionID, bidderID string, amount float64) (model.Bid, error) {
	if auctionID == "" || bidderID == "" {
		return model.Bid{}, fmt.Errorf("service: %w - missing auctionID or bidderID", marketerrors.ErrInvalidInput)
	}
	if amount <= 0 {
		return model.Bid{}, fmt.Errorf("service: %w - non-positive bid amount", marketerrors.ErrInvalidInput)
	}

	auction, err := s.auctions.GetAuctionBasic(ctx, auctionID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}
	if auction.Status != model.AuctionActive {
		return model.Bid{}, fmt.Errorf("service: %w - status is %q", marketerrors.ErrAuctionNotActive, auction.Status)
	}
	if s.now().After(auction.Deadline) {
		return model.Bid{}, fmt.Errorf("service: %w - deadline was %s", marketerrors.ErrAuctionEnded, auction.Deadline.UTC().Format(time.RFC3339))
	}
	if amount <= auction.HighestOrStart() {
		return model.Bid{}, fmt.Errorf("service: %w - current highest is %.2f", marketerrors.ErrBidTooLow, auction.HighestOrStart())
	}

	bid := model.Bid{
		BidID:     utils.GenerateID(),
		AuctionID: auctionID,
		BidderID:  bidderID,
		Amount:    amount,
		CreatedAt: s.now().UTC(),
	}

	if err := s.auctions.AcceptBid(ctx, auctionID, bid); err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to accept bid on auction %s by user %s: %w", auctionID, bidderID, err)
	}

	utils.Info("bid accepted", map[string]any{
		"bid_id":     bid.BidID,
		"auction_id": auctionID,
		"bidder_id":  bidderID,
		"amount":     amount,
	})
	return bid, nil
}

// GetAuction returns the auction with vehicle, seller, and bids attached
func (s *AuctionService) GetAuction(ctx context.Context, auctionID string) (model.Auction, error) {
	if auctionID == "" {
		return model.Auction{}, fmt.Errorf("service: %w - empty auction ID", marketerrors.ErrInvalidInput)
	}

	auction, err := s.auctions.GetAuction(ctx, auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	return auction, nil
}

// ListAuctions returns active auctions, paginated
func (s *AuctionService) ListAuctions(ctx context.Context, page, limit int) ([]model.Auction, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	auctions, total, err := s.auctions.ListActiveAuctions(ctx, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("service: failed to list auctions: %w", err)
	}
	return auctions, total, nil
}

// ListBids returns all bids for an auction ordered by amount descending
func (s *AuctionService) ListBids(ctx context.Context, auctionID string) ([]model.Bid, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("service: %w - empty auction ID", marketerrors.ErrInvalidInput)
	}

	bids, err := s.auctions.ListBids(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bids for auction %s: %w", auctionID, err)
	}
	return bids, nil
}
