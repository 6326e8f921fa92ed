package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"vehicle-marketplace/internal/marketerrors"
	model "vehicle-marketplace/internal/models"
)

// GormStore is the MySQL-backed implementation of Store
type GormStore struct {
	db *gorm.DB
}

// OpenMySQL connects to MySQL and migrates the marketplace schema
func OpenMySQL(dsn string) (*GormStore, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("repository: failed to connect to mysql: %w", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Vehicle{},
		&model.Auction{},
		&model.Bid{},
		&model.UserInteraction{},
	); err != nil {
		return nil, fmt.Errorf("repository: failed to migrate schema: %w", err)
	}

	return &GormStore{db: db}, nil
}

// NewGormStore wraps an existing gorm connection
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// CreateUser stores a user
func (s *GormStore) CreateUser(ctx context.Context, user model.User) error {
	return s.db.WithContext(ctx).Create(&user).Error
}

// GetUser returns a user by ID
func (s *GormStore) GetUser(ctx context.Context, userID string) (model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).First(&user, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, marketerrors.ErrUserNotFound)
	}
	return user, err
}

// CreateVehicle stores a vehicle
func (s *GormStore) CreateVehicle(ctx context.Context, vehicle model.Vehicle) error {
	vehicle.Owner = nil
	return s.db.WithContext(ctx).Create(&vehicle).Error
}

// GetVehicle returns a vehicle with its owner attached
func (s *GormStore) GetVehicle(ctx context.Context, vehicleID string) (model.Vehicle, error) {
	var vehicle model.Vehicle
	err := s.db.WithContext(ctx).Preload("Owner").First(&vehicle, "vehicle_id = ?", vehicleID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Vehicle{}, fmt.Errorf("get vehicle %s: %w", vehicleID, marketerrors.ErrVehicleNotFound)
	}
	return vehicle, err
}

// GetVehicles returns the vehicles for the given IDs
func (s *GormStore) GetVehicles(ctx context.Context, vehicleIDs []string) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	err := s.db.WithContext(ctx).Where("vehicle_id IN ?", vehicleIDs).Find(&vehicles).Error
	return vehicles, err
}

// ListVehicles returns vehicles matching the filter, paginated, with the total count
func (s *GormStore) ListVehicles(ctx context.Context, filter VehicleFilter, page, limit int) ([]model.Vehicle, int64, error) {
	query := s.db.WithContext(ctx).Model(&model.Vehicle{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Brand != "" {
		query = query.Where("brand = ?", filter.Brand)
	}
	if filter.Model != "" {
		query = query.Where("model = ?", filter.Model)
	}
	if filter.PriceMin > 0 {
		query = query.Where("price >= ?", filter.PriceMin)
	}
	if filter.PriceMax > 0 {
		query = query.Where("price <= ?", filter.PriceMax)
	}
	if filter.Location != "" {
		query = query.Where("location = ?", filter.Location)
	}
	if filter.MileageMax > 0 {
		query = query.Where("mileage <= ?", filter.MileageMax)
	}
	if filter.Color != "" {
		query = query.Where("color = ?", filter.Color)
	}
	if filter.Condition != "" {
		query = query.Where("`condition` = ?", filter.Condition)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	var vehicles []model.Vehicle
	err := query.Offset((page - 1) * limit).Limit(limit).Find(&vehicles).Error
	return vehicles, total, err
}

// ListCandidates returns recommendation candidates, newest first
func (s *GormStore) ListCandidates(ctx context.Context, filter CandidateFilter) ([]model.Vehicle, error) {
	query := s.db.WithContext(ctx).Model(&model.Vehicle{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if len(filter.ExcludeIDs) > 0 {
		query = query.Where("vehicle_id NOT IN ?", filter.ExcludeIDs)
	}
	switch {
	case len(filter.Brands) > 0 && len(filter.Models) > 0:
		query = query.Where("brand IN ? OR model IN ?", filter.Brands, filter.Models)
	case len(filter.Brands) > 0:
		query = query.Where("brand IN ?", filter.Brands)
	case len(filter.Models) > 0:
		query = query.Where("model IN ?", filter.Models)
	}
	if filter.PriceMin > 0 && filter.PriceMax > 0 {
		query = query.Where("price BETWEEN ? AND ?", filter.PriceMin, filter.PriceMax)
	}
	if len(filter.Locations) > 0 {
		query = query.Where("location IN ?", filter.Locations)
	}
	if filter.YearMin > 0 && filter.YearMax > 0 {
		query = query.Where("year BETWEEN ? AND ?", filter.YearMin, filter.YearMax)
	}
	if len(filter.Conditions) > 0 {
		query = query.Where("`condition` IN ?", filter.Conditions)
	}

	query = query.Order("created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var vehicles []model.Vehicle
	err := query.Find(&vehicles).Error
	return vehicles, err
}

// CreateAuction stores an auction
func (s *GormStore) CreateAuction(ctx context.Context, auction model.Auction) error {
	auction.Vehicle = nil
	auction.Seller = nil
	auction.Bids = nil
	return s.db.WithContext(ctx).Create(&auction).Error
}

// GetAuction returns an auction with vehicle, seller, and bids (each with bidder) attached
func (s *GormStore) GetAuction(ctx context.Context, auctionID string) (model.Auction, error) {
	var auction model.Auction
	err := s.db.WithContext(ctx).
		Preload("Vehicle").
		Preload("Vehicle.Owner").
		Preload("Seller").
		Preload("Bids").
		Preload("Bids.Bidder").
		First(&auction, "auction_id = ?", auctionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, marketerrors.ErrAuctionNotFound)
	}
	return auction, err
}

// GetAuctionBasic returns the auction row without relations
func (s *GormStore) GetAuctionBasic(ctx context.Context, auctionID string) (model.Auction, error) {
	var auction model.Auction
	err := s.db.WithContext(ctx).First(&auction, "auction_id = ?", auctionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, marketerrors.ErrAuctionNotFound)
	}
	return auction, err
}

// ListActiveAuctions returns active auctions in persisted order, paginated
func (s *GormStore) ListActiveAuctions(ctx context.Context, page, limit int) ([]model.Auction, int64, error) {
	query := s.db.WithContext(ctx).Model(&model.Auction{}).Where("status = ?", model.AuctionActive)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	var auctions []model.Auction
	err := query.Preload("Vehicle").Offset((page - 1) * limit).Limit(limit).Find(&auctions).Error
	return auctions, total, err
}

// ListAuctionsByVehicle returns every auction ever created for the vehicle
func (s *GormStore) ListAuctionsByVehicle(ctx context.Context, vehicleID string) ([]model.Auction, error) {
	var auctions []model.Auction
	err := s.db.WithContext(ctx).Where("vehicle_id = ?", vehicleID).Find(&auctions).Error
	return auctions, err
}

// AcceptBid records the bid and raises the highest bid in one transaction.
// The auction row is the serialization point: the conditional UPDATE only
// matches while the amount is strictly above the current highest (start
// price when none), so a racing higher bid makes this call fail instead of
// losing the update.
func (s *GormStore) AcceptBid(ctx context.Context, auctionID string, bid model.Bid) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Auction{}).
			Where("auction_id = ? AND ? > COALESCE(current_highest_bid, start_price)", auctionID, bid.Amount).
			Updates(map[string]any{
				"current_highest_bid": bid.Amount,
				"updated_at":          time.Now().UTC(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&model.Auction{}).Where("auction_id = ?", auctionID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return fmt.Errorf("accept bid for auction %s: %w", auctionID, marketerrors.ErrAuctionNotFound)
			}
			return fmt.Errorf("accept bid for auction %s: %w", auctionID, marketerrors.ErrBidTooLow)
		}

		bid.Bidder = nil
		return tx.Create(&bid).Error
	})
}

// ListBids returns the auction's bids ordered by amount descending
func (s *GormStore) ListBids(ctx context.Context, auctionID string) ([]model.Bid, error) {
	if _, err := s.GetAuctionBasic(ctx, auctionID); err != nil {
		return nil, err
	}

	var bids []model.Bid
	err := s.db.WithContext(ctx).
		Preload("Bidder").
		Where("auction_id = ?", auctionID).
		Order("amount DESC").
		Find(&bids).Error
	return bids, err
}

// CreateInteraction appends an interaction to the log
func (s *GormStore) CreateInteraction(ctx context.Context, interaction model.UserInteraction) error {
	interaction.Vehicle = nil
	return s.db.WithContext(ctx).Create(&interaction).Error
}

// ListInteractionsSince returns the user's interactions since cutoff, newest first
func (s *GormStore) ListInteractionsSince(ctx context.Context, userID string, cutoff time.Time) ([]model.UserInteraction, error) {
	var interactions []model.UserInteraction
	err := s.db.WithContext(ctx).
		Preload("Vehicle").
		Where("user_id = ? AND created_at >= ?", userID, cutoff).
		Order("created_at DESC").
		Find(&interactions).Error
	return interactions, err
}

// RecentlyViewedVehicleIDs returns vehicle IDs of the most recent views, newest first
func (s *GormStore) RecentlyViewedVehicleIDs(ctx context.Context, userID string, limit int) ([]string, error) {
	var ids []string
	err := s.db.WithContext(ctx).
		Model(&model.UserInteraction{}).
		Where("user_id = ? AND interaction_type = ? AND vehicle_id <> ''", userID, model.InteractionView).
		Order("created_at DESC").
		Limit(limit).
		Pluck("vehicle_id", &ids).Error
	return ids, err
}
