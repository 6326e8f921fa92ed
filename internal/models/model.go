package models

import "time"

// User represents a marketplace participant
type User struct {
	UserID    string    `json:"user_id" gorm:"primaryKey;column:user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Vehicle represents a listed vehicle
type Vehicle struct {
	VehicleID        string    `json:"vehicle_id" gorm:"primaryKey;column:vehicle_id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Brand            string    `json:"brand"`
	Model            string    `json:"model"`
	Year             int       `json:"year"`
	Mileage          int       `json:"mileage"`
	Color            string    `json:"color"`
	Condition        string    `json:"condition"`
	Price            float64   `json:"price"`
	Location         string    `json:"location"`
	Status           string    `json:"status"`
	AftermarketParts []string  `json:"aftermarket_parts,omitempty" gorm:"serializer:json"`
	MissingParts     []string  `json:"missing_parts,omitempty" gorm:"serializer:json"`
	Images           []string  `json:"images" gorm:"serializer:json"`
	UserID           string    `json:"user_id"`
	Owner            *User     `json:"owner,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Vehicle status values. Only available vehicles are listed or recommended.
const (
	VehicleAvailable = "available"
	VehicleInAuction = "in_auction"
	VehicleSold      = "sold"
)

// Auction is a time-boxed sale of one vehicle with an ascending highest bid
type Auction struct {
	AuctionID         string    `json:"auction_id" gorm:"primaryKey;column:auction_id"`
	VehicleID         string    `json:"vehicle_id"`
	Vehicle           *Vehicle  `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
	SellerID          string    `json:"seller_id"`
	Seller            *User     `json:"seller,omitempty" gorm:"foreignKey:SellerID"`
	StartPrice        float64   `json:"start_price"`
	CurrentHighestBid *float64  `json:"current_highest_bid"`
	Deadline          time.Time `json:"deadline"`
	Status            string    `json:"status"`
	Bids              []Bid     `json:"bids,omitempty" gorm:"foreignKey:AuctionID"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// AuctionActive is the only status the engine ever sets. Auctions are not
// transitioned after the deadline passes; PlaceBid rejects late bids instead.
const AuctionActive = "active"

// HighestOrStart returns the current highest bid, falling back to the start
// price when no bid has been accepted yet.
func (a *Auction) HighestOrStart() float64 {
	if a.CurrentHighestBid != nil {
		return *a.CurrentHighestBid
	}
	return a.StartPrice
}

// Bid is an immutable offer against an auction
type Bid struct {
	BidID     string    `json:"bid_id" gorm:"primaryKey;column:bid_id"`
	AuctionID string    `json:"auction_id"`
	BidderID  string    `json:"bidder_id"`
	Bidder    *User     `json:"bidder,omitempty" gorm:"foreignKey:BidderID"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}
