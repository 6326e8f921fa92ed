package helpers

// Request/Response DTOs
type CreateAuctionRequest struct {
	VehicleID  string  `json:"vehicle_id" binding:"required"`
	StartPrice float64 `json:"start_price" binding:"required,gt=0"`
	Deadline   string  `json:"deadline" binding:"required"`
}

type PlaceBidRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type BidResponse struct {
	BidID     string  `json:"bid_id"`
	AuctionID string  `json:"auction_id"`
	BidderID  string  `json:"bidder_id"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"created_at"`
}

type AuctionResponse struct {
	AuctionID         string   `json:"auction_id"`
	VehicleID         string   `json:"vehicle_id"`
	SellerID          string   `json:"seller_id"`
	StartPrice        float64  `json:"start_price"`
	CurrentHighestBid *float64 `json:"current_highest_bid"`
	Deadline          string   `json:"deadline"`
	Status            string   `json:"status"`
	CreatedAt         string   `json:"created_at"`
}
