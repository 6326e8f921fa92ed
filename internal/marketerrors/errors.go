package marketerrors

import "errors"

// Repository-level errors
var (
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrAuctionNotFound = errors.New("auction not found")
	ErrUserNotFound    = errors.New("user not found")
)

// business logic errors
var (
	ErrInvalidInput            = errors.New("invalid input")
	ErrNotVehicleOwner         = errors.New("user does not own this vehicle")
	ErrVehicleAlreadyInAuction = errors.New("vehicle is already in an auction")
	ErrAuctionNotActive        = errors.New("auction is not active")
	ErrAuctionEnded            = errors.New("auction has ended")
	ErrBidTooLow               = errors.New("bid amount too low")
)
