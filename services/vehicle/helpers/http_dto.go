package helpers

// Request/Response DTOs
type CreateVehicleRequest struct {
	Title            string   `json:"title" binding:"required"`
	Description      string   `json:"description"`
	Brand            string   `json:"brand" binding:"required"`
	Model            string   `json:"model" binding:"required"`
	Year             int      `json:"year"`
	Mileage          int      `json:"mileage"`
	Color            string   `json:"color"`
	Condition        string   `json:"condition"`
	Price            float64  `json:"price" binding:"required,gt=0"`
	Location         string   `json:"location"`
	AftermarketParts []string `json:"aftermarket_parts"`
	MissingParts     []string `json:"missing_parts"`
	Images           []string `json:"images"`
}
