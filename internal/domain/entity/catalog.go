package entity

// Category is a catalog grouping (possibly nested through parent IDs).
type Category struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ParentID int    `json:"parent_id"`
	ImageURL string `json:"image_full_url,omitempty"`
}

// Product is a purchasable food item offered by a restaurant.
type Product struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price"`
	Discount     float64 `json:"discount,omitempty"`
	RestaurantID int     `json:"restaurant_id"`
	CategoryID   int     `json:"category_id,omitempty"`
	AvgRating    float64 `json:"avg_rating,omitempty"`
	RatingCount  int     `json:"rating_count,omitempty"`
	ImageURL     string  `json:"image_full_url,omitempty"`
}

// Restaurant is a vendor serving one or more zones.
type Restaurant struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Address      string  `json:"address,omitempty"`
	Latitude     string  `json:"latitude,omitempty"`
	Longitude    string  `json:"longitude,omitempty"`
	AvgRating    float64 `json:"avg_rating,omitempty"`
	RatingCount  int     `json:"rating_count,omitempty"`
	DeliveryTime string  `json:"delivery_time,omitempty"`
	LogoURL      string  `json:"logo_full_url,omitempty"`
	Open         int     `json:"open,omitempty"`
}

// Review is a customer rating for a product or restaurant.
type Review struct {
	ID         int     `json:"id"`
	Rating     float64 `json:"rating"`
	Comment    string  `json:"comment,omitempty"`
	CustomerID int     `json:"customer_id,omitempty"`
}

// ReviewSubmission is the payload for submitting a product review.
type ReviewSubmission struct {
	ProductID     int     `json:"food_id" validate:"required"`
	DeliveryManID int     `json:"delivery_man_id,omitempty"`
	Rating        float64 `json:"rating" validate:"required,min=1,max=5"`
	Comment       string  `json:"comment,omitempty"`
	OrderID       int     `json:"order_id,omitempty"`
}

// Banner is a promotional banner scoped to a zone and coordinate pair.
type Banner struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Type     string `json:"type,omitempty"`
	ImageURL string `json:"image_full_url,omitempty"`
}

// Coupon is a discount code applicable to an order.
type Coupon struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Code         string  `json:"code"`
	Discount     float64 `json:"discount"`
	DiscountType string  `json:"discount_type,omitempty"`
	MinPurchase  float64 `json:"min_purchase,omitempty"`
	ExpireDate   string  `json:"expire_date,omitempty"`
}
