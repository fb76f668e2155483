package entity

// Order is the client-side view of a placed order.
type Order struct {
	ID             int     `json:"id"`
	OrderStatus    string  `json:"order_status"`
	OrderAmount    float64 `json:"order_amount"`
	PaymentMethod  string  `json:"payment_method,omitempty"`
	PaymentStatus  string  `json:"payment_status,omitempty"`
	RestaurantID   int     `json:"restaurant_id,omitempty"`
	RestaurantName string  `json:"restaurant_name,omitempty"`
	DeliveryTime   string  `json:"delivery_time,omitempty"`
	CreatedAt      string  `json:"created_at,omitempty"`
}

// OrderLine is one item of an order being placed.
type OrderLine struct {
	FoodID   int     `json:"food_id" validate:"required"`
	Quantity int     `json:"quantity" validate:"required,min=1"`
	Price    float64 `json:"price,omitempty"`
}

// PlaceOrderPayload is the payload for placing a new order.
type PlaceOrderPayload struct {
	Cart           []OrderLine `json:"cart" validate:"required,min=1,dive"`
	RestaurantID   int         `json:"restaurant_id" validate:"required"`
	AddressID      int         `json:"address_id,omitempty"`
	OrderAmount    float64     `json:"order_amount" validate:"required"`
	PaymentMethod  string      `json:"payment_method" validate:"required"`
	OrderType      string      `json:"order_type,omitempty"`
	CouponCode     string      `json:"coupon_code,omitempty"`
	OrderNote      string      `json:"order_note,omitempty"`
	Latitude       float64     `json:"latitude,omitempty"`
	Longitude      float64     `json:"longitude,omitempty"`
	ContactNumber  string      `json:"contact_person_number,omitempty"`
	ScheduleAt     string      `json:"schedule_at,omitempty"`
	DeliveryCharge float64     `json:"delivery_charge,omitempty"`
}

// OrderTracking is the courier/kitchen progress for a running order.
type OrderTracking struct {
	ID            int     `json:"id"`
	OrderStatus   string  `json:"order_status"`
	DeliverymanID int     `json:"delivery_man_id,omitempty"`
	Latitude      float64 `json:"latitude,omitempty"`
	Longitude     float64 `json:"longitude,omitempty"`
	EstimatedTime string  `json:"estimated_time,omitempty"`
}

// CancellationReason is a backend-provided reason option for cancelling.
type CancellationReason struct {
	ID     int    `json:"id"`
	Reason string `json:"reason"`
}

// RefundReason is a backend-provided reason option for a refund request.
type RefundReason struct {
	ID     int    `json:"id"`
	Reason string `json:"reason"`
}

// RefundRequest is the payload for requesting a refund on an order.
type RefundRequest struct {
	OrderID      int    `json:"order_id" validate:"required"`
	ReasonID     int    `json:"refund_reason_id,omitempty"`
	CustomerNote string `json:"customer_note,omitempty"`
}

// PaymentMethod is an online payment option exposed by the backend.
type PaymentMethod struct {
	ID       int    `json:"id"`
	Gateway  string `json:"gateway"`
	Title    string `json:"gateway_title,omitempty"`
	ImageURL string `json:"gateway_image_full_url,omitempty"`
}

// OfflinePaymentMethod is a manual payment channel (bank transfer etc.).
type OfflinePaymentMethod struct {
	ID          int    `json:"id"`
	MethodName  string `json:"method_name"`
	MethodField string `json:"method_fields,omitempty"`
	Status      int    `json:"status,omitempty"`
}

// OfflinePaymentSubmission is the payload for submitting offline payment info.
type OfflinePaymentSubmission struct {
	OrderID  int               `json:"order_id" validate:"required"`
	MethodID int               `json:"method_id" validate:"required"`
	Fields   map[string]string `json:"method_fields,omitempty"`
	Note     string            `json:"customer_note,omitempty"`
}
