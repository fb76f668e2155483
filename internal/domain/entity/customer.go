package entity

// Customer is the registered user's profile as owned by the backend.
type Customer struct {
	ID            int     `json:"id"`
	Name          string  `json:"f_name"`
	LastName      string  `json:"l_name,omitempty"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	WalletBalance float64 `json:"wallet_balance,omitempty"`
	LoyaltyPoint  int     `json:"loyalty_point,omitempty"`
	OrderCount    int     `json:"order_count,omitempty"`
	ImageURL      string  `json:"image_full_url,omitempty"`
}

// ProfileUpdate is the payload for updating the customer profile.
type ProfileUpdate struct {
	Name     string `json:"f_name" validate:"required"`
	LastName string `json:"l_name,omitempty"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password,omitempty"`
}
