package entity

// WalletTransaction is one movement on the customer's wallet balance.
type WalletTransaction struct {
	TransactionID   string  `json:"transaction_id"`
	Credit          float64 `json:"credit"`
	Debit           float64 `json:"debit"`
	BalanceAfter    float64 `json:"balance"`
	TransactionType string  `json:"transaction_type,omitempty"`
	CreatedAt       string  `json:"created_at,omitempty"`
}

// WalletBonus is a promotional top-up bonus offer.
type WalletBonus struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	MinimumAdd  float64 `json:"minimum_add_amount,omitempty"`
	BonusAmount float64 `json:"bonus_amount,omitempty"`
}

// AddFundPayload is the payload for topping up the wallet.
type AddFundPayload struct {
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" validate:"required"`
}

// LoyaltyTransaction is one movement on the customer's loyalty points.
type LoyaltyTransaction struct {
	TransactionID   string  `json:"transaction_id"`
	Credit          float64 `json:"credit"`
	Debit           float64 `json:"debit"`
	TransactionType string  `json:"transaction_type,omitempty"`
	CreatedAt       string  `json:"created_at,omitempty"`
}

// PointTransferPayload converts loyalty points into wallet funds.
type PointTransferPayload struct {
	Point int `json:"point" validate:"required,gt=0"`
}
