package entity

// CartItem is one line of the server-side cart, mirrored locally.
// The local list is a cache refreshed after each own mutation; the
// backend remains authoritative.
type CartItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// CartMutation is the payload for cart add/update calls.
type CartMutation struct {
	ID       int `json:"id" validate:"required"`
	Quantity int `json:"quantity" validate:"required,min=1"`
}
