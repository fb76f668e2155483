package entity

// Notification is an announcement delivered to the customer's inbox.
// Background refresh of this list is non-critical; failures there are
// logged, never surfaced as blocking errors.
type Notification struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_full_url,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}
