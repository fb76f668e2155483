package entity

// Address is a delivery address book entry. The backend owns the record;
// the client performs CRUD round trips and keeps no cache across calls.
// Field names follow the backend wire format.
type Address struct {
	ID                  int     `json:"id,omitempty"`
	Address             string  `json:"address" validate:"required"`
	Latitude            float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude           float64 `json:"longitude" validate:"min=-180,max=180"`
	AddressType         string  `json:"address_type" validate:"required"`
	ContactPersonName   string  `json:"contact_person_name" validate:"required"`
	ContactPersonNumber string  `json:"contact_person_number" validate:"required"`
	Road                string  `json:"road,omitempty"`
	House               string  `json:"house,omitempty"`
	Floor               string  `json:"floor,omitempty"`
}
