package entity

// Location is the user's chosen delivery coordinate pair and its zone
// association. ZoneID is resolved asynchronously after the coordinates are
// set, so a location may exist transiently with an empty ZoneID.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	ZoneID    string  `json:"zoneId,omitempty"`
	Address   string  `json:"address,omitempty"` // Reverse-geocoded display address, best effort.
}

// HasZone reports whether the zone association has been resolved.
func (l Location) HasZone() bool {
	return l.ZoneID != ""
}

// Zone is a backend-defined geographic service area used to scope
// catalog and pricing queries.
type Zone struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Status int     `json:"status"`
	Lat    float64 `json:"lat,omitempty"`
	Lng    float64 `json:"lng,omitempty"`
}

// Position is a device-acquired geographic fix.
type Position struct {
	Latitude  float64 `json:"latitude"`           // The geographic latitude in decimal degrees.
	Longitude float64 `json:"longitude"`          // The geographic longitude in decimal degrees.
	Accuracy  float64 `json:"accuracy,omitempty"` // Horizontal accuracy radius in meters, zero when unknown.
	AgeMs     int64   `json:"age_ms,omitempty"`   // Age of the fix in milliseconds at the time it was served.
}
