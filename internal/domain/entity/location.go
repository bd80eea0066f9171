package entity

// Location is a point on the map plus the free-text address it was geocoded from.
type Location struct {
	Latitude  float64 `json:"latitude" firestore:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" firestore:"longitude" validate:"longitude"`
	Address   string  `json:"address,omitempty" firestore:"address,omitempty"`
	City      string  `json:"city,omitempty" firestore:"city,omitempty"`
	State     string  `json:"state,omitempty" firestore:"state,omitempty"`
	ZipCode   string  `json:"zip_code,omitempty" firestore:"zipCode,omitempty"`
}
