package models

type Review struct {
	ID      string  `json:"_id,omitempty"`
	Name    string  `json:"name"`
	Details string  `json:"details"`
	Rating  float64 `json:"rating"`
}
