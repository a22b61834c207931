package models

type MenuItem struct {
	ID       string  `json:"_id,omitempty"`
	Name     string  `json:"name" binding:"required"`
	Recipe   string  `json:"recipe"`
	Image    string  `json:"image"`
	Category string  `json:"category" binding:"required"`
	Price    float64 `json:"price"`
}
