package models

type CartItem struct {
	ID         string  `json:"_id,omitempty"`
	MenuItemID string  `json:"menuItemId"`
	Email      string  `json:"email"`
	Name       string  `json:"name"`
	Image      string  `json:"image"`
	Price      float64 `json:"price"`
}
