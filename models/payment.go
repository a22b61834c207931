package models

import "time"

type Payment struct {
	ID            string    `json:"_id,omitempty"`
	Email         string    `json:"email" binding:"required"`
	TransactionID string    `json:"transactionId"`
	Price         float64   `json:"price"`
	Date          time.Time `json:"date"`
	Quantity      int       `json:"quantity"`
	Status        string    `json:"status"`
	CartItemsID   []string  `json:"cartItemsId"`
	MenuItems     []string  `json:"menuItems"`
	ItemNames     []string  `json:"itemNames"`
}
