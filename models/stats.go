package models

// 依分類統計的訂單數量與營收
type CategoryStat struct {
	Category   string  `json:"category"`
	Count      int64   `json:"count"`
	TotalPrice float64 `json:"totalPrice"`
}

type AdminState struct {
	Revenue  float64 `json:"revenue"`
	Users    int64   `json:"users"`
	Products int64   `json:"products"`
	Orders   int64   `json:"orders"`
}
