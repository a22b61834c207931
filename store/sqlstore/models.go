package sqlstore

import (
	"BistroBoss/models"
	"gorm.io/gorm"
	"strconv"
	"time"
)

type MenuItem struct {
	gorm.Model
	Name     string `gorm:"not null"`
	Recipe   string
	Image    string
	Category string `gorm:"index;not null"`
	Price    float64
}

type Review struct {
	gorm.Model
	Name    string
	Details string
	Rating  float64
}

type CartItem struct {
	gorm.Model
	MenuItemID string
	Email      string `gorm:"index;not null"`
	Name       string
	Image      string
	Price      float64
}

type User struct {
	gorm.Model
	Name     string
	Email    string `gorm:"uniqueIndex;size:191;not null"`
	PhotoURL string
	Role     string `gorm:"not null"`
}

type Payment struct {
	gorm.Model
	Email         string `gorm:"index;not null"`
	TransactionID string
	Price         float64
	Date          time.Time
	Quantity      int
	Status        string
	CartItemsID   []string `gorm:"serializer:json"`
	MenuItems     []string `gorm:"serializer:json"`
	ItemNames     []string `gorm:"serializer:json"`
}

// 建立或更新資料表
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&MenuItem{},
		&Review{},
		&CartItem{},
		&User{},
		&Payment{},
	)
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func (m MenuItem) model() models.MenuItem {
	return models.MenuItem{
		ID:       formatID(m.ID),
		Name:     m.Name,
		Recipe:   m.Recipe,
		Image:    m.Image,
		Category: m.Category,
		Price:    m.Price,
	}
}

func (r Review) model() models.Review {
	return models.Review{
		ID:      formatID(r.ID),
		Name:    r.Name,
		Details: r.Details,
		Rating:  r.Rating,
	}
}

func (c CartItem) model() models.CartItem {
	return models.CartItem{
		ID:         formatID(c.ID),
		MenuItemID: c.MenuItemID,
		Email:      c.Email,
		Name:       c.Name,
		Image:      c.Image,
		Price:      c.Price,
	}
}

func (u User) model() models.User {
	return models.User{
		ID:       formatID(u.ID),
		Name:     u.Name,
		Email:    u.Email,
		PhotoURL: u.PhotoURL,
		Role:     u.Role,
	}
}

func (p Payment) model() models.Payment {
	return models.Payment{
		ID:            formatID(p.ID),
		Email:         p.Email,
		TransactionID: p.TransactionID,
		Price:         p.Price,
		Date:          p.Date,
		Quantity:      p.Quantity,
		Status:        p.Status,
		CartItemsID:   p.CartItemsID,
		MenuItems:     p.MenuItems,
		ItemNames:     p.ItemNames,
	}
}
