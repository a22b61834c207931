package stats

import (
	"BistroBoss/models"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestAggregate(t *testing.T) {
	menu := []models.MenuItem{
		{ID: "m1", Name: "Caesar", Category: "Salad", Price: 10},
		{ID: "m2", Name: "Greek", Category: "Salad", Price: 15},
		{ID: "m3", Name: "Margherita", Category: "Pizza", Price: 12.5},
		{ID: "m4", Name: "Tom Yum", Category: "Soup", Price: 8},
	}

	tests := []struct {
		name     string
		payments []models.Payment
		want     []models.CategoryStat
	}{
		{
			name:     "no payments",
			payments: nil,
			want:     []models.CategoryStat{},
		},
		{
			name: "same category accumulates",
			payments: []models.Payment{
				{MenuItems: []string{"m1"}},
				{MenuItems: []string{"m2"}},
			},
			want: []models.CategoryStat{
				{Category: "Salad", Count: 2, TotalPrice: 25},
			},
		},
		{
			name: "multiple categories sorted by name",
			payments: []models.Payment{
				{MenuItems: []string{"m1", "m3"}},
				{MenuItems: []string{"m3"}},
			},
			want: []models.CategoryStat{
				{Category: "Pizza", Count: 2, TotalPrice: 25},
				{Category: "Salad", Count: 1, TotalPrice: 10},
			},
		},
		{
			name: "unknown references are dropped",
			payments: []models.Payment{
				{MenuItems: []string{"missing", "m4"}},
			},
			want: []models.CategoryStat{
				{Category: "Soup", Count: 1, TotalPrice: 8},
			},
		},
		{
			name: "repeated item in one payment joins once",
			payments: []models.Payment{
				{MenuItems: []string{"m4", "m4"}},
				{MenuItems: []string{"m4"}},
			},
			want: []models.CategoryStat{
				{Category: "Soup", Count: 2, TotalPrice: 16},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Aggregate(tt.payments, menu))
		})
	}
}
