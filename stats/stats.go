package stats

import (
	"BistroBoss/models"
	"sort"
)

// 將付款紀錄的menuItems對應到菜單後依分類統計
// 同一筆付款重複的品項只計一次，找不到的品項略過
func Aggregate(payments []models.Payment, menu []models.MenuItem) []models.CategoryStat {
	byID := make(map[string]models.MenuItem, len(menu))
	for _, item := range menu {
		byID[item.ID] = item
	}

	groups := make(map[string]*models.CategoryStat)
	for _, payment := range payments {
		seen := make(map[string]bool, len(payment.MenuItems))
		for _, ref := range payment.MenuItems {
			item, ok := byID[ref]
			if !ok || seen[ref] {
				continue
			}
			seen[ref] = true
			group, ok := groups[item.Category]
			if !ok {
				group = &models.CategoryStat{Category: item.Category}
				groups[item.Category] = group
			}
			group.Count++
			group.TotalPrice += item.Price
		}
	}

	result := make([]models.CategoryStat, 0, len(groups))
	for _, group := range groups {
		result = append(result, *group)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Category < result[j].Category
	})
	return result
}
