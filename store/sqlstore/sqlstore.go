package sqlstore

import (
	"BistroBoss/models"
	"BistroBoss/stats"
	"BistroBoss/store"
	"context"
	"fmt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"strconv"
)

func New(db *gorm.DB) *store.Store {
	return &store.Store{
		Menu:     &menuStore{db},
		Reviews:  &reviewStore{db},
		Carts:    &cartStore{db},
		Users:    &userStore{db},
		Payments: &paymentStore{db},
		Stats:    &statsStore{db},
		Close: func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	}
}

func parseID(id string) (uint, error) {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("%w: %q", store.ErrInvalidID, id)
	}
	return uint(n), nil
}

func parseIDs(ids []string) ([]uint, error) {
	parsed := make([]uint, 0, len(ids))
	for _, id := range ids {
		n, err := parseID(id)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, n)
	}
	return parsed, nil
}

func count(ctx context.Context, db *gorm.DB, model any) (int64, error) {
	var n int64
	if err := db.WithContext(ctx).Model(model).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}

type menuStore struct{ db *gorm.DB }

func (s *menuStore) Count(ctx context.Context) (int64, error) {
	return count(ctx, s.db, &MenuItem{})
}

func (s *menuStore) List(ctx context.Context) ([]models.MenuItem, error) {
	var rows []MenuItem
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	items := make([]models.MenuItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.model())
	}
	return items, nil
}

func (s *menuStore) Insert(ctx context.Context, item models.MenuItem) (*models.InsertResult, error) {
	row := MenuItem{
		Name:     item.Name,
		Recipe:   item.Recipe,
		Image:    item.Image,
		Category: item.Category,
		Price:    item.Price,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("insert menu item: %w", err)
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: formatID(row.ID)}, nil
}

func (s *menuStore) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	n, err := parseID(id)
	if err != nil {
		return nil, err
	}
	result := s.db.WithContext(ctx).Delete(&MenuItem{}, n)
	if result.Error != nil {
		return nil, fmt.Errorf("delete menu item: %w", result.Error)
	}
	return &models.DeleteResult{Acknowledged: true, DeletedCount: result.RowsAffected}, nil
}

type reviewStore struct{ db *gorm.DB }

func (s *reviewStore) List(ctx context.Context) ([]models.Review, error) {
	var rows []Review
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	reviews := make([]models.Review, 0, len(rows))
	for _, row := range rows {
		reviews = append(reviews, row.model())
	}
	return reviews, nil
}

type cartStore struct{ db *gorm.DB }

func (s *cartStore) ListByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	var rows []CartItem
	if err := s.db.WithContext(ctx).Where("email = ?", email).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	items := make([]models.CartItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.model())
	}
	return items, nil
}

func (s *cartStore) Insert(ctx context.Context, item models.CartItem) (*models.InsertResult, error) {
	row := CartItem{
		MenuItemID: item.MenuItemID,
		Email:      item.Email,
		Name:       item.Name,
		Image:      item.Image,
		Price:      item.Price,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("insert cart item: %w", err)
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: formatID(row.ID)}, nil
}

func (s *cartStore) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	return s.DeleteMany(ctx, []string{id})
}

func (s *cartStore) DeleteMany(ctx context.Context, ids []string) (*models.DeleteResult, error) {
	parsed, err := parseIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(parsed) == 0 {
		return &models.DeleteResult{Acknowledged: true}, nil
	}
	result := s.db.WithContext(ctx).Where("id IN ?", parsed).Delete(&CartItem{})
	if result.Error != nil {
		return nil, fmt.Errorf("delete cart items: %w", result.Error)
	}
	return &models.DeleteResult{Acknowledged: true, DeletedCount: result.RowsAffected}, nil
}

type userStore struct{ db *gorm.DB }

func (s *userStore) List(ctx context.Context) ([]models.User, error) {
	var rows []User
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	users := make([]models.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.model())
	}
	return users, nil
}

func (s *userStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var rows []User
	err := s.db.WithContext(ctx).Where("email = ?", email).Limit(1).Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	user := rows[0].model()
	return &user, nil
}

func (s *userStore) InsertIfAbsent(ctx context.Context, user models.User) (*models.InsertResult, bool, error) {
	row := User{
		Name:     user.Name,
		Email:    user.Email,
		PhotoURL: user.PhotoURL,
		Role:     user.Role,
	}
	//email有唯一索引，已存在時不寫入也不更新
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row)
	if result.Error != nil {
		return nil, false, fmt.Errorf("insert user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &models.InsertResult{Acknowledged: true}, false, nil
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: formatID(row.ID)}, true, nil
}

func (s *userStore) Count(ctx context.Context) (int64, error) {
	return count(ctx, s.db, &User{})
}

func (s *userStore) SetRole(ctx context.Context, id, role string) (*models.UpdateResult, error) {
	n, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var matched int64
	if err := s.db.WithContext(ctx).Model(&User{}).Where("id = ?", n).Count(&matched).Error; err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	result := s.db.WithContext(ctx).
		Model(&User{}).
		Where("id = ? AND role <> ?", n, role).
		Update("role", role)
	if result.Error != nil {
		return nil, fmt.Errorf("update user role: %w", result.Error)
	}
	return &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  matched,
		ModifiedCount: result.RowsAffected,
	}, nil
}

type paymentStore struct{ db *gorm.DB }

func (s *paymentStore) Insert(ctx context.Context, payment models.Payment) (*models.InsertResult, error) {
	if _, err := parseIDs(payment.CartItemsID); err != nil {
		return nil, err
	}
	if _, err := parseIDs(payment.MenuItems); err != nil {
		return nil, err
	}
	row := Payment{
		Email:         payment.Email,
		TransactionID: payment.TransactionID,
		Price:         payment.Price,
		Date:          payment.Date,
		Quantity:      payment.Quantity,
		Status:        payment.Status,
		CartItemsID:   payment.CartItemsID,
		MenuItems:     payment.MenuItems,
		ItemNames:     payment.ItemNames,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: formatID(row.ID)}, nil
}

func (s *paymentStore) Count(ctx context.Context) (int64, error) {
	return count(ctx, s.db, &Payment{})
}

func (s *paymentStore) List(ctx context.Context) ([]models.Payment, error) {
	var rows []Payment
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	payments := make([]models.Payment, 0, len(rows))
	for _, row := range rows {
		payments = append(payments, row.model())
	}
	return payments, nil
}

type statsStore struct{ db *gorm.DB }

func (s *statsStore) OrderStats(ctx context.Context) ([]models.CategoryStat, error) {
	payments, err := (&paymentStore{s.db}).List(ctx)
	if err != nil {
		return nil, err
	}
	menu, err := (&menuStore{s.db}).List(ctx)
	if err != nil {
		return nil, err
	}
	return stats.Aggregate(payments, menu), nil
}
