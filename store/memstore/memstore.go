package memstore

import (
	"BistroBoss/models"
	"BistroBoss/stats"
	"BistroBoss/store"
	"context"
	"github.com/google/uuid"
	"sync"
)

type db struct {
	mu       sync.RWMutex
	menu     []models.MenuItem
	reviews  []models.Review
	carts    []models.CartItem
	users    []models.User
	payments []models.Payment
}

type Option func(*db)

// 預先放入評論資料
func WithReviews(reviews ...models.Review) Option {
	return func(d *db) {
		for _, review := range reviews {
			if review.ID == "" {
				review.ID = newID()
			}
			d.reviews = append(d.reviews, review)
		}
	}
}

func New(opts ...Option) *store.Store {
	d := &db{}
	for _, opt := range opts {
		opt(d)
	}

	return &store.Store{
		Menu:     &menuStore{d},
		Reviews:  &reviewStore{d},
		Carts:    &cartStore{d},
		Users:    &userStore{d},
		Payments: &paymentStore{d},
		Stats:    &statsStore{d},
		Close: func(context.Context) error {
			return nil
		},
	}
}

func newID() string {
	return uuid.New().String()
}

func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return store.ErrInvalidID
	}
	return nil
}

func inserted(id string) *models.InsertResult {
	return &models.InsertResult{Acknowledged: true, InsertedID: id}
}

func removeWhere[T any](items []T, match func(T) bool) ([]T, int64) {
	kept := items[:0]
	var removed int64
	for _, item := range items {
		if match(item) {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	return kept, removed
}

type menuStore struct{ d *db }

func (s *menuStore) Count(ctx context.Context) (int64, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()
	return int64(len(s.d.menu)), nil
}

func (s *menuStore) List(ctx context.Context) ([]models.MenuItem, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()
	return append([]models.MenuItem{}, s.d.menu...), nil
}

func (s *menuStore) Insert(ctx context.Context, item models.MenuItem) (*models.InsertResult, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	item.ID = newID()
	s.d.menu = append(s.d.menu, item)
	return inserted(item.ID), nil
}

func (s *menuStore) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	var removed int64
	s.d.menu, removed = removeWhere(s.d.menu, func(item models.MenuItem) bool {
		return item.ID == id
	})
	return &models.DeleteResult{Acknowledged: true, DeletedCount: removed}, nil
}

type reviewStore struct{ d *db }

func (s *reviewStore) List(ctx context.Context) ([]models.Review, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()
	return append([]models.Review{}, s.d.reviews...), nil
}

type cartStore struct{ d *db }

func (s *cartStore) ListByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()
	items := []models.CartItem{}
	for _, item := range s.d.carts {
		if item.Email == email {
			items = append(items, item)
		}
	}
	return items, nil
}

func (s *cartStore) Insert(ctx context.Context, item models.CartItem) (*models.InsertResult, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	item.ID = newID()
	s.d.carts = append(s.d.carts, item)
	return inserted(item.ID), nil
}

func (s *cartStore) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	return s.DeleteMany(ctx, []string{id})
}

func (s *cartStore) DeleteMany(ctx context.Context, ids []string) (*models.DeleteResult, error) {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		if err := checkID(id); err != nil {
			return nil, err
		}
		set[id] = true
	}
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	var removed int64
	s.d.carts, removed = removeWhere(s.d.carts, func(item models.CartItem) bool {
		return set[item.ID]
	})
	return &models.DeleteResult{Acknowledged: true, DeletedCount: removed}, nil
}

type userStore struct{ d *db }

func (s *userStore) List(ctx context.Context) ([]models.User, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()
	return append([]models.User{}, s.d.users...), nil
}

func (s *userStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()
	for _, user := range s.d.users {
		if user.Email == email {
			found := user
			return &found, nil
		}
	}
	return nil, nil
}

func (s *userStore) InsertIfAbsent(ctx context.Context, user models.User) (*models.InsertResult, bool, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	for _, existing := range s.d.users {
		if existing.Email == user.Email {
			return &models.InsertResult{Acknowledged: true}, false, nil
		}
	}
	user.ID = newID()
	s.d.users = append(s.d.users, user)
	return inserted(user.ID), true, nil
}

func (s *userStore) Count(ctx context.Context) (int64, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()
	return int64(len(s.d.users)), nil
}

func (s *userStore) SetRole(ctx context.Context, id, role string) (*models.UpdateResult, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	result := &models.UpdateResult{Acknowledged: true}
	for i := range s.d.users {
		if s.d.users[i].ID != id {
			continue
		}
		result.MatchedCount++
		if s.d.users[i].Role != role {
			s.d.users[i].Role = role
			result.ModifiedCount++
		}
	}
	return result, nil
}

type paymentStore struct{ d *db }

func (s *paymentStore) Insert(ctx context.Context, payment models.Payment) (*models.InsertResult, error) {
	for _, id := range append(append([]string{}, payment.CartItemsID...), payment.MenuItems...) {
		if err := checkID(id); err != nil {
			return nil, err
		}
	}
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	payment.ID = newID()
	s.d.payments = append(s.d.payments, payment)
	return inserted(payment.ID), nil
}

func (s *paymentStore) Count(ctx context.Context) (int64, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()
	return int64(len(s.d.payments)), nil
}

func (s *paymentStore) List(ctx context.Context) ([]models.Payment, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()
	return append([]models.Payment{}, s.d.payments...), nil
}

type statsStore struct{ d *db }

func (s *statsStore) OrderStats(ctx context.Context) ([]models.CategoryStat, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()
	return stats.Aggregate(s.d.payments, s.d.menu), nil
}
