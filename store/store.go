package store

import (
	"BistroBoss/models"
	"context"
	"errors"
)

// id格式不符合資料庫要求
var ErrInvalidID = errors.New("invalid id")

type MenuStore interface {
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context) ([]models.MenuItem, error)
	Insert(ctx context.Context, item models.MenuItem) (*models.InsertResult, error)
	Delete(ctx context.Context, id string) (*models.DeleteResult, error)
}

type ReviewStore interface {
	List(ctx context.Context) ([]models.Review, error)
}

type CartStore interface {
	ListByEmail(ctx context.Context, email string) ([]models.CartItem, error)
	Insert(ctx context.Context, item models.CartItem) (*models.InsertResult, error)
	Delete(ctx context.Context, id string) (*models.DeleteResult, error)
	DeleteMany(ctx context.Context, ids []string) (*models.DeleteResult, error)
}

type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	//查無使用者時回傳nil, nil
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	//email不存在時才新增，created表示是否寫入
	InsertIfAbsent(ctx context.Context, user models.User) (result *models.InsertResult, created bool, err error)
	Count(ctx context.Context) (int64, error)
	SetRole(ctx context.Context, id, role string) (*models.UpdateResult, error)
}

type PaymentStore interface {
	Insert(ctx context.Context, payment models.Payment) (*models.InsertResult, error)
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context) ([]models.Payment, error)
}

type StatsStore interface {
	OrderStats(ctx context.Context) ([]models.CategoryStat, error)
}

type Store struct {
	Menu     MenuStore
	Reviews  ReviewStore
	Carts    CartStore
	Users    UserStore
	Payments PaymentStore
	Stats    StatsStore

	Close func(ctx context.Context) error
}
