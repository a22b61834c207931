package mongostore

import (
	"BistroBoss/models"
	"context"
	"fmt"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type cartDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	MenuItemID string             `bson:"menuItemId"`
	Email      string             `bson:"email"`
	Name       string             `bson:"name"`
	Image      string             `bson:"image"`
	Price      float64            `bson:"price"`
}

type cartStore struct {
	coll *mongo.Collection
}

func (s *cartStore) ListByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	docs, err := findAll[cartDoc](ctx, s.coll, bson.D{{Key: "email", Value: email}})
	if err != nil {
		return nil, err
	}
	items := make([]models.CartItem, 0, len(docs))
	for _, doc := range docs {
		items = append(items, models.CartItem{
			ID:         doc.ID.Hex(),
			MenuItemID: doc.MenuItemID,
			Email:      doc.Email,
			Name:       doc.Name,
			Image:      doc.Image,
			Price:      doc.Price,
		})
	}
	return items, nil
}

func (s *cartStore) Insert(ctx context.Context, item models.CartItem) (*models.InsertResult, error) {
	res, err := s.coll.InsertOne(ctx, cartDoc{
		MenuItemID: item.MenuItemID,
		Email:      item.Email,
		Name:       item.Name,
		Image:      item.Image,
		Price:      item.Price,
	})
	if err != nil {
		return nil, fmt.Errorf("insert cart item: %w", err)
	}
	return insertResult(res), nil
}

func (s *cartStore) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	return deleteByID(ctx, s.coll, id)
}

func (s *cartStore) DeleteMany(ctx context.Context, ids []string) (*models.DeleteResult, error) {
	oids, err := objectIDs(ids)
	if err != nil {
		return nil, err
	}
	filter := bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: oids}}}}
	res, err := s.coll.DeleteMany(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("delete cart items: %w", err)
	}
	return deleteResult(res), nil
}
