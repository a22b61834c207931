package mongostore

import (
	"BistroBoss/models"
	"context"
	"fmt"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type menuDoc struct {
	ID       docID   `bson:"_id,omitempty"`
	Name     string  `bson:"name"`
	Recipe   string  `bson:"recipe"`
	Image    string  `bson:"image"`
	Category string  `bson:"category"`
	Price    float64 `bson:"price"`
}

type reviewDoc struct {
	ID      docID   `bson:"_id,omitempty"`
	Name    string  `bson:"name"`
	Details string  `bson:"details"`
	Rating  float64 `bson:"rating"`
}

type menuStore struct {
	coll *mongo.Collection
}

func (s *menuStore) Count(ctx context.Context) (int64, error) {
	return count(ctx, s.coll)
}

func (s *menuStore) List(ctx context.Context) ([]models.MenuItem, error) {
	docs, err := findAll[menuDoc](ctx, s.coll, bson.D{})
	if err != nil {
		return nil, err
	}
	items := make([]models.MenuItem, 0, len(docs))
	for _, doc := range docs {
		items = append(items, models.MenuItem{
			ID:       string(doc.ID),
			Name:     doc.Name,
			Recipe:   doc.Recipe,
			Image:    doc.Image,
			Category: doc.Category,
			Price:    doc.Price,
		})
	}
	return items, nil
}

func (s *menuStore) Insert(ctx context.Context, item models.MenuItem) (*models.InsertResult, error) {
	res, err := s.coll.InsertOne(ctx, menuDoc{
		Name:     item.Name,
		Recipe:   item.Recipe,
		Image:    item.Image,
		Category: item.Category,
		Price:    item.Price,
	})
	if err != nil {
		return nil, fmt.Errorf("insert menu item: %w", err)
	}
	return insertResult(res), nil
}

func (s *menuStore) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	return deleteByID(ctx, s.coll, id)
}

type reviewStore struct {
	coll *mongo.Collection
}

func (s *reviewStore) List(ctx context.Context) ([]models.Review, error) {
	docs, err := findAll[reviewDoc](ctx, s.coll, bson.D{})
	if err != nil {
		return nil, err
	}
	reviews := make([]models.Review, 0, len(docs))
	for _, doc := range docs {
		reviews = append(reviews, models.Review{
			ID:      string(doc.ID),
			Name:    doc.Name,
			Details: doc.Details,
			Rating:  doc.Rating,
		})
	}
	return reviews, nil
}
