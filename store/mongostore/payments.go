package mongostore

import (
	"BistroBoss/models"
	"context"
	"fmt"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"time"
)

// menuItems存為ObjectID，$lookup才能對應menu._id
type paymentDoc struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty"`
	Email         string               `bson:"email"`
	TransactionID string               `bson:"transactionId"`
	Price         float64              `bson:"price"`
	Date          time.Time            `bson:"date"`
	Quantity      int                  `bson:"quantity"`
	Status        string               `bson:"status"`
	CartItemsID   []primitive.ObjectID `bson:"cartItemsId"`
	MenuItems     []primitive.ObjectID `bson:"menuItems"`
	ItemNames     []string             `bson:"itemNames"`
}

type paymentStore struct {
	coll *mongo.Collection
}

func (s *paymentStore) Insert(ctx context.Context, payment models.Payment) (*models.InsertResult, error) {
	cartIDs, err := objectIDs(payment.CartItemsID)
	if err != nil {
		return nil, err
	}
	menuIDs, err := objectIDs(payment.MenuItems)
	if err != nil {
		return nil, err
	}

	res, err := s.coll.InsertOne(ctx, paymentDoc{
		Email:         payment.Email,
		TransactionID: payment.TransactionID,
		Price:         payment.Price,
		Date:          payment.Date,
		Quantity:      payment.Quantity,
		Status:        payment.Status,
		CartItemsID:   cartIDs,
		MenuItems:     menuIDs,
		ItemNames:     payment.ItemNames,
	})
	if err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}
	return insertResult(res), nil
}

func (s *paymentStore) Count(ctx context.Context) (int64, error) {
	return count(ctx, s.coll)
}

func (s *paymentStore) List(ctx context.Context) ([]models.Payment, error) {
	docs, err := findAll[paymentDoc](ctx, s.coll, bson.D{})
	if err != nil {
		return nil, err
	}
	payments := make([]models.Payment, 0, len(docs))
	for _, doc := range docs {
		payments = append(payments, models.Payment{
			ID:            doc.ID.Hex(),
			Email:         doc.Email,
			TransactionID: doc.TransactionID,
			Price:         doc.Price,
			Date:          doc.Date,
			Quantity:      doc.Quantity,
			Status:        doc.Status,
			CartItemsID:   hexIDs(doc.CartItemsID),
			MenuItems:     hexIDs(doc.MenuItems),
			ItemNames:     doc.ItemNames,
		})
	}
	return payments, nil
}

type statsStore struct {
	coll *mongo.Collection
}

type categoryStatDoc struct {
	Category   string  `bson:"category"`
	Count      int64   `bson:"count"`
	TotalPrice float64 `bson:"totalPrice"`
}

// payments.menuItems對應menu._id後依分類統計
func orderStatsPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: menuCollection},
			{Key: "localField", Value: "menuItems"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "menuItemsData"},
		}}},
		{{Key: "$unwind", Value: "$menuItemsData"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$menuItemsData.category"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "totalPrice", Value: bson.D{{Key: "$sum", Value: "$menuItemsData.price"}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "category", Value: "$_id"},
			{Key: "count", Value: 1},
			{Key: "totalPrice", Value: 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "category", Value: 1}}}},
	}
}

func (s *statsStore) OrderStats(ctx context.Context) ([]models.CategoryStat, error) {
	cursor, err := s.coll.Aggregate(ctx, orderStatsPipeline())
	if err != nil {
		return nil, fmt.Errorf("aggregate order stats: %w", err)
	}
	var docs []categoryStatDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode order stats: %w", err)
	}

	result := make([]models.CategoryStat, 0, len(docs))
	for _, doc := range docs {
		result = append(result, models.CategoryStat{
			Category:   doc.Category,
			Count:      doc.Count,
			TotalPrice: doc.TotalPrice,
		})
	}
	return result, nil
}
