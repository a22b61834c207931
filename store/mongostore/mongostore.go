package mongostore

import (
	"BistroBoss/models"
	"BistroBoss/store"
	"context"
	"fmt"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	menuCollection    = "menu"
	reviewsCollection = "reviews"
	cartCollection    = "carts"
	userCollection    = "users"
	paymentCollection = "payments"
)

func New(db *mongo.Database) *store.Store {
	menu := db.Collection(menuCollection)
	payments := db.Collection(paymentCollection)

	return &store.Store{
		Menu:     &menuStore{coll: menu},
		Reviews:  &reviewStore{coll: db.Collection(reviewsCollection)},
		Carts:    &cartStore{coll: db.Collection(cartCollection)},
		Users:    &userStore{coll: db.Collection(userCollection)},
		Payments: &paymentStore{coll: payments},
		Stats:    &statsStore{coll: payments},
		Close: func(ctx context.Context) error {
			return db.Client().Disconnect(ctx)
		},
	}
}

// 建立users.email唯一索引
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(userCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create users email index: %w", err)
	}
	return nil
}

// 文件的_id，可為ObjectID或匯入資料時的字串
type docID string

func (id *docID) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.ObjectID:
		oid, ok := raw.ObjectIDOK()
		if !ok {
			return fmt.Errorf("decode _id: malformed ObjectID")
		}
		*id = docID(oid.Hex())
	case bsontype.String:
		str, ok := raw.StringValueOK()
		if !ok {
			return fmt.Errorf("decode _id: malformed string")
		}
		*id = docID(str)
	default:
		return fmt.Errorf("decode _id: unsupported type %s", t)
	}
	return nil
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", store.ErrInvalidID, id)
	}
	return oid, nil
}

func objectIDs(ids []string) ([]primitive.ObjectID, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := objectID(id)
		if err != nil {
			return nil, err
		}
		oids = append(oids, oid)
	}
	return oids, nil
}

func hexIDs(oids []primitive.ObjectID) []string {
	ids := make([]string, 0, len(oids))
	for _, oid := range oids {
		ids = append(ids, oid.Hex())
	}
	return ids
}

func insertResult(res *mongo.InsertOneResult) *models.InsertResult {
	result := &models.InsertResult{Acknowledged: true}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		result.InsertedID = oid.Hex()
	}
	return result
}

func deleteResult(res *mongo.DeleteResult) *models.DeleteResult {
	return &models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter any) ([]T, error) {
	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", coll.Name(), err)
	}
	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", coll.Name(), err)
	}
	return docs, nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id string) (*models.DeleteResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	res, err := coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return nil, fmt.Errorf("delete from %s: %w", coll.Name(), err)
	}
	return deleteResult(res), nil
}

func count(ctx context.Context, coll *mongo.Collection) (int64, error) {
	n, err := coll.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", coll.Name(), err)
	}
	return n, nil
}
