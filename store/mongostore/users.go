package mongostore

import (
	"BistroBoss/models"
	"context"
	"errors"
	"fmt"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Email    string             `bson:"email"`
	PhotoURL string             `bson:"photoURL,omitempty"`
	Role     string             `bson:"role,omitempty"`
}

func (d userDoc) model() models.User {
	return models.User{
		ID:       d.ID.Hex(),
		Name:     d.Name,
		Email:    d.Email,
		PhotoURL: d.PhotoURL,
		Role:     d.Role,
	}
}

type userStore struct {
	coll *mongo.Collection
}

func (s *userStore) List(ctx context.Context) ([]models.User, error) {
	docs, err := findAll[userDoc](ctx, s.coll, bson.D{})
	if err != nil {
		return nil, err
	}
	users := make([]models.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, doc.model())
	}
	return users, nil
}

func (s *userStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var doc userDoc
	err := s.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	user := doc.model()
	return &user, nil
}

// 以email upsert並只用$setOnInsert，已存在的使用者不會被修改
func (s *userStore) InsertIfAbsent(ctx context.Context, user models.User) (*models.InsertResult, bool, error) {
	filter := bson.D{{Key: "email", Value: user.Email}}
	update := bson.D{{Key: "$setOnInsert", Value: bson.D{
		{Key: "name", Value: user.Name},
		{Key: "photoURL", Value: user.PhotoURL},
		{Key: "role", Value: user.Role},
	}}}

	res, err := s.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &models.InsertResult{Acknowledged: true}, false, nil
		}
		return nil, false, fmt.Errorf("insert user: %w", err)
	}
	if res.UpsertedID == nil {
		return &models.InsertResult{Acknowledged: true}, false, nil
	}

	result := &models.InsertResult{Acknowledged: true}
	if oid, ok := res.UpsertedID.(primitive.ObjectID); ok {
		result.InsertedID = oid.Hex()
	}
	return result, true, nil
}

func (s *userStore) Count(ctx context.Context) (int64, error) {
	return count(ctx, s.coll)
}

func (s *userStore) SetRole(ctx context.Context, id, role string) (*models.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	res, err := s.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "role", Value: role}}}},
	)
	if err != nil {
		return nil, fmt.Errorf("update user role: %w", err)
	}
	return &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}
