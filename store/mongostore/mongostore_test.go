package mongostore

import (
	"BistroBoss/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"testing"
)

func TestOrderStatsPipeline(t *testing.T) {
	pipeline := orderStatsPipeline()

	var stages []string
	for _, stage := range pipeline {
		require.Len(t, stage, 1)
		stages = append(stages, stage[0].Key)
	}
	assert.Equal(t, []string{"$lookup", "$unwind", "$group", "$project", "$sort"}, stages)

	lookup := pipeline[0][0].Value.(bson.D).Map()
	assert.Equal(t, menuCollection, lookup["from"])
	assert.Equal(t, "menuItems", lookup["localField"])
	assert.Equal(t, "_id", lookup["foreignField"])

	group := pipeline[2][0].Value.(bson.D).Map()
	assert.Equal(t, "$menuItemsData.category", group["_id"])

	//pipeline必須能序列化為aggregate命令
	_, err := bson.Marshal(bson.D{{Key: "pipeline", Value: pipeline}})
	assert.NoError(t, err)
}

func TestObjectIDs(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	t.Run("round trip", func(t *testing.T) {
		oids, err := objectIDs([]string{a.Hex(), b.Hex()})
		require.NoError(t, err)
		assert.Equal(t, []primitive.ObjectID{a, b}, oids)
		assert.Equal(t, []string{a.Hex(), b.Hex()}, hexIDs(oids))
	})

	t.Run("empty list", func(t *testing.T) {
		oids, err := objectIDs(nil)
		require.NoError(t, err)
		assert.NotNil(t, oids)
		assert.Empty(t, oids)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := objectIDs([]string{a.Hex(), "xyz"})
		assert.ErrorIs(t, err, store.ErrInvalidID)
	})
}
