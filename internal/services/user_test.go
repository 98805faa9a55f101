package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestUserListEmptyCollection(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("empty collection yields empty slice", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "dream_pc_build.users", mtest.FirstBatch))

		users, err := NewUserService(mt.DB).UserList(context.Background())
		require.NoError(mt, err)
		require.NotNil(mt, users)
		assert.Len(mt, users, 0)
	})
}

func TestIsAdminUnknownEmailFailsClosed(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("absent record is not admin", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "dream_pc_build.users", mtest.FirstBatch))

		isAdmin, err := NewUserService(mt.DB).IsAdmin(context.Background(), "ghost@example.com")
		require.NoError(mt, err)
		assert.False(mt, isAdmin)
	})
}

func TestIsAdminReadsStoredRole(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("stored admin role", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "dream_pc_build.users", mtest.FirstBatch,
			bson.D{{Key: "email", Value: "boss@example.com"}, {Key: "role", Value: "admin"}},
		))

		isAdmin, err := NewUserService(mt.DB).IsAdmin(context.Background(), "boss@example.com")
		require.NoError(mt, err)
		assert.True(mt, isAdmin)
	})

	mt.Run("stored member without role", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "dream_pc_build.users", mtest.FirstBatch,
			bson.D{{Key: "email", Value: "member@example.com"}, {Key: "name", Value: "A"}},
		))

		isAdmin, err := NewUserService(mt.DB).IsAdmin(context.Background(), "member@example.com")
		require.NoError(mt, err)
		assert.False(mt, isAdmin)
	})
}
