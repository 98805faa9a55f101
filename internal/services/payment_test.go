package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestConfirmPaymentWritesLogThenOrder(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("payment log insert precedes order update", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(
				bson.E{Key: "n", Value: 1},
				bson.E{Key: "nModified", Value: 1},
			),
		)

		orderID := primitive.NewObjectID().Hex()
		result, err := NewPaymentService(mt.DB).ConfirmPayment(context.Background(), orderID, bson.M{"transactionId": "tx1"})
		require.NoError(mt, err)
		assert.EqualValues(mt, 1, result.ModifiedCount)

		insertEvt := mt.GetStartedEvent()
		require.NotNil(mt, insertEvt)
		assert.Equal(mt, "insert", insertEvt.CommandName)
		assert.Equal(mt, "payments", insertEvt.Command.Lookup("insert").StringValue())

		updateEvt := mt.GetStartedEvent()
		require.NotNil(mt, updateEvt)
		assert.Equal(mt, "update", updateEvt.CommandName)
		assert.Equal(mt, "orders", updateEvt.Command.Lookup("update").StringValue())

		update := updateEvt.Command.Lookup("updates").Array().Index(0).Value().Document()
		paid, ok := update.Lookup("u", "$set", "paid").BooleanOK()
		require.True(mt, ok)
		assert.True(mt, paid)
		tx, ok := update.Lookup("u", "$set", "transactionId").StringValueOK()
		require.True(mt, ok)
		assert.Equal(mt, "tx1", tx)
	})
}

// If the log insert fails the order must stay untouched: an order is never
// marked paid without a log entry.
func TestConfirmPaymentLogFailureSkipsOrderUpdate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("failed insert short-circuits", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11000,
			Message: "duplicate key",
			Name:    "DuplicateKey",
		}))

		orderID := primitive.NewObjectID().Hex()
		_, err := NewPaymentService(mt.DB).ConfirmPayment(context.Background(), orderID, bson.M{"transactionId": "tx1"})
		require.Error(mt, err)

		insertEvt := mt.GetStartedEvent()
		require.NotNil(mt, insertEvt)
		assert.Equal(mt, "insert", insertEvt.CommandName)
		assert.Nil(mt, mt.GetStartedEvent())
	})
}
