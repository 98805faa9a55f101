package services

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PaymentService struct {
	db *mongo.Database
}

func NewPaymentService(db *mongo.Database) *PaymentService {
	return &PaymentService{db: db}
}

// ConfirmPayment records the client-submitted payment document in the
// payments log and marks the order paid with the transaction id. The two
// writes are not wrapped in a transaction; if the order update fails after
// the log insert, the order stays unmarked while the log entry exists. The
// log is written first so an order is never marked paid without a log entry.
func (s *PaymentService) ConfirmPayment(ctx context.Context, orderID string, payment bson.M) (*mongo.UpdateResult, error) {
	objID, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, err
	}

	if _, err := s.db.Collection("payments").InsertOne(ctx, payment); err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{
		"paid":          true,
		"transactionId": payment["transactionId"],
	}}
	result, err := s.db.Collection("orders").UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		log.Printf("Payment logged but order %s not marked paid: %v", orderID, err)
		return nil, err
	}

	return result, nil
}
