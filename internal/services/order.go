package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrderService struct {
	collection *mongo.Collection
}

func NewOrderService(db *mongo.Database) *OrderService {
	return &OrderService{collection: db.Collection("orders")}
}

func (s *OrderService) CreateOrder(ctx context.Context, order bson.M) (*mongo.InsertOneResult, error) {
	return s.collection.InsertOne(ctx, order)
}

// OrdersByEmail returns the orders placed under the given email.
func (s *OrderService) OrdersByEmail(ctx context.Context, email string) ([]bson.M, error) {
	cur, err := s.collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}

	orders := []bson.M{}
	defer cur.Close(ctx)

	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// AllOrders returns every order, newest insertion first.
func (s *OrderService) AllOrders(ctx context.Context) ([]bson.M, error) {
	cur, err := s.collection.Find(ctx, bson.D{}, options.Find().SetSort(bson.M{"_id": -1}))
	if err != nil {
		return nil, err
	}

	orders := []bson.M{}
	defer cur.Close(ctx)

	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// GetOrder fetches one order by hex id; absent orders come back nil, nil.
func (s *OrderService) GetOrder(ctx context.Context, id string) (bson.M, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var order bson.M
	err = s.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	return s.collection.DeleteOne(ctx, bson.M{"_id": objID})
}

// SetOrderStatus flips status to true for the given order id. The update
// runs with upsert enabled even though the filter is the id: an unmatched id
// therefore manufactures a fresh {status:true} document under a generated id.
// That is long-standing shipped behavior and clients depend on the raw
// UpdateResult shape, so it is kept as-is.
func (s *OrderService) SetOrderStatus(ctx context.Context, id string) (*mongo.UpdateResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{"status": true}}
	return s.collection.UpdateOne(ctx, bson.M{"_id": objID}, update, options.Update().SetUpsert(true))
}
