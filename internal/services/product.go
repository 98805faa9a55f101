package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProductService struct {
	collection *mongo.Collection
}

func NewProductService(db *mongo.Database) *ProductService {
	return &ProductService{collection: db.Collection("products")}
}

// ProductList returns every product, newest insertion first.
func (s *ProductService) ProductList(ctx context.Context) ([]bson.M, error) {
	cur, err := s.collection.Find(ctx, bson.D{}, options.Find().SetSort(bson.M{"_id": -1}))
	if err != nil {
		return nil, err
	}

	products := []bson.M{}
	defer cur.Close(ctx)

	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}

	return products, nil
}

// CreateProduct inserts the client-submitted document as-is.
func (s *ProductService) CreateProduct(ctx context.Context, product bson.M) (*mongo.InsertOneResult, error) {
	return s.collection.InsertOne(ctx, product)
}

// GetProduct fetches one product by hex id. An absent document is returned
// as nil with no error; the handler sends it verbatim.
func (s *ProductService) GetProduct(ctx context.Context, id string) (bson.M, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var product bson.M
	err = s.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	return s.collection.DeleteOne(ctx, bson.M{"_id": objID})
}
