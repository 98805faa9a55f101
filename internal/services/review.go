package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReviewService struct {
	collection *mongo.Collection
}

func NewReviewService(db *mongo.Database) *ReviewService {
	return &ReviewService{collection: db.Collection("reviews")}
}

// ReviewList returns every review, newest insertion first.
func (s *ReviewService) ReviewList(ctx context.Context) ([]bson.M, error) {
	cur, err := s.collection.Find(ctx, bson.D{}, options.Find().SetSort(bson.M{"_id": -1}))
	if err != nil {
		return nil, err
	}

	reviews := []bson.M{}
	defer cur.Close(ctx)

	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}

	return reviews, nil
}

func (s *ReviewService) CreateReview(ctx context.Context, review bson.M) (*mongo.InsertOneResult, error) {
	return s.collection.InsertOne(ctx, review)
}
