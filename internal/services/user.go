package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dreampcbuild/dreampc-gobackend/internal/models"
)

type UserService struct {
	collection *mongo.Collection
}

func NewUserService(db *mongo.Database) *UserService {
	return &UserService{collection: db.Collection("users")}
}

// UpsertUser writes the client-submitted profile under the given email,
// creating the user document if it does not exist yet.
func (s *UserService) UpsertUser(ctx context.Context, email string, profile bson.M) (*mongo.UpdateResult, error) {
	filter := bson.M{"email": email}
	update := bson.M{"$set": profile}
	return s.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
}

func (s *UserService) UserList(ctx context.Context) ([]bson.M, error) {
	cur, err := s.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	users := []bson.M{}
	defer cur.Close(ctx)

	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}

	return users, nil
}

// GetUserByEmail fetches one user document; absent users come back nil, nil.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (bson.M, error) {
	var user bson.M
	err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

// IsAdmin reports whether the stored record for email carries the admin
// role. An absent record or absent role field is not admin; the check never
// faults on a missing user.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	var user models.User
	err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return user.IsAdmin(), nil
}

// MakeAdmin grants the admin role to an existing user. No upsert: granting a
// role must never create an account.
func (s *UserService) MakeAdmin(ctx context.Context, email string) (*mongo.UpdateResult, error) {
	filter := bson.M{"email": email}
	update := bson.M{"$set": bson.M{"role": models.RoleAdmin}}
	return s.collection.UpdateOne(ctx, filter, update)
}
