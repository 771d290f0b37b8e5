package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/navfer/DamGram-Servidor/internal/apperr"
	"github.com/navfer/DamGram-Servidor/model"
)

type MongoUserRepository struct {
	col *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{col: db.Collection("users")}
}

func (r *MongoUserRepository) All(ctx context.Context) ([]model.User, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: find users: %v", apperr.ErrInfrastructure, err)
	}
	defer cur.Close(ctx)

	var users []model.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("%w: decode users: %v", apperr.ErrInfrastructure, err)
	}
	return users, nil
}

func (r *MongoUserRepository) ByID(ctx context.Context, id bson.ObjectID) (model.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoUserRepository) ByUsername(ctx context.Context, username string) (model.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (model.User, error) {
	var u model.User
	err := r.col.FindOne(ctx, filter).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, apperr.ErrNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("%w: find user: %v", apperr.ErrInfrastructure, err)
	}
	return u, nil
}

func (r *MongoUserRepository) Create(ctx context.Context, u model.User) error {
	if _, err := r.col.InsertOne(ctx, u); err != nil {
		return fmt.Errorf("%w: insert user: %v", apperr.ErrInfrastructure, err)
	}
	return nil
}
