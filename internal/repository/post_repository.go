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

type MongoPostRepository struct {
	col *mongo.Collection
}

func NewMongoPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{col: db.Collection("posts")}
}

func (r *MongoPostRepository) All(ctx context.Context) ([]model.Post, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoPostRepository) ByAuthor(ctx context.Context, userID bson.ObjectID) ([]model.Post, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *MongoPostRepository) find(ctx context.Context, filter bson.M) ([]model.Post, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: find posts: %v", apperr.ErrInfrastructure, err)
	}
	defer cur.Close(ctx)

	var posts []model.Post
	if err := cur.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("%w: decode posts: %v", apperr.ErrInfrastructure, err)
	}
	return posts, nil
}

func (r *MongoPostRepository) ByID(ctx context.Context, id bson.ObjectID) (model.Post, error) {
	var p model.Post
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Post{}, apperr.ErrNotFound
	}
	if err != nil {
		return model.Post{}, fmt.Errorf("%w: find post: %v", apperr.ErrInfrastructure, err)
	}
	return p, nil
}

func (r *MongoPostRepository) Create(ctx context.Context, p model.Post) error {
	if _, err := r.col.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("%w: insert post: %v", apperr.ErrInfrastructure, err)
	}
	return nil
}

// AddComment pushes the comment onto the post's embedded list in one
// document-level update. Concurrent pushes to the same post are serialized
// by the store; their final order is arrival order.
func (r *MongoPostRepository) AddComment(ctx context.Context, postID bson.ObjectID, c model.Comment) error {
	return r.push(ctx, postID, bson.M{"$push": bson.M{"comments": c}})
}

// AddLike pushes a bare author reference. $push, not $addToSet: the same
// user liking twice yields two entries.
func (r *MongoPostRepository) AddLike(ctx context.Context, postID, userID bson.ObjectID) error {
	return r.push(ctx, postID, bson.M{"$push": bson.M{"likes": model.Like{UserID: userID}}})
}

func (r *MongoPostRepository) push(ctx context.Context, postID bson.ObjectID, update bson.M) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": postID}, update)
	if err != nil {
		return fmt.Errorf("%w: update post: %v", apperr.ErrInfrastructure, err)
	}
	if res.MatchedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
