// Package repository owns the users and posts collections. Interfaces are
// what handlers depend on; the Mongo types are the only implementations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/navfer/DamGram-Servidor/model"
)

// UserRepository reads and writes the users collection. Create does not
// enforce username uniqueness; callers check ByUsername first (a documented
// check-then-act race under concurrent registration).
type UserRepository interface {
	All(ctx context.Context) ([]model.User, error)
	ByID(ctx context.Context, id bson.ObjectID) (model.User, error)
	ByUsername(ctx context.Context, username string) (model.User, error)
	Create(ctx context.Context, u model.User) error
}

// PostRepository reads and writes the posts collection. AddComment and
// AddLike are single atomic per-document appends; the store serializes
// concurrent appends to the same post.
type PostRepository interface {
	All(ctx context.Context) ([]model.Post, error)
	ByID(ctx context.Context, id bson.ObjectID) (model.Post, error)
	ByAuthor(ctx context.Context, userID bson.ObjectID) ([]model.Post, error)
	Create(ctx context.Context, p model.Post) error
	AddComment(ctx context.Context, postID bson.ObjectID, c model.Comment) error
	AddLike(ctx context.Context, postID, userID bson.ObjectID) error
}
