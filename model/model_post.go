package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Post embeds its comments and likes as sub-documents. Both lists are
// append-only: elements are pushed atomically and never edited, reordered
// or removed.
type Post struct {
	ID        bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	UserID    bson.ObjectID `json:"userId"    bson:"user_id"`
	Image     *string       `json:"image"     bson:"image,omitempty"`
	Info      string        `json:"info"      bson:"info"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
	Comments  []Comment     `json:"comments"  bson:"comments"`
	Likes     []Like        `json:"likes"     bson:"likes"`
}

// Comment is immutable once pushed onto a post.
type Comment struct {
	UserID    bson.ObjectID `json:"userId"    bson:"user_id"`
	Text      string        `json:"text"      bson:"text"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
}

// Like carries only the author reference. Likes are a multiset: the same
// user may appear more than once.
type Like struct {
	UserID bson.ObjectID `json:"userId" bson:"user_id"`
}
