package model

import "go.mongodb.org/mongo-driver/v2/bson"

// User is a stored account. The password hash never leaves the backend;
// dto.UserResponse is the outbound shape.
type User struct {
	ID           bson.ObjectID `json:"id"           bson:"_id,omitempty"`
	Username     string        `json:"username"     bson:"username"`
	PasswordHash string        `json:"-"            bson:"password"`
	Avatar       *string       `json:"avatar"       bson:"avatar,omitempty"`
}
