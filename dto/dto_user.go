package dto

import "github.com/navfer/DamGram-Servidor/model"

// RegisterRequest is the inbound registration payload. Password travels
// only on this request and on LoginRequest, never on any response.
type RegisterRequest struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	Avatar   *string `json:"avatar,omitempty"`
}

// Validate rejects the payload before it reaches the repositories.
func (r RegisterRequest) Validate() error {
	if r.Username == "" {
		return errFieldRequired("username")
	}
	if r.Password == "" {
		return errFieldRequired("password")
	}
	return nil
}

// UserResponse is the outbound user shape. There is deliberately no
// password field.
type UserResponse struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Avatar   *string `json:"avatar,omitempty"`
}

func NewUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:       u.ID.Hex(),
		Username: u.Username,
		Avatar:   u.Avatar,
	}
}

func NewUserResponses(users []model.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}
