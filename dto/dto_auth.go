package dto

import "fmt"

// LoginRequest carries the submitted credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if r.Username == "" {
		return errFieldRequired("username")
	}
	if r.Password == "" {
		return errFieldRequired("password")
	}
	return nil
}

// TokenResponse carries the signed assertion back to the client.
type TokenResponse struct {
	Token string `json:"token"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

func errFieldRequired(field string) error {
	return fmt.Errorf("%s is required", field)
}
