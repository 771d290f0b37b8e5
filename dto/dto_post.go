package dto

import (
	"time"

	"github.com/navfer/DamGram-Servidor/model"
)

// CreatePostRequest is the inbound payload for a new post. The id and
// timestamp are assigned server-side; comments and likes start empty.
type CreatePostRequest struct {
	UserID string  `json:"userId"`
	Image  *string `json:"image,omitempty"`
	Info   string  `json:"info"`
}

func (r CreatePostRequest) Validate() error {
	if r.UserID == "" {
		return errFieldRequired("userId")
	}
	if r.Info == "" {
		return errFieldRequired("info")
	}
	return nil
}

// PostResponse is the outbound post shape: ids as hex strings, timestamps
// as epoch milliseconds.
type PostResponse struct {
	ID        string            `json:"id"`
	UserID    string            `json:"userId"`
	Image     *string           `json:"image,omitempty"`
	Info      string            `json:"info"`
	Timestamp int64             `json:"timestamp"`
	Comments  []CommentResponse `json:"comments"`
	Likes     []LikeResponse    `json:"likes"`
}

type CommentResponse struct {
	UserID    string `json:"userId"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

type LikeResponse struct {
	UserID string `json:"userId"`
}

func NewPostResponse(p model.Post) PostResponse {
	comments := make([]CommentResponse, 0, len(p.Comments))
	for _, c := range p.Comments {
		comments = append(comments, CommentResponse{
			UserID:    c.UserID.Hex(),
			Text:      c.Text,
			Timestamp: millis(c.CreatedAt),
		})
	}
	likes := make([]LikeResponse, 0, len(p.Likes))
	for _, l := range p.Likes {
		likes = append(likes, LikeResponse{UserID: l.UserID.Hex()})
	}
	return PostResponse{
		ID:        p.ID.Hex(),
		UserID:    p.UserID.Hex(),
		Image:     p.Image,
		Info:      p.Info,
		Timestamp: millis(p.CreatedAt),
		Comments:  comments,
		Likes:     likes,
	}
}

func NewPostResponses(posts []model.Post) []PostResponse {
	out := make([]PostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, NewPostResponse(p))
	}
	return out
}

func millis(t time.Time) int64 {
	return t.UnixMilli()
}
