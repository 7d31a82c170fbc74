package domain

import (
	"context"
	"errors"
)

// ErrPostNotFound is returned by id-addressed operations when no row exists
// for the requested id.
var ErrPostNotFound = errors.New("post not found")

// Post represents a stored post.
// The ID is assigned by the store on creation and never changes.
type Post struct {
	ID      int64
	Title   string
	Content string
}

type PostRepository interface {
	ListPosts(ctx context.Context) ([]*Post, error)
	GetPost(ctx context.Context, id int64) (*Post, error)
	CreatePost(ctx context.Context, title, content string) (*Post, error)
	UpdatePost(ctx context.Context, id int64, title, content string) (*Post, error)
	DeletePost(ctx context.Context, id int64) (*Post, error)
}
