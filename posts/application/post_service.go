package application

import (
	"context"
	"errors"

	"github.com/dfryer1193/postapi/posts/domain"
	"github.com/rs/zerolog/log"
)

// PostService is the application-level entry point for post operations.
// It delegates to the repository and owns failure logging; callers classify
// errors with errors.Is(err, domain.ErrPostNotFound).
type PostService struct {
	repo domain.PostRepository
}

func NewPostService(repo domain.PostRepository) *PostService {
	return &PostService{
		repo: repo,
	}
}

func (s *PostService) ListPosts(ctx context.Context) ([]*domain.Post, error) {
	posts, err := s.repo.ListPosts(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list posts")
		return nil, err
	}

	return posts, nil
}

func (s *PostService) GetPost(ctx context.Context, id int64) (*domain.Post, error) {
	post, err := s.repo.GetPost(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrPostNotFound) {
			log.Error().Err(err).Int64("id", id).Msg("Failed to get post")
		}
		return nil, err
	}

	return post, nil
}

func (s *PostService) CreatePost(ctx context.Context, title, content string) (*domain.Post, error) {
	post, err := s.repo.CreatePost(ctx, title, content)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create post")
		return nil, err
	}

	log.Debug().Int64("id", post.ID).Msg("Created post")
	return post, nil
}

func (s *PostService) UpdatePost(ctx context.Context, id int64, title, content string) (*domain.Post, error) {
	post, err := s.repo.UpdatePost(ctx, id, title, content)
	if err != nil {
		if !errors.Is(err, domain.ErrPostNotFound) {
			log.Error().Err(err).Int64("id", id).Msg("Failed to update post")
		}
		return nil, err
	}

	log.Debug().Int64("id", post.ID).Msg("Updated post")
	return post, nil
}

func (s *PostService) DeletePost(ctx context.Context, id int64) (*domain.Post, error) {
	post, err := s.repo.DeletePost(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrPostNotFound) {
			log.Error().Err(err).Int64("id", id).Msg("Failed to delete post")
		}
		return nil, err
	}

	log.Debug().Int64("id", post.ID).Msg("Deleted post")
	return post, nil
}
