package application

import (
	"context"
	"errors"
	"testing"

	"github.com/dfryer1193/postapi/posts/domain"
)

// fakePostRepository is an in-memory domain.PostRepository for service tests
type fakePostRepository struct {
	posts  map[int64]*domain.Post
	nextID int64
	err    error
}

func newFakeRepo() *fakePostRepository {
	return &fakePostRepository{
		posts:  make(map[int64]*domain.Post),
		nextID: 1,
	}
}

func (f *fakePostRepository) ListPosts(ctx context.Context) ([]*domain.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	posts := make([]*domain.Post, 0, len(f.posts))
	for _, p := range f.posts {
		posts = append(posts, p)
	}
	return posts, nil
}

func (f *fakePostRepository) GetPost(ctx context.Context, id int64) (*domain.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	return p, nil
}

func (f *fakePostRepository) CreatePost(ctx context.Context, title, content string) (*domain.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	p := &domain.Post{ID: f.nextID, Title: title, Content: content}
	f.posts[p.ID] = p
	f.nextID++
	return p, nil
}

func (f *fakePostRepository) UpdatePost(ctx context.Context, id int64, title, content string) (*domain.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	p.Title = title
	p.Content = content
	return p, nil
}

func (f *fakePostRepository) DeletePost(ctx context.Context, id int64) (*domain.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	delete(f.posts, id)
	return p, nil
}

func TestPostService_CreateThenGet(t *testing.T) {
	svc := NewPostService(newFakeRepo())
	ctx := context.Background()

	created, err := svc.CreatePost(ctx, "A", "B")
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}

	got, err := svc.GetPost(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetPost failed: %v", err)
	}
	if got.Title != "A" || got.Content != "B" {
		t.Errorf("got %+v, want title=A content=B", got)
	}
}

func TestPostService_GetPost_NotFoundPassthrough(t *testing.T) {
	svc := NewPostService(newFakeRepo())

	_, err := svc.GetPost(context.Background(), 1)
	if !errors.Is(err, domain.ErrPostNotFound) {
		t.Errorf("expected ErrPostNotFound, got %v", err)
	}
}

func TestPostService_StoreFailurePassthrough(t *testing.T) {
	repo := newFakeRepo()
	repo.err = errors.New("disk on fire")
	svc := NewPostService(repo)
	ctx := context.Background()

	if _, err := svc.ListPosts(ctx); !errors.Is(err, repo.err) {
		t.Errorf("ListPosts: expected store error, got %v", err)
	}
	if _, err := svc.CreatePost(ctx, "t", "c"); !errors.Is(err, repo.err) {
		t.Errorf("CreatePost: expected store error, got %v", err)
	}
	if _, err := svc.DeletePost(ctx, 1); !errors.Is(err, repo.err) {
		t.Errorf("DeletePost: expected store error, got %v", err)
	}
}

func TestPostService_DeleteReturnsPriorContents(t *testing.T) {
	svc := NewPostService(newFakeRepo())
	ctx := context.Background()

	created, err := svc.CreatePost(ctx, "A", "B")
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}

	deleted, err := svc.DeletePost(ctx, created.ID)
	if err != nil {
		t.Fatalf("DeletePost failed: %v", err)
	}
	if deleted.Title != "A" || deleted.Content != "B" {
		t.Errorf("deleted = %+v, want prior contents", deleted)
	}

	if _, err := svc.GetPost(ctx, created.ID); !errors.Is(err, domain.ErrPostNotFound) {
		t.Errorf("expected ErrPostNotFound after delete, got %v", err)
	}
}

func TestPostService_UpdatePost(t *testing.T) {
	svc := NewPostService(newFakeRepo())
	ctx := context.Background()

	created, err := svc.CreatePost(ctx, "old", "old")
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}

	updated, err := svc.UpdatePost(ctx, created.ID, "new", "newer")
	if err != nil {
		t.Fatalf("UpdatePost failed: %v", err)
	}
	if updated.Title != "new" || updated.Content != "newer" {
		t.Errorf("updated = %+v", updated)
	}

	if _, err := svc.UpdatePost(ctx, 999, "x", "y"); !errors.Is(err, domain.ErrPostNotFound) {
		t.Errorf("expected ErrPostNotFound, got %v", err)
	}
}
