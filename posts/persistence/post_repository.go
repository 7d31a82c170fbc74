package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dfryer1193/postapi/posts/domain"
	"github.com/dfryer1193/postapi/shared/db"
)

var _ domain.PostRepository = (*SQLitePostRepository)(nil)

// SQLitePostRepository implements domain.PostRepository using SQL database (SQLite)
type SQLitePostRepository struct {
	db *sql.DB
}

// NewPostRepository creates a new SQLitePostRepository from a standard sql.DB
func NewPostRepository(db *sql.DB) *SQLitePostRepository {
	return &SQLitePostRepository{
		db: db,
	}
}

const listPostsQuery = `
	SELECT id, title, content
	FROM posts
	ORDER BY id
`

// ListPosts retrieves every stored post, ordered by id for deterministic
// responses.
func (r *SQLitePostRepository) ListPosts(ctx context.Context) ([]*domain.Post, error) {
	rows, err := r.db.QueryContext(ctx, listPostsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]*domain.Post, 0)
	for rows.Next() {
		var row postRow
		if err := rows.Scan(&row.ID, &row.Title, &row.Content); err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		posts = append(posts, row.toDomain())
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}

	return posts, nil
}

const getPostQuery = `
	SELECT id, title, content
	FROM posts
	WHERE id = ?
`

// GetPost retrieves a single post by id.
// Returns domain.ErrPostNotFound when no row exists for the id.
func (r *SQLitePostRepository) GetPost(ctx context.Context, id int64) (*domain.Post, error) {
	return getPost(ctx, db.GetExecutor(ctx, r.db), id)
}

// getPost is shared by the read path and the mutating operations, which
// call it through their transaction's executor.
func getPost(ctx context.Context, executor db.Executor, id int64) (*domain.Post, error) {
	var row postRow
	err := executor.QueryRowContext(ctx, getPostQuery, id).Scan(&row.ID, &row.Title, &row.Content)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPostNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return row.toDomain(), nil
}

const createPostQuery = `
	INSERT INTO posts (title, content)
	VALUES (?, ?)
`

// CreatePost inserts a new post and returns it with the store-assigned id.
// The insert and the read-back of the generated row commit together.
func (r *SQLitePostRepository) CreatePost(ctx context.Context, title, content string) (*domain.Post, error) {
	var created *domain.Post

	err := db.RunInTransaction(ctx, r.db, func(txCtx context.Context) error {
		executor := db.GetExecutor(txCtx, r.db)

		res, err := executor.ExecContext(txCtx, createPostQuery, title, content)
		if err != nil {
			return fmt.Errorf("failed to insert post: %w", err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read generated post id: %w", err)
		}

		created, err = getPost(txCtx, executor, id)
		return err
	})

	if err != nil {
		return nil, err
	}

	return created, nil
}

const updatePostQuery = `
	UPDATE posts
	SET title = ?, content = ?
	WHERE id = ?
`

// UpdatePost replaces the title and content of an existing post.
// Returns domain.ErrPostNotFound when no row exists for the id; any other
// failure rolls the update back.
func (r *SQLitePostRepository) UpdatePost(ctx context.Context, id int64, title, content string) (*domain.Post, error) {
	var updated *domain.Post

	err := db.RunInTransaction(ctx, r.db, func(txCtx context.Context) error {
		executor := db.GetExecutor(txCtx, r.db)

		res, err := executor.ExecContext(txCtx, updatePostQuery, title, content, id)
		if err != nil {
			return fmt.Errorf("failed to update post: %w", err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read affected rows: %w", err)
		}
		if affected == 0 {
			return domain.ErrPostNotFound
		}

		updated, err = getPost(txCtx, executor, id)
		return err
	})

	if err != nil {
		return nil, err
	}

	return updated, nil
}

const deletePostQuery = `
	DELETE FROM posts
	WHERE id = ?
`

// DeletePost removes a post and returns its prior contents.
// The read and the delete commit together so the returned row is exactly
// what was removed.
func (r *SQLitePostRepository) DeletePost(ctx context.Context, id int64) (*domain.Post, error) {
	var deleted *domain.Post

	err := db.RunInTransaction(ctx, r.db, func(txCtx context.Context) error {
		executor := db.GetExecutor(txCtx, r.db)

		var err error
		deleted, err = getPost(txCtx, executor, id)
		if err != nil {
			return err
		}

		if _, err := executor.ExecContext(txCtx, deletePostQuery, id); err != nil {
			return fmt.Errorf("failed to delete post: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return deleted, nil
}

// postRow is a private struct used to scan database rows
type postRow struct {
	ID      int64  `db:"id"`
	Title   string `db:"title"`
	Content string `db:"content"`
}

// toDomain converts a postRow to a domain.Post
func (pr *postRow) toDomain() *domain.Post {
	return &domain.Post{
		ID:      pr.ID,
		Title:   pr.Title,
		Content: pr.Content,
	}
}
