package sqlxrepos

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/educatesobreia/backend/core"
	"github.com/educatesobreia/backend/core/post"
)

type postRepository struct {
	exec core.DBExecutor
}

var _ post.Repository = (*postRepository)(nil) // interface compliance check

func NewPostRepository(exec core.DBExecutor) *postRepository {
	return &postRepository{exec: exec}
}

func (repo postRepository) CreatePost(ctx context.Context, p post.Post) (post.Post, error) {
	p.ID = uuid.New().String()

	query := `
		INSERT INTO posts (id, author, author_img, title, content, likes, comments)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	err := repo.exec.QueryRowxContext(ctx, query,
		p.ID, p.Author, p.AuthorImg, p.Title, p.Content, p.Likes, p.Comments,
	).Scan(&p.CreatedAt)
	if err != nil {
		return post.Post{}, errors.Wrap(err, "inserting post")
	}
	return p, nil
}

func (repo postRepository) QueryLatestPosts(ctx context.Context) ([]post.Post, error) {
	ordering := core.DBOrdering{Field: "created_at"} // newest first

	posts := make([]post.Post, 0)
	err := repo.exec.SelectContext(ctx, &posts, "SELECT * FROM posts ORDER BY "+ordering.String())
	if err != nil {
		return nil, errors.Wrap(err, "querying posts")
	}
	return posts, nil
}
