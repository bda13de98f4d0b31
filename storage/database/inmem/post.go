package inmemdb

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/educatesobreia/backend/core/post"
)

type postRepository struct {
	db *DB

	// forcedErr, when set, is returned by every query; lets tests exercise
	// the feed's read-failure fallback.
	forcedErr error
}

var _ post.Repository = (*postRepository)(nil) // interface compliance check

func NewPostRepository(db *DB) *postRepository {
	return &postRepository{db: db}
}

func NewFailingPostRepository(db *DB, err error) *postRepository {
	return &postRepository{db: db, forcedErr: err}
}

func (repo postRepository) CreatePost(_ context.Context, p post.Post) (post.Post, error) {
	if repo.forcedErr != nil {
		return post.Post{}, repo.forcedErr
	}

	repo.db.post.Lock()
	defer repo.db.post.Unlock()

	p.ID = uuid.New().String()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	repo.db.post.table[p.ID] = &p
	return p, nil
}

func (repo postRepository) QueryLatestPosts(_ context.Context) ([]post.Post, error) {
	if repo.forcedErr != nil {
		return nil, repo.forcedErr
	}

	repo.db.post.RLock()
	defer repo.db.post.RUnlock()

	posts := make([]post.Post, 0, len(repo.db.post.table))
	for _, p := range repo.db.post.table {
		posts = append(posts, *p)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt.After(posts[j].CreatedAt) })
	return posts, nil
}
