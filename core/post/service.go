package post

import (
	"context"
	"fmt"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/educatesobreia/backend/core"
)

type (
	Repository interface {
		CreatePost(ctx context.Context, p Post) (Post, error)
		QueryLatestPosts(ctx context.Context) ([]Post, error)
	}

	Service struct {
		repo   Repository
		logger core.Logger
	}
)

func NewService(repo Repository, logger core.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Latest returns the community feed, newest first. The feed surface has no
// error affordance: on read failure (logged) or an empty feed, a single
// placeholder post is substituted.
func (svc *Service) Latest(ctx context.Context) []Post {
	posts, err := svc.repo.QueryLatestPosts(ctx)
	if err != nil {
		svc.logger.Error(fmt.Sprintf("querying latest posts: %v", err), err)
		return []Post{placeholderPost()}
	}
	if len(posts) == 0 {
		return []Post{placeholderPost()}
	}
	return posts
}

func (svc *Service) Create(ctx context.Context, np NewPost) (Post, error) {
	if err := np.Validate(); err != nil {
		return Post{}, err
	}
	p := Post{
		Author:    np.Author,
		AuthorImg: null.NewString(np.AuthorImg, np.AuthorImg != ""),
		Title:     np.Title,
		Content:   np.Content,
		CreatedAt: time.Now().UTC(),
	}
	return svc.repo.CreatePost(ctx, p)
}

// placeholderPost is the display fallback, not a data-model guarantee.
func placeholderPost() Post {
	return Post{
		ID:        "00000000-0000-0000-0000-000000000000",
		Author:    "Agente Neural",
		AuthorImg: null.StringFrom("https://i.pravatar.cc/150?img=11"),
		Title:     "He descubierto un nuevo prompt para automatizar el SEO en segundos",
		Content: "Estaba probando Gemini 3 y los resultados son increíbles. " +
			"Aquí les comparto el workflow completo que usé para este proyecto...",
		Likes:     12,
		Comments:  5,
		CreatedAt: time.Now().UTC().Add(-2 * time.Hour),
	}
}
