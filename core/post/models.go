package post

import (
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/educatesobreia/backend/core"
)

// Post is a community feed entry. Posts are created externally (or seeded
// via the admin CLI); the API only ever lists them newest-first.
type Post struct {
	ID        string      `json:"id" db:"id"`
	Author    string      `json:"author" db:"author"`
	AuthorImg null.String `json:"author_img" db:"author_img"`
	Title     string      `json:"title" db:"title"`
	Content   string      `json:"content" db:"content"`
	Likes     int         `json:"likes" db:"likes"`
	Comments  int         `json:"comments" db:"comments"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"` // UTC
}

// NewPost contains information needed to seed a feed Post.
type NewPost struct {
	Author    string `json:"author" validate:"required"`
	AuthorImg string `json:"author_img"`
	Title     string `json:"title" validate:"required"`
	Content   string `json:"content" validate:"required"`
}

func (np *NewPost) Validate() error {
	np.Author = core.CleanString(np.Author)
	np.AuthorImg = core.CleanString(np.AuthorImg)
	np.Title = core.CleanString(np.Title)
	np.Content = core.CleanString(np.Content)
	return core.Validate.Struct(np)
}
