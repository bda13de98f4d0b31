package main

import (
	"context"
	"fmt"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/educatesobreia/backend/core/post"
)

// addPost seeds a community feed entry.
func (cli *commandLine) addPost(author, img, title, content string) error {
	np := post.NewPost{
		Author:    author,
		AuthorImg: img,
		Title:     title,
		Content:   content,
	}
	if err := np.Validate(); err != nil {
		return err
	}

	p, err := cli.postRepo.CreatePost(context.Background(), post.Post{
		Author:    np.Author,
		AuthorImg: null.NewString(np.AuthorImg, np.AuthorImg != ""),
		Title:     np.Title,
		Content:   np.Content,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	fmt.Printf("post %q created (%s)\n", p.Title, p.ID)
	return nil
}
