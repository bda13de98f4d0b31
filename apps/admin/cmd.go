package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/educatesobreia/backend/core/lead"
	"github.com/educatesobreia/backend/core/post"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	db       *sqlx.DB
	leadRepo lead.Repository
	postRepo post.Repository
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  migrate COMMAND [args] - manage DB migrations (goose commands)")
	fmt.Println("  listleads - print all registered leads, oldest first")
	fmt.Println("  addpost -author AUTHOR -title TITLE -content CONTENT [-img URL] - seed a community post")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addPostCmd := flag.NewFlagSet("addpost", flag.ExitOnError)
	addPostAuthor := addPostCmd.String("author", "", "The post author's display name.")
	addPostImg := addPostCmd.String("img", "", "The author's avatar URL. Optional.")
	addPostTitle := addPostCmd.String("title", "", "The post title.")
	addPostContent := addPostCmd.String("content", "", "The post body.")

	switch args[1] {
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])
	case "listleads":
		return cli.listLeads()
	case "addpost":
		if err := addPostCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addPostAuthor == "" || *addPostTitle == "" || *addPostContent == "" {
			addPostCmd.Usage()
			return errHelp
		}
		return cli.addPost(*addPostAuthor, *addPostImg, *addPostTitle, *addPostContent)
	default:
		cli.printUsage()
		return errHelp
	}
}
