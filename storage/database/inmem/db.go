// Package inmemdb provides in-memory repositories so services and handlers
// can be tested without a live database.
package inmemdb

import (
	"sync"

	"github.com/educatesobreia/backend/core/lead"
	"github.com/educatesobreia/backend/core/post"
)

type (
	DB struct {
		lead *leadTable
		post *postTable
	}

	leadTable struct {
		sync.RWMutex
		table map[string]*lead.Lead // keyed by ID
	}

	postTable struct {
		sync.RWMutex
		table map[string]*post.Post
	}
)

func Open() (*DB, error) {
	db := &DB{
		lead: &leadTable{table: make(map[string]*lead.Lead)},
		post: &postTable{table: make(map[string]*post.Post)},
	}
	return db, nil
}
