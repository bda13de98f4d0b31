package lead

import (
	"time"

	"github.com/educatesobreia/backend/core"
)

// Lead is a prospective-member registration record. A Lead is created
// exactly once per successful registration and is never updated or deleted
// by this application.
type Lead struct {
	ID        string    `json:"id" db:"id"`
	FullName  string    `json:"full_name" db:"full_name"`
	Email     string    `json:"email" db:"email"`
	Keyword   string    `json:"keyword" db:"keyword"`
	CreatedAt time.Time `json:"created_at" db:"created_at"` // UTC
}

// NewLead contains information needed to register a new Lead.
type NewLead struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Keyword string `json:"keyword" validate:"required"`
}

func (nl *NewLead) Validate() error {
	nl.Name = core.CleanString(nl.Name)
	nl.Email = core.CleanString(nl.Email, true /* lower */)
	nl.Keyword = core.CleanString(nl.Keyword)
	return core.Validate.Struct(nl)
}

// Registration is the outcome of a successful submission: the created Lead
// plus a welcome message for immediate display.
type Registration struct {
	Lead     Lead   `json:"lead"`
	Greeting string `json:"greeting"`
}
