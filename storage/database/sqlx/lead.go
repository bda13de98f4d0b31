package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/educatesobreia/backend/core"
	"github.com/educatesobreia/backend/core/lead"
)

const uniqueViolation = pq.ErrorCode("23505")

type leadRepository struct {
	exec core.DBExecutor
}

var _ lead.Repository = (*leadRepository)(nil) // interface compliance check

func NewLeadRepository(exec core.DBExecutor) *leadRepository {
	return &leadRepository{exec: exec}
}

// trapNoRowsErr maps psql "no rows" err to lead.ErrNotFound
func (repo leadRepository) trapNoRowsErr(err error, msg string) error {
	if err == sql.ErrNoRows {
		return lead.ErrNotFound
	}
	return errors.Wrap(err, msg)
}

func (repo leadRepository) CreateLead(ctx context.Context, ld lead.Lead) (lead.Lead, error) {
	ld.ID = uuid.New().String()

	// created_at is server-assigned
	query := `
		INSERT INTO leads (id, full_name, email, keyword)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	err := repo.exec.QueryRowxContext(ctx, query, ld.ID, ld.FullName, ld.Email, ld.Keyword).Scan(&ld.CreatedAt)
	if err != nil {
		if pqErr, ok := errors.Cause(err).(*pq.Error); ok &&
			pqErr.Code == uniqueViolation && pqErr.Constraint == "leads_email_key" {
			return lead.Lead{}, lead.ErrEmailExists
		}
		return lead.Lead{}, errors.Wrap(err, "inserting lead")
	}
	return ld, nil
}

func (repo leadRepository) GetLeadByEmail(ctx context.Context, email string) (lead.Lead, error) {
	var ld lead.Lead
	err := repo.exec.GetContext(ctx, &ld, "SELECT * FROM leads WHERE email = $1", email)
	if err != nil {
		return lead.Lead{}, repo.trapNoRowsErr(err, "finding lead by email")
	}
	return ld, nil
}

func (repo leadRepository) QueryAllLeads(ctx context.Context) ([]lead.Lead, error) {
	ordering := core.DBOrdering{Field: "created_at", Ascending: true}

	leads := make([]lead.Lead, 0)
	err := repo.exec.SelectContext(ctx, &leads, "SELECT * FROM leads ORDER BY "+ordering.String())
	if err != nil {
		return nil, errors.Wrap(err, "querying leads")
	}
	return leads, nil
}
