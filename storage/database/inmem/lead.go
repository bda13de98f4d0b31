package inmemdb

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/educatesobreia/backend/core/lead"
)

type leadRepository struct {
	db *DB
}

var _ lead.Repository = (*leadRepository)(nil) // interface compliance check

func NewLeadRepository(db *DB) *leadRepository {
	return &leadRepository{db: db}
}

func (repo leadRepository) CreateLead(_ context.Context, ld lead.Lead) (lead.Lead, error) {
	repo.db.lead.Lock()
	defer repo.db.lead.Unlock()

	for _, existing := range repo.db.lead.table {
		if existing.Email == ld.Email {
			return lead.Lead{}, lead.ErrEmailExists
		}
	}

	ld.ID = uuid.New().String()
	if ld.CreatedAt.IsZero() {
		ld.CreatedAt = time.Now().UTC()
	}
	repo.db.lead.table[ld.ID] = &ld
	return ld, nil
}

func (repo leadRepository) GetLeadByEmail(_ context.Context, email string) (lead.Lead, error) {
	repo.db.lead.RLock()
	defer repo.db.lead.RUnlock()

	for _, ld := range repo.db.lead.table {
		if ld.Email == email {
			return *ld, nil
		}
	}
	return lead.Lead{}, lead.ErrNotFound
}

func (repo leadRepository) QueryAllLeads(_ context.Context) ([]lead.Lead, error) {
	repo.db.lead.RLock()
	defer repo.db.lead.RUnlock()

	leads := make([]lead.Lead, 0, len(repo.db.lead.table))
	for _, ld := range repo.db.lead.table {
		leads = append(leads, *ld)
	}
	sort.Slice(leads, func(i, j int) bool { return leads[i].CreatedAt.Before(leads[j].CreatedAt) })
	return leads, nil
}
