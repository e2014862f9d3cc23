package postgres

import (
	"context"
	"fmt"

	"github.com/sidheshsarda/mis/internal/domain/entity"
	"github.com/sidheshsarda/mis/internal/domain/repository"
)

var _ repository.IssueEntryRepository = (*IssueEntryRepo)(nil)

// IssueEntryRepo implementación sobre PostgreSQL (usable con pool o tx).
type IssueEntryRepo struct {
	q Querier
}

// NewIssueEntryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIssueEntryRepository(q Querier) *IssueEntryRepo {
	return &IssueEntryRepo{q: q}
}

// Create persiste una salida de bobinas y devuelve su id.
func (r *IssueEntryRepo) Create(e *entity.IssueEntry) (int64, error) {
	query := `
		INSERT INTO millstock.spreader_roll_issue
			(issue_date, issue_time, spell, entry_id_grp, wt_per_roll,
			 no_of_rolls, breaker_inter_no, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		e.IssueDate, e.IssueTime, e.Spell, e.EntryGroupID, e.WeightPerRoll,
		e.NoOfRolls, e.BreakerInterNo, e.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create issue entry: %w", err)
	}
	return id, nil
}
