package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"fieldops/internal/port"
)

type clientRepo struct {
	db *sqlx.DB
}

// NewClientRepo creates a new PostgreSQL-backed ClientRepository.
func NewClientRepo(db *sqlx.DB) port.ClientRepository {
	return &clientRepo{db: db}
}

type clientNameRow struct {
	ID   uuid.UUID `db:"id"`
	Name string    `db:"name"`
}

// GetNames resolves client names in a single batched query. Ids without a
// matching client are absent from the result map.
func (r *clientRepo) GetNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	query, args, err := sqlx.In("SELECT id, name FROM clients WHERE id IN (?)", ids)
	if err != nil {
		return nil, fmt.Errorf("clientRepo.GetNames build: %w", err)
	}
	query = r.db.Rebind(query)

	var rows []clientNameRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("clientRepo.GetNames: %w", err)
	}

	for _, row := range rows {
		names[row.ID] = row.Name
	}
	return names, nil
}
