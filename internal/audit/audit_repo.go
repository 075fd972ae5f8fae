package audit

import (
	"context"
	"database/sql"
	"encoding/json"

	"gorm.io/datatypes"
)

//go:generate mockgen -source=audit_repo.go -destination=mock/audit_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, entry *AuditLog) error
	FindRecent(ctx context.Context, limit int) ([]AuditLog, error)
}

type repository struct {
	db *sql.DB
	tx *sql.Tx
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// Create runs through execer so it joins the caller's transaction: the
// export flow must not commit a transfer run without its audit row.
func (r *repository) Create(ctx context.Context, entry *AuditLog) error {
	metadata, err := json.Marshal(entry.Metadata)
	if err != nil {
		return err
	}

	query := `
        INSERT INTO audit_logs (
            id, actor_id, action, description, metadata, ip_address, user_agent, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
    `

	exec := r.execer()
	_, err = exec.ExecContext(
		ctx, query,
		entry.ID, entry.ActorID, entry.Action,
		entry.Description, metadata, entry.IPAddress, entry.UserAgent,
	)
	return err
}

func (r *repository) FindRecent(ctx context.Context, limit int) ([]AuditLog, error) {
	query := `
SELECT
	id,
	actor_id,
	action,
	COALESCE(description, ''),
	COALESCE(metadata, '{}'::jsonb),
	COALESCE(ip_address, ''),
	COALESCE(user_agent, ''),
	created_at
FROM audit_logs
ORDER BY created_at DESC
LIMIT $1
`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]AuditLog, 0, limit)
	for rows.Next() {
		var e AuditLog
		var metadata []byte
		if err := rows.Scan(
			&e.ID,
			&e.ActorID,
			&e.Action,
			&e.Description,
			&metadata,
			&e.IPAddress,
			&e.UserAgent,
			&e.CreatedAt,
		); err != nil {
			return nil, err
		}
		if len(metadata) > 0 {
			meta := datatypes.JSONMap{}
			if err := json.Unmarshal(metadata, &meta); err == nil {
				e.Metadata = meta
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *repository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}
