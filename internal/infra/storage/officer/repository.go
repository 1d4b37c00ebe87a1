package officer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/SahanHeshan/GovPortal/internal/domain"
	"github.com/SahanHeshan/GovPortal/pkg/psqlbuilder"
	"github.com/SahanHeshan/GovPortal/pkg/txmanager"
)

// Repository is the Postgres repository for officer accounts
type Repository struct {
	db txmanager.Executor
}

// NewRepository creates an officer repository over the given executor
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// GetByUsername fetches the officer account for a login attempt
func (r *Repository) GetByUsername(ctx context.Context, username string) (*domain.Officer, error) {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"username",
		"password_hash",
		"role",
		"email",
		"location",
		"category_id",
		"name_si",
		"name_en",
		"name_ta",
		"description_si",
		"description_en",
		"description_ta",
		"created_at",
	).
		From("officers").
		Where(squirrel.Eq{"username": username}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUsername - build select query: %v", ErrBuildQuery, err)
	}

	var o domain.Officer
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&o.ID,
		&o.Username,
		&o.PasswordHash,
		&o.Role,
		&o.Email,
		&o.Location,
		&o.CategoryID,
		&o.NameSI,
		&o.NameEN,
		&o.NameTA,
		&o.DescriptionSI,
		&o.DescriptionEN,
		&o.DescriptionTA,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrOfficerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUsername - scan officer: %v", ErrScanRow, err)
	}

	o.CreatedAt = createdAt.Time

	return &o, nil
}
