package govservice

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/SahanHeshan/GovPortal/internal/domain"
	"github.com/SahanHeshan/GovPortal/pkg/psqlbuilder"
	"github.com/SahanHeshan/GovPortal/pkg/txmanager"
)

var serviceColumns = []string{
	"service_id",
	"gov_node_id",
	"service_type",
	"service_name_si",
	"service_name_en",
	"service_name_ta",
	"description_si",
	"description_en",
	"description_ta",
	"is_active",
	"required_document_types",
	"created_at",
	"updated_at",
}

// Repository is the Postgres repository for government services.
// Services are owned by another subsystem; this side only reads them.
type Repository struct {
	db txmanager.Executor
}

// NewRepository creates a service repository over the given executor
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// ListByGovNode returns all services offered by one office node
func (r *Repository) ListByGovNode(ctx context.Context, govNodeID int64) ([]*domain.Service, error) {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"gov_node_id": govNodeID}).
		OrderBy("service_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByGovNode - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByGovNode - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByGovNode - scan service: %v", ErrScanRow, err)
		}
		services = append(services, svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByGovNode - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// GetByID fetches one service by its identity
func (r *Repository) GetByID(ctx context.Context, serviceID int64) (*domain.Service, error) {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"service_id": serviceID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	svc, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %v", ErrScanRow, err)
	}

	return svc, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanService(row rowScanner) (*domain.Service, error) {
	var svc domain.Service
	var createdAt, updatedAt sql.NullTime
	var docTypes pq.Int64Array

	err := row.Scan(
		&svc.ServiceID,
		&svc.GovNodeID,
		&svc.ServiceType,
		&svc.ServiceNameSI,
		&svc.ServiceNameEN,
		&svc.ServiceNameTA,
		&svc.DescriptionSI,
		&svc.DescriptionEN,
		&svc.DescriptionTA,
		&svc.IsActive,
		&docTypes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	svc.RequiredDocumentTypes = docTypes
	svc.CreatedAt = createdAt.Time
	svc.UpdatedAt = updatedAt.Time

	return &svc, nil
}
