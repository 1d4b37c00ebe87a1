package slot

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/SahanHeshan/GovPortal/internal/domain"
	"github.com/SahanHeshan/GovPortal/pkg/psqlbuilder"
	"github.com/SahanHeshan/GovPortal/pkg/txmanager"
)

var slotColumns = []string{
	"slot_id",
	"reservation_id",
	"booking_date",
	"start_time",
	"end_time",
	"max_capacity",
	"reserved_count",
	"recurrent_count",
	"status",
	"created_at",
	"updated_at",
}

// Repository is the Postgres repository for appointment time slots
type Repository struct {
	db DBExecutor
}

// NewRepository creates a slot repository over the given executor
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts one time slot and fills in its backend-assigned identity.
// When the context carries a txmanager transaction the insert joins it, which
// is how recurrence expansion stays all-or-nothing.
func (r *Repository) Create(ctx context.Context, s *domain.TimeSlot) (*domain.TimeSlot, error) {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	query, args, err := psqlbuilder.Insert("time_slots").
		Columns(
			"reservation_id",
			"booking_date",
			"start_time",
			"end_time",
			"max_capacity",
			"reserved_count",
			"recurrent_count",
			"status",
		).
		Values(
			s.ReservationID,
			s.BookingDate,
			s.StartTime,
			s.EndTime,
			s.MaxCapacity,
			s.ReservedCount,
			s.RecurrentCount,
			s.Status,
		).
		Suffix("RETURNING slot_id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.SlotID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// GetByID fetches one slot by its identity
func (r *Repository) GetByID(ctx context.Context, slotID int64) (*domain.TimeSlot, error) {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("time_slots").
		Where(squirrel.Eq{"slot_id": slotID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return s, nil
}

// ListWithFilter returns a service's slots, optionally narrowed to one date.
// Ordered by booking date then start time so lists render chronologically.
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.SlotFilter) ([]*domain.TimeSlot, error) {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("time_slots").
		Where(squirrel.Eq{"reservation_id": filter.ReservationID}).
		OrderBy("booking_date ASC, start_time ASC")

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"booking_date": *filter.Date})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// Update rewrites the mutable fields of one slot. Recurrence and the owning
// service are deliberately not part of the update set: the update endpoint is
// slot-identity-scoped and accepts neither re-parenting nor recurrence changes.
func (r *Repository) Update(ctx context.Context, s *domain.TimeSlot) (*domain.TimeSlot, error) {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	query, args, err := psqlbuilder.Update("time_slots").
		Set("booking_date", s.BookingDate).
		Set("start_time", s.StartTime).
		Set("end_time", s.EndTime).
		Set("max_capacity", s.MaxCapacity).
		Set("reserved_count", s.ReservedCount).
		Set("status", s.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"slot_id": s.SlotID}).
		Suffix("RETURNING reservation_id, recurrent_count, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ReservationID,
		&s.RecurrentCount,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// Delete removes one slot
func (r *Repository) Delete(ctx context.Context, slotID int64) error {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	query, args, err := psqlbuilder.Delete("time_slots").
		Where(squirrel.Eq{"slot_id": slotID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSlot(row rowScanner) (*domain.TimeSlot, error) {
	var s domain.TimeSlot
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.SlotID,
		&s.ReservationID,
		&s.BookingDate,
		&s.StartTime,
		&s.EndTime,
		&s.MaxCapacity,
		&s.ReservedCount,
		&s.RecurrentCount,
		&s.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

func scanSlots(rows *sql.Rows) ([]*domain.TimeSlot, error) {
	slots := make([]*domain.TimeSlot, 0)

	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan slot: %v", ErrScanRow, err)
		}
		slots = append(slots, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
