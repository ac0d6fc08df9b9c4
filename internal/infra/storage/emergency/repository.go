package emergency

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/umurava/maternalcare-booking/internal/domain"
	"github.com/umurava/maternalcare-booking/pkg/psqlbuilder"
)

// DBExecutor is the subset of *sql.DB the repository needs.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

var emergencyColumns = []string{
	"id",
	"owner_ref",
	"patient_name",
	"patient_phone",
	"patient_email",
	"patient_age",
	"patient_gender",
	"lat",
	"lng",
	"alerted_facility_ids",
	"responded_facility_id",
	"status",
	"alerted_at",
	"updated_at",
}

// Repository persists emergency dispatch records. Replaces the
// process-wide map the service grew up with, so horizontally scaled
// instances share dispatch state.
type Repository struct {
	db DBExecutor
}

// NewRepository creates an emergency repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new emergency record.
func (r *Repository) Create(ctx context.Context, e *domain.Emergency) (*domain.Emergency, error) {
	query, args, err := psqlbuilder.Insert("emergencies").
		Columns(
			"id",
			"owner_ref",
			"patient_name",
			"patient_phone",
			"patient_email",
			"patient_age",
			"patient_gender",
			"lat",
			"lng",
			"alerted_facility_ids",
			"status",
		).
		Values(
			e.ID,
			e.OwnerRef,
			e.PatientName,
			e.PatientPhone,
			e.PatientEmail,
			e.PatientAge,
			e.PatientGender,
			e.Lat,
			e.Lng,
			pq.Array(e.AlertedFacilityIDs),
			e.Status,
		).
		Suffix("RETURNING alerted_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&e.AlertedAt, &e.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	return e, nil
}

// GetByID returns an emergency record.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Emergency, error) {
	query, args, err := psqlbuilder.Select(emergencyColumns...).
		From("emergencies").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var e domain.Emergency
	var ids pq.Int64Array
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&e.ID,
		&e.OwnerRef,
		&e.PatientName,
		&e.PatientPhone,
		&e.PatientEmail,
		&e.PatientAge,
		&e.PatientGender,
		&e.Lat,
		&e.Lng,
		&ids,
		&e.RespondedFacilityID,
		&e.Status,
		&e.AlertedAt,
		&e.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEmergencyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan emergency: %v", ErrScanRow, err)
	}

	e.AlertedFacilityIDs = ids
	return &e, nil
}

// MarkResponded records which facility took the emergency. The update
// only matches a row that nobody has claimed yet, so concurrent
// responders race on the WHERE clause and exactly one wins.
func (r *Repository) MarkResponded(ctx context.Context, id string, facilityID int64) error {
	query, args, err := psqlbuilder.Update("emergencies").
		Set("responded_facility_id", facilityID).
		Set("status", domain.EmergencyResponded).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"responded_facility_id": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkResponded - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkResponded - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkResponded - get rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrAlreadyResponded
	}
	return nil
}

// Delete removes an emergency record, used when the patient cancels
// the alert.
func (r *Repository) Delete(ctx context.Context, id string) error {
	query, args, err := psqlbuilder.Delete("emergencies").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrEmergencyNotFound
	}
	return nil
}
