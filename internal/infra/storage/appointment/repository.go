package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/umurava/maternalcare-booking/internal/domain"
	"github.com/umurava/maternalcare-booking/pkg/psqlbuilder"
	"github.com/umurava/maternalcare-booking/pkg/types"
)

// slotKeyConstraint is the partial unique index declared in the schema:
// UNIQUE (facility_id, date, start_time) WHERE status <> 'cancelled'.
// The insert itself is the arbiter against double booking.
const slotKeyConstraint = "appointments_slot_key"

const uniqueViolation = "23505"

var reservationColumns = []string{
	"id",
	"owner_ref",
	"facility_id",
	"facility_name",
	"date",
	"start_time",
	"appointment_type",
	"notes",
	"status",
	"reminder_sent",
	"created_at",
	"updated_at",
}

// Repository persists reservations in the appointments table.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a reservation repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a reservation. A conflicting active reservation at the
// same (facility, date, time) key surfaces as ErrSlotTaken via the
// unique constraint, which makes concurrent bookings race-safe without
// an explicit transaction.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"owner_ref",
			"facility_id",
			"facility_name",
			"date",
			"start_time",
			"appointment_type",
			"notes",
			"status",
			"reminder_sent",
		).
		Values(
			res.OwnerRef,
			res.FacilityID,
			res.FacilityName,
			res.Date,
			res.StartTime,
			res.AppointmentType,
			res.Notes,
			res.Status,
			res.ReminderSent,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&res.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, r.mapWriteError("Create", err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time
	return res, nil
}

// GetByID returns a reservation by primary key.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := r.scanReservation(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, r.mapReadError("GetByID", err)
	}
	return res, nil
}

// ListBookedTimes returns the start times of all non-cancelled
// reservations for a facility on a date, in ascending order.
func (r *Repository) ListBookedTimes(ctx context.Context, facilityID int64, date time.Time) ([]types.TimeString, error) {
	query, args, err := psqlbuilder.Select("start_time").
		From("appointments").
		Where(squirrel.Eq{"facility_id": facilityID, "date": date}).
		Where(squirrel.Eq{"status": domain.ActiveStatuses}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBookedTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.mapReadError("ListBookedTimes", err)
	}
	defer rows.Close()

	booked := make([]types.TimeString, 0)
	for rows.Next() {
		var t types.TimeString
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("%w: ListBookedTimes - scan start_time: %v", ErrScanRow, err)
		}
		booked = append(booked, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBookedTimes - rows error: %v", ErrScanRow, err)
	}
	return booked, nil
}

// GetByOwner lists an owner's reservations ordered by date and time.
// Optional status filter.
func (r *Repository) GetByOwner(ctx context.Context, ownerRef string, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	builder := psqlbuilder.Select(reservationColumns...).
		From("appointments").
		Where(squirrel.Eq{"owner_ref": ownerRef}).
		OrderBy("date ASC, start_time ASC")

	if status != nil {
		builder = builder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwner - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.mapReadError("GetByOwner", err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// Update overwrites the mutable reservation fields. The unique slot key
// still applies, so moving onto an occupied slot fails with ErrSlotTaken.
func (r *Repository) Update(ctx context.Context, res *domain.Reservation) error {
	query, args, err := psqlbuilder.Update("appointments").
		Set("date", res.Date).
		Set("start_time", res.StartTime).
		Set("appointment_type", res.AppointmentType).
		Set("notes", res.Notes).
		Set("status", res.Status).
		Set("reminder_sent", res.ReminderSent).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": res.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return r.mapWriteError("Update", err)
	}
	return r.requireRow("Update", result)
}

// UpdateStatus changes just the lifecycle status.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return r.mapWriteError("UpdateStatus", err)
	}
	return r.requireRow("UpdateStatus", result)
}

// Delete removes a reservation physically. Administrative use only; the
// normal lifecycle cancels instead.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return r.mapWriteError("Delete", err)
	}
	return r.requireRow("Delete", result)
}

// ListNeedingReminder returns scheduled reservations dated inside
// [from, to] whose reminder has not been sent.
func (r *Repository) ListNeedingReminder(ctx context.Context, from, to time.Time) ([]*domain.Reservation, error) {
	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("appointments").
		Where(squirrel.Eq{"status": domain.StatusScheduled, "reminder_sent": false}).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		OrderBy("date ASC, start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListNeedingReminder - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.mapReadError("ListNeedingReminder", err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// MarkReminderSent flips the reminder flag.
func (r *Repository) MarkReminderSent(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Update("appointments").
		Set("reminder_sent", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkReminderSent - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return r.mapWriteError("MarkReminderSent", err)
	}
	return r.requireRow("MarkReminderSent", result)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.OwnerRef,
		&res.FacilityID,
		&res.FacilityName,
		&res.Date,
		&res.StartTime,
		&res.AppointmentType,
		&res.Notes,
		&res.Status,
		&res.ReminderSent,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time
	return &res, nil
}

func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := r.scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}
	return reservations, nil
}

func (r *Repository) requireRow(op string, result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if affected == 0 {
		return ErrReservationNotFound
	}
	return nil
}

func (r *Repository) mapWriteError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation && pqErr.Constraint == slotKeyConstraint {
		return ErrSlotTaken
	}
	return r.mapReadError(op, err)
}

func (r *Repository) mapReadError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %s: %v", ErrStorageUnavailable, op, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrExecQuery, op, err)
}
