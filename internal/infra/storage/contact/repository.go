package contact

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/umurava/maternalcare-booking/internal/notify"
	"github.com/umurava/maternalcare-booking/pkg/psqlbuilder"
)

// Repository keeps the last known contact per owner reference. Booking
// upserts it from the request's contact, the reminder job reads it back
// when the delivery address is needed long after the token is gone.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a contact repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert stores or refreshes the contact for an owner reference.
func (r *Repository) Upsert(ctx context.Context, ownerRef string, c notify.Contact) error {
	query, args, err := psqlbuilder.Insert("contacts").
		Columns("owner_ref", "name", "email", "phone").
		Values(ownerRef, c.Name, c.Email, c.Phone).
		Suffix(`ON CONFLICT (owner_ref) DO UPDATE
			SET name = EXCLUDED.name,
			    email = EXCLUDED.email,
			    phone = EXCLUDED.phone,
			    updated_at = NOW()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Upsert: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// Resolve returns the contact on file for an owner reference.
func (r *Repository) Resolve(ctx context.Context, ownerRef string) (notify.Contact, error) {
	query, args, err := psqlbuilder.Select("name", "email", "phone").
		From("contacts").
		Where(squirrel.Eq{"owner_ref": ownerRef}).
		ToSql()
	if err != nil {
		return notify.Contact{}, fmt.Errorf("%w: Resolve: %v", ErrBuildQuery, err)
	}

	var c notify.Contact
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&c.Name, &c.Email, &c.Phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return notify.Contact{}, fmt.Errorf("%w: Resolve - owner_ref=%s", ErrContactNotFound, ownerRef)
		}
		return notify.Contact{}, fmt.Errorf("%w: Resolve: %v", ErrScanRow, err)
	}

	return c, nil
}
