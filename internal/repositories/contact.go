package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-storefront/internal/models"
)

type ContactRepository struct {
	db *sqlx.DB
}

func NewContactRepository(db *sqlx.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Save stores a contact form message.
func (r *ContactRepository) Save(ctx context.Context, contact models.Contact) error {
	query := `
		INSERT INTO contacts (name, email, message, created_at)
		VALUES (?, ?, ?, ?)
	`

	res, err := r.db.ExecContext(ctx, r.db.Rebind(query), contact.Name, contact.Email, contact.Message, time.Now().UTC())

	logQuery(query, []any{contact.Name, contact.Email}, rowsAffected(res), err)

	return err
}
