package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/query"
	"tour-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var contactCols = map[string]string{
	"email":        "email",
	"phoneNumber":  "phone_number",
	"adminReplied": "admin_replied",
	"createdAt":    "created_at",
}

var contactSearchCols = []string{"full_name"}

const contactFields = `id, full_name, phone_number, email, message, admin_replied, admin_reply, created_at, updated_at`

type ContactRepository interface {
	Create(ctx context.Context, msg *entity.ContactMessage) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error)
	FindAll(ctx context.Context, opts *query.Options) ([]*entity.ContactMessage, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, msg *entity.ContactMessage) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type contactRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewContactRepository(db database.PgxIface, log *zap.Logger) ContactRepository {
	return &contactRepository{
		db:  db,
		log: log.With(zap.String("repository", "contact")),
	}
}

func scanContact(row pgx.Row) (*entity.ContactMessage, error) {
	var m entity.ContactMessage
	err := row.Scan(&m.ID, &m.FullName, &m.PhoneNumber, &m.Email, &m.Message,
		&m.AdminReplied, &m.AdminReply, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *contactRepository) Create(ctx context.Context, msg *entity.ContactMessage) error {
	sql := `
		INSERT INTO contact_messages (id, full_name, phone_number, email, message, admin_replied, admin_reply, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, sql,
		msg.ID, msg.FullName, msg.PhoneNumber, msg.Email, msg.Message,
		msg.AdminReplied, msg.AdminReply, msg.CreatedAt, msg.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create contact message", zap.Error(err), zap.String("email", msg.Email))
		return fmt.Errorf("create contact message: %w", err)
	}

	return nil
}

func (r *contactRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error) {
	sql := `SELECT ` + contactFields + ` FROM contact_messages WHERE id = $1`

	msg, err := scanContact(r.db.QueryRow(ctx, sql, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find contact message by ID", zap.Error(err), zap.String("message_id", id.String()))
		return nil, fmt.Errorf("find contact message by ID %s: %w", id.String(), err)
	}

	return msg, nil
}

func (r *contactRepository) FindAll(ctx context.Context, opts *query.Options) ([]*entity.ContactMessage, error) {
	where, args := opts.Where(contactCols, contactSearchCols)
	sql := `SELECT ` + contactFields + ` FROM contact_messages` + where + opts.OrderBy(contactCols) + opts.LimitOffset()

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		r.log.Error("Failed to list contact messages", zap.Error(err))
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	var msgs []*entity.ContactMessage
	for rows.Next() {
		msg, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact message row: %w", err)
		}
		msgs = append(msgs, msg)
	}

	return msgs, rows.Err()
}

func (r *contactRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&count); err != nil {
		r.log.Error("Failed to count contact messages", zap.Error(err))
		return 0, fmt.Errorf("count contact messages: %w", err)
	}
	return count, nil
}

func (r *contactRepository) Update(ctx context.Context, msg *entity.ContactMessage) error {
	sql := `UPDATE contact_messages SET admin_replied = $2, admin_reply = $3, updated_at = $4 WHERE id = $1`

	result, err := r.db.Exec(ctx, sql, msg.ID, msg.AdminReplied, msg.AdminReply, time.Now())
	if err != nil {
		r.log.Error("Failed to update contact message", zap.Error(err), zap.String("message_id", msg.ID.String()))
		return fmt.Errorf("update contact message %s: %w", msg.ID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("contact message %s not found", msg.ID.String())
	}

	return nil
}

func (r *contactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete contact message", zap.Error(err), zap.String("message_id", id.String()))
		return fmt.Errorf("delete contact message %s: %w", id.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("contact message %s not found", id.String())
	}

	return nil
}
