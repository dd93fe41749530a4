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

var bookingCols = map[string]string{
	"user":          "user_id",
	"tour":          "tour_id",
	"tourType":      "tour_type",
	"date":          "tour_date",
	"totalPrice":    "total_price",
	"paymentStatus": "payment_status",
	"bookingStatus": "booking_status",
	"createdAt":     "created_at",
}

const bookingFields = `id, user_id, tour_id, tour_type, tour_date, tour_time,
		adults, youth, children, total_price, taxes, service_fee,
		payment_method, payment_status, booking_status, created_at, updated_at`

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Booking, error)
	FindAll(ctx context.Context, opts *query.Options) ([]*entity.Booking, error)
	Count(ctx context.Context) (int64, error)
	FindPastByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)
	FindUpcomingByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)
	Update(ctx context.Context, booking *entity.Booking) error
	UpdateStatus(ctx context.Context, id uuid.UUID, payment entity.PaymentStatus, status entity.BookingStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var b entity.Booking
	err := row.Scan(
		&b.ID, &b.UserID, &b.TourID, &b.TourType, &b.Date, &b.Time,
		&b.Participants.Adults, &b.Participants.Youth, &b.Participants.Children,
		&b.TotalPrice, &b.Taxes, &b.ServiceFee,
		&b.PaymentMethod, &b.PaymentStatus, &b.BookingStatus,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	sql := `
		INSERT INTO bookings (
			id, user_id, tour_id, tour_type, tour_date, tour_time,
			adults, youth, children, total_price, taxes, service_fee,
			payment_method, payment_status, booking_status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err := r.db.Exec(ctx, sql,
		booking.ID, booking.UserID, booking.TourID, booking.TourType, booking.Date, booking.Time,
		booking.Participants.Adults, booking.Participants.Youth, booking.Participants.Children,
		booking.TotalPrice, booking.Taxes, booking.ServiceFee,
		booking.PaymentMethod, booking.PaymentStatus, booking.BookingStatus,
		booking.CreatedAt, booking.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", booking.UserID.String()),
			zap.String("tour_id", booking.TourID.String()),
		)
		return fmt.Errorf("create booking: %w", err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	sql := `SELECT ` + bookingFields + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, sql, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID", zap.Error(err), zap.String("booking_id", id.String()))
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Booking, error) {
	sql := `SELECT ` + bookingFields + ` FROM bookings WHERE id = $1 AND user_id = $2`

	booking, err := scanBooking(r.db.QueryRow(ctx, sql, id, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID and user", zap.Error(err), zap.String("booking_id", id.String()))
		return nil, fmt.Errorf("find booking %s for user: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, opts *query.Options) ([]*entity.Booking, error) {
	where, args := opts.Where(bookingCols, nil)
	sql := `SELECT ` + bookingFields + ` FROM bookings` + where + opts.OrderBy(bookingCols) + opts.LimitOffset()

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		r.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *bookingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return count, nil
}

func (r *bookingRepository) FindPastByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	sql := `SELECT ` + bookingFields + ` FROM bookings
		WHERE user_id = $1 AND tour_date < $2
		ORDER BY tour_date DESC`

	rows, err := r.db.Query(ctx, sql, userID, time.Now())
	if err != nil {
		r.log.Error("Failed to list past bookings", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("list past bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *bookingRepository) FindUpcomingByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	sql := `SELECT ` + bookingFields + ` FROM bookings
		WHERE user_id = $1 AND tour_date >= $2
		ORDER BY tour_date ASC`

	rows, err := r.db.Query(ctx, sql, userID, time.Now())
	if err != nil {
		r.log.Error("Failed to list upcoming bookings", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("list upcoming bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func collectBookings(rows pgx.Rows) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	sql := `
		UPDATE bookings SET
			tour_type = $2, tour_date = $3, tour_time = $4,
			adults = $5, youth = $6, children = $7,
			total_price = $8, taxes = $9, service_fee = $10,
			payment_method = $11, payment_status = $12, booking_status = $13,
			updated_at = $14
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, sql,
		booking.ID, booking.TourType, booking.Date, booking.Time,
		booking.Participants.Adults, booking.Participants.Youth, booking.Participants.Children,
		booking.TotalPrice, booking.Taxes, booking.ServiceFee,
		booking.PaymentMethod, booking.PaymentStatus, booking.BookingStatus,
		time.Now(),
	)
	if err != nil {
		r.log.Error("Failed to update booking", zap.Error(err), zap.String("booking_id", booking.ID.String()))
		return fmt.Errorf("update booking %s: %w", booking.ID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", booking.ID.String())
	}

	return nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, payment entity.PaymentStatus, status entity.BookingStatus) error {
	sql := `UPDATE bookings SET payment_status = $2, booking_status = $3, updated_at = $4 WHERE id = $1`

	result, err := r.db.Exec(ctx, sql, id, payment, status, time.Now())
	if err != nil {
		r.log.Error("Failed to update booking status", zap.Error(err), zap.String("booking_id", id.String()))
		return fmt.Errorf("update booking status %s: %w", id.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id.String())
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete booking", zap.Error(err), zap.String("booking_id", id.String()))
		return fmt.Errorf("delete booking %s: %w", id.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id.String())
	}

	return nil
}
