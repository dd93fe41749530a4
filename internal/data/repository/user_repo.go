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

// userCols whitelists the user fields a list request may filter or sort on.
var userCols = map[string]string{
	"fullName":      "full_name",
	"email":         "email",
	"phoneNumber":   "phone_number",
	"role":          "role",
	"active":        "active",
	"city":          "city",
	"requestStatus": "request_status",
	"isApproved":    "is_approved",
	"createdAt":     "created_at",
}

var userSearchCols = []string{"full_name"}

const userFields = `id, full_name, email, password, phone_number, role, active, profile_img,
		password_changed_at, signup_code, signup_code_expires_at, signup_code_verified,
		reset_code, reset_code_expires_at, reset_code_verified,
		id_number, city, language, description, id_photos, request_status, is_approved,
		created_at, updated_at`

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByEmailOrPhone(ctx context.Context, identifier string) (*entity.User, error)
	FindBySignupCode(ctx context.Context, hashedCode string) (*entity.User, error)
	FindByResetCode(ctx context.Context, hashedCode string) (*entity.User, error)
	FindAll(ctx context.Context, opts *query.Options) ([]*entity.User, error)
	Count(ctx context.Context) (int64, error)
	FindPendingGuideRequests(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Wishlist (set semantics, duplicates ignored)
	AddToWishlist(ctx context.Context, userID, tourID uuid.UUID) error
	RemoveFromWishlist(ctx context.Context, userID, tourID uuid.UUID) error
	FindWishlist(ctx context.Context, userID uuid.UUID) ([]*entity.Tour, error)
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.PhoneNumber, &u.Role, &u.Active,
		&u.ProfileImg, &u.PasswordChangedAt,
		&u.SignupCode, &u.SignupCodeExpiresAt, &u.SignupCodeVerified,
		&u.ResetCode, &u.ResetCodeExpiresAt, &u.ResetCodeVerified,
		&u.IDNumber, &u.City, &u.Language, &u.Description, &u.IDPhotos,
		&u.RequestStatus, &u.IsApproved,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	sql := `
		INSERT INTO users (id, full_name, email, password, phone_number, role, active, profile_img,
			password_changed_at, signup_code, signup_code_expires_at, signup_code_verified,
			reset_code, reset_code_expires_at, reset_code_verified,
			id_number, city, language, description, id_photos, request_status, is_approved,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
			$19, $20, $21, $22, $23, $24)
	`

	_, err := r.db.Exec(ctx, sql,
		user.ID, user.FullName, user.Email, user.PasswordHash, user.PhoneNumber, user.Role,
		user.Active, user.ProfileImg, user.PasswordChangedAt,
		user.SignupCode, user.SignupCodeExpiresAt, user.SignupCodeVerified,
		user.ResetCode, user.ResetCodeExpiresAt, user.ResetCodeVerified,
		user.IDNumber, user.City, user.Language, user.Description, user.IDPhotos,
		user.RequestStatus, user.IsApproved,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	sql := `SELECT ` + userFields + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, sql, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by ID", zap.Error(err), zap.String("user_id", id.String()))
		return nil, fmt.Errorf("find user by ID %s: %w", id.String(), err)
	}

	return user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	sql := `SELECT ` + userFields + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.QueryRow(ctx, sql, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return user, nil
}

func (r *userRepository) FindByEmailOrPhone(ctx context.Context, identifier string) (*entity.User, error) {
	sql := `SELECT ` + userFields + ` FROM users WHERE email = $1 OR phone_number = $1`

	user, err := scanUser(r.db.QueryRow(ctx, sql, identifier))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by email or phone", zap.Error(err))
		return nil, fmt.Errorf("find user by email or phone: %w", err)
	}

	return user, nil
}

func (r *userRepository) FindBySignupCode(ctx context.Context, hashedCode string) (*entity.User, error) {
	sql := `SELECT ` + userFields + ` FROM users
		WHERE signup_code = $1 AND signup_code_expires_at > $2`

	user, err := scanUser(r.db.QueryRow(ctx, sql, hashedCode, time.Now()))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by signup code", zap.Error(err))
		return nil, fmt.Errorf("find user by signup code: %w", err)
	}

	return user, nil
}

func (r *userRepository) FindByResetCode(ctx context.Context, hashedCode string) (*entity.User, error) {
	sql := `SELECT ` + userFields + ` FROM users
		WHERE reset_code = $1 AND reset_code_expires_at > $2`

	user, err := scanUser(r.db.QueryRow(ctx, sql, hashedCode, time.Now()))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by reset code", zap.Error(err))
		return nil, fmt.Errorf("find user by reset code: %w", err)
	}

	return user, nil
}

func (r *userRepository) FindAll(ctx context.Context, opts *query.Options) ([]*entity.User, error) {
	where, args := opts.Where(userCols, userSearchCols)
	sql := `SELECT ` + userFields + ` FROM users` + where + opts.OrderBy(userCols) + opts.LimitOffset()

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		r.log.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			r.log.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		r.log.Error("Failed to count users", zap.Error(err))
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}

func (r *userRepository) FindPendingGuideRequests(ctx context.Context) ([]*entity.User, error) {
	sql := `SELECT ` + userFields + ` FROM users
		WHERE role = $1 AND request_status = $2 AND is_approved = false
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, sql, entity.RoleTourGuide, entity.RequestStatusPending)
	if err != nil {
		r.log.Error("Failed to list pending guide requests", zap.Error(err))
		return nil, fmt.Errorf("list pending guide requests: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	sql := `
		UPDATE users
		SET full_name = $2, email = $3, phone_number = $4, role = $5, active = $6,
			profile_img = $7, signup_code = $8, signup_code_expires_at = $9,
			signup_code_verified = $10, reset_code = $11, reset_code_expires_at = $12,
			reset_code_verified = $13, id_number = $14, city = $15, language = $16,
			description = $17, id_photos = $18, request_status = $19, is_approved = $20,
			updated_at = $21
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, sql,
		user.ID, user.FullName, user.Email, user.PhoneNumber, user.Role, user.Active,
		user.ProfileImg, user.SignupCode, user.SignupCodeExpiresAt, user.SignupCodeVerified,
		user.ResetCode, user.ResetCodeExpiresAt, user.ResetCodeVerified,
		user.IDNumber, user.City, user.Language, user.Description, user.IDPhotos,
		user.RequestStatus, user.IsApproved, time.Now(),
	)
	if err != nil {
		r.log.Error("Failed to update user", zap.Error(err), zap.String("user_id", user.ID.String()))
		return fmt.Errorf("update user %s: %w", user.ID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", user.ID.String())
	}

	return nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	sql := `UPDATE users SET password = $2, password_changed_at = NOW(), updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, sql, id, passwordHash)
	if err != nil {
		r.log.Error("Failed to update password", zap.Error(err), zap.String("user_id", id.String()))
		return fmt.Errorf("update password for user %s: %w", id.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", id.String())
	}

	return nil
}

func (r *userRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	sql := `UPDATE users SET active = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, sql, id, active)
	if err != nil {
		r.log.Error("Failed to set user active flag", zap.Error(err), zap.String("user_id", id.String()))
		return fmt.Errorf("set active for user %s: %w", id.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", id.String())
	}

	return nil
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete user", zap.Error(err), zap.String("user_id", id.String()))
		return fmt.Errorf("delete user %s: %w", id.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", id.String())
	}

	r.log.Info("User deleted", zap.String("user_id", id.String()))
	return nil
}

func (r *userRepository) AddToWishlist(ctx context.Context, userID, tourID uuid.UUID) error {
	sql := `
		INSERT INTO wishlists (user_id, tour_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, tour_id) DO NOTHING
	`

	if _, err := r.db.Exec(ctx, sql, userID, tourID); err != nil {
		r.log.Error("Failed to add tour to wishlist",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("tour_id", tourID.String()),
		)
		return fmt.Errorf("add tour %s to wishlist: %w", tourID.String(), err)
	}

	return nil
}

func (r *userRepository) RemoveFromWishlist(ctx context.Context, userID, tourID uuid.UUID) error {
	sql := `DELETE FROM wishlists WHERE user_id = $1 AND tour_id = $2`

	if _, err := r.db.Exec(ctx, sql, userID, tourID); err != nil {
		r.log.Error("Failed to remove tour from wishlist",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("tour_id", tourID.String()),
		)
		return fmt.Errorf("remove tour %s from wishlist: %w", tourID.String(), err)
	}

	return nil
}

func (r *userRepository) FindWishlist(ctx context.Context, userID uuid.UUID) ([]*entity.Tour, error) {
	sql := `SELECT ` + tourFields("t") + `
		FROM wishlists w
		JOIN tours t ON t.id = w.tour_id
		WHERE w.user_id = $1
		ORDER BY w.created_at`

	rows, err := r.db.Query(ctx, sql, userID)
	if err != nil {
		r.log.Error("Failed to load wishlist", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("load wishlist for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var tours []*entity.Tour
	for rows.Next() {
		tour, err := scanTour(rows)
		if err != nil {
			return nil, fmt.Errorf("scan wishlist tour row: %w", err)
		}
		tours = append(tours, tour)
	}

	return tours, rows.Err()
}
