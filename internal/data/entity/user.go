package entity

import "time"

type UserRole string

const (
	RoleUser      UserRole = "user"
	RoleTourGuide UserRole = "tour guide"
	RoleAdmin     UserRole = "admin"
)

// Roles is the closed role set; AllowedTo checks against it.
var Roles = []UserRole{RoleUser, RoleTourGuide, RoleAdmin}

func (r UserRole) Valid() bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

type User struct {
	Base
	FullName          string   `db:"full_name"`
	Email             string   `db:"email"`
	PasswordHash      string   `db:"password"`
	PhoneNumber       string   `db:"phone_number"`
	Role              UserRole `db:"role"`
	Active            bool     `db:"active"`
	ProfileImg        *string  `db:"profile_img"`
	PasswordChangedAt *time.Time

	// verification codes, stored hashed
	SignupCode          *string `db:"signup_code"`
	SignupCodeExpiresAt *time.Time
	SignupCodeVerified  bool

	ResetCode          *string `db:"reset_code"`
	ResetCodeExpiresAt *time.Time
	ResetCodeVerified  bool

	// tour guide fields, set on a guide-upgrade request
	IDNumber      *string       `db:"id_number"`
	City          *string       `db:"city"`
	Language      *string       `db:"language"`
	Description   *string       `db:"description"`
	IDPhotos      []string      `db:"id_photos"`
	RequestStatus RequestStatus `db:"request_status"`
	IsApproved    bool          `db:"is_approved"`
}
