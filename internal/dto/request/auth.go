package request

type SignupRequest struct {
	FullName        string  `json:"fullName" validate:"required,min=4,max=20"`
	Email           string  `json:"email" validate:"required,email"`
	Password        string  `json:"password" validate:"required,min=6,max=24"`
	PasswordConfirm string  `json:"passwordConfirm" validate:"required,eqfield=Password"`
	PhoneNumber     *string `json:"phoneNumber,omitempty" validate:"omitempty,min=10,max=15"`
}

// LoginRequest accepts either an email address or a phone number in Email.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required,min=6,max=24"`
}

type VerifyCodeRequest struct {
	Code string `json:"code" validate:"required,len=4,numeric"`
}

type TourGuideSignupRequest struct {
	IDNumber    string   `json:"idNumber" validate:"required"`
	City        string   `json:"city" validate:"required"`
	Language    string   `json:"language" validate:"required"`
	Description string   `json:"description" validate:"required,min=6"`
	IDPhotos    []string `json:"idPhotos" validate:"required,min=1"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Email              string `json:"email" validate:"required,email"`
	NewPassword        string `json:"newPassword" validate:"required,min=6,max=24"`
	NewPasswordConfirm string `json:"newPasswordConfirm" validate:"required,eqfield=NewPassword"`
}
