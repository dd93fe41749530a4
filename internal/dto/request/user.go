package request

type CreateUserRequest struct {
	FullName        string  `json:"fullName" validate:"required,min=4,max=20"`
	Email           string  `json:"email" validate:"required,email"`
	Password        string  `json:"password" validate:"required,min=6,max=24"`
	PasswordConfirm string  `json:"passwordConfirm" validate:"required,eqfield=Password"`
	PhoneNumber     *string `json:"phoneNumber,omitempty" validate:"omitempty,min=10,max=15"`
	Role            string  `json:"role,omitempty" validate:"omitempty,oneof=user 'tour guide' admin"`
	ProfileImg      *string `json:"profileImg,omitempty"`
}

type UpdateUserRequest struct {
	FullName    *string `json:"fullName,omitempty" validate:"omitempty,min=4,max=20"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber *string `json:"phoneNumber,omitempty" validate:"omitempty,min=10,max=15"`
	Role        *string `json:"role,omitempty" validate:"omitempty,oneof=user 'tour guide' admin"`
	ProfileImg  *string `json:"profileImg,omitempty"`
}

type UpdatePasswordRequest struct {
	Password        string `json:"password" validate:"required,min=6,max=24"`
	PasswordConfirm string `json:"passwordConfirm" validate:"required,eqfield=Password"`
}

type ChangeMyPasswordRequest struct {
	CurrentPassword    string `json:"currentPassword" validate:"required"`
	NewPassword        string `json:"newPassword" validate:"required,min=6,max=24"`
	NewPasswordConfirm string `json:"newPasswordConfirm" validate:"required,eqfield=NewPassword"`
}

type UpdateMeRequest struct {
	FullName    *string `json:"fullName,omitempty" validate:"omitempty,min=4,max=20"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber *string `json:"phoneNumber,omitempty" validate:"omitempty,min=10,max=15"`
	ProfileImg  *string `json:"profileImg,omitempty"`
}
