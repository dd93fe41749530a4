package response

import (
	"time"

	"tour-booking/internal/data/entity"
)

type UserResponse struct {
	ID            string               `json:"id"`
	FullName      string               `json:"fullName"`
	Email         string               `json:"email"`
	PhoneNumber   string               `json:"phoneNumber,omitempty"`
	Role          entity.UserRole      `json:"role"`
	Active        bool                 `json:"active"`
	ProfileImg    *string              `json:"profileImg,omitempty"`
	City          *string              `json:"city,omitempty"`
	Language      *string              `json:"language,omitempty"`
	Description   *string              `json:"description,omitempty"`
	RequestStatus entity.RequestStatus `json:"requestStatus,omitempty"`
	IsApproved    bool                 `json:"isApproved"`
	CreatedAt     time.Time            `json:"createdAt"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:            user.ID.String(),
		FullName:      user.FullName,
		Email:         user.Email,
		PhoneNumber:   user.PhoneNumber,
		Role:          user.Role,
		Active:        user.Active,
		ProfileImg:    user.ProfileImg,
		City:          user.City,
		Language:      user.Language,
		Description:   user.Description,
		RequestStatus: user.RequestStatus,
		IsApproved:    user.IsApproved,
		CreatedAt:     user.CreatedAt,
	}
}

func UsersToResponse(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, UserToResponse(u))
	}
	return out
}
