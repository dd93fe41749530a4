package response

import "tour-booking/internal/data/entity"

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func AuthToResponse(user *entity.User, token string) AuthResponse {
	return AuthResponse{
		Token: token,
		User:  UserToResponse(user),
	}
}
