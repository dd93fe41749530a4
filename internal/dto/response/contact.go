package response

import (
	"time"

	"tour-booking/internal/data/entity"
)

type ContactMessageResponse struct {
	ID           string    `json:"id"`
	FullName     string    `json:"fullName"`
	PhoneNumber  string    `json:"phoneNumber"`
	Email        string    `json:"email"`
	Message      string    `json:"message"`
	AdminReplied bool      `json:"adminReplied"`
	AdminReply   *string   `json:"adminReply,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func ContactMessageToResponse(msg *entity.ContactMessage) ContactMessageResponse {
	return ContactMessageResponse{
		ID:           msg.ID.String(),
		FullName:     msg.FullName,
		PhoneNumber:  msg.PhoneNumber,
		Email:        msg.Email,
		Message:      msg.Message,
		AdminReplied: msg.AdminReplied,
		AdminReply:   msg.AdminReply,
		CreatedAt:    msg.CreatedAt,
	}
}

func ContactMessagesToResponse(msgs []*entity.ContactMessage) []ContactMessageResponse {
	out := make([]ContactMessageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, ContactMessageToResponse(m))
	}
	return out
}
