package request

type ContactMessageRequest struct {
	FullName    string `json:"fullName" validate:"required,min=4,max=50"`
	PhoneNumber string `json:"phoneNumber" validate:"required,min=10,max=15"`
	Email       string `json:"email" validate:"required,email"`
	Message     string `json:"message" validate:"required,min=10,max=2000"`
}

type ContactReplyRequest struct {
	Reply string `json:"reply" validate:"required,min=2,max=2000"`
}
