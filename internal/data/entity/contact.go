package entity

type ContactMessage struct {
	Base
	FullName     string  `db:"full_name"`
	PhoneNumber  string  `db:"phone_number"`
	Email        string  `db:"email"`
	Message      string  `db:"message"`
	AdminReplied bool    `db:"admin_replied"`
	AdminReply   *string `db:"admin_reply"`
}
