package entity

import (
	"github.com/google/uuid"
)

type Review struct {
	Base
	Title  *string   `db:"title"`
	Rating int       `db:"rating"` // 1-5
	UserID uuid.UUID `db:"user_id"`
	TourID uuid.UUID `db:"tour_id"`
}
