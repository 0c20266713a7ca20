package domain

import (
	"time"

	"github.com/google/uuid"
)

const AnonymousOwner = "anonymous"

type Document struct {
	ID         uuid.UUID `db:"id"          json:"id"`
	Name       string    `db:"name"        json:"name"`
	Status     Status    `db:"status"      json:"status"`
	UploadedAt time.Time `db:"uploaded_at" json:"uploaded_at"`
	Owner      string    `db:"owner"       json:"owner"`
}

// Age is measured against now; a document uploaded in the future has zero age.
func (d *Document) Age(now time.Time) time.Duration {
	age := now.Sub(d.UploadedAt)
	if age < 0 {
		return 0
	}

	return age
}
