package model

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the 1:1 companion row for an auth-provider user. The ID is the
// provider's user id, not generated locally.
type Profile struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
