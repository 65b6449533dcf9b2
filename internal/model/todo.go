package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Todo represents a single to-do item owned by a user. UserID is a plain
// indexed column, not a foreign key; ownership is enforced at the service
// layer by always querying with the caller's id.
type Todo struct {
	ID        string    `json:"id" gorm:"type:char(36);primaryKey"`
	Title     string    `json:"title" gorm:"size:255"`
	Done      bool      `json:"done" gorm:"default:false"`
	UserID    string    `json:"user_id" gorm:"type:char(36);index;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets a UUID before creating the record.
func (t *Todo) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
