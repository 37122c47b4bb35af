package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Habit is a recurring activity. Streak and LastCompleted are reserved:
// they are stored and returned but no server logic writes them.
type Habit struct {
	ID            uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	UserID        uuid.UUID  `json:"userId" gorm:"type:char(36);not null;index"`
	Name          string     `json:"name" gorm:"size:255;not null"`
	Completed     bool       `json:"completed" gorm:"not null;default:false"`
	Streak        int        `json:"streak" gorm:"not null;default:0"`
	LastCompleted *time.Time `json:"lastCompleted"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// BeforeCreate sets UUID before creating the record.
func (h *Habit) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
