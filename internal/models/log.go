package models

import (
	"time"

	"gorm.io/datatypes"
)

// UserLog хранит историю действий пользователя
type UserLog struct {
	ID        uint           `gorm:"primarykey"`
	UserID    string         `gorm:"size:64;index"`
	Action    string         `json:"action"` // "login", "enroll", "comment"
	Details   datatypes.JSON `json:"details"`
	CreatedAt time.Time      `json:"created_at"`
}
