package models

type Role struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex"`

	Users []User
}

// Константы для RoleID, используемые по всему приложению.
const (
	RoleGuest uint = 0
	RoleUser  uint = 1
	RoleAdmin uint = 2
)
