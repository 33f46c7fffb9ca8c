package models

import "time"

// CourseComment - Комментарий к курсу.
// UserID может быть пустым: анонимные комментарии разрешены,
// удалять комментарий может только его автор.
type CourseComment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    string    `gorm:"size:64;index" json:"user_id"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	CourseID  uint      `gorm:"index" json:"course_id"`
}
