package models

// Enrollment (Запись на курс)
// Пара (UserID, CourseID) уникальна: дубликат ловим по нарушению индекса,
// а не предварительным SELECT.
type Enrollment struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	UserID   string `gorm:"size:64;uniqueIndex:idx_enrollments_user_course" json:"user_id"`
	CourseID uint   `gorm:"uniqueIndex:idx_enrollments_user_course" json:"course_id"`
}
