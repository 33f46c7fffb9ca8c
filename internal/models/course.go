package models

import (
	"encoding/json"
	"fmt"
)

// Course (Курс)
type Course struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`

	Lessons []Lesson `json:"lessons,omitempty" gorm:"constraint:OnDelete:CASCADE;"`
}

// LessonType — тип материала урока. Закрытый набор значений,
// всё остальное отклоняется ещё при разборе JSON.
type LessonType string

const (
	LessonTypeTextFile LessonType = "TextFile"
	LessonTypePPT      LessonType = "PPT"
	LessonTypeImage    LessonType = "Image"
	LessonTypeVideo    LessonType = "Video"
	LessonTypePDF      LessonType = "PDF"
)

func (t LessonType) Valid() bool {
	switch t {
	case LessonTypeTextFile, LessonTypePPT, LessonTypeImage, LessonTypeVideo, LessonTypePDF:
		return true
	}
	return false
}

func (t *LessonType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v := LessonType(s)
	if !v.Valid() {
		return fmt.Errorf("unknown lesson type %q", s)
	}
	*t = v
	return nil
}

// Lesson (Урок)
type Lesson struct {
	ID       uint       `gorm:"primarykey" json:"id"`
	Title    string     `json:"title"`
	Content  string     `json:"content"`
	Type     LessonType `gorm:"size:16" json:"type"`
	CourseID uint       `gorm:"index" json:"course_id"`
}
