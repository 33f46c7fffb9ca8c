package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/s/elearning/internal/models"
	"gorm.io/gorm"
)

// ==========================================
// API Уроков: уроки живут строго внутри курса
// ==========================================

// GET /api/courses/{courseId}/lessons
// Существование самого курса не проверяем: для чужого courseId
// ответ — просто пустой список.
func (h *Handler) GetLessonsByCourse(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	courseID, err := strconv.Atoi(vars["courseId"])
	if err != nil {
		jsonError(w, "Invalid course ID", http.StatusBadRequest)
		return
	}

	lessons := []models.Lesson{}
	if err := h.DB.Where("course_id = ?", courseID).Find(&lessons).Error; err != nil {
		h.Log.Errorw("list lessons", "course_id", courseID, "err", err)
		jsonError(w, "Database error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, lessons)
}

// POST /api/courses/{courseId}/add-lesson
// CourseID всегда берется из пути, что бы ни пришло в теле.
func (h *Handler) AddLessonToCourse(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	courseID, err := strconv.Atoi(vars["courseId"])
	if err != nil {
		jsonError(w, "Invalid course ID", http.StatusBadRequest)
		return
	}

	var course models.Course
	if err := h.DB.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			jsonError(w, "Course not found", http.StatusNotFound)
		} else {
			h.Log.Errorw("find course", "course_id", courseID, "err", err)
			jsonError(w, "Database error", http.StatusInternalServerError)
		}
		return
	}

	var lesson models.Lesson
	if err := json.NewDecoder(r.Body).Decode(&lesson); err != nil {
		jsonError(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	if !lesson.Type.Valid() {
		jsonError(w, "Invalid lesson type", http.StatusBadRequest)
		return
	}

	lesson.CourseID = uint(courseID)

	if err := h.DB.Create(&lesson).Error; err != nil {
		h.Log.Errorw("create lesson", "course_id", courseID, "err", err)
		jsonError(w, "Failed to create lesson", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/courses/%d/lessons", courseID))
	writeJSON(w, http.StatusCreated, lesson)
}

// PUT /api/courses/{courseId}/update-lesson/{lessonId}
// Урок ищется по паре (lessonId, courseId); перезаписываются Title, Content, Type.
func (h *Handler) UpdateLessonInCourse(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	courseID, _ := strconv.Atoi(vars["courseId"])
	lessonID, _ := strconv.Atoi(vars["lessonId"])

	var lesson models.Lesson
	err := h.DB.Where("id = ? AND course_id = ?", lessonID, courseID).First(&lesson).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			jsonError(w, "Lesson not found in the course", http.StatusNotFound)
		} else {
			h.Log.Errorw("find lesson", "course_id", courseID, "lesson_id", lessonID, "err", err)
			jsonError(w, "Database error", http.StatusInternalServerError)
		}
		return
	}

	var input struct {
		Title   string            `json:"title"`
		Content string            `json:"content"`
		Type    models.LessonType `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		jsonError(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	if !input.Type.Valid() {
		jsonError(w, "Invalid lesson type", http.StatusBadRequest)
		return
	}

	lesson.Title = input.Title
	lesson.Content = input.Content
	lesson.Type = input.Type

	if err := h.DB.Save(&lesson).Error; err != nil {
		h.Log.Errorw("update lesson", "lesson_id", lessonID, "err", err)
		jsonError(w, "Failed to update lesson", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DELETE /api/courses/{courseId}/delete-lesson/{lessonId}
func (h *Handler) DeleteLessonInCourse(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	courseID, _ := strconv.Atoi(vars["courseId"])
	lessonID, _ := strconv.Atoi(vars["lessonId"])

	result := h.DB.Where("id = ? AND course_id = ?", lessonID, courseID).Delete(&models.Lesson{})

	if result.Error != nil {
		h.Log.Errorw("delete lesson", "lesson_id", lessonID, "err", result.Error)
		jsonError(w, "Database error", http.StatusInternalServerError)
		return
	}

	if result.RowsAffected == 0 {
		jsonError(w, "Lesson not found in the course", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
