package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/s/elearning/internal/models"
	"github.com/s/elearning/internal/storage"
	"gorm.io/gorm"
)

// ==========================================
// API Записи на курс
// ==========================================

// POST /api/courses/{courseId}/enroll
// Дубль ловим одним условным INSERT: уникальный индекс (user_id, course_id)
// вместо «сначала SELECT, потом INSERT», чтобы не было гонки.
func (h *Handler) EnrollInCourse(w http.ResponseWriter, r *http.Request) {
	p, ok := h.CurrentPrincipal(r)
	if !ok {
		jsonError(w, "User is not authenticated", http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	courseID, err := strconv.Atoi(vars["courseId"])
	if err != nil {
		jsonError(w, "Invalid course ID", http.StatusBadRequest)
		return
	}

	enrollment := models.Enrollment{
		UserID:   p.ID,
		CourseID: uint(courseID),
	}

	if err := h.DB.Create(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			jsonError(w, "already enrolled", http.StatusBadRequest)
			return
		}
		h.Log.Errorw("enroll", "course_id", courseID, "err", err)
		jsonError(w, "Database error", http.StatusInternalServerError)
		return
	}

	if err := storage.RecordActivity(h.DB, p.ID, "enroll", map[string]interface{}{"course_id": courseID}); err != nil {
		h.Log.Warnw("record enroll activity", "err", err)
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Enrolled successfully"})
}

// GET /api/courses/GetEnrolledCourses
// Курсы пользователя в порядке записи.
func (h *Handler) GetEnrolledCourses(w http.ResponseWriter, r *http.Request) {
	p, ok := h.CurrentPrincipal(r)
	if !ok {
		jsonError(w, "User is not authenticated", http.StatusBadRequest)
		return
	}

	courses := []models.Course{}
	err := h.DB.
		Joins("JOIN enrollments ON enrollments.course_id = courses.id").
		Where("enrollments.user_id = ?", p.ID).
		Order("enrollments.id").
		Find(&courses).Error
	if err != nil {
		h.Log.Errorw("list enrolled courses", "err", err)
		jsonError(w, "Database error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, courses)
}
