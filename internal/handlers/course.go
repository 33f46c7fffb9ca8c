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
// API Курсов: /api/courses/...
// ==========================================

// GET /api/courses/GetAllCourses
func (h *Handler) GetAllCourses(w http.ResponseWriter, r *http.Request) {
	courses := []models.Course{}

	if err := h.DB.Find(&courses).Error; err != nil {
		h.Log.Errorw("list courses", "err", err)
		jsonError(w, "Database error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, courses)
}

// GET /api/courses/GetSpecificCourse/{id}
func (h *Handler) GetCourseByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		jsonError(w, "Invalid course ID", http.StatusBadRequest)
		return
	}

	var course models.Course
	if err := h.DB.First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			jsonError(w, "Course not found", http.StatusNotFound)
		} else {
			h.Log.Errorw("get course", "course_id", id, "err", err)
			jsonError(w, "Database error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, course)
}

// POST /api/courses/CreateCourse
// Поля берутся из тела как есть, включая id, если клиент его прислал.
func (h *Handler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var course models.Course
	if err := json.NewDecoder(r.Body).Decode(&course); err != nil {
		jsonError(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	if err := h.DB.Create(&course).Error; err != nil {
		h.Log.Errorw("create course", "err", err)
		jsonError(w, "Failed to create course", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/courses/GetSpecificCourse/%d", course.ID))
	writeJSON(w, http.StatusCreated, course)
}

// PUT /api/courses/UpdateSpecificCourse/{id}
// Обновляются только Title и Description, остальные поля не трогаем.
func (h *Handler) UpdateCourseByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		jsonError(w, "Invalid course ID", http.StatusBadRequest)
		return
	}

	var course models.Course
	if err := h.DB.First(&course, id).Error; err != nil {
		jsonError(w, "Course not found", http.StatusNotFound)
		return
	}

	var input struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		jsonError(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	course.Title = input.Title
	course.Description = input.Description

	if err := h.DB.Save(&course).Error; err != nil {
		h.Log.Errorw("update course", "course_id", id, "err", err)
		jsonError(w, "Failed to update course", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DELETE /api/courses/DeleteSpecificCourse/{id}
func (h *Handler) DeleteCourseByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		jsonError(w, "Invalid course ID", http.StatusBadRequest)
		return
	}

	result := h.DB.Delete(&models.Course{}, id)

	if result.Error != nil {
		h.Log.Errorw("delete course", "course_id", id, "err", result.Error)
		jsonError(w, "Database error", http.StatusInternalServerError)
		return
	}

	if result.RowsAffected == 0 {
		jsonError(w, "Course not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
