package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/s/elearning/internal/models"
	"github.com/s/elearning/internal/storage"
)

// --- КОММЕНТАРИИ К КУРСУ ---

// GET /api/courses/{courseId}/comments
func (h *Handler) GetCommentsByCourse(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	courseID, err := strconv.Atoi(vars["courseId"])
	if err != nil {
		jsonError(w, "Invalid course ID", http.StatusBadRequest)
		return
	}

	comments := []models.CourseComment{}
	if err := h.DB.Where("course_id = ?", courseID).Find(&comments).Error; err != nil {
		h.Log.Errorw("list comments", "course_id", courseID, "err", err)
		jsonError(w, "Database error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, comments)
}

// POST /api/courses/{courseId}/add-comment
// Автор не обязателен: без сессии комментарий сохраняется с пустым UserID.
func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	courseID, err := strconv.Atoi(vars["courseId"])
	if err != nil {
		jsonError(w, "Invalid course ID", http.StatusBadRequest)
		return
	}

	var req struct {
		Comment string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	p, _ := h.CurrentPrincipal(r)

	comment := models.CourseComment{
		UserID:    p.ID,
		CourseID:  uint(courseID),
		Comment:   req.Comment,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.DB.Create(&comment).Error; err != nil {
		h.Log.Errorw("create comment", "course_id", courseID, "err", err)
		jsonError(w, "Failed to create comment", http.StatusInternalServerError)
		return
	}

	if p.ID != "" {
		if err := storage.RecordActivity(h.DB, p.ID, "comment", map[string]interface{}{"course_id": courseID, "comment_id": comment.ID}); err != nil {
			h.Log.Warnw("record comment activity", "err", err)
		}
	}

	writeJSON(w, http.StatusCreated, comment)
}

// DELETE /api/courses/{courseId}/delete-comment/{commentId}
// Удалить может только автор. Чужой и несуществующий комментарий
// снаружи неразличимы: в обоих случаях 404.
func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	p, ok := h.CurrentPrincipal(r)
	if !ok {
		jsonError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	courseID, _ := strconv.Atoi(vars["courseId"])
	commentID, _ := strconv.Atoi(vars["commentId"])

	// Один условный DELETE по тройке (id, course_id, user_id),
	// без предварительного чтения.
	result := h.DB.
		Where("id = ? AND course_id = ? AND user_id = ?", commentID, courseID, p.ID).
		Delete(&models.CourseComment{})

	if result.Error != nil {
		h.Log.Errorw("delete comment", "comment_id", commentID, "err", result.Error)
		jsonError(w, "Database error", http.StatusInternalServerError)
		return
	}

	if result.RowsAffected == 0 {
		jsonError(w, "Comment not found or unauthorized", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
