package router

import (
	"github.com/gorilla/mux"

	"github.com/s/elearning/internal/handlers"
	"github.com/s/elearning/internal/middleware"
)

// New собирает таблицу маршрутов приложения.
// Числовые параметры ограничены регуляркой, чтобы литеральные сегменты
// вида GetUserName не попадали в {courseId}.
func New(h *handlers.Handler) *mux.Router {
	authRequired := middleware.RequireAuth(h)

	r := mux.NewRouter()

	// --- Служебные маршруты ---
	r.HandleFunc("/", h.HandleHealth).Methods("GET")
	r.HandleFunc("/auth/google/login", h.HandleGoogleLogin).Methods("GET")
	r.HandleFunc("/auth/google/callback", h.HandleGoogleCallback).Methods("GET")
	r.HandleFunc("/logout", h.HandleLogout).Methods("GET", "POST")

	api := r.PathPrefix("/api/courses").Subrouter()

	// --- Курсы ---
	api.HandleFunc("/GetAllCourses", h.GetAllCourses).Methods("GET")
	api.HandleFunc("/GetSpecificCourse/{id:[0-9]+}", h.GetCourseByID).Methods("GET")
	api.HandleFunc("/CreateCourse", h.CreateCourse).Methods("POST")
	api.HandleFunc("/UpdateSpecificCourse/{id:[0-9]+}", h.UpdateCourseByID).Methods("PUT")
	api.HandleFunc("/DeleteSpecificCourse/{id:[0-9]+}", h.DeleteCourseByID).Methods("DELETE")

	// --- Пользователь ---
	api.HandleFunc("/GetUserName", h.HandleGetUserName).Methods("GET")
	api.HandleFunc("/GetEnrolledCourses", h.GetEnrolledCourses).Methods("GET")

	// --- Уроки ---
	api.HandleFunc("/{courseId:[0-9]+}/lessons", h.GetLessonsByCourse).Methods("GET")
	api.HandleFunc("/{courseId:[0-9]+}/add-lesson", h.AddLessonToCourse).Methods("POST")
	api.HandleFunc("/{courseId:[0-9]+}/update-lesson/{lessonId:[0-9]+}", h.UpdateLessonInCourse).Methods("PUT")
	api.HandleFunc("/{courseId:[0-9]+}/delete-lesson/{lessonId:[0-9]+}", h.DeleteLessonInCourse).Methods("DELETE")

	// --- Запись на курс ---
	api.HandleFunc("/{courseId:[0-9]+}/enroll", h.EnrollInCourse).Methods("POST")

	// --- Комментарии ---
	api.HandleFunc("/{courseId:[0-9]+}/comments", h.GetCommentsByCourse).Methods("GET")
	api.HandleFunc("/{courseId:[0-9]+}/add-comment", h.AddComment).Methods("POST")
	api.HandleFunc("/{courseId:[0-9]+}/delete-comment/{commentId:[0-9]+}", authRequired(h.DeleteComment)).Methods("DELETE")

	return r
}
