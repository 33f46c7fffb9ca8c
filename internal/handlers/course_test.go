package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/s/elearning/internal/models"
)

func TestCreateCourse(t *testing.T) {
	_, r := newTestEnv(t)

	rec := doRequest(t, r, "POST", "/api/courses/CreateCourse",
		`{"title":"Algebra","description":"Intro"}`, nil)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	var course models.Course
	decodeJSON(t, rec, &course)
	if course.ID == 0 {
		t.Fatalf("expected assigned id, got 0")
	}
	if course.Title != "Algebra" || course.Description != "Intro" {
		t.Fatalf("unexpected course: %+v", course)
	}

	wantLoc := fmt.Sprintf("/api/courses/GetSpecificCourse/%d", course.ID)
	if got := rec.Header().Get("Location"); got != wantLoc {
		t.Fatalf("expected Location %q, got %q", wantLoc, got)
	}
}

func TestCreateCourseAcceptsEmptyFields(t *testing.T) {
	_, r := newTestEnv(t)

	rec := doRequest(t, r, "POST", "/api/courses/CreateCourse", `{}`, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestCreateCourseHonorsCallerID(t *testing.T) {
	_, r := newTestEnv(t)

	rec := doRequest(t, r, "POST", "/api/courses/CreateCourse",
		`{"id":42,"title":"Pinned"}`, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var course models.Course
	decodeJSON(t, rec, &course)
	if course.ID != 42 {
		t.Fatalf("caller-supplied id should be kept, got %d", course.ID)
	}
}

func TestCourseRoundTrip(t *testing.T) {
	_, r := newTestEnv(t)

	rec := doRequest(t, r, "POST", "/api/courses/CreateCourse",
		`{"title":"Geometry","description":"Shapes"}`, nil)
	var created models.Course
	decodeJSON(t, rec, &created)

	rec = doRequest(t, r, "GET", fmt.Sprintf("/api/courses/GetSpecificCourse/%d", created.ID), "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got models.Course
	decodeJSON(t, rec, &got)
	if got.Title != created.Title || got.Description != created.Description {
		t.Fatalf("round trip mismatch: created %+v, got %+v", created, got)
	}
}

func TestGetSpecificCourseNotFound(t *testing.T) {
	_, r := newTestEnv(t)

	rec := doRequest(t, r, "GET", "/api/courses/GetSpecificCourse/999", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGetAllCourses(t *testing.T) {
	h, r := newTestEnv(t)

	mustCreate(t, h, &models.Course{Title: "A"})
	mustCreate(t, h, &models.Course{Title: "B"})

	rec := doRequest(t, r, "GET", "/api/courses/GetAllCourses", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var courses []models.Course
	decodeJSON(t, rec, &courses)
	if len(courses) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(courses))
	}
}

func TestGetAllCoursesEmptyIsList(t *testing.T) {
	_, r := newTestEnv(t)

	rec := doRequest(t, r, "GET", "/api/courses/GetAllCourses", "", nil)
	if body := rec.Body.String(); body != "[]\n" {
		t.Fatalf("expected empty JSON array, got %q", body)
	}
}

func TestUpdateCourseTouchesOnlyTitleAndDescription(t *testing.T) {
	h, r := newTestEnv(t)

	course := models.Course{Title: "Old", Description: "Old desc"}
	mustCreate(t, h, &course)
	mustCreate(t, h, &models.Lesson{Title: "L1", Type: models.LessonTypeVideo, CourseID: course.ID})

	rec := doRequest(t, r, "PUT", fmt.Sprintf("/api/courses/UpdateSpecificCourse/%d", course.ID),
		`{"title":"New","description":"New desc"}`, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d (%s)", rec.Code, rec.Body.String())
	}

	var got models.Course
	if err := h.DB.First(&got, course.ID).Error; err != nil {
		t.Fatalf("reload course: %v", err)
	}
	if got.Title != "New" || got.Description != "New desc" {
		t.Fatalf("update not applied: %+v", got)
	}

	var lessons int64
	h.DB.Model(&models.Lesson{}).Where("course_id = ?", course.ID).Count(&lessons)
	if lessons != 1 {
		t.Fatalf("lessons should be untouched by course update, got %d", lessons)
	}
}

func TestUpdateCourseNotFound(t *testing.T) {
	_, r := newTestEnv(t)

	rec := doRequest(t, r, "PUT", "/api/courses/UpdateSpecificCourse/42", `{"title":"x"}`, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestDeleteCourse(t *testing.T) {
	h, r := newTestEnv(t)

	course := models.Course{Title: "Doomed"}
	mustCreate(t, h, &course)

	rec := doRequest(t, r, "DELETE", fmt.Sprintf("/api/courses/DeleteSpecificCourse/%d", course.ID), "", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	rec = doRequest(t, r, "GET", fmt.Sprintf("/api/courses/GetSpecificCourse/%d", course.ID), "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("course should be gone, got %d", rec.Code)
	}
}

func TestDeleteCourseNotFound(t *testing.T) {
	_, r := newTestEnv(t)

	rec := doRequest(t, r, "DELETE", "/api/courses/DeleteSpecificCourse/77", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
