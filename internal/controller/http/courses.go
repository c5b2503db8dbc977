package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusdesk/campus-portal/internal/model"
)

func (a *API) listCourses(c *gin.Context) {
	courses, err := a.courses.List(c.Request.Context(), c.Query("semester"))
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

func (a *API) getCourse(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	course, err := a.courses.Get(c.Request.Context(), id)
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

func (a *API) createCourse(c *gin.Context) {
	identity := identityFrom(c)

	var course model.Course
	if err := c.ShouldBindJSON(&course); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	created, err := a.courses.Create(c.Request.Context(), identity, &course)
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (a *API) listEnrollments(c *gin.Context) {
	identity := identityFrom(c)

	enrollments, err := a.courses.Enrollments(c.Request.Context(), identity.ID)
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, enrollments)
}

func (a *API) enrolledCourses(c *gin.Context) {
	identity := identityFrom(c)

	courses, err := a.courses.EnrolledCourses(c.Request.Context(), identity.ID)
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

type enrollRequest struct {
	CourseID int64 `json:"courseId"`
}

func (a *API) enroll(c *gin.Context) {
	identity := identityFrom(c)

	var req enrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	enrollment, err := a.courses.Enroll(c.Request.Context(), identity.ID, req.CourseID)
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, enrollment)
}
