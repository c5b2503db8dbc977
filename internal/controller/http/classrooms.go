package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *API) availableClassrooms(c *gin.Context) {
	date := c.Query("date")
	timeSlot := c.Query("timeSlot")
	if date == "" || timeSlot == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Date and time slot are required"})
		return
	}

	rooms, err := a.classrooms.Available(c.Request.Context(), date, timeSlot)
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (a *API) listClassroomBookings(c *gin.Context) {
	identity := identityFrom(c)

	bookings, err := a.classrooms.ListForUser(c.Request.Context(), identity.ID)
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

type bookClassroomRequest struct {
	Classroom       string  `json:"classroom"`
	Date            string  `json:"date"`
	TimeSlot        string  `json:"timeSlot"`
	Purpose         string  `json:"purpose"`
	AlternativeName *string `json:"alternativeName"`
	AlternativeID   *string `json:"alternativeId"`
}

func (a *API) bookClassroom(c *gin.Context) {
	identity := identityFrom(c)

	var req bookClassroomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	booking, err := a.classrooms.Book(
		c.Request.Context(),
		identity.ID,
		req.Classroom,
		req.Date,
		req.TimeSlot,
		req.Purpose,
		req.AlternativeName,
		req.AlternativeID,
	)
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

func (a *API) transitionClassroomBooking(c *gin.Context) {
	identity := identityFrom(c)

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req transitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	booking, err := a.classrooms.Transition(c.Request.Context(), identity, id, req.Status, req.RejectionReason)
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}
