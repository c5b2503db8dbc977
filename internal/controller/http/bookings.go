package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campusdesk/campus-portal/internal/model"
)

func (a *API) currentUser(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": identityFrom(c)})
}

func (a *API) listMentors(c *gin.Context) {
	mentors, err := a.mentors.List(c.Request.Context())
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mentors)
}

func (a *API) getMentor(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	mentor, err := a.mentors.Get(c.Request.Context(), id)
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mentor)
}

func (a *API) listMentorBookings(c *gin.Context) {
	identity := identityFrom(c)

	bookings, err := a.bookings.ListForUser(c.Request.Context(), identity.ID)
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (a *API) bookedMentorSlots(c *gin.Context) {
	mentorID, date, ok := mentorDateQuery(c)
	if !ok {
		return
	}

	bookings, err := a.bookings.BookedSlots(c.Request.Context(), mentorID, date)
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (a *API) availableMentorTimes(c *gin.Context) {
	mentorID, date, ok := mentorDateQuery(c)
	if !ok {
		return
	}

	times, err := a.bookings.AvailableTimes(c.Request.Context(), mentorID, date)
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, times)
}

type createMentorBookingRequest struct {
	MentorID int64  `json:"mentorId"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Purpose  string `json:"purpose"`
}

func (a *API) createMentorBooking(c *gin.Context) {
	identity := identityFrom(c)

	var req createMentorBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	booking, err := a.bookings.Create(c.Request.Context(), identity.ID, req.MentorID, req.Date, req.Time, req.Purpose)
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

func (a *API) pendingMentorBookings(c *gin.Context) {
	identity := identityFrom(c)

	bookings, err := a.bookings.PendingForMentor(c.Request.Context(), identity)
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

type transitionRequest struct {
	Status          model.BookingStatus `json:"status"`
	RejectionReason string              `json:"rejectionReason"`
}

func (a *API) transitionMentorBooking(c *gin.Context) {
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

	booking, err := a.bookings.Transition(c.Request.Context(), identity, id, req.Status, req.RejectionReason)
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func mentorDateQuery(c *gin.Context) (int64, string, bool) {
	mentorID, err := strconv.ParseInt(c.Query("mentorId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Mentor ID and date are required"})
		return 0, "", false
	}
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Mentor ID and date are required"})
		return 0, "", false
	}
	return mentorID, date, true
}

func pathID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return 0, false
	}
	return id, true
}
