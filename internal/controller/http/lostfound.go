package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusdesk/campus-portal/internal/model"
	"github.com/campusdesk/campus-portal/internal/service"
)

func (a *API) listLostFound(c *gin.Context) {
	items, err := a.lostFound.List(c.Request.Context(), "all")
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (a *API) listLostFoundByType(c *gin.Context) {
	itemType := c.Param("type")
	// The report tab has no listing of its own.
	if itemType == "report" {
		c.JSON(http.StatusOK, []*model.LostFoundItem{})
		return
	}

	items, err := a.lostFound.List(c.Request.Context(), itemType)
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (a *API) getLostFoundItem(c *gin.Context) {
	if c.Param("type") != "item" {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	item, err := a.lostFound.Get(c.Request.Context(), id)
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

type createLostFoundRequest struct {
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	Category           string  `json:"category"`
	Location           string  `json:"location"`
	SubmissionLocation *string `json:"submissionLocation"`
	Date               string  `json:"date"`
	Type               string  `json:"type"`
	Image              *string `json:"image"`
	ContactInfo        string  `json:"contactInfo"`
	OtherLocation      *string `json:"otherLocation"`
}

func (a *API) createLostFoundItem(c *gin.Context) {
	identity := identityFrom(c)

	var req createLostFoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	item := &model.LostFoundItem{
		UserID:             identity.ID,
		Name:               req.Name,
		Description:        req.Description,
		Category:           req.Category,
		Location:           req.Location,
		SubmissionLocation: req.SubmissionLocation,
		Date:               req.Date,
		Type:               model.LostFoundType(req.Type),
		Image:              req.Image,
		ContactInfo:        req.ContactInfo,
		OtherLocation:      req.OtherLocation,
	}

	created, err := a.lostFound.Create(c.Request.Context(), item)
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (a *API) updateLostFoundItem(c *gin.Context) {
	identity := identityFrom(c)

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var changes service.LostFoundChanges
	if err := c.ShouldBindJSON(&changes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	item, err := a.lostFound.Update(c.Request.Context(), identity, id, changes)
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}
