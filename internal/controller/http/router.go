// Package http is the REST surface of the portal: a gin router over the
// service layer, with bearer-token identity and taxonomy-based error
// translation.
package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/campusdesk/campus-portal/internal/service"
)

// API bundles the services the handlers call.
type API struct {
	users      *service.UserService
	mentors    *service.MentorService
	bookings   *service.BookingService
	classrooms *service.ClassroomService
	lostFound  *service.LostFoundService
	mess       *service.MessService
	courses    *service.CourseService
	logger     *zap.Logger
}

func NewAPI(
	users *service.UserService,
	mentors *service.MentorService,
	bookings *service.BookingService,
	classrooms *service.ClassroomService,
	lostFound *service.LostFoundService,
	mess *service.MessService,
	courses *service.CourseService,
	logger *zap.Logger,
) *API {
	return &API{
		users:      users,
		mentors:    mentors,
		bookings:   bookings,
		classrooms: classrooms,
		lostFound:  lostFound,
		mess:       mess,
		courses:    courses,
		logger:     logger,
	}
}

// Router builds the gin engine with every portal route registered.
func (a *API) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api")
	auth := a.RequireAuth()

	api.GET("/auth/user", auth, a.currentUser)

	api.GET("/mentors", a.listMentors)
	api.GET("/mentors/:id", a.getMentor)

	api.GET("/bookings", auth, a.listMentorBookings)
	api.GET("/bookings/booked-slots", auth, a.bookedMentorSlots)
	api.GET("/bookings/available-times", auth, a.availableMentorTimes)
	api.POST("/bookings", auth, a.createMentorBooking)
	api.PATCH("/bookings/:id", auth, a.transitionMentorBooking)
	api.GET("/faculty/pending-bookings", auth, a.pendingMentorBookings)

	api.GET("/classrooms/available", auth, a.availableClassrooms)
	api.GET("/classrooms/bookings", auth, a.listClassroomBookings)
	api.POST("/classrooms/book", auth, a.bookClassroom)
	api.PATCH("/classrooms/bookings/:id", auth, a.transitionClassroomBooking)

	api.GET("/lostfound", a.listLostFound)
	api.GET("/lostfound/:type", a.listLostFoundByType)
	// gin cannot mix a static "item" segment with the :type wildcard, so
	// the item lookup shares the wildcard route: /lostfound/item/:id.
	api.GET("/lostfound/:type/:id", a.getLostFoundItem)
	api.POST("/lostfound", auth, a.createLostFoundItem)
	api.PATCH("/lostfound/:id", auth, a.updateLostFoundItem)

	api.GET("/mess/balance", auth, a.messBalance)
	api.GET("/mess/transactions", auth, a.messTransactions)
	api.POST("/mess/transactions", auth, a.createMessTransaction)

	api.GET("/courses", a.listCourses)
	api.GET("/courses/:id", a.getCourse)
	api.POST("/courses", auth, a.createCourse)

	api.GET("/enrollments", auth, a.listEnrollments)
	api.GET("/enrollments/courses", auth, a.enrolledCourses)
	api.POST("/enrollments", auth, a.enroll)

	return router
}
