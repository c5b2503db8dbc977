// Package testutil provides in-memory repository fakes. They reproduce the
// storage-layer contracts the services rely on, including the duplicate
// detection the partial unique indexes give the real implementations.
package testutil

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/campusdesk/campus-portal/internal/model"
	"github.com/campusdesk/campus-portal/internal/repository"
)

type FakeUserRepo struct {
	Users  []*model.User
	nextID int64
}

func (r *FakeUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range r.Users {
		if u.Username == user.Username || u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	r.nextID++
	user.ID = r.nextID
	r.Users = append(r.Users, user)
	return nil
}

func (r *FakeUserRepo) GetByID(_ context.Context, id int64) (*model.User, error) {
	for _, u := range r.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *FakeUserRepo) GetByToken(_ context.Context, token string) (*model.User, error) {
	for _, u := range r.Users {
		if u.APIToken == token {
			return u, nil
		}
	}
	return nil, nil
}

type FakeMentorRepo struct {
	Mentors []*model.FacultyMentor
	nextID  int64
}

func (r *FakeMentorRepo) Create(_ context.Context, mentor *model.FacultyMentor) error {
	r.nextID++
	mentor.ID = r.nextID
	r.Mentors = append(r.Mentors, mentor)
	return nil
}

func (r *FakeMentorRepo) List(_ context.Context) ([]*model.FacultyMentor, error) {
	return r.Mentors, nil
}

func (r *FakeMentorRepo) GetByID(_ context.Context, id int64) (*model.FacultyMentor, error) {
	for _, m := range r.Mentors {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *FakeMentorRepo) GetByEmail(_ context.Context, email string) (*model.FacultyMentor, error) {
	for _, m := range r.Mentors {
		if m.Email == email {
			return m, nil
		}
	}
	return nil, nil
}

type FakeMentorBookingRepo struct {
	Bookings []*model.MentorBooking
	// Users backs the student join on pending listings when set.
	Users  *FakeUserRepo
	nextID int64
}

func (r *FakeMentorBookingRepo) Create(_ context.Context, booking *model.MentorBooking) error {
	for _, b := range r.Bookings {
		if b.MentorID == booking.MentorID && b.Date == booking.Date && b.Time == booking.Time && b.Status.Active() {
			return repository.ErrDuplicate
		}
	}
	r.nextID++
	booking.ID = r.nextID
	booking.CreatedAt = time.Now()
	r.Bookings = append(r.Bookings, booking)
	return nil
}

func (r *FakeMentorBookingRepo) GetByID(_ context.Context, id int64) (*model.MentorBooking, error) {
	for _, b := range r.Bookings {
		if b.ID == id {
			copied := *b
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *FakeMentorBookingRepo) ListByUser(_ context.Context, userID int64) ([]*model.MentorBooking, error) {
	var out []*model.MentorBooking
	for _, b := range r.Bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *FakeMentorBookingRepo) ListByMentorDate(_ context.Context, mentorID int64, date string) ([]*model.MentorBooking, error) {
	var out []*model.MentorBooking
	for _, b := range r.Bookings {
		if b.MentorID == mentorID && b.Date == date {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out, nil
}

func (r *FakeMentorBookingRepo) ListPendingByMentor(_ context.Context, mentorID int64) ([]*model.MentorBooking, error) {
	var out []*model.MentorBooking
	for _, b := range r.Bookings {
		if b.MentorID == mentorID && b.Status == model.BookingStatusPending {
			copied := *b
			if r.Users != nil {
				if u, _ := r.Users.GetByID(context.Background(), b.UserID); u != nil {
					identity := u.Identity()
					copied.Student = &identity
				}
			}
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *FakeMentorBookingRepo) UpdateStatus(_ context.Context, id int64, status model.BookingStatus, rejectionReason *string) error {
	for _, b := range r.Bookings {
		if b.ID == id {
			b.Status = status
			b.RejectionReason = rejectionReason
			return nil
		}
	}
	return fmt.Errorf("mentor booking %d not found", id)
}

type FakeClassroomBookingRepo struct {
	Bookings []*model.ClassroomBooking
	nextID   int64
}

func (r *FakeClassroomBookingRepo) Create(_ context.Context, booking *model.ClassroomBooking) error {
	for _, b := range r.Bookings {
		if b.Classroom == booking.Classroom && b.Date == booking.Date && b.TimeSlot == booking.TimeSlot && b.Status.Active() {
			return repository.ErrDuplicate
		}
	}
	r.nextID++
	booking.ID = r.nextID
	booking.CreatedAt = time.Now()
	r.Bookings = append(r.Bookings, booking)
	return nil
}

func (r *FakeClassroomBookingRepo) GetByID(_ context.Context, id int64) (*model.ClassroomBooking, error) {
	for _, b := range r.Bookings {
		if b.ID == id {
			copied := *b
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *FakeClassroomBookingRepo) ListByUser(_ context.Context, userID int64) ([]*model.ClassroomBooking, error) {
	var out []*model.ClassroomBooking
	for _, b := range r.Bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *FakeClassroomBookingRepo) BookedClassrooms(_ context.Context, date, timeSlot string) ([]string, error) {
	var out []string
	for _, b := range r.Bookings {
		if b.Date == date && b.TimeSlot == timeSlot && b.Status.Active() {
			out = append(out, b.Classroom)
		}
	}
	return out, nil
}

func (r *FakeClassroomBookingRepo) UpdateStatus(_ context.Context, id int64, status model.BookingStatus, rejectionReason *string) error {
	for _, b := range r.Bookings {
		if b.ID == id {
			b.Status = status
			b.RejectionReason = rejectionReason
			return nil
		}
	}
	return fmt.Errorf("classroom booking %d not found", id)
}

type FakeLostFoundRepo struct {
	Items  []*model.LostFoundItem
	nextID int64
}

func (r *FakeLostFoundRepo) Create(_ context.Context, item *model.LostFoundItem) error {
	r.nextID++
	item.ID = r.nextID
	item.CreatedAt = time.Now()
	r.Items = append(r.Items, item)
	return nil
}

func (r *FakeLostFoundRepo) GetByID(_ context.Context, id int64) (*model.LostFoundItem, error) {
	for _, item := range r.Items {
		if item.ID == id {
			copied := *item
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *FakeLostFoundRepo) List(_ context.Context, itemType model.LostFoundType) ([]*model.LostFoundItem, error) {
	var out []*model.LostFoundItem
	for _, item := range r.Items {
		if itemType == "" || item.Type == itemType {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *FakeLostFoundRepo) Update(_ context.Context, item *model.LostFoundItem) error {
	for i, existing := range r.Items {
		if existing.ID == item.ID {
			copied := *item
			r.Items[i] = &copied
			return nil
		}
	}
	return fmt.Errorf("lost/found item %d not found", item.ID)
}

type FakeMessRepo struct {
	Balances     map[int64]*model.MessBalance
	Transactions []*model.MessTransaction
	nextID       int64
}

func NewFakeMessRepo() *FakeMessRepo {
	return &FakeMessRepo{Balances: make(map[int64]*model.MessBalance)}
}

func (r *FakeMessRepo) GetBalance(_ context.Context, userID int64) (*model.MessBalance, error) {
	balance, ok := r.Balances[userID]
	if !ok {
		return nil, nil
	}
	return balance, nil
}

func (r *FakeMessRepo) ListTransactions(_ context.Context, userID int64) ([]*model.MessTransaction, error) {
	var out []*model.MessTransaction
	for i := len(r.Transactions) - 1; i >= 0; i-- {
		if r.Transactions[i].UserID == userID {
			out = append(out, r.Transactions[i])
		}
	}
	return out, nil
}

func (r *FakeMessRepo) ApplyTransaction(_ context.Context, txn *model.MessTransaction) error {
	balance, ok := r.Balances[txn.UserID]
	if !ok {
		return fmt.Errorf("mess balance for user %d not found", txn.UserID)
	}

	current, err := strconv.ParseFloat(balance.Balance, 64)
	if err != nil {
		return fmt.Errorf("parse balance: %w", err)
	}
	amount, err := strconv.ParseFloat(txn.Amount, 64)
	if err != nil {
		return fmt.Errorf("parse amount: %w", err)
	}

	r.nextID++
	txn.ID = r.nextID
	txn.CreatedAt = time.Now()
	r.Transactions = append(r.Transactions, txn)

	balance.Balance = strconv.FormatFloat(current+amount, 'f', 2, 64)
	balance.UpdatedAt = txn.CreatedAt
	return nil
}

type FakeCourseRepo struct {
	Courses     []*model.Course
	Enrollments []*model.StudentEnrollment
	nextID      int64
}

func (r *FakeCourseRepo) Create(_ context.Context, course *model.Course) error {
	for _, c := range r.Courses {
		if c.CourseCode == course.CourseCode {
			return repository.ErrDuplicate
		}
	}
	r.nextID++
	course.ID = r.nextID
	r.Courses = append(r.Courses, course)
	return nil
}

func (r *FakeCourseRepo) GetByID(_ context.Context, id int64) (*model.Course, error) {
	for _, c := range r.Courses {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *FakeCourseRepo) List(_ context.Context, semester string) ([]*model.Course, error) {
	var out []*model.Course
	for _, c := range r.Courses {
		if semester == "" || c.Semester == semester {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *FakeCourseRepo) Enroll(_ context.Context, enrollment *model.StudentEnrollment) error {
	for _, e := range r.Enrollments {
		if e.UserID == enrollment.UserID && e.CourseID == enrollment.CourseID {
			return repository.ErrDuplicate
		}
	}
	enrollment.EnrolledAt = time.Now()
	r.Enrollments = append(r.Enrollments, enrollment)
	return nil
}

func (r *FakeCourseRepo) ListEnrollments(_ context.Context, userID int64) ([]*model.StudentEnrollment, error) {
	var out []*model.StudentEnrollment
	for _, e := range r.Enrollments {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *FakeCourseRepo) ListEnrolledCourses(_ context.Context, userID int64) ([]*model.Course, error) {
	var out []*model.Course
	for _, e := range r.Enrollments {
		if e.UserID == userID {
			for _, c := range r.Courses {
				if c.ID == e.CourseID {
					out = append(out, c)
				}
			}
		}
	}
	return out, nil
}
