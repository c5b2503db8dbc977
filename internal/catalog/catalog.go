// Package catalog holds the fixed campus booking policy: the classroom
// inventory, the reservable time slots, and the per-slot restrictions.
// It is read-only configuration; nothing here changes at runtime.
package catalog

import "fmt"

// classroomSlots are the reservable classroom periods, in day order.
var classroomSlots = []string{
	"08:30-09:30", "09:30-10:30", "10:30-11:30", "11:30-12:30",
	"12:30-13:30", "13:30-14:30", "14:30-15:30", "15:30-16:30",
	"16:30-17:30", "17:30-18:30", "Night Permission",
}

// mentorTimes are the bookable mentor meeting times.
var mentorTimes = []string{
	"09:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"01:00 PM", "02:00 PM", "03:00 PM", "04:00 PM", "05:00 PM",
}

// ClassroomSlots returns the reservable classroom periods, in day order.
func ClassroomSlots() []string {
	out := make([]string, len(classroomSlots))
	copy(out, classroomSlots)
	return out
}

// MentorTimes returns the bookable mentor meeting times.
func MentorTimes() []string {
	out := make([]string, len(mentorTimes))
	copy(out, mentorTimes)
	return out
}

// slotOverrides restricts certain slots to a fixed classroom subset,
// regardless of booking state. Campus policy reserves 09:30-10:30 for
// lectures everywhere except the first three ECR rooms.
var slotOverrides = map[string][]string{
	"09:30-10:30": {"ECR 1", "ECR 2", "ECR 3"},
}

// Classrooms returns the full room inventory: ECR 1-18 and ELT 1-7.
func Classrooms() []string {
	rooms := make([]string, 0, 25)
	for i := 1; i <= 18; i++ {
		rooms = append(rooms, fmt.Sprintf("ECR %d", i))
	}
	for i := 1; i <= 7; i++ {
		rooms = append(rooms, fmt.Sprintf("ELT %d", i))
	}
	return rooms
}

// EligibleClassrooms returns the rooms a slot may expose at all: the
// override subset when one is declared, the full inventory otherwise.
func EligibleClassrooms(timeSlot string) ([]string, bool) {
	if override, ok := slotOverrides[timeSlot]; ok {
		out := make([]string, len(override))
		copy(out, override)
		return out, true
	}
	return Classrooms(), false
}

// ValidClassroom reports whether name is in the room inventory.
func ValidClassroom(name string) bool {
	for _, room := range Classrooms() {
		if room == name {
			return true
		}
	}
	return false
}

// ValidClassroomSlot reports whether label is a known classroom slot.
func ValidClassroomSlot(label string) bool {
	return contains(classroomSlots, label)
}

// ValidMentorTime reports whether label is a known mentor meeting time.
func ValidMentorTime(label string) bool {
	return contains(mentorTimes, label)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
