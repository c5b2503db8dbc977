package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassroomsInventory(t *testing.T) {
	rooms := Classrooms()

	assert.Len(t, rooms, 25)
	assert.Equal(t, "ECR 1", rooms[0])
	assert.Equal(t, "ECR 18", rooms[17])
	assert.Equal(t, "ELT 1", rooms[18])
	assert.Equal(t, "ELT 7", rooms[24])
}

func TestEligibleClassroomsOverride(t *testing.T) {
	rooms, overridden := EligibleClassrooms("09:30-10:30")

	assert.True(t, overridden)
	assert.Equal(t, []string{"ECR 1", "ECR 2", "ECR 3"}, rooms)
}

func TestEligibleClassroomsDefault(t *testing.T) {
	rooms, overridden := EligibleClassrooms("10:30-11:30")

	assert.False(t, overridden)
	assert.Len(t, rooms, 25)
}

func TestEligibleClassroomsReturnsCopy(t *testing.T) {
	rooms, _ := EligibleClassrooms("09:30-10:30")
	rooms[0] = "mutated"

	again, _ := EligibleClassrooms("09:30-10:30")
	assert.Equal(t, "ECR 1", again[0])
}

func TestSlotAndTimeListsReturnCopies(t *testing.T) {
	slots := ClassroomSlots()
	assert.Len(t, slots, 11)
	assert.Equal(t, "08:30-09:30", slots[0])
	assert.Equal(t, "Night Permission", slots[10])

	slots[0] = "mutated"
	assert.Equal(t, "08:30-09:30", ClassroomSlots()[0])
	assert.True(t, ValidClassroomSlot("08:30-09:30"))

	times := MentorTimes()
	assert.Len(t, times, 9)

	times[0] = "mutated"
	assert.Equal(t, "09:00 AM", MentorTimes()[0])
	assert.True(t, ValidMentorTime("09:00 AM"))
}

func TestValidClassroom(t *testing.T) {
	assert.True(t, ValidClassroom("ECR 5"))
	assert.True(t, ValidClassroom("ELT 7"))
	assert.False(t, ValidClassroom("ECR 19"))
	assert.False(t, ValidClassroom("ecr 5"))
}

func TestValidClassroomSlot(t *testing.T) {
	assert.True(t, ValidClassroomSlot("08:30-09:30"))
	assert.True(t, ValidClassroomSlot("Night Permission"))
	assert.False(t, ValidClassroomSlot("08:30 - 09:30"))
}

func TestValidMentorTime(t *testing.T) {
	assert.True(t, ValidMentorTime("09:00 AM"))
	assert.True(t, ValidMentorTime("05:00 PM"))
	assert.False(t, ValidMentorTime("06:00 PM"))
}
