package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SlotType string

const (
	SlotLecture  SlotType = "lecture"
	SlotBreak    SlotType = "break"
	SlotLab      SlotType = "lab"
	SlotTutorial SlotType = "tutorial"
)

func (t SlotType) Valid() bool {
	switch t {
	case SlotLecture, SlotBreak, SlotLab, SlotTutorial:
		return true
	}
	return false
}

var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// WeekdayIndex возвращает позицию дня в неделе (Monday=0) или -1.
func WeekdayIndex(day string) int {
	for i, d := range Weekdays {
		if d == day {
			return i
		}
	}
	return -1
}

func ValidWeekday(day string) bool { return WeekdayIndex(day) >= 0 }

type Slot struct {
	Period     int                 `bson:"period" json:"period"`
	Type       SlotType            `bson:"type" json:"type"`
	CourseCode string              `bson:"courseCode" json:"courseCode"`
	Course     *primitive.ObjectID `bson:"course,omitempty" json:"course,omitempty"`
	Faculty    *primitive.ObjectID `bson:"faculty,omitempty" json:"faculty,omitempty"`
	Room       string              `bson:"room,omitempty" json:"room,omitempty"`
}

type Timetable struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	DayOfWeek string             `bson:"dayOfWeek" json:"dayOfWeek"`
	Semester  int                `bson:"semester" json:"semester"`
	Slots     []Slot             `bson:"slots" json:"slots"`
	IsActive  bool               `bson:"isActive" json:"isActive"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
