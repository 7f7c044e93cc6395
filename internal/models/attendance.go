package models

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AttendanceStatus string

const (
	StatusPresent    AttendanceStatus = "P"
	StatusAbsent     AttendanceStatus = "A"
	StatusDidNotMeet AttendanceStatus = "DNM"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusDidNotMeet:
		return true
	}
	return false
}

type AttendanceEntry struct {
	Date   time.Time        `bson:"date" json:"date"`
	Status AttendanceStatus `bson:"status" json:"status"`
}

// Attendance хранит посещаемость одного студента за месяц.
// Уникальность по (studentRoll, month, year) — запись целиком замещается при upsert.
type Attendance struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Student     primitive.ObjectID `bson:"student" json:"student"`
	StudentRoll int64              `bson:"studentRoll" json:"studentRoll"`
	Month       string             `bson:"month" json:"month"` // свободная метка, например "January 2025"
	Year        int                `bson:"year" json:"year"`
	Entries     []AttendanceEntry  `bson:"attendance" json:"attendance"`
	TotalDays   int                `bson:"totalDays" json:"totalDays"`
	PresentDays int                `bson:"presentDays" json:"presentDays"`
	AbsentDays  int                `bson:"absentDays" json:"absentDays"`
	Percentage  float64            `bson:"attendancePercentage" json:"attendancePercentage"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Recompute derives totalDays/presentDays/absentDays and the percentage
// from the raw entries. DNM days count toward the total but not toward
// present or absent.
func (a *Attendance) Recompute() {
	total := len(a.Entries)
	present, absent := 0, 0
	for _, e := range a.Entries {
		switch e.Status {
		case StatusPresent:
			present++
		case StatusAbsent:
			absent++
		}
	}
	a.TotalDays = total
	a.PresentDays = present
	a.AbsentDays = absent
	if total > 0 {
		a.Percentage = RoundPercent(float64(present) / float64(total) * 100)
	} else {
		a.Percentage = 0
	}
}

// RoundPercent rounds to 2 decimal places, half away from zero.
// This is the single rounding rule for the whole system.
func RoundPercent(v float64) float64 {
	return math.Round(v*100) / 100
}
