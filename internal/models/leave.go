package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

// Terminal сообщает, можно ли ещё менять статус заявки.
func (s LeaveStatus) Terminal() bool {
	return s == LeaveApproved || s == LeaveRejected
}

type LeaveRequest struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	Student     primitive.ObjectID  `bson:"student" json:"student"`
	StudentRoll int64               `bson:"studentRoll" json:"studentRoll"`
	StartDate   time.Time           `bson:"startDate" json:"startDate"`
	EndDate     time.Time           `bson:"endDate" json:"endDate"`
	Reason      string              `bson:"reason" json:"reason"`
	Comments    string              `bson:"comments" json:"comments"`
	TotalDays   int                 `bson:"totalDays" json:"totalDays"`
	Status      LeaveStatus         `bson:"status" json:"status"`
	HandledBy   *primitive.ObjectID `bson:"handledBy" json:"handledBy"`
	HandledAt   *time.Time          `bson:"handledAt" json:"handledAt"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// LeaveDays считает длительность отпуска в днях, включая обе границы.
func LeaveDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
