package analytics

import (
	"context"

	"github.com/Spok95/college-erp-mcp/internal/db"
	"github.com/Spok95/college-erp-mcp/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type EntityCounts struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
}

type Overview struct {
	Students   EntityCounts `json:"students"`
	Faculty    EntityCounts `json:"faculty"`
	Courses    EntityCounts `json:"courses"`
	Attendance struct {
		TotalRecords int64 `json:"total_records"`
	} `json:"attendance"`
	LeaveRequests struct {
		Pending  int64 `json:"pending"`
		Approved int64 `json:"approved"`
		Rejected int64 `json:"rejected"`
		Total    int64 `json:"total"`
	} `json:"leave_requests"`
	Timetables struct {
		Total int64 `json:"total"`
	} `json:"timetables"`
}

// ERPOverview — сводные счётчики по всем коллекциям.
// total у сущностей с soft-delete равен числу активных записей.
func ERPOverview(ctx context.Context, m *mongo.Database) (*Overview, error) {
	var o Overview

	entity := func(col string) (EntityCounts, error) {
		active, err := db.CountActive(ctx, m, col)
		if err != nil {
			return EntityCounts{}, err
		}
		inactive, err := db.CountInactive(ctx, m, col)
		if err != nil {
			return EntityCounts{}, err
		}
		return EntityCounts{Total: active, Active: active, Inactive: inactive}, nil
	}

	var err error
	if o.Students, err = entity(db.ColStudents); err != nil {
		return nil, err
	}
	if o.Faculty, err = entity(db.ColFaculty); err != nil {
		return nil, err
	}
	if o.Courses, err = entity(db.ColCourses); err != nil {
		return nil, err
	}

	if o.Attendance.TotalRecords, err = db.Count(ctx, m, db.ColAttendance, nil); err != nil {
		return nil, err
	}

	leaves := map[models.LeaveStatus]*int64{
		models.LeavePending:  &o.LeaveRequests.Pending,
		models.LeaveApproved: &o.LeaveRequests.Approved,
		models.LeaveRejected: &o.LeaveRequests.Rejected,
	}
	for status, dst := range leaves {
		n, err := db.Count(ctx, m, db.ColLeaveRequests, bson.M{"status": status})
		if err != nil {
			return nil, err
		}
		*dst = n
	}
	o.LeaveRequests.Total = o.LeaveRequests.Pending + o.LeaveRequests.Approved + o.LeaveRequests.Rejected

	if o.Timetables.Total, err = db.CountActive(ctx, m, db.ColTimetables); err != nil {
		return nil, err
	}
	return &o, nil
}
