package tools

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Spok95/college-erp-mcp/internal/analytics"
	"github.com/Spok95/college-erp-mcp/internal/db"
	"github.com/Spok95/college-erp-mcp/internal/models"
)

func (s *Server) registerAttendanceTools() {
	s.addTool(mcp.NewTool("record_attendance",
		mcp.WithDescription("Record attendance for a student"),
		mcp.WithNumber("student_roll", mcp.Required(), mcp.Description("Student roll number")),
		mcp.WithString("month", mcp.Required(), mcp.Description("Month (e.g., 'January 2025')")),
		mcp.WithNumber("year", mcp.Required(), mcp.Description("Year")),
		mcp.WithArray("attendance_data",
			mcp.Required(),
			mcp.Description("Array of attendance records"),
			mcp.Items(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"date":   map[string]any{"type": "string", "format": "date"},
					"status": map[string]any{"type": "string", "enum": []string{"P", "A", "DNM"}},
				},
			}),
		),
	), s.recordAttendance)

	s.addTool(mcp.NewTool("get_attendance",
		mcp.WithDescription("Get attendance records for a student"),
		mcp.WithNumber("student_roll", mcp.Required(), mcp.Description("Student roll number")),
		mcp.WithString("month", mcp.Description("Month (e.g., 'January 2025')")),
		mcp.WithNumber("year", mcp.Description("Year")),
	), s.getAttendance)

	s.addTool(mcp.NewTool("calculate_attendance_stats",
		mcp.WithDescription("Calculate attendance statistics for a student or all students"),
		mcp.WithNumber("student_roll", mcp.Description("Student roll number (optional)")),
		mcp.WithString("month", mcp.Description("Month (optional)")),
		mcp.WithNumber("year", mcp.Description("Year (optional)")),
	), s.calculateAttendanceStats)
}

type recordAttendanceRequest struct {
	Roll    int64
	Month   string
	Year    int
	Entries []models.AttendanceEntry
}

func parseRecordAttendance(args map[string]any) (*recordAttendanceRequest, error) {
	var r recordAttendanceRequest
	var ok bool
	if r.Roll, ok = intArg(args, "student_roll"); !ok {
		return nil, errors.New("student_roll is required")
	}
	if r.Month, ok = strArg(args, "month"); !ok {
		return nil, errors.New("month is required")
	}
	year, ok := intArg(args, "year")
	if !ok {
		return nil, errors.New("year is required")
	}
	r.Year = int(year)

	raw, ok := arrArg(args, "attendance_data")
	if !ok || len(raw) == 0 {
		return nil, errors.New("attendance_data must be a non-empty array")
	}
	r.Entries = make([]models.AttendanceEntry, 0, len(raw))
	for i, item := range raw {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("attendance_data[%d]: expected object", i)
		}
		dateStr, ok := strArg(obj, "date")
		if !ok {
			return nil, fmt.Errorf("attendance_data[%d]: date is required", i)
		}
		date, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("attendance_data[%d]: bad date %q", i, dateStr)
		}
		statusStr, ok := strArg(obj, "status")
		status := models.AttendanceStatus(statusStr)
		if !ok || !status.Valid() {
			return nil, fmt.Errorf("attendance_data[%d]: status must be one of P, A, DNM", i)
		}
		r.Entries = append(r.Entries, models.AttendanceEntry{Date: date, Status: status})
	}
	return &r, nil
}

func (s *Server) recordAttendance(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	r, err := parseRecordAttendance(req.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	st, err := db.GetStudentByRoll(ctx, s.db, r.Roll)
	if err != nil {
		return storeErr("Student", err)
	}

	a := &models.Attendance{
		Student:     st.ID,
		StudentRoll: r.Roll,
		Month:       r.Month,
		Year:        r.Year,
		Entries:     r.Entries,
	}
	a.Recompute()

	if err := db.UpsertAttendance(ctx, s.db, a); err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(fmt.Sprintf("Attendance recorded successfully. Percentage: %.2f%%", a.Percentage)), nil
}

func (s *Server) getAttendance(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	roll, ok := intArg(args, "student_roll")
	if !ok {
		return mcp.NewToolResultError("student_roll is required"), nil
	}

	f := db.AttendanceFilter{StudentRoll: &roll, Year: intValPtrArg(args, "year")}
	f.Month, _ = strArg(args, "month")

	records, err := db.FindAttendance(ctx, s.db, f)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []models.Attendance{}
	}
	return jsonResult(records), nil
}

func (s *Server) calculateAttendanceStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	f := db.AttendanceFilter{
		StudentRoll: intPtrArg(args, "student_roll"),
		Year:        intValPtrArg(args, "year"),
	}
	f.Month, _ = strArg(args, "month")

	stats, err := analytics.CalculateAttendanceStats(ctx, s.db, f)
	if err != nil {
		if errors.Is(err, db.ErrEmptyResult) {
			return mcp.NewToolResultError("No attendance records found"), nil
		}
		return nil, err
	}
	return jsonResult(stats), nil
}
