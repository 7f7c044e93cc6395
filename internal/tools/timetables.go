package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Spok95/college-erp-mcp/internal/db"
	"github.com/Spok95/college-erp-mcp/internal/models"
)

func (s *Server) registerTimetableTools() {
	slotItems := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"period":     map[string]any{"type": "integer"},
			"type":       map[string]any{"type": "string", "enum": []string{"lecture", "break", "lab", "tutorial"}},
			"courseCode": map[string]any{"type": "string"},
			"course":     map[string]any{"type": "string", "description": "Course ObjectId reference"},
			"faculty":    map[string]any{"type": "string", "description": "Faculty ObjectId reference"},
			"room":       map[string]any{"type": "string"},
		},
		"required": []string{"period", "type", "courseCode"},
	}

	s.addTool(mcp.NewTool("create_timetable",
		mcp.WithDescription("Create timetable for a day and semester"),
		mcp.WithString("dayOfWeek", mcp.Required(), mcp.Description("Day of week"),
			mcp.Enum(models.Weekdays...)),
		mcp.WithNumber("semester", mcp.Required(), mcp.Description("Semester number")),
		mcp.WithArray("slots", mcp.Required(), mcp.Description("Time slots for the day"), mcp.Items(slotItems)),
	), s.createTimetable)

	s.addTool(mcp.NewTool("get_timetable",
		mcp.WithDescription("Get timetable for a specific day and semester"),
		mcp.WithString("dayOfWeek", mcp.Required(), mcp.Description("Day of week"),
			mcp.Enum(models.Weekdays...)),
		mcp.WithNumber("semester", mcp.Required(), mcp.Description("Semester number")),
	), s.getTimetable)

	s.addTool(mcp.NewTool("get_weekly_timetable",
		mcp.WithDescription("Get complete weekly timetable for a semester"),
		mcp.WithNumber("semester", mcp.Required(), mcp.Description("Semester number")),
	), s.getWeeklyTimetable)
}

type createTimetableRequest struct {
	DayOfWeek string
	Semester  int
	Slots     []models.Slot
}

func parseCreateTimetable(args map[string]any) (*createTimetableRequest, error) {
	var r createTimetableRequest
	var ok bool
	if r.DayOfWeek, ok = strArg(args, "dayOfWeek"); !ok {
		return nil, errors.New("dayOfWeek is required")
	}
	if !models.ValidWeekday(r.DayOfWeek) {
		return nil, fmt.Errorf("bad dayOfWeek %q", r.DayOfWeek)
	}
	semester, ok := intArg(args, "semester")
	if !ok {
		return nil, errors.New("semester is required")
	}
	r.Semester = int(semester)

	raw, ok := arrArg(args, "slots")
	if !ok {
		return nil, errors.New("slots is required")
	}
	r.Slots = make([]models.Slot, 0, len(raw))
	for i, item := range raw {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("slots[%d]: expected object", i)
		}
		period, ok := intArg(obj, "period")
		if !ok {
			return nil, fmt.Errorf("slots[%d]: period is required", i)
		}
		typStr, ok := strArg(obj, "type")
		typ := models.SlotType(typStr)
		if !ok || !typ.Valid() {
			return nil, fmt.Errorf("slots[%d]: type must be one of lecture, break, lab, tutorial", i)
		}
		code, ok := strArg(obj, "courseCode")
		if !ok {
			return nil, fmt.Errorf("slots[%d]: courseCode is required", i)
		}

		slot := models.Slot{Period: int(period), Type: typ, CourseCode: code}
		slot.Room, _ = strArg(obj, "room")
		if ref, ok := strArg(obj, "course"); ok && ref != "" {
			oid, err := primitive.ObjectIDFromHex(ref)
			if err != nil {
				return nil, fmt.Errorf("Invalid course ObjectId: %s", ref)
			}
			slot.Course = &oid
		}
		if ref, ok := strArg(obj, "faculty"); ok && ref != "" {
			oid, err := primitive.ObjectIDFromHex(ref)
			if err != nil {
				return nil, fmt.Errorf("Invalid faculty ObjectId: %s", ref)
			}
			slot.Faculty = &oid
		}
		r.Slots = append(r.Slots, slot)
	}
	return &r, nil
}

func (s *Server) createTimetable(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	r, err := parseCreateTimetable(req.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	tt := &models.Timetable{
		DayOfWeek: r.DayOfWeek,
		Semester:  r.Semester,
		Slots:     r.Slots,
	}
	id, err := db.CreateTimetable(ctx, s.db, tt)
	if errors.Is(err, db.ErrDuplicate) {
		return mcp.NewToolResultError("Timetable for this day and semester already exists"), nil
	}
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText("Timetable created successfully with ID: " + id.Hex()), nil
}

func (s *Server) getTimetable(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	day, ok := strArg(args, "dayOfWeek")
	if !ok {
		return mcp.NewToolResultError("dayOfWeek is required"), nil
	}
	semester, ok := intArg(args, "semester")
	if !ok {
		return mcp.NewToolResultError("semester is required"), nil
	}

	tt, err := db.GetTimetable(ctx, s.db, day, int(semester))
	if err != nil {
		return storeErr("Timetable", err)
	}
	return jsonResult(tt), nil
}

func (s *Server) getWeeklyTimetable(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	semester, ok := intArg(req.GetArguments(), "semester")
	if !ok {
		return mcp.NewToolResultError("semester is required"), nil
	}

	timetables, err := db.FindTimetablesBySemester(ctx, s.db, int(semester))
	if err != nil {
		return nil, err
	}

	// Сетка по дням недели; дни без расписания просто отсутствуют.
	weekly := make(map[string]models.Timetable, len(timetables))
	for _, tt := range timetables {
		weekly[tt.DayOfWeek] = tt
	}
	return jsonResult(weekly), nil
}
