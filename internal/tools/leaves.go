package tools

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Spok95/college-erp-mcp/internal/db"
	"github.com/Spok95/college-erp-mcp/internal/models"
)

func (s *Server) registerLeaveTools() {
	s.addTool(mcp.NewTool("create_leave_request",
		mcp.WithDescription("Create a new leave request"),
		mcp.WithNumber("student_roll", mcp.Required(), mcp.Description("Student roll number")),
		mcp.WithString("start_date", mcp.Required(), mcp.Description("Start date (YYYY-MM-DD)")),
		mcp.WithString("end_date", mcp.Required(), mcp.Description("End date (YYYY-MM-DD)")),
		mcp.WithString("reason", mcp.Required(), mcp.Description("Reason for leave")),
		mcp.WithString("comments", mcp.Description("Additional comments")),
	), s.createLeaveRequest)

	s.addTool(mcp.NewTool("update_leave_request",
		mcp.WithDescription("Update leave request status (approve/reject)"),
		mcp.WithString("leave_id", mcp.Required(), mcp.Description("Leave request ObjectId")),
		mcp.WithString("status", mcp.Required(), mcp.Description("New status"), mcp.Enum("approved", "rejected")),
		mcp.WithString("handled_by", mcp.Required(), mcp.Description("Faculty ObjectId handling the request")),
		mcp.WithString("comments", mcp.Description("Additional comments")),
	), s.updateLeaveRequest)

	s.addTool(mcp.NewTool("get_leave_requests",
		mcp.WithDescription("Get leave requests with optional filtering"),
		mcp.WithNumber("student_roll", mcp.Description("Student roll number")),
		mcp.WithString("status", mcp.Description("Filter by status"), mcp.Enum("pending", "approved", "rejected")),
		mcp.WithObject("date_range",
			mcp.Description("Filter by start date range"),
			mcp.Properties(map[string]any{
				"start": map[string]any{"type": "string", "format": "date"},
				"end":   map[string]any{"type": "string", "format": "date"},
			}),
		),
	), s.getLeaveRequests)
}

type createLeaveRequest struct {
	Roll      int64
	StartDate string
	EndDate   string
	Reason    string
	Comments  string
}

func parseCreateLeave(args map[string]any) (*createLeaveRequest, error) {
	var r createLeaveRequest
	var ok bool
	if r.Roll, ok = intArg(args, "student_roll"); !ok {
		return nil, errors.New("student_roll is required")
	}
	if r.StartDate, ok = strArg(args, "start_date"); !ok {
		return nil, errors.New("start_date is required")
	}
	if r.EndDate, ok = strArg(args, "end_date"); !ok {
		return nil, errors.New("end_date is required")
	}
	if r.Reason, ok = strArg(args, "reason"); !ok {
		return nil, errors.New("reason is required")
	}
	r.Comments, _ = strArg(args, "comments")
	return &r, nil
}

func (s *Server) createLeaveRequest(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	r, err := parseCreateLeave(req.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	st, err := db.GetStudentByRoll(ctx, s.db, r.Roll)
	if err != nil {
		return storeErr("Student", err)
	}

	start, err := parseDate(r.StartDate)
	if err != nil {
		return mcp.NewToolResultError("bad start_date: expected YYYY-MM-DD"), nil
	}
	end, err := parseDate(r.EndDate)
	if err != nil {
		return mcp.NewToolResultError("bad end_date: expected YYYY-MM-DD"), nil
	}
	if end.Before(start) {
		return mcp.NewToolResultError("end_date must not be before start_date"), nil
	}

	lr := &models.LeaveRequest{
		Student:     st.ID,
		StudentRoll: r.Roll,
		StartDate:   start,
		EndDate:     end,
		Reason:      r.Reason,
		Comments:    r.Comments,
		TotalDays:   models.LeaveDays(start, end),
	}
	id, err := db.CreateLeaveRequest(ctx, s.db, lr)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText("Leave request created successfully with ID: " + id.Hex()), nil
}

func (s *Server) updateLeaveRequest(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	id, ok := strArg(args, "leave_id")
	if !ok {
		return mcp.NewToolResultError("leave_id is required"), nil
	}
	statusStr, ok := strArg(args, "status")
	if !ok {
		return mcp.NewToolResultError("status is required"), nil
	}
	status := models.LeaveStatus(statusStr)
	if !status.Terminal() {
		return mcp.NewToolResultError("status must be approved or rejected"), nil
	}
	handledBy, ok := strArg(args, "handled_by")
	if !ok {
		return mcp.NewToolResultError("handled_by is required"), nil
	}
	handlerOID, err := primitive.ObjectIDFromHex(handledBy)
	if err != nil {
		return mcp.NewToolResultError("Invalid faculty ID format: " + handledBy), nil
	}

	if err := db.ResolveLeaveRequest(ctx, s.db, id, status, handlerOID, strPtrArg(args, "comments")); err != nil {
		return storeErr("Leave request", err)
	}
	return mcp.NewToolResultText("Leave request " + statusStr + " successfully"), nil
}

func (s *Server) getLeaveRequests(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	f := db.LeaveFilter{StudentRoll: intPtrArg(args, "student_roll")}
	if statusStr, ok := strArg(args, "status"); ok {
		f.Status = models.LeaveStatus(statusStr)
	}
	if dr, ok := objArg(args, "date_range"); ok {
		if from, ok := strArg(dr, "start"); ok {
			t, err := parseDate(from)
			if err != nil {
				return mcp.NewToolResultError("bad date_range.start: expected YYYY-MM-DD"), nil
			}
			f.StartFrom = &t
		}
		if to, ok := strArg(dr, "end"); ok {
			t, err := parseDate(to)
			if err != nil {
				return mcp.NewToolResultError("bad date_range.end: expected YYYY-MM-DD"), nil
			}
			f.StartTo = &t
		}
	}

	requests, err := db.FindLeaveRequests(ctx, s.db, f)
	if err != nil {
		return nil, err
	}
	if requests == nil {
		requests = []models.LeaveRequest{}
	}
	return jsonResult(requests), nil
}
