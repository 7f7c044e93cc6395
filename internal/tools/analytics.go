package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Spok95/college-erp-mcp/internal/analytics"
)

func (s *Server) registerAnalyticsTools() {
	s.addTool(mcp.NewTool("get_erp_analytics",
		mcp.WithDescription("Get comprehensive ERP analytics and insights"),
		mcp.WithNumber("semester", mcp.Description("Filter by semester")),
		mcp.WithString("month", mcp.Description("Filter by month")),
		mcp.WithNumber("year", mcp.Description("Filter by year")),
	), s.getERPAnalytics)

	s.addTool(mcp.NewTool("complex_query",
		mcp.WithDescription("Execute complex queries across multiple collections"),
		mcp.WithString("query_type", mcp.Required(), mcp.Description("Query to run"),
			mcp.Enum(
				"students_with_low_attendance",
				"faculty_workload",
				"course_enrollment_stats",
				"leave_request_trends",
				"timetable_conflicts",
			)),
		mcp.WithObject("parameters", mcp.Description("Query-specific parameters")),
	), s.complexQuery)
}

func (s *Server) getERPAnalytics(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	o, err := analytics.ERPOverview(ctx, s.db)
	if err != nil {
		return nil, err
	}
	return jsonResult(o), nil
}

func (s *Server) complexQuery(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	queryType, ok := strArg(args, "query_type")
	if !ok {
		return mcp.NewToolResultError("query_type is required"), nil
	}
	params, _ := objArg(args, "parameters")

	switch queryType {
	case "students_with_low_attendance":
		threshold := analytics.LowAttendanceThreshold
		if v, ok := floatArg(params, "threshold"); ok {
			threshold = v
		}
		records, err := analytics.StudentsWithLowAttendance(ctx, s.db, threshold)
		if err != nil {
			return nil, err
		}
		return jsonResult(records), nil

	case "faculty_workload":
		workload, err := analytics.Workload(ctx, s.db)
		if err != nil {
			return nil, err
		}
		return jsonResult(workload), nil

	case "course_enrollment_stats":
		rows, err := analytics.EnrollmentStats(ctx, s.db)
		if err != nil {
			return nil, err
		}
		return jsonResult(rows), nil

	case "leave_request_trends":
		trends, err := analytics.LeaveTrends(ctx, s.db)
		if err != nil {
			return nil, err
		}
		return jsonResult(trends), nil

	case "timetable_conflicts":
		conflicts, err := analytics.TimetableConflicts(ctx, s.db)
		if err != nil {
			return nil, err
		}
		if conflicts == nil {
			conflicts = []analytics.Conflict{}
		}
		return jsonResult(conflicts), nil
	}
	return mcp.NewToolResultError("Unknown query type: " + queryType), nil
}
