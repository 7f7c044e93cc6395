package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Spok95/college-erp-mcp/internal/analytics"
	"github.com/Spok95/college-erp-mcp/internal/db"
	"github.com/Spok95/college-erp-mcp/internal/export"
)

func (s *Server) registerExportTools() {
	s.addTool(mcp.NewTool("export_attendance_report",
		mcp.WithDescription("Export an attendance report as an Excel workbook and return the file path"),
		mcp.WithString("month", mcp.Description("Filter by month")),
		mcp.WithNumber("year", mcp.Description("Filter by year")),
	), s.exportAttendanceReport)
}

func (s *Server) exportAttendanceReport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	var f db.AttendanceFilter
	if v, ok := strArg(args, "month"); ok {
		f.Month = v
	}
	if v, ok := intArg(args, "year"); ok {
		y := int(v)
		f.Year = &y
	}

	records, err := db.FindAttendance(ctx, s.db, f)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return mcp.NewToolResultError("No attendance records found"), nil
	}
	names, err := analytics.StudentNames(ctx, s.db, records)
	if err != nil {
		return nil, err
	}
	stats := analytics.ComputeAttendanceStats(records, names)

	wb, err := export.NewWorkbook(export.AttendanceReportSheets(stats, records, names))
	if err != nil {
		return nil, err
	}
	path, err := wb.SaveTemp("attendance_report")
	if err != nil {
		return nil, fmt.Errorf("save report: %w", err)
	}
	s.log.Infow("attendance report exported", "path", path, "records", len(records))
	return mcp.NewToolResultText("Attendance report saved to: " + path), nil
}
