package tools

import (
	"context"
	_ "embed"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Spok95/college-erp-mcp/internal/db"
	"go.mongodb.org/mongo-driver/mongo"
)

//go:embed system_instructions.json
var systemInstructions string

// registerResources объявляет каталог: инструкции + по ресурсу на коллекцию.
// Сущности с soft-delete отдаются только активными; посещаемость и заявки —
// без фильтра.
func (s *Server) registerResources() {
	s.staticResource("erp://system-instructions", "System Instructions",
		"Interaction guidelines, tone, and conversation flow instructions for the ERP MCP server",
		func(ctx context.Context, m *mongo.Database) (any, error) {
			return json.RawMessage(systemInstructions), nil
		})

	s.staticResource("erp://students", "Students",
		"All student records in the ERP system",
		func(ctx context.Context, m *mongo.Database) (any, error) {
			return db.ListActiveStudents(ctx, m)
		})

	s.staticResource("erp://faculty", "Faculty",
		"All faculty records in the ERP system",
		func(ctx context.Context, m *mongo.Database) (any, error) {
			return db.ListActiveFaculty(ctx, m)
		})

	s.staticResource("erp://courses", "Courses",
		"All course records in the ERP system",
		func(ctx context.Context, m *mongo.Database) (any, error) {
			return db.ListActiveCourses(ctx, m)
		})

	s.staticResource("erp://attendance", "Attendance",
		"All attendance records in the ERP system",
		func(ctx context.Context, m *mongo.Database) (any, error) {
			return db.FindAttendance(ctx, m, db.AttendanceFilter{})
		})

	s.staticResource("erp://leave-requests", "Leave Requests",
		"All leave request records in the ERP system",
		func(ctx context.Context, m *mongo.Database) (any, error) {
			return db.FindLeaveRequests(ctx, m, db.LeaveFilter{})
		})

	s.staticResource("erp://timetables", "Timetables",
		"All timetable records in the ERP system",
		func(ctx context.Context, m *mongo.Database) (any, error) {
			return db.ListActiveTimetables(ctx, m)
		})
}

func (s *Server) staticResource(uri, name, description string, fetch func(context.Context, *mongo.Database) (any, error)) {
	res := mcp.NewResource(uri, name,
		mcp.WithResourceDescription(description),
		mcp.WithMIMEType("application/json"),
	)
	s.mcp.AddResource(res, func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		v, err := fetch(ctx, s.db)
		if err != nil {
			return nil, err
		}
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(b),
			},
		}, nil
	})
}
