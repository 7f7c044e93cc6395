package tools

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Spok95/college-erp-mcp/internal/db"
	"github.com/Spok95/college-erp-mcp/internal/models"
)

func (s *Server) registerStudentTools() {
	s.addTool(mcp.NewTool("get_student",
		mcp.WithDescription("Get student information by roll number or ObjectId"),
		mcp.WithNumber("roll", mcp.Description("Student roll number")),
		mcp.WithString("student_id", mcp.Description("Student ObjectId")),
	), s.getStudent)

	s.addTool(mcp.NewTool("create_student",
		mcp.WithDescription("Create a new student record"),
		mcp.WithNumber("roll", mcp.Required(), mcp.Description("Student roll number")),
		mcp.WithString("fullName", mcp.Required(), mcp.Description("Student full name")),
		mcp.WithString("email", mcp.Required(), mcp.Description("Student email")),
		mcp.WithString("phone", mcp.Required(), mcp.Description("Student phone number")),
		mcp.WithBoolean("isActive", mcp.Description("Student active status, default true")),
	), s.createStudent)

	s.addTool(mcp.NewTool("update_student",
		mcp.WithDescription("Update student information"),
		mcp.WithString("student_id", mcp.Required(), mcp.Description("Student ObjectId")),
		mcp.WithNumber("roll", mcp.Description("Student roll number")),
		mcp.WithString("fullName", mcp.Description("Student full name")),
		mcp.WithString("email", mcp.Description("Student email")),
		mcp.WithString("phone", mcp.Description("Student phone number")),
		mcp.WithBoolean("isActive", mcp.Description("Student active status")),
	), s.updateStudent)

	s.addTool(mcp.NewTool("delete_student",
		mcp.WithDescription("Delete student record (soft delete by setting isActive to false)"),
		mcp.WithString("student_id", mcp.Required(), mcp.Description("Student ObjectId")),
	), s.deleteStudent)

	s.addTool(mcp.NewTool("search_students",
		mcp.WithDescription("Search students by various criteria"),
		mcp.WithString("name", mcp.Description("Search by name (partial match)")),
		mcp.WithString("email", mcp.Description("Search by email")),
		mcp.WithObject("roll_range",
			mcp.Description("Search by roll number range"),
			mcp.Properties(map[string]any{
				"min": map[string]any{"type": "integer"},
				"max": map[string]any{"type": "integer"},
			}),
		),
		mcp.WithBoolean("isActive", mcp.Description("Filter by active status")),
	), s.searchStudents)
}

func (s *Server) getStudent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	var st *models.Student
	var err error
	if roll, ok := intArg(args, "roll"); ok {
		st, err = db.GetStudentByRoll(ctx, s.db, roll)
	} else if id, ok := strArg(args, "student_id"); ok {
		st, err = db.GetStudentByID(ctx, s.db, id)
	} else {
		return mcp.NewToolResultError("Either roll or student_id is required"), nil
	}
	if err != nil {
		return storeErr("Student", err)
	}
	return jsonResult(st), nil
}

type createStudentRequest struct {
	Roll     int64
	FullName string
	Email    string
	Phone    string
	IsActive bool
}

func parseCreateStudent(args map[string]any) (*createStudentRequest, error) {
	r := createStudentRequest{IsActive: true}
	var ok bool
	if r.Roll, ok = intArg(args, "roll"); !ok {
		return nil, errors.New("roll is required")
	}
	if r.FullName, ok = strArg(args, "fullName"); !ok {
		return nil, errors.New("fullName is required")
	}
	if r.Email, ok = strArg(args, "email"); !ok {
		return nil, errors.New("email is required")
	}
	if r.Phone, ok = strArg(args, "phone"); !ok {
		return nil, errors.New("phone is required")
	}
	if v, ok := boolArg(args, "isActive"); ok {
		r.IsActive = v
	}
	return &r, nil
}

func (s *Server) createStudent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	r, err := parseCreateStudent(req.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	st := &models.Student{
		Roll:     r.Roll,
		FullName: r.FullName,
		Email:    r.Email,
		Phone:    r.Phone,
		IsActive: r.IsActive,
	}
	id, err := db.CreateStudent(ctx, s.db, st)
	if errors.Is(err, db.ErrDuplicate) {
		return mcp.NewToolResultError("Student with this roll number or email already exists"), nil
	}
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText("Student created successfully with ID: " + id.Hex()), nil
}

func (s *Server) updateStudent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	id, ok := strArg(args, "student_id")
	if !ok {
		return mcp.NewToolResultError("student_id is required"), nil
	}

	patch := db.StudentPatch{
		Roll:     intPtrArg(args, "roll"),
		FullName: strPtrArg(args, "fullName"),
		Email:    strPtrArg(args, "email"),
		Phone:    strPtrArg(args, "phone"),
		IsActive: boolPtrArg(args, "isActive"),
	}
	if err := db.UpdateStudent(ctx, s.db, id, patch); err != nil {
		return storeErr("Student", err)
	}
	return mcp.NewToolResultText("Student updated successfully"), nil
}

func (s *Server) deleteStudent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, ok := strArg(req.GetArguments(), "student_id")
	if !ok {
		return mcp.NewToolResultError("student_id is required"), nil
	}
	if err := db.SoftDeleteStudent(ctx, s.db, id); err != nil {
		return storeErr("Student", err)
	}
	return mcp.NewToolResultText("Student deactivated successfully"), nil
}

func (s *Server) searchStudents(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	f := db.StudentFilter{IsActive: boolPtrArg(args, "isActive")}
	f.Name, _ = strArg(args, "name")
	f.Email, _ = strArg(args, "email")
	if rr, ok := objArg(args, "roll_range"); ok {
		f.RollMin = intPtrArg(rr, "min")
		f.RollMax = intPtrArg(rr, "max")
	}

	students, err := db.SearchStudents(ctx, s.db, f)
	if err != nil {
		return nil, err
	}
	if students == nil {
		students = []models.Student{}
	}
	return jsonResult(students), nil
}
