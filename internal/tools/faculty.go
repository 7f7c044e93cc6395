package tools

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Spok95/college-erp-mcp/internal/db"
	"github.com/Spok95/college-erp-mcp/internal/models"
)

func (s *Server) registerFacultyTools() {
	s.addTool(mcp.NewTool("get_faculty",
		mcp.WithDescription("Get faculty information by employee ID or ObjectId"),
		mcp.WithString("employee_id", mcp.Description("Faculty employee ID")),
		mcp.WithString("faculty_id", mcp.Description("Faculty ObjectId")),
	), s.getFaculty)

	s.addTool(mcp.NewTool("create_faculty",
		mcp.WithDescription("Create a new faculty record"),
		mcp.WithString("employeeId", mcp.Required(), mcp.Description("Faculty employee ID")),
		mcp.WithString("fullName", mcp.Required(), mcp.Description("Faculty full name")),
		mcp.WithString("email", mcp.Required(), mcp.Description("Faculty email")),
		mcp.WithString("designation", mcp.Required(), mcp.Description("Faculty designation")),
		mcp.WithArray("subjectsHandled",
			mcp.Description("Subjects handled"),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithBoolean("isActive", mcp.Description("Faculty active status, default true")),
	), s.createFaculty)

	s.addTool(mcp.NewTool("update_faculty",
		mcp.WithDescription("Update faculty information"),
		mcp.WithString("faculty_id", mcp.Required(), mcp.Description("Faculty ObjectId")),
		mcp.WithString("employeeId", mcp.Description("Faculty employee ID")),
		mcp.WithString("fullName", mcp.Description("Faculty full name")),
		mcp.WithString("email", mcp.Description("Faculty email")),
		mcp.WithString("designation", mcp.Description("Faculty designation")),
		mcp.WithArray("subjectsHandled",
			mcp.Description("Subjects handled"),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithBoolean("isActive", mcp.Description("Faculty active status")),
	), s.updateFaculty)

	s.addTool(mcp.NewTool("delete_faculty",
		mcp.WithDescription("Delete faculty record (soft delete by setting isActive to false)"),
		mcp.WithString("faculty_id", mcp.Required(), mcp.Description("Faculty ObjectId")),
	), s.deleteFaculty)
}

func (s *Server) getFaculty(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	var f *models.Faculty
	var err error
	if empID, ok := strArg(args, "employee_id"); ok {
		f, err = db.GetFacultyByEmployeeID(ctx, s.db, empID)
	} else if id, ok := strArg(args, "faculty_id"); ok {
		f, err = db.GetFacultyByID(ctx, s.db, id)
	} else {
		return mcp.NewToolResultError("Either employee_id or faculty_id is required"), nil
	}
	if err != nil {
		return storeErr("Faculty", err)
	}
	return jsonResult(f), nil
}

type createFacultyRequest struct {
	EmployeeID      string
	FullName        string
	Email           string
	Designation     string
	SubjectsHandled []string
	IsActive        bool
}

func parseCreateFaculty(args map[string]any) (*createFacultyRequest, error) {
	r := createFacultyRequest{IsActive: true}
	var ok bool
	if r.EmployeeID, ok = strArg(args, "employeeId"); !ok {
		return nil, errors.New("employeeId is required")
	}
	if r.FullName, ok = strArg(args, "fullName"); !ok {
		return nil, errors.New("fullName is required")
	}
	if r.Email, ok = strArg(args, "email"); !ok {
		return nil, errors.New("email is required")
	}
	if r.Designation, ok = strArg(args, "designation"); !ok {
		return nil, errors.New("designation is required")
	}
	r.SubjectsHandled, _ = strSliceArg(args, "subjectsHandled")
	if v, ok := boolArg(args, "isActive"); ok {
		r.IsActive = v
	}
	return &r, nil
}

func (s *Server) createFaculty(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	r, err := parseCreateFaculty(req.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	f := &models.Faculty{
		EmployeeID:      r.EmployeeID,
		FullName:        r.FullName,
		Email:           r.Email,
		Designation:     r.Designation,
		SubjectsHandled: r.SubjectsHandled,
		IsActive:        r.IsActive,
	}
	id, err := db.CreateFaculty(ctx, s.db, f)
	if errors.Is(err, db.ErrDuplicate) {
		return mcp.NewToolResultError("Faculty with this employee ID or email already exists"), nil
	}
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText("Faculty created successfully with ID: " + id.Hex()), nil
}

func (s *Server) updateFaculty(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	id, ok := strArg(args, "faculty_id")
	if !ok {
		return mcp.NewToolResultError("faculty_id is required"), nil
	}

	patch := db.FacultyPatch{
		EmployeeID:  strPtrArg(args, "employeeId"),
		FullName:    strPtrArg(args, "fullName"),
		Email:       strPtrArg(args, "email"),
		Designation: strPtrArg(args, "designation"),
		IsActive:    boolPtrArg(args, "isActive"),
	}
	if subjects, ok := strSliceArg(args, "subjectsHandled"); ok {
		patch.SubjectsHandled = subjects
	}
	if err := db.UpdateFaculty(ctx, s.db, id, patch); err != nil {
		return storeErr("Faculty", err)
	}
	return mcp.NewToolResultText("Faculty updated successfully"), nil
}

func (s *Server) deleteFaculty(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, ok := strArg(req.GetArguments(), "faculty_id")
	if !ok {
		return mcp.NewToolResultError("faculty_id is required"), nil
	}
	if err := db.SoftDeleteFaculty(ctx, s.db, id); err != nil {
		return storeErr("Faculty", err)
	}
	return mcp.NewToolResultText("Faculty deactivated successfully"), nil
}
