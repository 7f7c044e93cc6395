package tools

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Spok95/college-erp-mcp/internal/db"
	"github.com/Spok95/college-erp-mcp/internal/models"
)

func (s *Server) registerCourseTools() {
	s.addTool(mcp.NewTool("get_course",
		mcp.WithDescription("Get course information by code or ObjectId"),
		mcp.WithString("code", mcp.Description("Course code")),
		mcp.WithString("course_id", mcp.Description("Course ObjectId")),
	), s.getCourse)

	s.addTool(mcp.NewTool("create_course",
		mcp.WithDescription("Create a new course record"),
		mcp.WithString("code", mcp.Required(), mcp.Description("Course code")),
		mcp.WithString("title", mcp.Required(), mcp.Description("Course title")),
		mcp.WithNumber("credits", mcp.Required(), mcp.Description("Course credits")),
		mcp.WithNumber("semester", mcp.Required(), mcp.Description("Course semester")),
		mcp.WithString("description", mcp.Description("Course description")),
		mcp.WithString("facultyInCharge", mcp.Description("Faculty ObjectId in charge")),
		mcp.WithBoolean("isActive", mcp.Description("Course active status, default true")),
	), s.createCourse)

	s.addTool(mcp.NewTool("update_course",
		mcp.WithDescription("Update course information"),
		mcp.WithString("course_id", mcp.Required(), mcp.Description("Course ObjectId")),
		mcp.WithString("code", mcp.Description("Course code")),
		mcp.WithString("title", mcp.Description("Course title")),
		mcp.WithNumber("credits", mcp.Description("Course credits")),
		mcp.WithNumber("semester", mcp.Description("Course semester")),
		mcp.WithString("description", mcp.Description("Course description")),
		mcp.WithString("facultyInCharge", mcp.Description("Faculty ObjectId in charge; empty string clears the reference")),
		mcp.WithBoolean("isActive", mcp.Description("Course active status")),
	), s.updateCourse)

	s.addTool(mcp.NewTool("delete_course",
		mcp.WithDescription("Delete course record (soft delete by setting isActive to false)"),
		mcp.WithString("course_id", mcp.Required(), mcp.Description("Course ObjectId")),
	), s.deleteCourse)
}

func (s *Server) getCourse(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	var c *models.Course
	var err error
	if code, ok := strArg(args, "code"); ok {
		c, err = db.GetCourseByCode(ctx, s.db, code)
	} else if id, ok := strArg(args, "course_id"); ok {
		c, err = db.GetCourseByID(ctx, s.db, id)
	} else {
		return mcp.NewToolResultError("Either code or course_id is required"), nil
	}
	if err != nil {
		return storeErr("Course", err)
	}
	return jsonResult(c), nil
}

type createCourseRequest struct {
	Code            string
	Title           string
	Credits         int
	Semester        int
	Description     string
	FacultyInCharge string // hex, пустая строка = нет
	IsActive        bool
}

func parseCreateCourse(args map[string]any) (*createCourseRequest, error) {
	r := createCourseRequest{IsActive: true}
	var ok bool
	if r.Code, ok = strArg(args, "code"); !ok {
		return nil, errors.New("code is required")
	}
	if r.Title, ok = strArg(args, "title"); !ok {
		return nil, errors.New("title is required")
	}
	credits, ok := intArg(args, "credits")
	if !ok {
		return nil, errors.New("credits is required")
	}
	r.Credits = int(credits)
	semester, ok := intArg(args, "semester")
	if !ok {
		return nil, errors.New("semester is required")
	}
	r.Semester = int(semester)
	r.Description, _ = strArg(args, "description")
	r.FacultyInCharge, _ = strArg(args, "facultyInCharge")
	if v, ok := boolArg(args, "isActive"); ok {
		r.IsActive = v
	}
	return &r, nil
}

func (s *Server) createCourse(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	r, err := parseCreateCourse(req.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	c := &models.Course{
		Code:        r.Code,
		Title:       r.Title,
		Credits:     r.Credits,
		Semester:    r.Semester,
		Description: r.Description,
		IsActive:    r.IsActive,
	}
	// Ссылочная целостность проверяется ДО любой записи: битая ссылка
	// не должна оставить курс в базе.
	if r.FacultyInCharge != "" {
		ref, err := db.ResolveFacultyRef(ctx, s.db, r.FacultyInCharge)
		if err != nil {
			return facultyRefErr(r.FacultyInCharge, err)
		}
		c.FacultyInCharge = ref
	}

	id, err := db.CreateCourse(ctx, s.db, c)
	if errors.Is(err, db.ErrDuplicate) {
		return mcp.NewToolResultError("Course with this code already exists"), nil
	}
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText("Course created successfully with ID: " + id.Hex()), nil
}

func (s *Server) updateCourse(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	id, ok := strArg(args, "course_id")
	if !ok {
		return mcp.NewToolResultError("course_id is required"), nil
	}

	patch := db.CoursePatch{
		Code:        strPtrArg(args, "code"),
		Title:       strPtrArg(args, "title"),
		Credits:     intValPtrArg(args, "credits"),
		Semester:    intValPtrArg(args, "semester"),
		Description: strPtrArg(args, "description"),
		IsActive:    boolPtrArg(args, "isActive"),
	}
	if ref, ok := strArg(args, "facultyInCharge"); ok {
		patch.SetFaculty = true
		if ref != "" {
			oid, err := db.ResolveFacultyRef(ctx, s.db, ref)
			if err != nil {
				return facultyRefErr(ref, err)
			}
			patch.Faculty = oid
		}
	}

	if err := db.UpdateCourse(ctx, s.db, id, patch); err != nil {
		return storeErr("Course", err)
	}
	return mcp.NewToolResultText("Course updated successfully"), nil
}

func (s *Server) deleteCourse(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, ok := strArg(req.GetArguments(), "course_id")
	if !ok {
		return mcp.NewToolResultError("course_id is required"), nil
	}
	if err := db.SoftDeleteCourse(ctx, s.db, id); err != nil {
		return storeErr("Course", err)
	}
	return mcp.NewToolResultText("Course deactivated successfully"), nil
}

func facultyRefErr(ref string, err error) (*mcp.CallToolResult, error) {
	switch {
	case errors.Is(err, db.ErrInvalidID):
		return mcp.NewToolResultError("Invalid faculty ID format: " + ref), nil
	case errors.Is(err, db.ErrNotFound):
		return mcp.NewToolResultError("Faculty with ID " + ref + " not found"), nil
	}
	return nil, err
}
