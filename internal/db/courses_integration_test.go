//go:build testutil
// +build testutil

package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Spok95/college-erp-mcp/internal/db"
	"github.com/Spok95/college-erp-mcp/internal/models"
	"github.com/Spok95/college-erp-mcp/internal/testutil/testdb"
)

func TestCourses_FacultyReference(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h, err := testdb.Start(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	t.Run("malformed_ref", func(t *testing.T) {
		_, err := db.ResolveFacultyRef(ctx, h.DB, "not-a-hex")
		if !errors.Is(err, db.ErrInvalidID) {
			t.Fatalf("ожидали ErrInvalidID, получили %v", err)
		}
	})

	t.Run("dangling_ref", func(t *testing.T) {
		_, err := db.ResolveFacultyRef(ctx, h.DB, "ffffffffffffffffffffffff")
		if !errors.Is(err, db.ErrNotFound) {
			t.Fatalf("ожидали ErrNotFound, получили %v", err)
		}
		// битая ссылка не должна оставить ничего в базе
		n, err := db.Count(ctx, h.DB, db.ColCourses, nil)
		if err != nil {
			t.Fatal(err)
		}
		if n != 0 {
			t.Fatalf("курсов быть не должно, нашли %d", n)
		}
	})

	t.Run("valid_ref_and_duplicate_code", func(t *testing.T) {
		f := &models.Faculty{
			EmployeeID:  "EMP001",
			FullName:    "Dr. Mehta",
			Email:       "mehta@example.com",
			Designation: "Professor",
			IsActive:    true,
		}
		if _, err := db.CreateFaculty(ctx, h.DB, f); err != nil {
			t.Fatal(err)
		}

		ref, err := db.ResolveFacultyRef(ctx, h.DB, f.ID.Hex())
		if err != nil {
			t.Fatal(err)
		}
		c := &models.Course{
			Code:            "CS101",
			Title:           "Intro to CS",
			Credits:         4,
			Semester:        1,
			FacultyInCharge: ref,
			IsActive:        true,
		}
		if _, err := db.CreateCourse(ctx, h.DB, c); err != nil {
			t.Fatal(err)
		}
		_, err = db.CreateCourse(ctx, h.DB, &models.Course{
			Code: "CS101", Title: "Duplicate", Credits: 3, Semester: 1, IsActive: true,
		})
		if !errors.Is(err, db.ErrDuplicate) {
			t.Fatalf("ожидали ErrDuplicate, получили %v", err)
		}
	})
}
