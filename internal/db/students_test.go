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

func TestStudents_Lifecycle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h, err := testdb.Start(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	st := &models.Student{
		Roll:     101,
		FullName: "Ivan Ivanov",
		Email:    "ivanov@example.com",
		Phone:    "+70000000001",
		IsActive: true,
	}
	id, err := db.CreateStudent(ctx, h.DB, st)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("get_by_roll", func(t *testing.T) {
		got, err := db.GetStudentByRoll(ctx, h.DB, 101)
		if err != nil {
			t.Fatal(err)
		}
		if got.ID != id || got.FullName != "Ivan Ivanov" {
			t.Fatalf("неожиданный студент: %#v", got)
		}
	})

	t.Run("duplicate_roll_rejected", func(t *testing.T) {
		_, err := db.CreateStudent(ctx, h.DB, &models.Student{
			Roll: 101, FullName: "Another", Email: "other@example.com", IsActive: true,
		})
		if !errors.Is(err, db.ErrDuplicate) {
			t.Fatalf("ожидали ErrDuplicate, получили %v", err)
		}
	})

	t.Run("duplicate_email_rejected", func(t *testing.T) {
		_, err := db.CreateStudent(ctx, h.DB, &models.Student{
			Roll: 102, FullName: "Another", Email: "ivanov@example.com", IsActive: true,
		})
		if !errors.Is(err, db.ErrDuplicate) {
			t.Fatalf("ожидали ErrDuplicate, получили %v", err)
		}
	})

	t.Run("invalid_id_format", func(t *testing.T) {
		if _, err := db.GetStudentByID(ctx, h.DB, "not-a-hex"); !errors.Is(err, db.ErrInvalidID) {
			t.Fatalf("ожидали ErrInvalidID, получили %v", err)
		}
	})

	t.Run("search_by_partial_name", func(t *testing.T) {
		found, err := db.SearchStudents(ctx, h.DB, db.StudentFilter{Name: "ivanov"})
		if err != nil {
			t.Fatal(err)
		}
		if len(found) != 1 || found[0].Roll != 101 {
			t.Fatalf("регистронезависимый поиск: %#v", found)
		}
	})

	t.Run("soft_delete_hides_from_active", func(t *testing.T) {
		if err := db.SoftDeleteStudent(ctx, h.DB, id.Hex()); err != nil {
			t.Fatal(err)
		}
		// запись остаётся, но из активного списка уходит
		got, err := db.GetStudentByRoll(ctx, h.DB, 101)
		if err != nil {
			t.Fatal(err)
		}
		if got.IsActive {
			t.Fatal("isActive должен быть сброшен")
		}
		active, err := db.ListActiveStudents(ctx, h.DB)
		if err != nil {
			t.Fatal(err)
		}
		if len(active) != 0 {
			t.Fatalf("активных быть не должно: %#v", active)
		}
	})

	t.Run("update_missing_is_not_found", func(t *testing.T) {
		name := "New Name"
		err := db.UpdateStudent(ctx, h.DB, "ffffffffffffffffffffffff", db.StudentPatch{FullName: &name})
		if !errors.Is(err, db.ErrNotFound) {
			t.Fatalf("ожидали ErrNotFound, получили %v", err)
		}
	})
}
