package tools

import (
	"testing"

	"github.com/Spok95/college-erp-mcp/internal/models"
)

func validAttendanceArgs() map[string]any {
	return map[string]any{
		"student_roll": float64(101),
		"month":        "January 2025",
		"year":         float64(2025),
		"attendance_data": []any{
			map[string]any{"date": "2025-01-01", "status": "P"},
			map[string]any{"date": "2025-01-02", "status": "A"},
			map[string]any{"date": "2025-01-03", "status": "DNM"},
		},
	}
}

func TestParseRecordAttendance(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		r, err := parseRecordAttendance(validAttendanceArgs())
		if err != nil {
			t.Fatal(err)
		}
		if r.Roll != 101 || r.Month != "January 2025" || r.Year != 2025 {
			t.Fatalf("неверная шапка: %#v", r)
		}
		if len(r.Entries) != 3 || r.Entries[2].Status != models.StatusDidNotMeet {
			t.Fatalf("неверные записи: %#v", r.Entries)
		}
	})

	t.Run("missing_roll", func(t *testing.T) {
		args := validAttendanceArgs()
		delete(args, "student_roll")
		if _, err := parseRecordAttendance(args); err == nil {
			t.Fatal("ожидали ошибку")
		}
	})

	t.Run("empty_entries", func(t *testing.T) {
		args := validAttendanceArgs()
		args["attendance_data"] = []any{}
		if _, err := parseRecordAttendance(args); err == nil {
			t.Fatal("ожидали ошибку на пустом массиве")
		}
	})

	t.Run("bad_date", func(t *testing.T) {
		args := validAttendanceArgs()
		args["attendance_data"] = []any{
			map[string]any{"date": "01/01/2025", "status": "P"},
		}
		if _, err := parseRecordAttendance(args); err == nil {
			t.Fatal("ожидали ошибку формата даты")
		}
	})

	t.Run("bad_status", func(t *testing.T) {
		args := validAttendanceArgs()
		args["attendance_data"] = []any{
			map[string]any{"date": "2025-01-01", "status": "present"},
		}
		if _, err := parseRecordAttendance(args); err == nil {
			t.Fatal("ожидали ошибку статуса")
		}
	})
}
