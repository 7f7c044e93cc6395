package tools

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Spok95/college-erp-mcp/internal/models"
)

func validTimetableArgs() map[string]any {
	return map[string]any{
		"dayOfWeek": "Monday",
		"semester":  float64(3),
		"slots": []any{
			map[string]any{"period": float64(1), "type": "lecture", "courseCode": "CS101", "room": "A1"},
			map[string]any{"period": float64(2), "type": "break", "courseCode": "-"},
		},
	}
}

func TestParseCreateTimetable(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		r, err := parseCreateTimetable(validTimetableArgs())
		if err != nil {
			t.Fatal(err)
		}
		if r.DayOfWeek != "Monday" || r.Semester != 3 || len(r.Slots) != 2 {
			t.Fatalf("неверный разбор: %#v", r)
		}
		if r.Slots[0].Room != "A1" || r.Slots[0].Type != models.SlotLecture {
			t.Fatalf("неверный слот: %#v", r.Slots[0])
		}
	})

	t.Run("bad_weekday", func(t *testing.T) {
		args := validTimetableArgs()
		args["dayOfWeek"] = "Funday"
		if _, err := parseCreateTimetable(args); err == nil {
			t.Fatal("ожидали ошибку дня недели")
		}
	})

	t.Run("bad_slot_type", func(t *testing.T) {
		args := validTimetableArgs()
		args["slots"] = []any{
			map[string]any{"period": float64(1), "type": "seminar", "courseCode": "X"},
		}
		if _, err := parseCreateTimetable(args); err == nil {
			t.Fatal("ожидали ошибку типа слота")
		}
	})

	t.Run("object_refs_parsed", func(t *testing.T) {
		fid := primitive.NewObjectID()
		args := validTimetableArgs()
		args["slots"] = []any{
			map[string]any{
				"period": float64(1), "type": "lecture", "courseCode": "CS101",
				"faculty": fid.Hex(),
			},
		}
		r, err := parseCreateTimetable(args)
		if err != nil {
			t.Fatal(err)
		}
		if r.Slots[0].Faculty == nil || *r.Slots[0].Faculty != fid {
			t.Fatalf("ссылка не разобрана: %#v", r.Slots[0])
		}
	})

	t.Run("bad_object_ref", func(t *testing.T) {
		args := validTimetableArgs()
		args["slots"] = []any{
			map[string]any{
				"period": float64(1), "type": "lecture", "courseCode": "CS101",
				"faculty": "not-an-objectid",
			},
		}
		if _, err := parseCreateTimetable(args); err == nil {
			t.Fatal("ожидали ошибку ссылки")
		}
	})
}

func TestStoreErrMessages(t *testing.T) {
	t.Run("lower_first_letter", func(t *testing.T) {
		if got := lower("Student"); got != "student" {
			t.Fatalf("lower: %q", got)
		}
		if got := lower(""); got != "" {
			t.Fatalf("lower пустой строки: %q", got)
		}
	})
}
