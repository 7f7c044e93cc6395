package analytics

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Spok95/college-erp-mcp/internal/models"
)

func TestDetectTimetableConflicts(t *testing.T) {
	fid := primitive.NewObjectID()

	t.Run("no_conflicts", func(t *testing.T) {
		tts := []models.Timetable{{
			DayOfWeek: "Monday",
			Semester:  3,
			Slots: []models.Slot{
				{Period: 1, Type: models.SlotLecture, CourseCode: "CS101", Room: "A1"},
				{Period: 2, Type: models.SlotLecture, CourseCode: "CS102", Room: "A1"},
			},
		}}
		if got := DetectTimetableConflicts(tts); len(got) != 0 {
			t.Fatalf("конфликтов быть не должно: %#v", got)
		}
	})

	t.Run("room_double_booking", func(t *testing.T) {
		tts := []models.Timetable{{
			DayOfWeek: "Monday",
			Semester:  3,
			Slots: []models.Slot{
				{Period: 1, Type: models.SlotLecture, CourseCode: "CS101", Room: "A1"},
				{Period: 1, Type: models.SlotLab, CourseCode: "CS102", Room: "A1"},
			},
		}}
		got := DetectTimetableConflicts(tts)
		if len(got) != 1 {
			t.Fatalf("ожидали 1 конфликт, получили %d", len(got))
		}
		c := got[0]
		if c.Kind != ConflictRoom || c.Resource != "A1" || c.Period != 1 || c.Day != "Monday" {
			t.Fatalf("неожиданный конфликт: %#v", c)
		}
	})

	t.Run("cumulative_counting", func(t *testing.T) {
		// три слота на одном ключе дают два конфликта, не три пары
		tts := []models.Timetable{{
			DayOfWeek: "Tuesday",
			Semester:  1,
			Slots: []models.Slot{
				{Period: 2, Type: models.SlotLecture, CourseCode: "A", Room: "B2"},
				{Period: 2, Type: models.SlotLecture, CourseCode: "B", Room: "B2"},
				{Period: 2, Type: models.SlotLecture, CourseCode: "C", Room: "B2"},
			},
		}}
		if got := DetectTimetableConflicts(tts); len(got) != 2 {
			t.Fatalf("ожидали 2 конфликта, получили %d", len(got))
		}
	})

	t.Run("faculty_double_booking", func(t *testing.T) {
		tts := []models.Timetable{{
			DayOfWeek: "Wednesday",
			Semester:  2,
			Slots: []models.Slot{
				{Period: 3, Type: models.SlotLecture, CourseCode: "A", Faculty: &fid},
				{Period: 3, Type: models.SlotTutorial, CourseCode: "B", Faculty: &fid},
			},
		}}
		got := DetectTimetableConflicts(tts)
		if len(got) != 1 || got[0].Kind != ConflictFaculty || got[0].Resource != fid.Hex() {
			t.Fatalf("ожидали конфликт преподавателя: %#v", got)
		}
	})

	t.Run("empty_room_and_zero_period_skipped", func(t *testing.T) {
		tts := []models.Timetable{{
			DayOfWeek: "Friday",
			Semester:  1,
			Slots: []models.Slot{
				{Period: 0, Type: models.SlotBreak, CourseCode: "-", Room: "A1"},
				{Period: 0, Type: models.SlotBreak, CourseCode: "-", Room: "A1"},
				{Period: 1, Type: models.SlotLecture, CourseCode: "A"},
				{Period: 1, Type: models.SlotLecture, CourseCode: "B"},
			},
		}}
		if got := DetectTimetableConflicts(tts); len(got) != 0 {
			t.Fatalf("пустые аудитории и нулевые периоды не проверяются: %#v", got)
		}
	})

	t.Run("sorted_by_weekday_then_period", func(t *testing.T) {
		mk := func(day string, period int) models.Timetable {
			return models.Timetable{
				DayOfWeek: day,
				Semester:  1,
				Slots: []models.Slot{
					{Period: period, Type: models.SlotLecture, CourseCode: "A", Room: "R"},
					{Period: period, Type: models.SlotLecture, CourseCode: "B", Room: "R"},
				},
			}
		}
		got := DetectTimetableConflicts([]models.Timetable{
			mk("Friday", 1), mk("Monday", 2), mk("Monday", 1),
		})
		if len(got) != 3 {
			t.Fatalf("ожидали 3 конфликта, получили %d", len(got))
		}
		if got[0].Day != "Monday" || got[0].Period != 1 ||
			got[1].Day != "Monday" || got[1].Period != 2 ||
			got[2].Day != "Friday" {
			t.Fatalf("неверный порядок: %#v", got)
		}
	})
}
