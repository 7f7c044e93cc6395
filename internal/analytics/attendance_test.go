package analytics

import (
	"testing"

	"github.com/Spok95/college-erp-mcp/internal/models"
)

func rec(roll int64, total, present int, pct float64) models.Attendance {
	return models.Attendance{
		StudentRoll: roll,
		TotalDays:   total,
		PresentDays: present,
		Percentage:  pct,
	}
}

func TestComputeAttendanceStats(t *testing.T) {
	t.Run("aggregates_and_low_list", func(t *testing.T) {
		records := []models.Attendance{
			rec(1, 20, 10, 50.0),
			rec(2, 20, 20, 100.0),
		}
		names := map[int64]string{1: "Иванов", 2: "Петров"}

		st := ComputeAttendanceStats(records, names)
		if st.TotalStudents != 2 {
			t.Fatalf("ожидали 2 студентов, получили %d", st.TotalStudents)
		}
		if st.TotalDays != 40 || st.TotalPresent != 30 {
			t.Fatalf("ожидали 40/30, получили %d/%d", st.TotalDays, st.TotalPresent)
		}
		if st.OverallPercent != 75.0 {
			t.Fatalf("ожидали 75.0, получили %v", st.OverallPercent)
		}
		if len(st.LowAttendance) != 1 || st.LowAttendance[0].Roll != 1 {
			t.Fatalf("в низкой посещаемости должен быть только roll=1: %#v", st.LowAttendance)
		}
	})

	t.Run("sixty_flagged_ninety_not", func(t *testing.T) {
		records := []models.Attendance{
			rec(1, 10, 6, 60.0),
			rec(2, 10, 9, 90.0),
		}
		st := ComputeAttendanceStats(records, map[int64]string{1: "A", 2: "B"})
		if st.OverallPercent != 75.0 {
			t.Fatalf("ожидали 75.0, получили %v", st.OverallPercent)
		}
		if len(st.LowAttendance) != 1 || st.LowAttendance[0].Roll != 1 {
			t.Fatalf("ниже порога только roll=1: %#v", st.LowAttendance)
		}
	})

	t.Run("threshold_is_strict", func(t *testing.T) {
		// ровно 75 — не низкая посещаемость
		st := ComputeAttendanceStats([]models.Attendance{rec(1, 20, 15, 75.0)},
			map[int64]string{1: "Иванов"})
		if len(st.LowAttendance) != 0 {
			t.Fatalf("75.0 не ниже порога: %#v", st.LowAttendance)
		}
	})

	t.Run("unknown_student_skipped_from_low_list", func(t *testing.T) {
		st := ComputeAttendanceStats([]models.Attendance{rec(7, 10, 1, 10.0)}, nil)
		if st.TotalStudents != 1 || st.TotalDays != 10 {
			t.Fatalf("итоги должны учитывать запись: %#v", st)
		}
		if len(st.LowAttendance) != 0 {
			t.Fatalf("без имени запись не попадает в список: %#v", st.LowAttendance)
		}
	})

	t.Run("same_student_two_months_counted_once", func(t *testing.T) {
		records := []models.Attendance{
			rec(1, 20, 18, 90.0),
			rec(1, 18, 17, 94.44),
		}
		st := ComputeAttendanceStats(records, map[int64]string{1: "Иванов"})
		if st.TotalStudents != 1 {
			t.Fatalf("один студент за два месяца, получили %d", st.TotalStudents)
		}
		if st.TotalDays != 38 || st.TotalPresent != 35 {
			t.Fatalf("ожидали 38/35, получили %d/%d", st.TotalDays, st.TotalPresent)
		}
	})

	t.Run("no_records", func(t *testing.T) {
		st := ComputeAttendanceStats(nil, nil)
		if st.TotalStudents != 0 || st.OverallPercent != 0 {
			t.Fatalf("пустой вход — нулевая статистика: %#v", st)
		}
	})
}
