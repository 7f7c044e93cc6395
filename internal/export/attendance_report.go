package export

import (
	"strconv"

	"github.com/Spok95/college-erp-mcp/internal/analytics"
	"github.com/Spok95/college-erp-mcp/internal/models"
)

// AttendanceReportSheets собирает листы отчёта по посещаемости:
// Summary — агрегаты, Students — построчно по записям,
// Low Attendance — студенты ниже порога.
func AttendanceReportSheets(stats *analytics.AttendanceStats, records []models.Attendance, names map[int64]string) []SheetSpec {
	summary := SheetSpec{
		Title:  "Summary",
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total students", strconv.Itoa(stats.TotalStudents)},
			{"Total days", strconv.Itoa(stats.TotalDays)},
			{"Total present", strconv.Itoa(stats.TotalPresent)},
			{"Overall percentage", formatPercent(stats.OverallPercent)},
			{"Low attendance students", strconv.Itoa(len(stats.LowAttendance))},
		},
	}

	students := SheetSpec{
		Title:  "Students",
		Header: []string{"Roll", "Name", "Month", "Year", "Total Days", "Present", "Absent", "Percentage"},
		Rows:   make([][]string, 0, len(records)),
	}
	for _, r := range records {
		students.Rows = append(students.Rows, []string{
			strconv.FormatInt(r.StudentRoll, 10),
			names[r.StudentRoll],
			r.Month,
			strconv.Itoa(r.Year),
			strconv.Itoa(r.TotalDays),
			strconv.Itoa(r.PresentDays),
			strconv.Itoa(r.AbsentDays),
			formatPercent(r.Percentage),
		})
	}

	low := SheetSpec{
		Title:  "Low Attendance",
		Header: []string{"Roll", "Name", "Percentage"},
		Rows:   make([][]string, 0, len(stats.LowAttendance)),
	}
	for _, s := range stats.LowAttendance {
		low.Rows = append(low.Rows, []string{
			strconv.FormatInt(s.Roll, 10),
			s.Name,
			formatPercent(s.Percentage),
		})
	}

	return []SheetSpec{summary, students, low}
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64) + "%"
}
