package export

import (
	"testing"

	"github.com/Spok95/college-erp-mcp/internal/analytics"
	"github.com/Spok95/college-erp-mcp/internal/models"
)

func TestAttendanceReportSheets(t *testing.T) {
	stats := &analytics.AttendanceStats{
		TotalStudents:  2,
		TotalDays:      40,
		TotalPresent:   30,
		OverallPercent: 75.0,
		LowAttendance: []analytics.LowAttendanceStudent{
			{Roll: 1, Name: "Иванов", Percentage: 50.0},
		},
	}
	records := []models.Attendance{
		{StudentRoll: 1, Month: "January 2025", Year: 2025, TotalDays: 20, PresentDays: 10, AbsentDays: 10, Percentage: 50.0},
		{StudentRoll: 2, Month: "January 2025", Year: 2025, TotalDays: 20, PresentDays: 20, Percentage: 100.0},
	}
	names := map[int64]string{1: "Иванов", 2: "Петров"}

	sheets := AttendanceReportSheets(stats, records, names)
	if len(sheets) != 3 {
		t.Fatalf("ожидали 3 листа, получили %d", len(sheets))
	}
	if sheets[0].Title != "Summary" || sheets[1].Title != "Students" || sheets[2].Title != "Low Attendance" {
		t.Fatalf("неверные листы: %v %v %v", sheets[0].Title, sheets[1].Title, sheets[2].Title)
	}
	if len(sheets[1].Rows) != 2 || sheets[1].Rows[0][1] != "Иванов" {
		t.Fatalf("лист студентов: %#v", sheets[1].Rows)
	}
	if sheets[1].Rows[1][7] != "100.00%" {
		t.Fatalf("формат процента: %q", sheets[1].Rows[1][7])
	}
	if len(sheets[2].Rows) != 1 || sheets[2].Rows[0][2] != "50.00%" {
		t.Fatalf("лист низкой посещаемости: %#v", sheets[2].Rows)
	}
}

func TestNewWorkbook(t *testing.T) {
	wb, err := NewWorkbook([]SheetSpec{
		{
			Title:  "Summary",
			Header: []string{"Metric", "Value"},
			Rows:   [][]string{{"Total students", "2"}},
		},
		{
			Title:  "Students",
			Header: []string{"Roll", "Name"},
			Rows:   [][]string{{"1", "Иванов"}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	if got, _ := wb.File.GetCellValue("Summary", "A1"); got != "Metric" {
		t.Fatalf("заголовок: %q", got)
	}
	if got, _ := wb.File.GetCellValue("Summary", "B2"); got != "2" {
		t.Fatalf("данные: %q", got)
	}
	if got, _ := wb.File.GetCellValue("Students", "B2"); got != "Иванов" {
		t.Fatalf("второй лист: %q", got)
	}
}

func TestColName(t *testing.T) {
	cases := map[int]string{1: "A", 2: "B", 26: "Z", 27: "AA", 28: "AB"}
	for n, want := range cases {
		if got := colName(n); got != want {
			t.Errorf("colName(%d) = %q, ожидали %q", n, got, want)
		}
	}
}
