//go:build testutil
// +build testutil

package db_test

import (
	"context"
	"testing"
	"time"

	"github.com/Spok95/college-erp-mcp/internal/db"
	"github.com/Spok95/college-erp-mcp/internal/models"
	"github.com/Spok95/college-erp-mcp/internal/testutil/testdb"
)

func TestUpsertAttendance_FullReplace(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h, err := testdb.Start(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	st := &models.Student{Roll: 1, FullName: "Ivan Ivanov", Email: "i@example.com", IsActive: true}
	if _, err := db.CreateStudent(ctx, h.DB, st); err != nil {
		t.Fatal(err)
	}

	entry := func(d int, s models.AttendanceStatus) models.AttendanceEntry {
		return models.AttendanceEntry{
			Date:   time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC),
			Status: s,
		}
	}
	record := func(entries ...models.AttendanceEntry) *models.Attendance {
		a := &models.Attendance{
			Student:     st.ID,
			StudentRoll: 1,
			Month:       "January 2025",
			Year:        2025,
			Entries:     entries,
		}
		a.Recompute()
		return a
	}

	if err := db.UpsertAttendance(ctx, h.DB, record(entry(1, models.StatusPresent), entry(2, models.StatusPresent))); err != nil {
		t.Fatal(err)
	}
	// повторная запись за тот же месяц полностью замещает, а не сливает
	if err := db.UpsertAttendance(ctx, h.DB, record(entry(3, models.StatusAbsent))); err != nil {
		t.Fatal(err)
	}

	roll := int64(1)
	got, err := db.FindAttendance(ctx, h.DB, db.AttendanceFilter{StudentRoll: &roll})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("ожидали одну запись за месяц, получили %d", len(got))
	}
	if got[0].TotalDays != 1 || got[0].AbsentDays != 1 || got[0].Percentage != 0 {
		t.Fatalf("старые дни не должны были выжить: %#v", got[0])
	}
}

func TestFindLowAttendance_StrictThreshold(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h, err := testdb.Start(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	seed := func(roll int64, pct float64) {
		a := &models.Attendance{
			StudentRoll: roll,
			Month:       "January 2025",
			Year:        2025,
			TotalDays:   20,
			Percentage:  pct,
		}
		if err := db.UpsertAttendance(ctx, h.DB, a); err != nil {
			t.Fatal(err)
		}
	}
	seed(1, 74.99)
	seed(2, 75.0)
	seed(3, 80.0)

	got, err := db.FindLowAttendance(ctx, h.DB, 75.0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].StudentRoll != 1 {
		t.Fatalf("ровно 75%% не считается низкой посещаемостью: %#v", got)
	}
}
