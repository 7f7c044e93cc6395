package analytics

import (
	"testing"
	"time"

	"github.com/Spok95/college-erp-mcp/internal/models"
)

func TestBuildLeaveTrends(t *testing.T) {
	lr := func(y int, m time.Month, status models.LeaveStatus) models.LeaveRequest {
		return models.LeaveRequest{
			StartDate: time.Date(y, m, 10, 0, 0, 0, 0, time.UTC),
			Status:    status,
		}
	}

	t.Run("buckets_by_start_month", func(t *testing.T) {
		got := BuildLeaveTrends([]models.LeaveRequest{
			lr(2025, time.January, models.LeavePending),
			lr(2025, time.January, models.LeaveApproved),
			lr(2025, time.February, models.LeaveRejected),
		})
		if len(got) != 2 {
			t.Fatalf("ожидали 2 месяца, получили %d", len(got))
		}
		jan := got[0]
		if jan.Month != "2025-01" || jan.Total != 2 || jan.Pending != 1 || jan.Approved != 1 {
			t.Fatalf("январь посчитан неверно: %#v", jan)
		}
		feb := got[1]
		if feb.Month != "2025-02" || feb.Rejected != 1 {
			t.Fatalf("февраль посчитан неверно: %#v", feb)
		}
	})

	t.Run("chronological_across_years", func(t *testing.T) {
		got := BuildLeaveTrends([]models.LeaveRequest{
			lr(2025, time.March, models.LeavePending),
			lr(2024, time.December, models.LeavePending),
			lr(2025, time.January, models.LeavePending),
		})
		want := []string{"2024-12", "2025-01", "2025-03"}
		for i, m := range want {
			if got[i].Month != m {
				t.Fatalf("позиция %d: ожидали %s, получили %s", i, m, got[i].Month)
			}
		}
	})

	t.Run("empty_input", func(t *testing.T) {
		if got := BuildLeaveTrends(nil); len(got) != 0 {
			t.Fatalf("пустой вход — пустой вывод: %#v", got)
		}
	})
}
