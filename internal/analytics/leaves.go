package analytics

import (
	"context"
	"sort"

	"github.com/Spok95/college-erp-mcp/internal/db"
	"github.com/Spok95/college-erp-mcp/internal/models"
	"go.mongodb.org/mongo-driver/mongo"
)

type MonthTrend struct {
	Month    string `json:"month"` // "YYYY-MM" по startDate
	Total    int    `json:"total"`
	Pending  int    `json:"pending"`
	Approved int    `json:"approved"`
	Rejected int    `json:"rejected"`
}

// BuildLeaveTrends раскладывает заявки по месяцам начала отпуска.
// Вывод отсортирован хронологически — порядок обхода map наружу не течёт.
func BuildLeaveTrends(requests []models.LeaveRequest) []MonthTrend {
	buckets := make(map[string]*MonthTrend)
	for _, r := range requests {
		key := r.StartDate.Format("2006-01")
		b, ok := buckets[key]
		if !ok {
			b = &MonthTrend{Month: key}
			buckets[key] = b
		}
		b.Total++
		switch r.Status {
		case models.LeavePending:
			b.Pending++
		case models.LeaveApproved:
			b.Approved++
		case models.LeaveRejected:
			b.Rejected++
		}
	}

	out := make([]MonthTrend, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

func LeaveTrends(ctx context.Context, m *mongo.Database) ([]MonthTrend, error) {
	requests, err := db.FindLeaveRequests(ctx, m, db.LeaveFilter{})
	if err != nil {
		return nil, err
	}
	return BuildLeaveTrends(requests), nil
}
