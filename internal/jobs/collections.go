package jobs

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Spok95/college-erp-mcp/internal/ctxutil"
	"github.com/Spok95/college-erp-mcp/internal/db"
	"github.com/Spok95/college-erp-mcp/internal/metrics"
)

// RefreshCollectionGauges обновляет gauge документов по каждой коллекции.
func RefreshCollectionGauges(m *mongo.Database) Job {
	cols := []string{
		db.ColStudents,
		db.ColFaculty,
		db.ColCourses,
		db.ColAttendance,
		db.ColLeaveRequests,
		db.ColTimetables,
	}
	return func(ctx context.Context) error {
		ctx, cancel := ctxutil.WithDBTimeout(ctx)
		defer cancel()
		for _, col := range cols {
			n, err := db.Count(ctx, m, col, nil)
			if err != nil {
				return fmt.Errorf("count %s: %w", col, err)
			}
			metrics.CollectionDocs.WithLabelValues(col).Set(float64(n))
		}
		return nil
	}
}
