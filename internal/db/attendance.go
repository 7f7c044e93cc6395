package db

import (
	"context"
	"time"

	"github.com/Spok95/college-erp-mcp/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpsertAttendance полностью замещает запись за (studentRoll, month, year).
// Никакого слияния со старыми днями — атомарность обеспечивает уникальный
// индекс по составному ключу.
func UpsertAttendance(ctx context.Context, m *mongo.Database, a *models.Attendance) error {
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	filter := bson.M{"studentRoll": a.StudentRoll, "month": a.Month, "year": a.Year}
	set := bson.M{
		"student":              a.Student,
		"studentRoll":          a.StudentRoll,
		"month":                a.Month,
		"year":                 a.Year,
		"attendance":           a.Entries,
		"totalDays":            a.TotalDays,
		"presentDays":          a.PresentDays,
		"absentDays":           a.AbsentDays,
		"attendancePercentage": a.Percentage,
		"createdAt":            a.CreatedAt,
		"updatedAt":            a.UpdatedAt,
	}
	_, err := m.Collection(ColAttendance).UpdateOne(ctx, filter, bson.M{"$set": set},
		options.Update().SetUpsert(true))
	return err
}

// AttendanceFilter: нулевые значения не попадают в запрос.
type AttendanceFilter struct {
	StudentRoll *int64
	Month       string
	Year        *int
}

func (f AttendanceFilter) query() bson.M {
	q := bson.M{}
	if f.StudentRoll != nil {
		q["studentRoll"] = *f.StudentRoll
	}
	if f.Month != "" {
		q["month"] = f.Month
	}
	if f.Year != nil {
		q["year"] = *f.Year
	}
	return q
}

func FindAttendance(ctx context.Context, m *mongo.Database, f AttendanceFilter) ([]models.Attendance, error) {
	cur, err := m.Collection(ColAttendance).Find(ctx, f.query(), options.Find().SetLimit(findLimit))
	if err != nil {
		return nil, err
	}
	var out []models.Attendance
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindLowAttendance отбирает записи с процентом строго ниже порога.
func FindLowAttendance(ctx context.Context, m *mongo.Database, threshold float64) ([]models.Attendance, error) {
	cur, err := m.Collection(ColAttendance).Find(ctx,
		bson.M{"attendancePercentage": bson.M{"$lt": threshold}},
		options.Find().SetLimit(findLimit))
	if err != nil {
		return nil, err
	}
	var out []models.Attendance
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DistinctAttendanceRolls — номера всех студентов, у которых есть хоть одна
// запись посещаемости (глобально, без привязки к курсу).
func DistinctAttendanceRolls(ctx context.Context, m *mongo.Database) ([]int64, error) {
	raw, err := m.Collection(ColAttendance).Distinct(ctx, "studentRoll", bson.M{})
	if err != nil {
		return nil, err
	}
	out := make([]int64, 0, len(raw))
	for _, v := range raw {
		switch n := v.(type) {
		case int64:
			out = append(out, n)
		case int32:
			out = append(out, int64(n))
		case float64:
			out = append(out, int64(n))
		}
	}
	return out, nil
}
