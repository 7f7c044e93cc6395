package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes создаёт уникальные индексы при старте (вместо SQL-миграций).
// Upsert посещаемости опирается на составной индекс — без него при гонке
// появились бы дубликаты за один и тот же месяц.
func EnsureIndexes(ctx context.Context, m *mongo.Database) error {
	unique := func(keys bson.D) mongo.IndexModel {
		return mongo.IndexModel{Keys: keys, Options: options.Index().SetUnique(true)}
	}

	type colIndexes struct {
		col    string
		models []mongo.IndexModel
	}

	plan := []colIndexes{
		{ColStudents, []mongo.IndexModel{
			unique(bson.D{{Key: "roll", Value: 1}}),
			unique(bson.D{{Key: "email", Value: 1}}),
		}},
		{ColFaculty, []mongo.IndexModel{
			unique(bson.D{{Key: "employeeId", Value: 1}}),
			unique(bson.D{{Key: "email", Value: 1}}),
		}},
		{ColCourses, []mongo.IndexModel{
			unique(bson.D{{Key: "code", Value: 1}}),
		}},
		{ColAttendance, []mongo.IndexModel{
			unique(bson.D{{Key: "studentRoll", Value: 1}, {Key: "month", Value: 1}, {Key: "year", Value: 1}}),
		}},
		{ColTimetables, []mongo.IndexModel{
			unique(bson.D{{Key: "dayOfWeek", Value: 1}, {Key: "semester", Value: 1}}),
		}},
		{ColLeaveRequests, []mongo.IndexModel{
			{Keys: bson.D{{Key: "studentRoll", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		}},
	}

	for _, p := range plan {
		if _, err := m.Collection(p.col).Indexes().CreateMany(ctx, p.models); err != nil {
			return err
		}
	}
	return nil
}
