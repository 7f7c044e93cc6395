package db

import (
	"context"
	"errors"
	"time"

	"github.com/Spok95/college-erp-mcp/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func CreateTimetable(ctx context.Context, m *mongo.Database, tt *models.Timetable) (primitive.ObjectID, error) {
	now := time.Now().UTC()
	tt.IsActive = true
	tt.CreatedAt = now
	tt.UpdatedAt = now
	res, err := m.Collection(ColTimetables).InsertOne(ctx, tt)
	if err != nil {
		return primitive.NilObjectID, wrapInsertErr(err)
	}
	id := res.InsertedID.(primitive.ObjectID)
	tt.ID = id
	return id, nil
}

func GetTimetable(ctx context.Context, m *mongo.Database, dayOfWeek string, semester int) (*models.Timetable, error) {
	var tt models.Timetable
	err := m.Collection(ColTimetables).FindOne(ctx, bson.M{
		"dayOfWeek": dayOfWeek,
		"semester":  semester,
		"isActive":  true,
	}).Decode(&tt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tt, nil
}

// FindTimetablesBySemester — все активные дни семестра (для недельной сетки).
func FindTimetablesBySemester(ctx context.Context, m *mongo.Database, semester int) ([]models.Timetable, error) {
	return findTimetables(ctx, m, bson.M{"semester": semester, "isActive": true})
}

func ListActiveTimetables(ctx context.Context, m *mongo.Database) ([]models.Timetable, error) {
	return findTimetables(ctx, m, bson.M{"isActive": true})
}

func findTimetables(ctx context.Context, m *mongo.Database, filter bson.M) ([]models.Timetable, error) {
	cur, err := m.Collection(ColTimetables).Find(ctx, filter, options.Find().SetLimit(findLimit))
	if err != nil {
		return nil, err
	}
	var out []models.Timetable
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
