package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Имена коллекций — как их создаёт существующая база erp.
const (
	ColStudents      = "students"
	ColFaculty       = "faculties"
	ColCourses       = "courses"
	ColAttendance    = "attendances"
	ColLeaveRequests = "leaverequests"
	ColTimetables    = "timetables"
)

// findLimit ограничивает любой список; дальше клиент фильтрует сам.
const findLimit = 1000

// Connect открывает клиент и проверяет доступность сервера.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}
