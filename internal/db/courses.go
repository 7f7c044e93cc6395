package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Spok95/college-erp-mcp/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func GetCourseByCode(ctx context.Context, m *mongo.Database, code string) (*models.Course, error) {
	return findCourse(ctx, m, bson.M{"code": code})
}

func GetCourseByID(ctx context.Context, m *mongo.Database, id string) (*models.Course, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	return findCourse(ctx, m, bson.M{"_id": oid})
}

func findCourse(ctx context.Context, m *mongo.Database, filter bson.M) (*models.Course, error) {
	var c models.Course
	err := m.Collection(ColCourses).FindOne(ctx, filter).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ResolveFacultyRef проверяет ссылку на преподавателя до любой записи:
// строка обязана парситься как ObjectID и указывать на существующую запись.
func ResolveFacultyRef(ctx context.Context, m *mongo.Database, ref string) (*primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(ref)
	if err != nil {
		return nil, fmt.Errorf("faculty ref %q: %w", ref, ErrInvalidID)
	}
	if _, err := GetFacultyByOID(ctx, m, oid); err != nil {
		return nil, fmt.Errorf("faculty ref %q: %w", ref, err)
	}
	return &oid, nil
}

func CreateCourse(ctx context.Context, m *mongo.Database, c *models.Course) (primitive.ObjectID, error) {
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	res, err := m.Collection(ColCourses).InsertOne(ctx, c)
	if err != nil {
		return primitive.NilObjectID, wrapInsertErr(err)
	}
	id := res.InsertedID.(primitive.ObjectID)
	c.ID = id
	return id, nil
}

type CoursePatch struct {
	Code        *string
	Title       *string
	Credits     *int
	Semester    *int
	Description *string
	IsActive    *bool
	// SetFaculty=true означает, что поле facultyInCharge меняется:
	// на Faculty (уже проверенный ResolveFacultyRef) либо на nil (снять).
	SetFaculty bool
	Faculty    *primitive.ObjectID
}

func UpdateCourse(ctx context.Context, m *mongo.Database, id string, p CoursePatch) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	set := bson.M{"updatedAt": time.Now().UTC()}
	if p.Code != nil {
		set["code"] = *p.Code
	}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Credits != nil {
		set["credits"] = *p.Credits
	}
	if p.Semester != nil {
		set["semester"] = *p.Semester
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.IsActive != nil {
		set["isActive"] = *p.IsActive
	}
	if p.SetFaculty {
		set["facultyInCharge"] = p.Faculty
	}
	return updateByID(ctx, m, ColCourses, oid, set)
}

func SoftDeleteCourse(ctx context.Context, m *mongo.Database, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	return updateByID(ctx, m, ColCourses, oid, bson.M{"isActive": false, "updatedAt": time.Now().UTC()})
}

func ListActiveCourses(ctx context.Context, m *mongo.Database) ([]models.Course, error) {
	cur, err := m.Collection(ColCourses).Find(ctx, bson.M{"isActive": true}, options.Find().SetLimit(findLimit))
	if err != nil {
		return nil, err
	}
	var out []models.Course
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
