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

func GetFacultyByEmployeeID(ctx context.Context, m *mongo.Database, employeeID string) (*models.Faculty, error) {
	return findFaculty(ctx, m, bson.M{"employeeId": employeeID})
}

func GetFacultyByID(ctx context.Context, m *mongo.Database, id string) (*models.Faculty, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	return GetFacultyByOID(ctx, m, oid)
}

func GetFacultyByOID(ctx context.Context, m *mongo.Database, oid primitive.ObjectID) (*models.Faculty, error) {
	return findFaculty(ctx, m, bson.M{"_id": oid})
}

func findFaculty(ctx context.Context, m *mongo.Database, filter bson.M) (*models.Faculty, error) {
	var f models.Faculty
	err := m.Collection(ColFaculty).FindOne(ctx, filter).Decode(&f)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func CreateFaculty(ctx context.Context, m *mongo.Database, f *models.Faculty) (primitive.ObjectID, error) {
	now := time.Now().UTC()
	f.CreatedAt = now
	f.UpdatedAt = now
	if f.SubjectsHandled == nil {
		f.SubjectsHandled = []string{}
	}
	res, err := m.Collection(ColFaculty).InsertOne(ctx, f)
	if err != nil {
		return primitive.NilObjectID, wrapInsertErr(err)
	}
	id := res.InsertedID.(primitive.ObjectID)
	f.ID = id
	return id, nil
}

type FacultyPatch struct {
	EmployeeID      *string
	FullName        *string
	Email           *string
	Designation     *string
	SubjectsHandled []string // nil = не менять
	IsActive        *bool
}

func UpdateFaculty(ctx context.Context, m *mongo.Database, id string, p FacultyPatch) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	set := bson.M{"updatedAt": time.Now().UTC()}
	if p.EmployeeID != nil {
		set["employeeId"] = *p.EmployeeID
	}
	if p.FullName != nil {
		set["fullName"] = *p.FullName
	}
	if p.Email != nil {
		set["email"] = *p.Email
	}
	if p.Designation != nil {
		set["designation"] = *p.Designation
	}
	if p.SubjectsHandled != nil {
		set["subjectsHandled"] = p.SubjectsHandled
	}
	if p.IsActive != nil {
		set["isActive"] = *p.IsActive
	}
	return updateByID(ctx, m, ColFaculty, oid, set)
}

func SoftDeleteFaculty(ctx context.Context, m *mongo.Database, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	return updateByID(ctx, m, ColFaculty, oid, bson.M{"isActive": false, "updatedAt": time.Now().UTC()})
}

func ListActiveFaculty(ctx context.Context, m *mongo.Database) ([]models.Faculty, error) {
	cur, err := m.Collection(ColFaculty).Find(ctx, bson.M{"isActive": true}, options.Find().SetLimit(findLimit))
	if err != nil {
		return nil, err
	}
	var out []models.Faculty
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
