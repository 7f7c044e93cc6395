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

func GetStudentByRoll(ctx context.Context, m *mongo.Database, roll int64) (*models.Student, error) {
	return findStudent(ctx, m, bson.M{"roll": roll})
}

func GetStudentByID(ctx context.Context, m *mongo.Database, id string) (*models.Student, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	return findStudent(ctx, m, bson.M{"_id": oid})
}

func findStudent(ctx context.Context, m *mongo.Database, filter bson.M) (*models.Student, error) {
	var st models.Student
	err := m.Collection(ColStudents).FindOne(ctx, filter).Decode(&st)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func CreateStudent(ctx context.Context, m *mongo.Database, st *models.Student) (primitive.ObjectID, error) {
	now := time.Now().UTC()
	st.CreatedAt = now
	st.UpdatedAt = now
	res, err := m.Collection(ColStudents).InsertOne(ctx, st)
	if err != nil {
		return primitive.NilObjectID, wrapInsertErr(err)
	}
	id := res.InsertedID.(primitive.ObjectID)
	st.ID = id
	return id, nil
}

// StudentPatch — частичное обновление; nil-поля не трогаем.
type StudentPatch struct {
	Roll     *int64
	FullName *string
	Email    *string
	Phone    *string
	IsActive *bool
}

func UpdateStudent(ctx context.Context, m *mongo.Database, id string, p StudentPatch) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	set := bson.M{"updatedAt": time.Now().UTC()}
	if p.Roll != nil {
		set["roll"] = *p.Roll
	}
	if p.FullName != nil {
		set["fullName"] = *p.FullName
	}
	if p.Email != nil {
		set["email"] = *p.Email
	}
	if p.Phone != nil {
		set["phone"] = *p.Phone
	}
	if p.IsActive != nil {
		set["isActive"] = *p.IsActive
	}
	return updateByID(ctx, m, ColStudents, oid, set)
}

// SoftDeleteStudent гасит isActive; запись остаётся на месте.
func SoftDeleteStudent(ctx context.Context, m *mongo.Database, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	return updateByID(ctx, m, ColStudents, oid, bson.M{"isActive": false, "updatedAt": time.Now().UTC()})
}

// StudentFilter — критерии поиска; пустые поля не участвуют в фильтре.
type StudentFilter struct {
	Name     string // partial, case-insensitive
	Email    string
	RollMin  *int64
	RollMax  *int64
	IsActive *bool
}

func SearchStudents(ctx context.Context, m *mongo.Database, f StudentFilter) ([]models.Student, error) {
	filter := bson.M{}
	if f.Name != "" {
		filter["fullName"] = bson.M{"$regex": f.Name, "$options": "i"}
	}
	if f.Email != "" {
		filter["email"] = f.Email
	}
	rollRange := bson.M{}
	if f.RollMin != nil {
		rollRange["$gte"] = *f.RollMin
	}
	if f.RollMax != nil {
		rollRange["$lte"] = *f.RollMax
	}
	if len(rollRange) > 0 {
		filter["roll"] = rollRange
	}
	if f.IsActive != nil {
		filter["isActive"] = *f.IsActive
	}

	cur, err := m.Collection(ColStudents).Find(ctx, filter, options.Find().SetLimit(findLimit))
	if err != nil {
		return nil, err
	}
	var out []models.Student
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func ListActiveStudents(ctx context.Context, m *mongo.Database) ([]models.Student, error) {
	active := true
	return SearchStudents(ctx, m, StudentFilter{IsActive: &active})
}

// updateByID — общий $set по _id для всех коллекций.
func updateByID(ctx context.Context, m *mongo.Database, col string, id primitive.ObjectID, set bson.M) error {
	res, err := m.Collection(col).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
