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

func CreateLeaveRequest(ctx context.Context, m *mongo.Database, lr *models.LeaveRequest) (primitive.ObjectID, error) {
	now := time.Now().UTC()
	lr.CreatedAt = now
	lr.UpdatedAt = now
	lr.Status = models.LeavePending
	res, err := m.Collection(ColLeaveRequests).InsertOne(ctx, lr)
	if err != nil {
		return primitive.NilObjectID, wrapInsertErr(err)
	}
	id := res.InsertedID.(primitive.ObjectID)
	lr.ID = id
	return id, nil
}

func GetLeaveRequestByID(ctx context.Context, m *mongo.Database, id string) (*models.LeaveRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	var lr models.LeaveRequest
	err = m.Collection(ColLeaveRequests).FindOne(ctx, bson.M{"_id": oid}).Decode(&lr)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lr, nil
}

// ResolveLeaveRequest переводит заявку в терминальный статус. Комментарий
// опционален, handledBy/handledAt проставляются всегда.
func ResolveLeaveRequest(ctx context.Context, m *mongo.Database, id string, status models.LeaveStatus, handledBy primitive.ObjectID, comments *string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	now := time.Now().UTC()
	set := bson.M{
		"status":    status,
		"handledBy": handledBy,
		"handledAt": now,
		"updatedAt": now,
	}
	if comments != nil {
		set["comments"] = *comments
	}
	return updateByID(ctx, m, ColLeaveRequests, oid, set)
}

type LeaveFilter struct {
	StudentRoll *int64
	Status      models.LeaveStatus
	StartFrom   *time.Time // по startDate
	StartTo     *time.Time
}

func (f LeaveFilter) query() bson.M {
	q := bson.M{}
	if f.StudentRoll != nil {
		q["studentRoll"] = *f.StudentRoll
	}
	if f.Status != "" {
		q["status"] = f.Status
	}
	dateRange := bson.M{}
	if f.StartFrom != nil {
		dateRange["$gte"] = *f.StartFrom
	}
	if f.StartTo != nil {
		dateRange["$lte"] = *f.StartTo
	}
	if len(dateRange) > 0 {
		q["startDate"] = dateRange
	}
	return q
}

func FindLeaveRequests(ctx context.Context, m *mongo.Database, f LeaveFilter) ([]models.LeaveRequest, error) {
	cur, err := m.Collection(ColLeaveRequests).Find(ctx, f.query(), options.Find().SetLimit(findLimit))
	if err != nil {
		return nil, err
	}
	var out []models.LeaveRequest
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
