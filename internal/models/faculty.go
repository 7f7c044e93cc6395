package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Faculty struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	EmployeeID      string             `bson:"employeeId" json:"employeeId"`
	FullName        string             `bson:"fullName" json:"fullName"`
	Email           string             `bson:"email" json:"email"`
	Designation     string             `bson:"designation" json:"designation"`
	SubjectsHandled []string           `bson:"subjectsHandled" json:"subjectsHandled"`
	IsActive        bool               `bson:"isActive" json:"isActive"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
