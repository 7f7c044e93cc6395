package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Course struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	Code            string              `bson:"code" json:"code"`
	Title           string              `bson:"title" json:"title"`
	Credits         int                 `bson:"credits" json:"credits"`
	Semester        int                 `bson:"semester" json:"semester"`
	Description     string              `bson:"description" json:"description"`
	FacultyInCharge *primitive.ObjectID `bson:"facultyInCharge" json:"facultyInCharge"`
	IsActive        bool                `bson:"isActive" json:"isActive"`
	CreatedAt       time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time           `bson:"updatedAt" json:"updatedAt"`
}
