package analytics

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Spok95/college-erp-mcp/internal/models"
)

func TestBuildFacultyWorkload(t *testing.T) {
	f1 := primitive.NewObjectID()
	f2 := primitive.NewObjectID()
	orphan := primitive.NewObjectID()

	courses := []models.Course{
		{Code: "CS201", Title: "Algorithms", FacultyInCharge: &f1},
		{Code: "CS101", Title: "Intro", FacultyInCharge: &f1},
		{Code: "MA101", Title: "Calculus", FacultyInCharge: &f2},
		// PH101 без преподавателя, CH101 ссылается на несуществующего
		{Code: "PH101", Title: "Physics"},
		{Code: "CH101", Title: "Chemistry", FacultyInCharge: &orphan},
	}
	faculties := map[primitive.ObjectID]models.Faculty{
		f1: {ID: f1, FullName: "Борисов"},
		f2: {ID: f2, FullName: "Антонов"},
	}

	got := BuildFacultyWorkload(courses, faculties)
	if len(got) != 2 {
		t.Fatalf("ожидали 2 группы, получили %d", len(got))
	}
	// сортировка по имени
	if got[0].Name != "Антонов" || got[1].Name != "Борисов" {
		t.Fatalf("неверный порядок групп: %#v", got)
	}
	b := got[1]
	if b.CoursesCount != 2 {
		t.Fatalf("у Борисова 2 курса, получили %d", b.CoursesCount)
	}
	// курсы отсортированы по коду
	if b.Courses[0].Code != "CS101" || b.Courses[1].Code != "CS201" {
		t.Fatalf("неверный порядок курсов: %#v", b.Courses)
	}
}

func TestBuildFacultyWorkloadEmpty(t *testing.T) {
	if got := BuildFacultyWorkload(nil, nil); len(got) != 0 {
		t.Fatalf("пустой вход — пустой вывод: %#v", got)
	}
}
