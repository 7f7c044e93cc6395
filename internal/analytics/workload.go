package analytics

import (
	"context"
	"sort"

	"github.com/Spok95/college-erp-mcp/internal/db"
	"github.com/Spok95/college-erp-mcp/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CourseRef struct {
	Code  string `json:"code"`
	Title string `json:"title"`
}

type FacultyWorkload struct {
	FacultyID    string      `json:"faculty_id"`
	Name         string      `json:"name"`
	CoursesCount int         `json:"courses_count"`
	Courses      []CourseRef `json:"courses"`
}

// BuildFacultyWorkload группирует активные курсы по ответственному
// преподавателю. Курсы без преподавателя не входят ни в одну группу;
// группа без записи в faculties молча выпадает. Вывод отсортирован по имени.
func BuildFacultyWorkload(courses []models.Course, faculties map[primitive.ObjectID]models.Faculty) []FacultyWorkload {
	groups := make(map[primitive.ObjectID][]models.Course)
	for _, c := range courses {
		if c.FacultyInCharge == nil {
			continue
		}
		groups[*c.FacultyInCharge] = append(groups[*c.FacultyInCharge], c)
	}

	out := make([]FacultyWorkload, 0, len(groups))
	for fid, list := range groups {
		f, ok := faculties[fid]
		if !ok {
			continue
		}
		refs := make([]CourseRef, 0, len(list))
		for _, c := range list {
			refs = append(refs, CourseRef{Code: c.Code, Title: c.Title})
		}
		sort.Slice(refs, func(i, j int) bool { return refs[i].Code < refs[j].Code })
		out = append(out, FacultyWorkload{
			FacultyID:    fid.Hex(),
			Name:         f.FullName,
			CoursesCount: len(list),
			Courses:      refs,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func Workload(ctx context.Context, m *mongo.Database) ([]FacultyWorkload, error) {
	courses, err := db.ListActiveCourses(ctx, m)
	if err != nil {
		return nil, err
	}

	faculties := make(map[primitive.ObjectID]models.Faculty)
	for _, c := range courses {
		if c.FacultyInCharge == nil {
			continue
		}
		fid := *c.FacultyInCharge
		if _, seen := faculties[fid]; seen {
			continue
		}
		f, err := db.GetFacultyByOID(ctx, m, fid)
		if err == db.ErrNotFound {
			continue // осиротевшая ссылка — пропускаем группу целиком
		}
		if err != nil {
			return nil, err
		}
		faculties[fid] = *f
	}
	return BuildFacultyWorkload(courses, faculties), nil
}

type EnrollmentRow struct {
	CourseCode       string  `json:"course_code"`
	CourseTitle      string  `json:"course_title"`
	Semester         int     `json:"semester"`
	Credits          int     `json:"credits"`
	Faculty          *string `json:"faculty"`
	EnrolledStudents int     `json:"enrolled_students"`
}

// EnrollmentStats — строка на каждый активный курс. enrolled_students —
// число РАЗНЫХ студентов с хоть какой-то посещаемостью ГЛОБАЛЬНО: записи
// посещаемости не ссылаются на курс, поэтому посчитать по-курсово нечем.
// Унаследованное ограничение сохранено сознательно.
func EnrollmentStats(ctx context.Context, m *mongo.Database) ([]EnrollmentRow, error) {
	courses, err := db.ListActiveCourses(ctx, m)
	if err != nil {
		return nil, err
	}
	rolls, err := db.DistinctAttendanceRolls(ctx, m)
	if err != nil {
		return nil, err
	}

	out := make([]EnrollmentRow, 0, len(courses))
	for _, c := range courses {
		row := EnrollmentRow{
			CourseCode:       c.Code,
			CourseTitle:      c.Title,
			Semester:         c.Semester,
			Credits:          c.Credits,
			EnrolledStudents: len(rolls),
		}
		if c.FacultyInCharge != nil {
			hex := c.FacultyInCharge.Hex()
			row.Faculty = &hex
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CourseCode < out[j].CourseCode })
	return out, nil
}
