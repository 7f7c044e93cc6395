package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/Spok95/college-erp-mcp/internal/db"
	"github.com/Spok95/college-erp-mcp/internal/models"
	"go.mongodb.org/mongo-driver/mongo"
)

type ConflictKind string

const (
	ConflictRoom    ConflictKind = "room"
	ConflictFaculty ConflictKind = "faculty"
)

type Conflict struct {
	Day      string       `json:"day"`
	Semester int          `json:"semester"`
	Kind     ConflictKind `json:"type"`
	Resource string       `json:"resource"` // метка аудитории либо hex id преподавателя
	Period   int          `json:"period"`
	Message  string       `json:"conflict"`
}

// DetectTimetableConflicts ищет двойные брони внутри одного дня.
// Семантика кумулятивная: n слотов на одном ключе дают n-1 конфликтов
// (первый занимает ключ, каждый следующий репортится и перезаписывает его),
// а не C(n,2). Слоты без аудитории/преподавателя или с нулевым периодом
// из соответствующей проверки исключены. Пересечения между днями не ищем.
func DetectTimetableConflicts(timetables []models.Timetable) []Conflict {
	var out []Conflict

	for _, tt := range timetables {
		type key struct {
			resource string
			period   int
		}

		roomSeen := make(map[key]struct{})
		for _, s := range tt.Slots {
			if s.Room == "" || s.Period == 0 {
				continue
			}
			k := key{s.Room, s.Period}
			if _, dup := roomSeen[k]; dup {
				out = append(out, Conflict{
					Day:      tt.DayOfWeek,
					Semester: tt.Semester,
					Kind:     ConflictRoom,
					Resource: s.Room,
					Period:   s.Period,
					Message:  fmt.Sprintf("Room %s used in multiple slots at period %d", s.Room, s.Period),
				})
			}
			roomSeen[k] = struct{}{}
		}

		facultySeen := make(map[key]struct{})
		for _, s := range tt.Slots {
			if s.Faculty == nil || s.Period == 0 {
				continue
			}
			fid := s.Faculty.Hex()
			k := key{fid, s.Period}
			if _, dup := facultySeen[k]; dup {
				out = append(out, Conflict{
					Day:      tt.DayOfWeek,
					Semester: tt.Semester,
					Kind:     ConflictFaculty,
					Resource: fid,
					Period:   s.Period,
					Message:  fmt.Sprintf("Faculty %s assigned to multiple slots at period %d", fid, s.Period),
				})
			}
			facultySeen[k] = struct{}{}
		}
	}

	// Явный порядок: день недели, затем период — вывод детерминирован.
	sort.Slice(out, func(i, j int) bool {
		di, dj := models.WeekdayIndex(out[i].Day), models.WeekdayIndex(out[j].Day)
		if di != dj {
			return di < dj
		}
		if out[i].Semester != out[j].Semester {
			return out[i].Semester < out[j].Semester
		}
		if out[i].Period != out[j].Period {
			return out[i].Period < out[j].Period
		}
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].Resource < out[j].Resource
	})
	return out
}

func TimetableConflicts(ctx context.Context, m *mongo.Database) ([]Conflict, error) {
	timetables, err := db.ListActiveTimetables(ctx, m)
	if err != nil {
		return nil, err
	}
	return DetectTimetableConflicts(timetables), nil
}
