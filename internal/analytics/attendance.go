// Package analytics реализует производную статистику поверх коллекций:
// посещаемость, нагрузка преподавателей, тренды заявок, конфликты расписания.
// Всё считается на лету по снимку данных; пакет не держит состояния.
package analytics

import (
	"context"

	"github.com/Spok95/college-erp-mcp/internal/db"
	"github.com/Spok95/college-erp-mcp/internal/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// LowAttendanceThreshold — порог "низкой" посещаемости в процентах (строго ниже).
const LowAttendanceThreshold = 75.0

type LowAttendanceStudent struct {
	Roll       int64   `json:"roll"`
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

type AttendanceStats struct {
	TotalStudents  int                    `json:"total_students"`
	TotalDays      int                    `json:"total_days"`
	TotalPresent   int                    `json:"total_present"`
	OverallPercent float64                `json:"overall_percentage"`
	LowAttendance  []LowAttendanceStudent `json:"low_attendance_students"`
}

// ComputeAttendanceStats агрегирует записи. names: roll → отображаемое имя;
// запись без имени учитывается в итогах, но не попадает в список низкой
// посещаемости (best-effort: студент мог быть удалён после записи).
func ComputeAttendanceStats(records []models.Attendance, names map[int64]string) *AttendanceStats {
	rolls := make(map[int64]struct{}, len(records))
	totalDays, totalPresent := 0, 0
	low := make([]LowAttendanceStudent, 0)

	for _, r := range records {
		rolls[r.StudentRoll] = struct{}{}
		totalDays += r.TotalDays
		totalPresent += r.PresentDays
		if r.Percentage < LowAttendanceThreshold {
			name, ok := names[r.StudentRoll]
			if !ok {
				continue
			}
			low = append(low, LowAttendanceStudent{
				Roll:       r.StudentRoll,
				Name:       name,
				Percentage: r.Percentage,
			})
		}
	}

	overall := 0.0
	if totalDays > 0 {
		overall = models.RoundPercent(float64(totalPresent) / float64(totalDays) * 100)
	}
	return &AttendanceStats{
		TotalStudents:  len(rolls),
		TotalDays:      totalDays,
		TotalPresent:   totalPresent,
		OverallPercent: overall,
		LowAttendance:  low,
	}
}

// CalculateAttendanceStats — версия поверх хранилища. Пустая выборка — это
// db.ErrEmptyResult, а не нулевая статистика.
func CalculateAttendanceStats(ctx context.Context, m *mongo.Database, f db.AttendanceFilter) (*AttendanceStats, error) {
	records, err := db.FindAttendance(ctx, m, f)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, db.ErrEmptyResult
	}
	names, err := StudentNames(ctx, m, records)
	if err != nil {
		return nil, err
	}
	return ComputeAttendanceStats(records, names), nil
}

type LowAttendanceRecord struct {
	Roll       int64   `json:"roll"`
	Name       string  `json:"name"`
	Percentage float64 `json:"attendance_percentage"`
	Month      string  `json:"month"`
	Year       int     `json:"year"`
}

// StudentsWithLowAttendance — все записи ниже порога за любые месяцы,
// по одной строке на запись. Нерезолвящиеся студенты молча пропускаются.
func StudentsWithLowAttendance(ctx context.Context, m *mongo.Database, threshold float64) ([]LowAttendanceRecord, error) {
	records, err := db.FindLowAttendance(ctx, m, threshold)
	if err != nil {
		return nil, err
	}
	names, err := StudentNames(ctx, m, records)
	if err != nil {
		return nil, err
	}

	out := make([]LowAttendanceRecord, 0, len(records))
	for _, r := range records {
		name, ok := names[r.StudentRoll]
		if !ok {
			continue
		}
		out = append(out, LowAttendanceRecord{
			Roll:       r.StudentRoll,
			Name:       name,
			Percentage: r.Percentage,
			Month:      r.Month,
			Year:       r.Year,
		})
	}
	return out, nil
}

// StudentNames собирает имена по roll; отсутствующие студенты просто
// не попадают в карту — это осознанный skip-and-continue, не ошибка.
func StudentNames(ctx context.Context, m *mongo.Database, records []models.Attendance) (map[int64]string, error) {
	names := make(map[int64]string)
	for _, r := range records {
		if _, seen := names[r.StudentRoll]; seen {
			continue
		}
		st, err := db.GetStudentByRoll(ctx, m, r.StudentRoll)
		if err == db.ErrNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		names[r.StudentRoll] = st.FullName
	}
	return names, nil
}
