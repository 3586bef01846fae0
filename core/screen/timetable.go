package screen

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/scholarsync/core/school"
	"github.com/trezcool/scholarsync/core/user"
)

type Period struct {
	Number int    `json:"number"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

// Periods are the daily teaching slots.
var Periods = []Period{
	{Number: 1, Start: "08:00", End: "09:00"},
	{Number: 2, Start: "09:15", End: "10:15"},
	{Number: 3, Start: "10:30", End: "11:30"},
}

type Cell struct {
	Subject string `json:"subject"`
	Code    string `json:"code"`
	Teacher string `json:"teacher"`
}

// TimetableGrid is a class's week, one row per period and one column per day.
type TimetableGrid struct {
	Class   school.Class   `json:"class"`
	Classes []school.Class `json:"classes"`
	Days    []string       `json:"days"`
	Periods []Period       `json:"periods"`
	cells   map[string]map[int]Cell
}

// Cell returns the lesson at day and period; ok is false for a free slot.
func (g TimetableGrid) Cell(day string, period int) (Cell, bool) {
	c, ok := g.cells[day][period]
	return c, ok
}

// Lesson is Cell for templates: nil for a free slot.
func (g TimetableGrid) Lesson(day string, period int) *Cell {
	if c, ok := g.Cell(day, period); ok {
		return &c
	}
	return nil
}

// Lessons returns the number of scheduled lessons.
func (g TimetableGrid) Lessons() int {
	n := 0
	for _, day := range g.cells {
		n += len(day)
	}
	return n
}

// LoadTimetable builds the grid of classID. Without classID, students see their own class
// and everyone else the first class.
func LoadTimetable(ctx context.Context, svc school.Service, usr user.User, classID string) (TimetableGrid, error) {
	idx, err := loadIndex(ctx, svc)
	if err != nil {
		return TimetableGrid{}, err
	}
	if len(idx.classes) == 0 {
		return TimetableGrid{}, school.ErrNotFound
	}
	subjects, err := svc.GetSubjects(ctx)
	if err != nil {
		return TimetableGrid{}, errors.Wrap(err, "getting subjects")
	}

	cls, found := idx.classes[0], false
	if classID != "" {
		for _, c := range idx.classes {
			if c.ID == classID {
				cls, found = c, true
			}
		}
		if !found {
			return TimetableGrid{}, school.ErrNotFound
		}
	} else if students, err := ownStudents(ctx, svc, usr); err == nil && len(students) > 0 {
		if c, ok := idx.classOfGrade(students[0].ClassGrade); ok {
			cls = c
		}
	}

	entries, err := svc.GetTimetableByClassID(ctx, cls.ID, "")
	if err != nil {
		return TimetableGrid{}, errors.Wrap(err, "getting timetable")
	}

	grid := TimetableGrid{
		Class:   cls,
		Classes: idx.classes,
		Days:    school.Weekdays,
		Periods: Periods,
		cells:   make(map[string]map[int]Cell, len(school.Weekdays)),
	}
	for _, e := range entries {
		cell := Cell{Teacher: idx.teacherName(e.TeacherID)}
		for _, sub := range subjects {
			if sub.ID == e.SubjectID {
				cell.Subject, cell.Code = sub.SubjectName, sub.SubjectCode
			}
		}
		if grid.cells[e.DayOfWeek] == nil {
			grid.cells[e.DayOfWeek] = make(map[int]Cell, len(Periods))
		}
		grid.cells[e.DayOfWeek][e.PeriodNumber] = cell
	}
	return grid, nil
}

// Slot is one scheduled lesson of the grid.
type Slot struct {
	Day    string `json:"day"`
	Period int    `json:"period"`
	Cell
}

// Slots lists the scheduled lessons by day, then period.
func (g TimetableGrid) Slots() []Slot {
	var res []Slot
	for _, day := range g.Days {
		for _, p := range g.Periods {
			if c, ok := g.Cell(day, p.Number); ok {
				res = append(res, Slot{Day: day, Period: p.Number, Cell: c})
			}
		}
	}
	return res
}
