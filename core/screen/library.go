package screen

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/scholarsync/core"
	"github.com/trezcool/scholarsync/core/school"
	"github.com/trezcool/scholarsync/core/user"
)

type BookStatus string

const (
	Available BookStatus = "Available"
	Borrowed  BookStatus = "Borrowed"
	Reserved  BookStatus = "Reserved"

	loanPeriod = 14 * 24 * time.Hour
)

var ErrBookUnavailable = errors.New("book is not available")

type BookRow struct {
	school.Book
	Status   BookStatus `json:"status"`
	Borrower string     `json:"borrower"`
}

type LibraryView struct {
	Search     string    `json:"search"`
	Rows       []BookRow `json:"rows"`
	Total      int       `json:"total"`
	Available  int       `json:"available"`
	OnLoan     int       `json:"onLoan"`
	CanBorrow  bool      `json:"canBorrow"`
	CanReserve bool      `json:"canReserve"`
	CanAdd     bool      `json:"canAdd"`
}

// FilterBooks keeps books whose title, author or ISBN contains term.
func FilterBooks(rows []BookRow, term string) []BookRow {
	res := make([]BookRow, 0, len(rows))
	for _, r := range rows {
		if core.MatchesSearch(term, r.Title, r.Author, r.ISBN) {
			res = append(res, r)
		}
	}
	return res
}

// LoadLibrary lists the catalogue; `reserved` holds books reserved earlier in the same view.
func LoadLibrary(ctx context.Context, svc school.Service, role user.Role, term string, reserved ...string) (*LibraryView, error) {
	books, err := svc.GetBooks(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "getting books")
	}
	students, err := svc.GetStudents(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "getting students")
	}
	idx := index{students: students}

	rows := make([]BookRow, 0, len(books))
	for _, b := range books {
		row := BookRow{Book: b, Status: Available}
		if b.OnLoan() {
			row.Status = Borrowed
			row.Borrower = idx.studentName(b.StudentID)
		}
		for _, id := range reserved {
			if id == b.ID && row.Status == Available {
				row.Status = Reserved
			}
		}
		rows = append(rows, row)
	}

	view := &LibraryView{
		Search:     term,
		Total:      len(rows),
		CanBorrow:  Allowed(role, BorrowBook),
		CanReserve: Allowed(role, ReserveBook),
		CanAdd:     Allowed(role, AddBook),
	}
	for _, r := range rows {
		switch r.Status {
		case Available:
			view.Available++
		case Borrowed:
			view.OnLoan++
		}
	}
	view.Rows = FilterBooks(rows, term)
	return view, nil
}

func (v *LibraryView) row(id string) (*BookRow, error) {
	for i := range v.Rows {
		if v.Rows[i].ID == id {
			if v.Rows[i].Status != Available {
				return nil, ErrBookUnavailable
			}
			return &v.Rows[i], nil
		}
	}
	return nil, school.ErrNotFound
}

// Borrow lends an available book to borrower, due back after the loan period.
func (v *LibraryView) Borrow(id, borrower string, now time.Time) (core.Notification, error) {
	r, err := v.row(id)
	if err != nil {
		return core.Notification{}, err
	}
	due := now.Add(loanPeriod).Format(core.DateLayout)
	r.Status, r.Borrower = Borrowed, borrower
	r.IssueDate, r.ReturnDate = now.Format(core.DateLayout), due
	v.Available--
	v.OnLoan++
	return core.Success("Book Borrowed", fmt.Sprintf("You have borrowed '%s'. Due date: %s", r.Title, due)), nil
}

// Reserve holds an available book.
func (v *LibraryView) Reserve(id string) (core.Notification, error) {
	r, err := v.row(id)
	if err != nil {
		return core.Notification{}, err
	}
	r.Status = Reserved
	v.Available--
	return core.Success("Book Reserved", fmt.Sprintf("You have reserved '%s'. You will be notified when it becomes available.", r.Title)), nil
}
