package screen

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/scholarsync/core"
	"github.com/trezcool/scholarsync/core/school"
	"github.com/trezcool/scholarsync/core/user"
)

const (
	FilterAll     = "all"
	noPendingFees = "No pending fees"
)

var ErrAlreadyPaid = errors.New("payment already marked as paid")

type PaymentRow struct {
	ID          string               `json:"id"`
	StudentID   string               `json:"studentId"`
	StudentName string               `json:"studentName"`
	ClassGrade  string               `json:"classGrade"`
	FeeID       string               `json:"feeId"`
	FeeTitle    string               `json:"feeTitle"`
	Amount      int                  `json:"amount"`
	Status      school.PaymentStatus `json:"status"`
	PaymentDate string               `json:"paymentDate"`
}

type FeeFilter struct {
	Search string `json:"search"`
	Class  string `json:"class"`  // a grade code, or "all"
	Status string `json:"status"` // a payment status, or "all"
}

func (f FeeFilter) matches(r PaymentRow) bool {
	if !core.MatchesSearch(f.Search, r.StudentName, r.FeeTitle) {
		return false
	}
	if f.Class != "" && f.Class != FilterAll && r.ClassGrade != f.Class {
		return false
	}
	if f.Status != "" && f.Status != FilterAll && string(r.Status) != f.Status {
		return false
	}
	return true
}

// FeeBoard is the administrator's view of fee collection.
type FeeBoard struct {
	Filter FeeFilter    `json:"filter"`
	Rows   []PaymentRow `json:"rows"`
	Grades []string     `json:"grades"`
	Fees   []school.Fee `json:"fees"`
	all    []PaymentRow

	Collected      int `json:"collected"`
	Outstanding    int `json:"outstanding"`
	CollectionRate int `json:"collectionRate"`
	OverdueCount   int `json:"overdueCount"`

	CanAdd      bool `json:"canAdd"`
	CanMarkPaid bool `json:"canMarkPaid"`
}

func LoadFeeBoard(ctx context.Context, svc school.Service, role user.Role, filter FeeFilter) (*FeeBoard, error) {
	fees, err := svc.GetFees(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "getting fees")
	}
	payments, err := svc.GetFeePayments(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "getting fee payments")
	}
	students, err := svc.GetStudents(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "getting students")
	}
	idx := index{students: students}

	b := &FeeBoard{
		Filter:      filter,
		Fees:        fees,
		CanAdd:      Allowed(role, AddFee),
		CanMarkPaid: Allowed(role, MarkFeePaid),
	}
	grades := make(map[string]bool)
	for _, p := range payments {
		row := PaymentRow{
			ID:          p.ID,
			StudentID:   p.StudentID,
			FeeID:       p.FeeID,
			Amount:      p.AmountPaid,
			Status:      p.PaymentStatus,
			PaymentDate: p.PaymentDate,
		}
		if st, ok := idx.student(p.StudentID); ok {
			row.StudentName, row.ClassGrade = st.FullName(), st.ClassGrade
			grades[st.ClassGrade] = true
		}
		for _, f := range fees {
			if f.ID == p.FeeID {
				row.FeeTitle, row.Amount = f.Title, f.Amount
			}
		}
		b.all = append(b.all, row)
	}
	for g := range grades {
		b.Grades = append(b.Grades, g)
	}
	sort.Strings(b.Grades)
	b.refresh()
	return b, nil
}

// refresh recomputes totals over every payment and re-applies the filter.
func (b *FeeBoard) refresh() {
	b.Collected, b.Outstanding, b.OverdueCount, b.CollectionRate = 0, 0, 0, 0
	paid := 0
	b.Rows = make([]PaymentRow, 0, len(b.all))
	for _, r := range b.all {
		switch r.Status {
		case school.Paid:
			b.Collected += r.Amount
			paid++
		case school.Overdue:
			b.OverdueCount++
			b.Outstanding += r.Amount
		default:
			b.Outstanding += r.Amount
		}
		if b.Filter.matches(r) {
			b.Rows = append(b.Rows, r)
		}
	}
	if len(b.all) > 0 {
		b.CollectionRate = int(math.Round(float64(paid) / float64(len(b.all)) * 100))
	}
}

// Payment returns the row of payment id, ignoring filters.
func (b *FeeBoard) Payment(id string) (PaymentRow, bool) {
	for _, r := range b.all {
		if r.ID == id {
			return r, true
		}
	}
	return PaymentRow{}, false
}

// MarkAsPaid marks an unpaid payment as paid today. The change lives in this board only.
func (b *FeeBoard) MarkAsPaid(id string, now time.Time) (core.Notification, error) {
	for i := range b.all {
		if b.all[i].ID != id {
			continue
		}
		if b.all[i].Status == school.Paid {
			return core.Notification{}, ErrAlreadyPaid
		}
		b.all[i].Status = school.Paid
		b.all[i].PaymentDate = now.Format(core.DateLayout)
		b.refresh()
		return core.Success("Payment Marked as Paid", "The payment has been marked as paid successfully."), nil
	}
	return core.Notification{}, school.ErrNotFound
}

// Receipt is the text encoded in a payment's receipt.
func Receipt(appName string, r PaymentRow) string {
	return fmt.Sprintf("%s receipt %s | %s (%s) | %s | %s | %s | %s",
		appName, r.ID, r.StudentName, r.ClassGrade, r.FeeTitle, core.FormatRupees(r.Amount), r.Status, r.PaymentDate)
}

// Family view

type FeeItem struct {
	PaymentID   string               `json:"paymentId"`
	FeeID       string               `json:"feeId"`
	Title       string               `json:"title"`
	Amount      int                  `json:"amount"`
	DueDate     string               `json:"dueDate"`
	Status      school.PaymentStatus `json:"status"`
	PaymentDate string               `json:"paymentDate"`
	Method      school.PaymentMethod `json:"method"`
}

type FamilyFees struct {
	Student     school.Student `json:"student"`
	Items       []FeeItem      `json:"items"`
	TotalDue    int            `json:"totalDue"`
	TotalPaid   int            `json:"totalPaid"`
	NextDueDate string         `json:"nextDueDate"`
	CanPay      bool           `json:"canPay"`
}

// LoadFamilyFees lists the fees of the students a student or parent account is linked to.
func LoadFamilyFees(ctx context.Context, svc school.Service, usr user.User) ([]FamilyFees, error) {
	students, err := ownStudents(ctx, svc, usr)
	if err != nil {
		return nil, err
	}
	fees, err := svc.GetFees(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "getting fees")
	}

	res := make([]FamilyFees, 0, len(students))
	for _, st := range students {
		payments, err := svc.GetFeePaymentsByStudentID(ctx, st.ID)
		if err != nil {
			return nil, errors.Wrap(err, "getting fee payments")
		}
		ff := FamilyFees{Student: st, NextDueDate: noPendingFees, CanPay: Allowed(usr.Role, PayFee)}
		var nextDue string
		for _, p := range payments {
			item := FeeItem{
				PaymentID:   p.ID,
				FeeID:       p.FeeID,
				Amount:      p.AmountPaid,
				Status:      p.PaymentStatus,
				PaymentDate: p.PaymentDate,
				Method:      p.PaymentMethod,
			}
			for _, f := range fees {
				if f.ID == p.FeeID {
					item.Title, item.Amount, item.DueDate = f.Title, f.Amount, f.DueDate
				}
			}
			switch item.Status {
			case school.Paid:
				ff.TotalPaid += item.Amount
			case school.Pending:
				ff.TotalDue += item.Amount
				if nextDue == "" || item.DueDate < nextDue {
					nextDue = item.DueDate
				}
			default:
				ff.TotalDue += item.Amount
			}
			ff.Items = append(ff.Items, item)
		}
		if nextDue != "" {
			ff.NextDueDate = nextDue
		}
		res = append(res, ff)
	}
	return res, nil
}

// FeesView is the fees screen: the collection board for administrators, family fees otherwise.
type FeesView struct {
	Board    *FeeBoard    `json:"board"`
	Families []FamilyFees `json:"families"`
}

func LoadFees(ctx context.Context, svc school.Service, usr user.User, filter FeeFilter) (FeesView, error) {
	if usr.IsAdmin() {
		b, err := LoadFeeBoard(ctx, svc, usr.Role, filter)
		return FeesView{Board: b}, err
	}
	fam, err := LoadFamilyFees(ctx, svc, usr)
	return FeesView{Families: fam}, err
}

// FindFee returns the schedule item id.
func FindFee(ctx context.Context, svc school.Service, id string) (school.Fee, error) {
	fees, err := svc.GetFees(ctx)
	if err != nil {
		return school.Fee{}, errors.Wrap(err, "getting fees")
	}
	for _, f := range fees {
		if f.ID == id {
			return f, nil
		}
	}
	return school.Fee{}, school.ErrNotFound
}
