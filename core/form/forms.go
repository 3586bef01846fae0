package form

import (
	"fmt"
	"strings"

	"github.com/trezcool/scholarsync/core"
)

type AddStudent struct {
	FirstName   string `json:"firstName" form:"firstName" validate:"min=2"`
	LastName    string `json:"lastName" form:"lastName" validate:"min=2"`
	Email       string `json:"email" form:"email" validate:"email"`
	Grade       string `json:"grade" form:"grade" validate:"min=1"`
	ParentPhone string `json:"parentPhone" form:"parentPhone" validate:"min=10,digits"`
	DOB         string `json:"dob" form:"dob" validate:"min=1,isodate"`
}

func (f *AddStudent) Clean() {
	f.FirstName = core.CleanString(f.FirstName)
	f.LastName = core.CleanString(f.LastName)
	f.Email = core.CleanString(f.Email)
	f.ParentPhone = cleanDigits(f.ParentPhone)
}

func (*AddStudent) Messages() map[string]string {
	return map[string]string{
		"firstName":          "First name is required",
		"lastName":           "Last name is required",
		"email":              "Please enter a valid email",
		"grade":              "Class/Grade is required",
		"parentPhone.min":    "Parent phone must be at least 10 digits",
		"parentPhone.digits": "Parent phone must contain only digits",
		"dob.min":            "Date of birth is required",
	}
}

func (f *AddStudent) Success() core.Notification {
	return core.Success("Student added", fmt.Sprintf("%s %s has been added successfully.", f.FirstName, f.LastName))
}

func (*AddStudent) Failure() core.Notification {
	return core.Failure("Error", "There was an error adding the student. Please try again.")
}

type AddTeacher struct {
	FirstName     string `json:"firstName" form:"firstName" validate:"min=2"`
	LastName      string `json:"lastName" form:"lastName" validate:"min=2"`
	Email         string `json:"email" form:"email" validate:"email"`
	Subject       string `json:"subject" form:"subject" validate:"min=3"`
	Phone         string `json:"phone" form:"phone" validate:"min=10,digits"`
	Qualification string `json:"qualification" form:"qualification" validate:"min=2"`
}

func (f *AddTeacher) Clean() {
	f.FirstName = core.CleanString(f.FirstName)
	f.LastName = core.CleanString(f.LastName)
	f.Email = core.CleanString(f.Email)
	f.Subject = core.CleanString(f.Subject)
	f.Phone = cleanDigits(f.Phone)
	f.Qualification = core.CleanString(f.Qualification)
}

func (*AddTeacher) Messages() map[string]string {
	return map[string]string{
		"firstName":     "First name is required",
		"lastName":      "Last name is required",
		"email":         "Please enter a valid email",
		"subject":       "Subject is required",
		"phone.min":     "Phone number must be at least 10 digits",
		"phone.digits":  "Phone number must contain only digits",
		"qualification": "Qualification is required",
	}
}

func (f *AddTeacher) Success() core.Notification {
	return core.Success("Teacher added", fmt.Sprintf("%s %s has been added successfully.", f.FirstName, f.LastName))
}

func (*AddTeacher) Failure() core.Notification {
	return core.Failure("Error", "There was an error adding the teacher. Please try again.")
}

type AddClass struct {
	Name         string `json:"name" form:"name" validate:"min=3"`
	Section      string `json:"section" form:"section" validate:"min=1"`
	Capacity     string `json:"capacity" form:"capacity" validate:"min=1,digits"`
	ClassTeacher string `json:"classTeacher" form:"classTeacher" validate:"min=1"`
	Room         string `json:"room" form:"room" validate:"min=1"`
}

func (f *AddClass) Clean() {
	f.Name = core.CleanString(f.Name)
	f.Section = core.CleanString(f.Section)
	f.Capacity = core.CleanString(f.Capacity)
	f.Room = core.CleanString(f.Room)
}

func (*AddClass) Messages() map[string]string {
	return map[string]string{
		"name":            "Class name is required",
		"section":         "Section is required",
		"capacity.min":    "Capacity is required",
		"capacity.digits": "Capacity must be a number",
		"classTeacher":    "Class teacher is required",
		"room":            "Room number is required",
	}
}

func (f *AddClass) Success() core.Notification {
	return core.Success("Class added", fmt.Sprintf("%s %s has been added successfully.", f.Name, f.Section))
}

func (*AddClass) Failure() core.Notification {
	return core.Failure("Error", "There was an error adding the class. Please try again.")
}

type AddSubject struct {
	Name    string `json:"name" form:"name" validate:"min=3"`
	Code    string `json:"code" form:"code" validate:"min=3"`
	Class   string `json:"class" form:"class" validate:"min=1"`
	Teacher string `json:"teacher" form:"teacher" validate:"min=1"`
}

func (f *AddSubject) Clean() {
	f.Name = core.CleanString(f.Name)
	f.Code = strings.ToUpper(core.CleanString(f.Code))
}

func (*AddSubject) Messages() map[string]string {
	return map[string]string{
		"name":    "Subject name is required",
		"code":    "Subject code is required",
		"class":   "Class is required",
		"teacher": "Teacher is required",
	}
}

func (f *AddSubject) Success() core.Notification {
	return core.Success("Subject added", fmt.Sprintf("%s has been added successfully.", f.Name))
}

func (*AddSubject) Failure() core.Notification {
	return core.Failure("Error", "There was an error adding the subject. Please try again.")
}

type AddFee struct {
	Title   string `json:"title" form:"title" validate:"min=3"`
	Amount  string `json:"amount" form:"amount" validate:"min=1,digits"`
	DueDate string `json:"dueDate" form:"dueDate" validate:"min=1,isodate"`
	Class   string `json:"class" form:"class" validate:"min=1"`
}

func (f *AddFee) Clean() {
	f.Title = core.CleanString(f.Title)
	f.Amount = strings.ReplaceAll(core.CleanString(f.Amount), ",", "")
}

func (*AddFee) Messages() map[string]string {
	return map[string]string{
		"title":         "Fee title is required",
		"amount.min":    "Amount is required",
		"amount.digits": "Amount must be a number",
		"dueDate.min":   "Due date is required",
		"class":         "Class is required",
	}
}

func (f *AddFee) Success() core.Notification {
	return core.Success("Fee added", fmt.Sprintf("%s has been added successfully.", f.Title))
}

func (*AddFee) Failure() core.Notification {
	return core.Failure("Error", "There was an error adding the fee. Please try again.")
}

type AddBook struct {
	Title         string `json:"title" form:"title" validate:"min=3"`
	Author        string `json:"author" form:"author" validate:"min=3"`
	ISBN          string `json:"isbn" form:"isbn" validate:"min=10"`
	PublishedYear string `json:"publishedYear" form:"publishedYear" validate:"min=4,digits"`
	Category      string `json:"category" form:"category" validate:"min=3"`
	Description   string `json:"description" form:"description"`
	Copies        string `json:"copies" form:"copies" validate:"min=1,digits"`
}

func (f *AddBook) Clean() {
	f.Title = core.CleanString(f.Title)
	f.Author = core.CleanString(f.Author)
	f.ISBN = core.CleanString(f.ISBN)
	f.Category = core.CleanString(f.Category)
	f.Description = strings.TrimSpace(f.Description)
}

func (*AddBook) Messages() map[string]string {
	return map[string]string{
		"title":                "Book title is required",
		"author":               "Author name is required",
		"isbn":                 "ISBN is required",
		"publishedYear.min":    "Published year is required",
		"publishedYear.digits": "Published year must be a number",
		"category":             "Category is required",
		"copies.min":           "Number of copies is required",
		"copies.digits":        "Number of copies must be a number",
	}
}

func (f *AddBook) Success() core.Notification {
	return core.Success("Book added", fmt.Sprintf("%s has been added to the library.", f.Title))
}

func (*AddBook) Failure() core.Notification {
	return core.Failure("Error", "There was an error adding the book. Please try again.")
}

// Payment simulates a card payment of a fee; FeeTitle and Amount are resolved from FeeID by the caller.
type Payment struct {
	FeeID      string `json:"feeId" form:"feeId" validate:"required"`
	CardNumber string `json:"cardNumber" form:"cardNumber" validate:"min=16,digits"`
	CardName   string `json:"cardName" form:"cardName" validate:"min=3"`
	ExpiryDate string `json:"expiryDate" form:"expiryDate" validate:"min=5,cardexpiry"`
	CVV        string `json:"cvv" form:"cvv" validate:"min=3,digits"`

	FeeTitle string `json:"-" form:"-" validate:"-"`
	Amount   int    `json:"-" form:"-" validate:"-"`
}

func (f *Payment) Clean() {
	f.CardNumber = cleanDigits(f.CardNumber)
	f.CardName = core.CleanString(f.CardName)
	f.ExpiryDate = core.CleanString(f.ExpiryDate)
	f.CVV = core.CleanString(f.CVV)
}

func (*Payment) Messages() map[string]string {
	return map[string]string{
		"feeId":             "Please choose a fee to pay",
		"cardNumber.min":    "Card number must be at least 16 digits",
		"cardNumber.digits": "Card number must contain only digits",
		"cardName":          "Card holder name is required",
		"expiryDate.min":    "Expiry date is required",
		"cvv.min":           "CVV must be at least 3 digits",
		"cvv.digits":        "CVV must contain only digits",
	}
}

func (f *Payment) Success() core.Notification {
	return core.Success("Payment successful",
		fmt.Sprintf("Your payment of %s for %s has been processed.", core.FormatRupees(f.Amount), f.FeeTitle))
}

func (*Payment) Failure() core.Notification {
	return core.Failure("Payment failed", "There was an error processing your payment. Please try again.")
}

// cleanDigits drops the separators people type in phone and card numbers.
func cleanDigits(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')', '+', '.':
			return -1
		}
		return r
	}, s)
}
