package fixtures

import "github.com/trezcool/scholarsync/core/school"

var students = []school.Student{
	{ID: "S1001", FirstName: "John", LastName: "Smith", DateOfBirth: "2007-05-15", Gender: "Male", Address: "123 Student Lane, Cityville", PhoneNumber: "555-123-4567", Email: "john.smith@example.com", ClassGrade: "10A", EnrollmentDate: "2022-08-15", ParentID: "P1001"},
	{ID: "S1002", FirstName: "Emma", LastName: "Johnson", DateOfBirth: "2006-11-22", Gender: "Female", Address: "456 Learning Road, Townsburg", PhoneNumber: "555-234-5678", Email: "emma.johnson@example.com", ClassGrade: "11B", EnrollmentDate: "2021-08-16", ParentID: "P1002"},
	{ID: "S1003", FirstName: "Michael", LastName: "Brown", DateOfBirth: "2007-03-10", Gender: "Male", Address: "789 Education Street, Schooltown", PhoneNumber: "555-345-6789", Email: "michael.brown@example.com", ClassGrade: "10A", EnrollmentDate: "2022-08-15", ParentID: "P1003"},
	{ID: "S1004", FirstName: "Sophia", LastName: "Garcia", DateOfBirth: "2006-07-30", Gender: "Female", Address: "101 Academy Avenue, Learnville", PhoneNumber: "555-456-7890", Email: "sophia.garcia@example.com", ClassGrade: "11B", EnrollmentDate: "2021-08-16", ParentID: "P1004"},
	{ID: "S1005", FirstName: "William", LastName: "Davis", DateOfBirth: "2007-09-05", Gender: "Male", Address: "202 Knowledge Drive, Eduburg", PhoneNumber: "555-567-8901", Email: "william.davis@example.com", ClassGrade: "10B", EnrollmentDate: "2022-08-15", ParentID: "P1005"},
}

var teachers = []school.Teacher{
	{ID: "T1001", FirstName: "Robert", LastName: "Anderson", Gender: "Male", Address: "123 Teacher Lane, Educator City", PhoneNumber: "555-111-2222", Email: "robert.anderson@scholarsync.com", SubjectTaught: "Mathematics", Qualification: "M.Sc. Mathematics", HireDate: "2018-06-15"},
	{ID: "T1002", FirstName: "Sarah", LastName: "Wilson", Gender: "Female", Address: "456 Professor Road, Academicville", PhoneNumber: "555-333-4444", Email: "sarah.wilson@scholarsync.com", SubjectTaught: "English Literature", Qualification: "M.A. English", HireDate: "2019-07-10"},
	{ID: "T1003", FirstName: "David", LastName: "Martinez", Gender: "Male", Address: "789 Instructor Street, Teachtown", PhoneNumber: "555-555-6666", Email: "david.martinez@scholarsync.com", SubjectTaught: "Physics", Qualification: "Ph.D. Physics", HireDate: "2017-08-22"},
}

var classes = []school.Class{
	{ID: "C1001", ClassName: "Grade 10A", Section: "A", ClassTeacherID: "T1001"},
	{ID: "C1002", ClassName: "Grade 10B", Section: "B", ClassTeacherID: "T1003"},
	{ID: "C1003", ClassName: "Grade 11B", Section: "B", ClassTeacherID: "T1002"},
}

var subjects = []school.Subject{
	{ID: "SUB1001", SubjectName: "Mathematics", SubjectCode: "MATH101", ClassID: "C1001", TeacherID: "T1001"},
	{ID: "SUB1002", SubjectName: "English", SubjectCode: "ENG101", ClassID: "C1001", TeacherID: "T1002"},
	{ID: "SUB1003", SubjectName: "Physics", SubjectCode: "PHY101", ClassID: "C1001", TeacherID: "T1003"},
	{ID: "SUB1004", SubjectName: "Mathematics", SubjectCode: "MATH102", ClassID: "C1002", TeacherID: "T1001"},
	{ID: "SUB1005", SubjectName: "English", SubjectCode: "ENG102", ClassID: "C1002", TeacherID: "T1002"},
	{ID: "SUB1006", SubjectName: "Physics", SubjectCode: "PHY102", ClassID: "C1003", TeacherID: "T1003"},
}

var attendance = []school.Attendance{
	{ID: "ATT1001", StudentID: "S1001", ClassID: "C1001", Date: "2023-09-01", Status: school.Present},
	{ID: "ATT1002", StudentID: "S1002", ClassID: "C1003", Date: "2023-09-01", Status: school.Present},
	{ID: "ATT1003", StudentID: "S1003", ClassID: "C1001", Date: "2023-09-01", Status: school.Absent},
	{ID: "ATT1004", StudentID: "S1004", ClassID: "C1003", Date: "2023-09-01", Status: school.Present},
	{ID: "ATT1005", StudentID: "S1005", ClassID: "C1002", Date: "2023-09-01", Status: school.Present},
}

var exams = []school.Exam{
	{ID: "E1001", ExamType: "Midterm", Date: "2023-10-15", ClassID: "C1001"},
	{ID: "E1002", ExamType: "Midterm", Date: "2023-10-15", ClassID: "C1002"},
	{ID: "E1003", ExamType: "Final", Date: "2023-12-10", ClassID: "C1001"},
	{ID: "E1004", ExamType: "Final", Date: "2023-12-10", ClassID: "C1002"},
}

var results = []school.Result{
	{ID: "R1001", StudentID: "S1001", ExamID: "E1001", SubjectID: "SUB1001", MarksObtained: 85, Grade: "A"},
	{ID: "R1002", StudentID: "S1001", ExamID: "E1001", SubjectID: "SUB1002", MarksObtained: 78, Grade: "B"},
	{ID: "R1003", StudentID: "S1002", ExamID: "E1001", SubjectID: "SUB1001", MarksObtained: 92, Grade: "A"},
	{ID: "R1004", StudentID: "S1003", ExamID: "E1001", SubjectID: "SUB1001", MarksObtained: 68, Grade: "C"},
}

var parents = []school.Parent{
	{ID: "P1001", FirstName: "James", LastName: "Smith", PhoneNumber: "555-987-6543", Email: "james.smith@example.com", Address: "123 Student Lane, Cityville"},
	{ID: "P1002", FirstName: "Maria", LastName: "Johnson", PhoneNumber: "555-876-5432", Email: "maria.johnson@example.com", Address: "456 Learning Road, Townsburg"},
	{ID: "P1003", FirstName: "Daniel", LastName: "Brown", PhoneNumber: "555-765-4321", Email: "daniel.brown@example.com", Address: "789 Education Street, Schooltown"},
	{ID: "P1004", FirstName: "Elena", LastName: "Garcia", PhoneNumber: "555-654-3210", Email: "elena.garcia@example.com", Address: "101 Academy Avenue, Learnville"},
	{ID: "P1005", FirstName: "Thomas", LastName: "Davis", PhoneNumber: "555-543-2109", Email: "thomas.davis@example.com", Address: "202 Knowledge Drive, Eduburg"},
}

var fees = []school.Fee{
	{ID: "FEE001", Title: "First Term Tuition Fee", Amount: 25000, DueDate: "2023-09-15"},
	{ID: "FEE002", Title: "Second Term Tuition Fee", Amount: 25000, DueDate: "2024-01-15"},
	{ID: "FEE003", Title: "Laboratory Fee", Amount: 5000, DueDate: "2023-09-30"},
	{ID: "FEE004", Title: "Library Fee", Amount: 2000, DueDate: "2023-10-15"},
}

var feePayments = []school.FeePayment{
	{ID: "F1001", StudentID: "S1001", FeeID: "FEE001", AmountPaid: 1500, PaymentDate: "2023-08-05", PaymentStatus: school.Paid, PaymentMethod: school.MethodCard},
	{ID: "F1002", StudentID: "S1002", FeeID: "FEE001", AmountPaid: 1500, PaymentDate: "2023-08-10", PaymentStatus: school.Paid, PaymentMethod: school.MethodBank},
	{ID: "F1003", StudentID: "S1003", FeeID: "FEE001", AmountPaid: 750, PaymentDate: "2023-08-15", PaymentStatus: school.Pending},
	{ID: "F1004", StudentID: "S1004", FeeID: "FEE001", AmountPaid: 1500, PaymentDate: "2023-08-07", PaymentStatus: school.Paid, PaymentMethod: school.MethodCard},
	{ID: "F1005", StudentID: "S1005", FeeID: "FEE001", AmountPaid: 0, PaymentDate: "", PaymentStatus: school.Pending},
	{ID: "F1006", StudentID: "S1001", FeeID: "FEE002", AmountPaid: 0, PaymentDate: "", PaymentStatus: school.Pending},
	{ID: "F1007", StudentID: "S1001", FeeID: "FEE003", AmountPaid: 0, PaymentDate: "", PaymentStatus: school.Overdue},
	{ID: "F1008", StudentID: "S1001", FeeID: "FEE004", AmountPaid: 2000, PaymentDate: "2023-10-05", PaymentStatus: school.Paid, PaymentMethod: school.MethodBank},
}

var books = []school.Book{
	{ID: "B1001", Title: "Introduction to Calculus", Author: "John Mathematician", ISBN: "978-1234567890", StudentID: "S1001", IssueDate: "2023-09-05", ReturnDate: "2023-09-19"},
	{ID: "B1002", Title: "Advanced Physics", Author: "Sarah Physicist", ISBN: "978-0987654321", StudentID: "S1003", IssueDate: "2023-09-10"},
	{ID: "B1003", Title: "English Grammar Essentials", Author: "David Linguist", ISBN: "978-5678901234"},
	{ID: "B1004", Title: "World History: Modern Era", Author: "Emma Historian", ISBN: "978-4321098765", StudentID: "S1002", IssueDate: "2023-09-08", ReturnDate: "2023-09-22"},
	{ID: "B1005", Title: "Chemical Principles", Author: "Robert Chemist", ISBN: "978-3456789012"},
}

var timetables = []school.Timetable{
	{ID: "TT1001", ClassID: "C1001", DayOfWeek: "Monday", PeriodNumber: 1, SubjectID: "SUB1001", TeacherID: "T1001"},
	{ID: "TT1002", ClassID: "C1001", DayOfWeek: "Monday", PeriodNumber: 2, SubjectID: "SUB1002", TeacherID: "T1002"},
	{ID: "TT1003", ClassID: "C1001", DayOfWeek: "Monday", PeriodNumber: 3, SubjectID: "SUB1003", TeacherID: "T1003"},
	{ID: "TT1004", ClassID: "C1002", DayOfWeek: "Monday", PeriodNumber: 1, SubjectID: "SUB1004", TeacherID: "T1001"},
	{ID: "TT1005", ClassID: "C1002", DayOfWeek: "Monday", PeriodNumber: 2, SubjectID: "SUB1005", TeacherID: "T1002"},
	{ID: "TT1006", ClassID: "C1001", DayOfWeek: "Tuesday", PeriodNumber: 2, SubjectID: "SUB1003", TeacherID: "T1003"},
	{ID: "TT1007", ClassID: "C1001", DayOfWeek: "Tuesday", PeriodNumber: 1, SubjectID: "SUB1002", TeacherID: "T1002"},
	{ID: "TT1008", ClassID: "C1001", DayOfWeek: "Wednesday", PeriodNumber: 3, SubjectID: "SUB1001", TeacherID: "T1001"},
	{ID: "TT1009", ClassID: "C1001", DayOfWeek: "Thursday", PeriodNumber: 1, SubjectID: "SUB1003", TeacherID: "T1003"},
	{ID: "TT1010", ClassID: "C1001", DayOfWeek: "Friday", PeriodNumber: 2, SubjectID: "SUB1001", TeacherID: "T1001"},
	{ID: "TT1011", ClassID: "C1003", DayOfWeek: "Monday", PeriodNumber: 1, SubjectID: "SUB1006", TeacherID: "T1003"},
	{ID: "TT1012", ClassID: "C1003", DayOfWeek: "Wednesday", PeriodNumber: 2, SubjectID: "SUB1006", TeacherID: "T1003"},
	{ID: "TT1013", ClassID: "C1002", DayOfWeek: "Thursday", PeriodNumber: 3, SubjectID: "SUB1004", TeacherID: "T1001"},
}

var events = []school.Event{
	{ID: "EV1001", EventName: "Annual Sports Day", Date: "2023-11-15", Venue: "School Playground", Description: "Annual sports competition featuring **track and field** events, team sports, and individual competitions."},
	{ID: "EV1002", EventName: "Science Fair", Date: "2023-10-25", Venue: "School Auditorium", Description: "Exhibition of student science projects showcasing *innovation* and scientific knowledge."},
	{ID: "EV1003", EventName: "Parent-Teacher Meeting", Date: "2023-09-30", Venue: "School Classrooms", Description: "Scheduled meetings between teachers and parents to discuss student progress and address concerns."},
}
