package portal

import (
	"strings"

	"github.com/campusdesk/portal/core/account"
)

// seeds returns a fresh copy of the demo dataset of every (entity, role) pair that has one.
var seeds = map[account.Role]map[Entity]func() interface{}{
	account.RoleStudent: {
		Courses:           func() interface{} { return studentCourses() },
		Assignments:       func() interface{} { return studentAssignments() },
		AttendanceCourses: func() interface{} { return attendanceCourses() },
		AttendanceRecords: func() interface{} { return attendanceRecords() },
		Fees:              func() interface{} { return fees() },
		Events:            func() interface{} { return studentEvents() },
		Announcements:     func() interface{} { return studentAnnouncements() },
	},
	account.RoleFaculty: {
		Courses:                func() interface{} { return facultyCourses() },
		Assignments:            func() interface{} { return facultyAssignments() },
		Events:                 func() interface{} { return facultyEvents() },
		Announcements:          func() interface{} { return facultyAnnouncements() },
		Tasks:                  func() interface{} { return facultyTasks() },
		Roster:                 func() interface{} { return roster() },
		Classes:                func() interface{} { return classes() },
		ClassStudents:          func() interface{} { return classStudents() },
		AttendanceUploads:      func() interface{} { return attendanceUploads() },
		ClassPerformance:       func() interface{} { return classPerformance() },
		PerformanceAssignments: func() interface{} { return performanceAssignments() },
		Assessments:            func() interface{} { return assessments() },
	},
}

// seed returns the demo dataset of e for role, or an empty list when there is none.
func seed[T any](e Entity, role account.Role) []T {
	if fn, ok := seeds[role][e]; ok {
		if list, ok := fn().([]T); ok {
			return list
		}
	}
	return make([]T, 0)
}

func studentCourses() []Course {
	return []Course{
		{ID: 1, Code: "CS101", Name: "Introduction to Computer Science", Instructor: "Prof. Jane Smith", Schedule: "Mon/Wed/Fri 10:00 AM - 11:30 AM", Progress: 75, Assignments: 5, Status: StatusActive},
		{ID: 2, Code: "MATH201", Name: "Calculus II", Instructor: "Prof. Robert Johnson", Schedule: "Tue/Thu 1:00 PM - 2:30 PM", Progress: 60, Assignments: 3, Status: StatusActive},
		{ID: 3, Code: "PHYS201", Name: "Physics for Engineers", Instructor: "Dr. Michael Lee", Schedule: "Mon/Wed 2:00 PM - 3:30 PM", Progress: 45, Assignments: 4, Status: StatusActive},
		{ID: 4, Code: "ENG102", Name: "English Literature", Instructor: "Prof. Sarah Williams", Schedule: "Tue/Thu 10:00 AM - 11:30 AM", Progress: 80, Assignments: 2, Status: StatusActive},
		{ID: 5, Code: "CS100", Name: "Introduction to Programming", Instructor: "Prof. James Wilson", Schedule: "Completed Fall 2023", Progress: 100, Assignments: 0, Status: StatusCompleted},
		{ID: 6, Code: "MATH101", Name: "Calculus I", Instructor: "Prof. Robert Johnson", Schedule: "Completed Fall 2023", Progress: 100, Assignments: 0, Status: StatusCompleted},
	}
}

func facultyCourses() []Course {
	return []Course{
		{ID: 1, Code: "CS101", Name: "Introduction to Computer Science", Students: 28, Schedule: "Mon/Wed/Fri 10:00 AM - 11:30 AM", Assignments: 5, Status: StatusActive},
		{ID: 2, Code: "CS202", Name: "Data Structures and Algorithms", Students: 22, Schedule: "Tue/Thu 2:00 PM - 3:30 PM", Assignments: 4, Status: StatusActive},
		{ID: 3, Code: "CS301", Name: "Database Systems", Students: 18, Schedule: "Mon/Wed 1:00 PM - 2:30 PM", Assignments: 3, Status: StatusActive},
		{ID: 4, Code: "CS100", Name: "Introduction to Programming", Students: 32, Schedule: "Completed Fall 2023", Assignments: 0, Status: StatusCompleted},
	}
}

func studentAssignments() []Assignment {
	return []Assignment{
		{ID: 1, Title: "Algorithm Analysis Paper", Course: "CS101 - Introduction to Computer Science", DueDate: "2025-05-25T23:59:59", Status: StatusPending, Description: "Write a 5-page paper on the time complexity analysis of sorting algorithms."},
		{ID: 2, Title: "Calculus Problem Set", Course: "MATH201 - Calculus II", DueDate: "2025-05-20T23:59:59", Status: StatusPending, Description: "Complete problems 1-20 from Chapter 5."},
		{ID: 3, Title: "Physics Lab Report", Course: "PHYS201 - Physics for Engineers", DueDate: "2025-05-22T23:59:59", Status: StatusPending, Description: "Write a lab report on the pendulum experiment conducted in lab."},
		{ID: 4, Title: "Literary Analysis Essay", Course: "ENG102 - English Literature", DueDate: "2025-05-29T23:59:59", Status: StatusPending, Description: "Write a 3-page analysis of the themes in 'To Kill a Mockingbird'."},
		{ID: 5, Title: "Programming Assignment", Course: "CS101 - Introduction to Computer Science", DueDate: "2025-05-15T23:59:59", Status: StatusCompleted, Description: "Implement a binary search tree in Python.", UploadedFile: "binary_search_tree.py", SubmissionDate: "2025-05-10T14:30:00"},
		{ID: 6, Title: "Calculus Midterm", Course: "MATH201 - Calculus II", DueDate: "2025-05-10T14:30:00", Status: StatusCompleted, Description: "Midterm examination covering Chapters 1-3.", UploadedFile: "calculus_midterm.pdf", SubmissionDate: "2025-05-08T10:15:00"},
	}
}

func facultyAssignments() []Assignment {
	return []Assignment{
		{ID: 1, Title: "Algorithm Analysis Paper", Course: "CS101 - Introduction to Computer Science", DueDate: "2025-05-25T23:59:59", Status: StatusActive, Description: "Write a 5-page paper on the time complexity analysis of sorting algorithms.", Submissions: 15, TotalStudents: 28},
		{ID: 2, Title: "Programming Assignment", Course: "CS101 - Introduction to Computer Science", DueDate: "2025-05-15T23:59:59", Status: StatusPast, Description: "Implement a binary search tree in Python.", Submissions: 28, TotalStudents: 28},
		{ID: 3, Title: "Database Design Project", Course: "CS301 - Database Systems", DueDate: "2025-05-30T23:59:59", Status: StatusActive, Description: "Design a database schema for a hospital management system.", Submissions: 5, TotalStudents: 18},
		{ID: 4, Title: "Midterm Exam", Course: "CS202 - Data Structures and Algorithms", DueDate: "2025-05-18T10:00:00", Status: StatusPast, Description: "Midterm examination covering binary trees, heaps, and graphs.", Submissions: 22, TotalStudents: 22},
		{ID: 5, Title: "Algorithm Implementation", Course: "CS202 - Data Structures and Algorithms", DueDate: "2025-05-28T23:59:59", Status: StatusActive, Description: "Implement Dijkstra's algorithm and analyze its time complexity.", Submissions: 10, TotalStudents: 22},
	}
}

func attendanceCourses() []CourseAttendance {
	return []CourseAttendance{
		{ID: "CS101", Name: "Introduction to Programming", Attendance: 85, Classes: 24, Present: 20},
		{ID: "CS201", Name: "Data Structures", Attendance: 92, Classes: 26, Present: 24},
		{ID: "CS301", Name: "Database Management", Attendance: 76, Classes: 21, Present: 16},
		{ID: "CS401", Name: "Computer Networks", Attendance: 88, Classes: 23, Present: 20},
		{ID: "MA101", Name: "Engineering Mathematics", Attendance: 72, Classes: 25, Present: 18},
	}
}

func attendanceRecords() []AttendanceRecord {
	return []AttendanceRecord{
		{Date: "2023-05-15", Course: "CS101", Status: "Present"},
		{Date: "2023-05-16", Course: "CS201", Status: "Present"},
		{Date: "2023-05-16", Course: "CS301", Status: "Absent"},
		{Date: "2023-05-17", Course: "CS401", Status: "Present"},
		{Date: "2023-05-17", Course: "MA101", Status: "Present"},
		{Date: "2023-05-18", Course: "CS101", Status: "Present"},
		{Date: "2023-05-18", Course: "CS201", Status: "Present"},
		{Date: "2023-05-19", Course: "CS301", Status: "Present"},
		{Date: "2023-05-19", Course: "CS401", Status: "Absent"},
		{Date: "2023-05-20", Course: "MA101", Status: "Present"},
	}
}

func fees() []Fee {
	return []Fee{
		{ID: "fee-1", Name: "Tuition Fee - Semester 5", Amount: 45000, DueDate: "2025-05-30", Status: StatusPending},
		{ID: "fee-2", Name: "Library Fee", Amount: 2500, DueDate: "2025-05-25", Status: StatusPending},
		{ID: "fee-3", Name: "Examination Fee", Amount: 3500, DueDate: "2025-06-10", Status: StatusPending},
		{ID: "fee-4", Name: "Hostel Fee - Quarter 2", Amount: 25000, DueDate: "2025-05-15", Status: StatusOverdue},
		{ID: "fee-5", Name: "Tuition Fee - Semester 4", Amount: 45000, DueDate: "2025-01-15", Status: StatusPaid},
	}
}

func studentEvents() []Event {
	return []Event{
		{ID: 1, Title: "Computer Science 101", Type: "class", Date: "2025-05-17", StartTime: "10:00", EndTime: "11:30", Location: "Science Building, Room 305", Course: "CS101"},
		{ID: 2, Title: "Calculus II", Type: "class", Date: "2025-05-17", StartTime: "13:00", EndTime: "14:30", Location: "Math Building, Room 201", Course: "MATH201"},
		{ID: 3, Title: "Algorithm Analysis Paper Due", Type: "assignment", Date: "2025-05-25", StartTime: "23:59", EndTime: "23:59", Location: "Online Submission", Description: "Final day to submit your algorithm analysis paper", Course: "CS101"},
		{ID: 4, Title: "Physics Midterm Exam", Type: "exam", Date: "2025-05-22", StartTime: "14:00", EndTime: "16:00", Location: "Science Building, Room 401", Description: "Bring calculators and formula sheets", Course: "PHYS201"},
		{ID: 5, Title: "Academic Advising Meeting", Type: "meeting", Date: "2025-05-20", StartTime: "11:00", EndTime: "11:30", Location: "Administration Building, Room 102", Description: "Meeting with Prof. Johnson to discuss next semester courses"},
		{ID: 6, Title: "English Literature", Type: "class", Date: "2025-05-17", StartTime: "15:00", EndTime: "16:30", Location: "Humanities Building, Room 210", Course: "ENG102"},
	}
}

func facultyEvents() []Event {
	return []Event{
		{ID: 1, Title: "Computer Science 101", Type: "class", Date: "2025-05-17", StartTime: "10:00", EndTime: "11:30", Location: "Science Building, Room 305", Course: "CS101"},
		{ID: 2, Title: "Data Structures and Algorithms", Type: "class", Date: "2025-05-17", StartTime: "14:00", EndTime: "15:30", Location: "Science Building, Room 310", Course: "CS202"},
		{ID: 3, Title: "Department Meeting", Type: "meeting", Date: "2025-05-19", StartTime: "13:00", EndTime: "14:00", Location: "Admin Building, Conference Room 2", Description: "Weekly department meeting"},
		{ID: 4, Title: "Office Hours", Type: "office_hours", Date: "2025-05-18", StartTime: "13:00", EndTime: "15:00", Location: "Science Building, Room 315", Description: "Office hours for students"},
		{ID: 5, Title: "CS202 Midterm", Type: "exam", Date: "2025-05-18", StartTime: "10:00", EndTime: "12:00", Location: "Science Building, Room 401", Course: "CS202"},
		{ID: 6, Title: "Database Systems", Type: "class", Date: "2025-05-17", StartTime: "16:00", EndTime: "17:30", Location: "Science Building, Room 308", Course: "CS301"},
	}
}

func studentAnnouncements() []Announcement {
	return []Announcement{
		{Title: "Finals Schedule Posted", Content: "Finals week schedule is now available. Check your student portal for exam dates.", Date: "2 days ago"},
		{Title: "Campus Maintenance", Content: "The library will be closed for maintenance this weekend.", Date: "3 days ago"},
		{Title: "Academic Advising", Content: "Remember to schedule your academic advising appointment for next semester registration.", Date: "1 week ago"},
	}
}

func facultyAnnouncements() []Announcement {
	return []Announcement{
		{Title: "Faculty Meeting", Content: "Reminder: Faculty meeting this Friday at 3 PM in the Conference Room.", Date: "1 day ago"},
		{Title: "Grade Submission Deadline", Content: "Final grades must be submitted by June 15th.", Date: "3 days ago"},
		{Title: "Department Budget Update", Content: "Budget requests for next academic year are due by the end of the month.", Date: "1 week ago"},
	}
}

func facultyTasks() []Task {
	return []Task{
		{Title: "Grade Midterm Exams", Course: "Computer Science 101"},
		{Title: "Prepare Final Exam", Course: "Calculus II"},
		{Title: "Submit Course Evaluations", Course: "All Courses"},
	}
}

func roster() []Student {
	student := func(id, first, last string, gpa float64, year, status string, courses ...string) Student {
		return Student{
			ID:      id,
			Name:    first + " " + last,
			Email:   strings.ToLower(first) + "." + strings.ToLower(last) + "@university.edu",
			Program: "Computer Science",
			GPA:     gpa,
			Year:    year,
			Status:  status,
			Courses: courses,
		}
	}
	return []Student{
		student("S1001", "Rahul", "Sharma", 3.8, "Junior", "honors", "CS101", "CS202", "MATH201"),
		student("S1002", "Priya", "Patel", 3.9, "Senior", "honors", "CS202", "CS301"),
		student("S1003", "Vikram", "Singh", 2.7, "Sophomore", "probation", "CS101", "MATH201"),
		student("S1004", "Anjali", "Gupta", 3.5, "Junior", "active", "CS101", "CS301"),
		student("S1005", "Raj", "Kumar", 3.2, "Senior", "active", "CS202", "CS301"),
		student("S1006", "Meera", "Joshi", 4.0, "Junior", "honors", "CS101", "CS202", "CS301", "MATH201"),
		student("S1007", "Arjun", "Nair", 2.9, "Sophomore", "active", "CS101", "MATH201"),
		student("S1008", "Ananya", "Reddy", 3.7, "Senior", "honors", "CS202", "CS301"),
	}
}

func classes() []ClassInfo {
	const dept = "Computer Science"
	return []ClassInfo{
		{ID: "CS101A", Name: "Introduction to Programming (Section A)", Students: 45, Department: dept},
		{ID: "CS101B", Name: "Introduction to Programming (Section B)", Students: 40, Department: dept},
		{ID: "CS201", Name: "Data Structures", Students: 38, Department: dept},
		{ID: "CS301", Name: "Database Management", Students: 42, Department: dept},
	}
}

func classStudents() []ClassStudent {
	return []ClassStudent{
		{ID: "ST001", Name: "Rahul Sharma", Roll: "CS2101", Attendance: 85, Overall: 82},
		{ID: "ST002", Name: "Priya Patel", Roll: "CS2102", Attendance: 92, Overall: 91},
		{ID: "ST003", Name: "Vikram Singh", Roll: "CS2103", Attendance: 78, Overall: 78},
		{ID: "ST004", Name: "Meera Joshi", Roll: "CS2104", Attendance: 95, Overall: 95},
		{ID: "ST005", Name: "Arjun Kumar", Roll: "CS2105", Attendance: 82, Overall: 84},
		{ID: "ST006", Name: "Ananya Reddy", Roll: "CS2106", Attendance: 90, Overall: 88},
		{ID: "ST007", Name: "Rohit Verma", Roll: "CS2107", Attendance: 76, Overall: 79},
		{ID: "ST008", Name: "Neha Gupta", Roll: "CS2108", Attendance: 88, Overall: 86},
		{ID: "ST009", Name: "Karan Malhotra", Roll: "CS2109", Attendance: 72, Overall: 75},
		{ID: "ST010", Name: "Divya Sharma", Roll: "CS2110", Attendance: 94, Overall: 93},
	}
}

func attendanceUploads() []AttendanceUpload {
	return []AttendanceUpload{
		{ID: 1, Class: "CS101A", Date: "2023-05-15", Time: "10:30 AM", Students: 45, UploadedBy: "You"},
		{ID: 2, Class: "CS201", Date: "2023-05-14", Time: "2:15 PM", Students: 38, UploadedBy: "You"},
		{ID: 3, Class: "CS101B", Date: "2023-05-12", Time: "11:45 AM", Students: 40, UploadedBy: "You"},
	}
}

func classPerformance() []PerformanceSummary {
	return []PerformanceSummary{
		{Name: "Quiz 1", Average: 72, Max: 95, Min: 45},
		{Name: "Mid-Term", Average: 68, Max: 92, Min: 40},
		{Name: "Quiz 2", Average: 78, Max: 98, Min: 52},
		{Name: "Project", Average: 85, Max: 100, Min: 65},
		{Name: "Final Exam", Average: 76, Max: 94, Min: 48},
	}
}

func performanceAssignments() []PerformanceAssignment {
	return []PerformanceAssignment{
		{ID: 1, Title: "Assignment 1: Introduction to Variables", DueDate: "2023-08-15", Submitted: 42, Total: 45},
		{ID: 2, Title: "Assignment 2: Control Structures", DueDate: "2023-08-22", Submitted: 40, Total: 45},
		{ID: 3, Title: "Assignment 3: Functions", DueDate: "2023-08-29", Submitted: 38, Total: 45},
		{ID: 4, Title: "Assignment 4: Arrays and Lists", DueDate: "2023-09-05", Submitted: 35, Total: 45},
	}
}

func assessments() []Assessment {
	return []Assessment{
		{ID: 1, Name: "Quiz 1", Marks: 18, Total: 20, Date: "2023-07-10"},
		{ID: 2, Name: "Assignment 1", Marks: 23, Total: 25, Date: "2023-07-15"},
		{ID: 3, Name: "Mid-Term", Marks: 35, Total: 50, Date: "2023-08-05"},
		{ID: 4, Name: "Quiz 2", Marks: 17, Total: 20, Date: "2023-08-25"},
		{ID: 5, Name: "Assignment 2", Marks: 22, Total: 25, Date: "2023-09-01"},
	}
}
