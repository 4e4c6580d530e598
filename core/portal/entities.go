package portal

import "github.com/campusdesk/portal/core/account"

// Entity names a per-user record list.
type Entity string

// Entities
const (
	Courses           Entity = "courses"
	Assignments       Entity = "assignments"
	AttendanceCourses Entity = "attendance_courses"
	AttendanceRecords Entity = "attendance_records"
	Fees              Entity = "fees"
	Events            Entity = "events"
	Announcements     Entity = "announcements"

	// faculty-owned
	Roster                 Entity = "faculty_students"
	Classes                Entity = "faculty_classes"
	ClassStudents          Entity = "faculty_students_detailed"
	AttendanceUploads      Entity = "faculty_attendance_uploads"
	ClassPerformance       Entity = "faculty_performance"
	PerformanceAssignments Entity = "faculty_assignments"
	Assessments            Entity = "faculty_assessments"
	Tasks                  Entity = "faculty_tasks"
)

// Key returns the store key of the entity list owned by username.
// Faculty assignments live apart from student assignments.
func (e Entity) Key(role account.Role, username string) string {
	if e == Assignments && role == account.RoleFaculty {
		return "assignments_faculty_" + username
	}
	return string(e) + "_" + username
}

// Statuses
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusPending   = "pending"
	StatusPast      = "past"
	StatusPaid      = "paid"
	StatusOverdue   = "overdue"
)

type (
	Course struct {
		ID          int    `json:"id"`
		Code        string `json:"code"`
		Name        string `json:"name"`
		Instructor  string `json:"instructor,omitempty"`
		Students    int    `json:"students,omitempty"`
		Schedule    string `json:"schedule"`
		Progress    int    `json:"progress,omitempty"`
		Assignments int    `json:"assignments"`
		Status      string `json:"status"` // active | completed
	}

	Assignment struct {
		ID             int    `json:"id"`
		Title          string `json:"title"`
		Course         string `json:"course"`
		DueDate        string `json:"dueDate"`
		Status         string `json:"status"` // pending | completed (student), active | past (faculty)
		Description    string `json:"description"`
		Submissions    int    `json:"submissions,omitempty"`
		TotalStudents  int    `json:"totalStudents,omitempty"`
		UploadedFile   string `json:"uploadedFile,omitempty"`
		SubmissionDate string `json:"submissionDate,omitempty"`
	}

	CourseAttendance struct {
		ID         string `json:"id"`
		Name       string `json:"name"`
		Attendance int    `json:"attendance"` // percent
		Classes    int    `json:"classes"`
		Present    int    `json:"present"`
	}

	AttendanceRecord struct {
		Date   string `json:"date"`
		Course string `json:"course"`
		Status string `json:"status"` // Present | Absent
	}

	Fee struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Amount  int    `json:"amount"`
		DueDate string `json:"dueDate"`
		Status  string `json:"status"` // paid | pending | overdue
	}

	Event struct {
		ID          int    `json:"id"`
		Title       string `json:"title"`
		Type        string `json:"type"` // class | exam | assignment | meeting | office_hours
		Date        string `json:"date"`
		StartTime   string `json:"startTime"`
		EndTime     string `json:"endTime"`
		Location    string `json:"location"`
		Description string `json:"description,omitempty"`
		Course      string `json:"course,omitempty"`
	}

	Announcement struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		Date    string `json:"date"`
	}

	Task struct {
		Title  string `json:"title"`
		Course string `json:"course"`
	}

	Student struct {
		ID      string   `json:"id"`
		Name    string   `json:"name"`
		Email   string   `json:"email"`
		Program string   `json:"program"`
		GPA     float64  `json:"gpa"`
		Year    string   `json:"year"`
		Status  string   `json:"status"` // active | probation | honors
		Courses []string `json:"courses"`
	}

	ClassInfo struct {
		ID         string `json:"id"`
		Name       string `json:"name"`
		Students   int    `json:"students"`
		Department string `json:"department,omitempty"`
	}

	// ClassStudent is a student of one of the faculty's classes.
	ClassStudent struct {
		ID         string `json:"id"`
		Name       string `json:"name"`
		Roll       string `json:"roll"`
		Attendance int    `json:"attendance,omitempty"` // percent
		Overall    int    `json:"overall,omitempty"`    // percent
	}

	AttendanceUpload struct {
		ID         int    `json:"id"`
		Class      string `json:"class"`
		Date       string `json:"date"`
		Time       string `json:"time"`
		Students   int    `json:"students"`
		UploadedBy string `json:"uploadedBy"`
	}

	PerformanceSummary struct {
		Name    string `json:"name"`
		Average int    `json:"average"`
		Max     int    `json:"max"`
		Min     int    `json:"min"`
	}

	PerformanceAssignment struct {
		ID        int    `json:"id"`
		Title     string `json:"title"`
		DueDate   string `json:"dueDate"`
		Submitted int    `json:"submitted"`
		Total     int    `json:"total"`
	}

	Assessment struct {
		ID    int    `json:"id"`
		Name  string `json:"name"`
		Marks int    `json:"marks"`
		Total int    `json:"total"`
		Date  string `json:"date"`
	}
)
