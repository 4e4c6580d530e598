// Package chat answers help-widget messages with canned responses.
package chat

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"
)

type canned struct {
	keyword  string
	response string
}

// checked in order; the first keyword found in the message wins
var predefined = []canned{
	// general
	{"hello", "Hello! How can I help you today?"},
	{"hi", "Hi there! How can I assist you with the student portal?"},
	{"help", "I can help with questions about courses, assignments, attendance, fee payments, and general portal navigation. What would you like to know about?"},

	// student
	{"courses", "You can view all your enrolled courses in the Courses section. Each course shows the instructor, schedule, and current progress."},
	{"assignments", "Check the Assignments section to view all your pending and completed assignments. You can upload submissions directly through the portal."},
	{"attendance", "Your attendance records are available in the Attendance section. You can view subject-wise attendance and see your overall attendance percentage."},
	{"fees", "Visit the Fee Payment section to view pending fees, payment history, and make new payments using various payment methods."},
	{"schedule", "Your class schedule is available in the Schedule section. It shows all your classes organized by weekday and time."},
	{"exams", "Exam schedules will be posted in the Announcements section. You can also check individual course pages for specific exam details."},
	{"contact faculty", "You can message faculty members directly through the portal by visiting their profile page from your course listings."},
	{"reset password", "To reset your password, log out and use the 'Forgot Password' option on the login page."},
	{"logout", "You can logout by clicking on your profile icon in the top-right corner and selecting Logout."},

	// faculty
	{"grade assignments", "As a faculty member, you can grade student assignments by navigating to the Assignments section and selecting the assignment you want to grade. You can provide feedback and assign scores directly."},
	{"student performance", "The Student Performance section provides analytics on student progress, attendance, and assignment completion rates. You can view individual student reports or class-wide statistics."},
	{"create assignment", "To create a new assignment, go to the Assignments section and click on the 'Create Assignment' button. You can set due dates, attach files, and specify submission requirements."},
	{"attendance management", "The Attendance Management section allows you to mark attendance for your classes, view attendance reports, and identify students with low attendance percentages."},
	{"class management", "Faculty can manage their classes through the Courses section. You can add course materials, send announcements, and organize course content."},
	{"report issue", "If you encounter any technical issues, please click on the 'Report Issue' option in your profile menu. Describe the problem in detail, and our IT team will assist you."},
	{"teaching schedule", "Your teaching schedule is available in the Schedule section. It displays all your classes organized by weekday and time slot."},
	{"contact admin", "To contact the administration, use the 'Contact Admin' option in your profile menu or send a message through the portal's messaging system."},
}

var (
	studentKeywords = []string{"my courses", "my assignments", "my attendance", "my fees", "my schedule", "student portal"}
	studentResponse = "I notice you're asking about student-related features. As a student, you can access your courses, assignments, attendance records, and fee information through the respective sections in the portal."

	facultyKeywords = []string{"grade", "create assignment", "student performance", "manage attendance", "class management", "teaching"}
	facultyResponse = "I see you're asking about faculty-related features. As a faculty member, you have access to grade assignments, manage attendance, view student performance analytics, and create new course materials through the faculty dashboard."

	fallbacks = []string{
		"I'm not sure I understand. Could you rephrase your question?",
		"I don't have information about that yet. Is there something else I can help with?",
		"That's beyond my current knowledge. For technical support, please contact the IT department.",
		"I'm still learning about that. Can I help you with courses, assignments, attendance, or fee payments instead?",
		"I don't have that information in my database. Would you like to know about a different topic?",
	}
)

// Responder picks canned replies after a random delay in [MinDelay, MaxDelay).
type Responder struct {
	MinDelay time.Duration
	MaxDelay time.Duration

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewResponder(minDelay, maxDelay time.Duration) *Responder {
	return &Responder{
		MinDelay: minDelay,
		MaxDelay: maxDelay,
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *Responder) intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Intn(n)
}

func (r *Responder) delay() time.Duration {
	if r.MaxDelay <= r.MinDelay {
		return r.MinDelay
	}
	span := int64(r.MaxDelay - r.MinDelay)
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.MinDelay + time.Duration(r.rnd.Int63n(span))
}

// Reply waits the simulated processing time, then answers message.
// It returns early with ctx's error when ctx is done first.
func (r *Responder) Reply(ctx context.Context, message string) (string, error) {
	if d := r.delay(); d > 0 {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}
	return r.Pick(message), nil
}

// Pick answers message without waiting.
func (r *Responder) Pick(message string) string {
	msg := strings.ToLower(message)
	for _, c := range predefined {
		if strings.Contains(msg, c.keyword) {
			return c.response
		}
	}
	if containsAny(msg, studentKeywords) {
		return studentResponse
	}
	if containsAny(msg, facultyKeywords) {
		return facultyResponse
	}
	return fallbacks[r.intn(len(fallbacks))]
}

func containsAny(msg string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(msg, kw) {
			return true
		}
	}
	return false
}
