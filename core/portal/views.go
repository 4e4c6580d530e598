package portal

import (
	"context"
	"sort"
	"strings"

	"github.com/campusdesk/portal/core/session"
)

type (
	FeeSummary struct {
		TotalPending int `json:"totalPending"` // pending and overdue amounts
		DueSoon      int `json:"dueSoon"`
		Overdue      int `json:"overdue"`
	}

	CourseProgress struct {
		Name     string `json:"name"`
		Progress int    `json:"progress"`
	}

	Dashboard struct {
		ActiveCourses int            `json:"activeCourses"`
		NextClass     *Event         `json:"nextClass"`
		Announcements []Announcement `json:"announcements"`

		// student
		UpcomingAssignments int              `json:"upcomingAssignments,omitempty"`
		CourseProgress      []CourseProgress `json:"courseProgress,omitempty"`
		PendingFees         int              `json:"pendingFees,omitempty"`

		// faculty
		TotalStudents     int    `json:"totalStudents,omitempty"`
		ActiveAssignments int    `json:"activeAssignments,omitempty"`
		Tasks             []Task `json:"tasks,omitempty"`
	}

	// Ordering sorts a list on one field.
	Ordering struct {
		Field     string
		Ascending bool
	}
)

func SummarizeFees(fees []Fee) FeeSummary {
	var sum FeeSummary
	for _, fee := range fees {
		switch fee.Status {
		case StatusPending:
			sum.TotalPending += fee.Amount
			sum.DueSoon++
		case StatusOverdue:
			sum.TotalPending += fee.Amount
			sum.Overdue++
		}
	}
	return sum
}

// EventsOn returns the events of date ordered by start time. An empty date keeps every event.
func EventsOn(events []Event, date string) []Event {
	out := make([]Event, 0, len(events))
	for _, ev := range events {
		if date == "" || ev.Date == date {
			out = append(out, ev)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out
}

// nextClass returns the earliest class event, if any.
func nextClass(events []Event) *Event {
	var next *Event
	for i, ev := range events {
		if ev.Type != "class" {
			continue
		}
		if next == nil || ev.Date < next.Date || (ev.Date == next.Date && ev.StartTime < next.StartTime) {
			next = &events[i]
		}
	}
	return next
}

// FilterStudents keeps the students whose name, email or id contains search (case-insensitive)
// and sorts them by orderings, name ascending by default.
func FilterStudents(students []Student, search string, orderings ...Ordering) []Student {
	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]Student, 0, len(students))
	for _, st := range students {
		if search == "" ||
			strings.Contains(strings.ToLower(st.Name), search) ||
			strings.Contains(strings.ToLower(st.Email), search) ||
			strings.Contains(strings.ToLower(st.ID), search) {
			out = append(out, st)
		}
	}
	if len(orderings) == 0 {
		orderings = []Ordering{{Field: "name", Ascending: true}}
	}

	sort.SliceStable(out, func(i, j int) bool {
		for _, ord := range orderings {
			c := compareStudents(out[i], out[j], ord.Field)
			if c == 0 {
				continue
			}
			if ord.Ascending {
				return c < 0
			}
			return c > 0
		}
		return false
	})
	return out
}

func compareStudents(a, b Student, field string) int {
	str := func(x, y string) int { return strings.Compare(strings.ToLower(x), strings.ToLower(y)) }
	switch field {
	case "id":
		return str(a.ID, b.ID)
	case "name":
		return str(a.Name, b.Name)
	case "email":
		return str(a.Email, b.Email)
	case "program":
		return str(a.Program, b.Program)
	case "year":
		return str(a.Year, b.Year)
	case "status":
		return str(a.Status, b.Status)
	case "gpa":
		switch {
		case a.GPA < b.GPA:
			return -1
		case a.GPA > b.GPA:
			return 1
		}
	}
	return 0
}

// Dashboard summarizes the resolved entities of sess.
func (r *Resolver) Dashboard(ctx context.Context, sess session.Session) (Dashboard, error) {
	var dash Dashboard

	courses, err := r.Courses(ctx, sess)
	if err != nil {
		return dash, err
	}
	assignments, err := r.Assignments(ctx, sess)
	if err != nil {
		return dash, err
	}
	events, err := r.Events(ctx, sess)
	if err != nil {
		return dash, err
	}
	if dash.Announcements, err = r.Announcements(ctx, sess); err != nil {
		return dash, err
	}
	dash.NextClass = nextClass(events)

	for _, c := range courses {
		if c.Status != StatusActive {
			continue
		}
		dash.ActiveCourses++
		dash.TotalStudents += c.Students
		if sess.IsStudent() {
			dash.CourseProgress = append(dash.CourseProgress, CourseProgress{Name: c.Name, Progress: c.Progress})
		}
	}
	for _, a := range assignments {
		switch a.Status {
		case StatusPending:
			dash.UpcomingAssignments++
		case StatusActive:
			dash.ActiveAssignments++
		}
	}

	switch {
	case sess.IsStudent():
		fees, err := r.Fees(ctx, sess)
		if err != nil {
			return dash, err
		}
		dash.PendingFees = SummarizeFees(fees).TotalPending
	case sess.IsFaculty():
		if dash.Tasks, err = r.Tasks(ctx, sess); err != nil {
			return dash, err
		}
	}
	return dash, nil
}
