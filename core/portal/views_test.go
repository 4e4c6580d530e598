package portal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusdesk/portal/core/record"
)

func TestSummarizeFees(t *testing.T) {
	assert.Equal(t, FeeSummary{TotalPending: 76000, DueSoon: 3, Overdue: 1}, SummarizeFees(fees()))
	assert.Equal(t, FeeSummary{}, SummarizeFees(nil))
}

func TestEventsOn(t *testing.T) {
	events := EventsOn(studentEvents(), "2025-05-17")
	require.Len(t, events, 3)
	assert.Equal(t, []string{"10:00", "13:00", "15:00"}, []string{events[0].StartTime, events[1].StartTime, events[2].StartTime})

	assert.Empty(t, EventsOn(studentEvents(), "2025-01-01"))
	assert.Len(t, EventsOn(studentEvents(), ""), 6)
}

func TestFilterStudents(t *testing.T) {
	all := roster()

	names := func(students []Student) []string {
		out := make([]string, 0, len(students))
		for _, st := range students {
			out = append(out, st.Name)
		}
		return out
	}

	tests := []struct {
		name      string
		search    string
		orderings []Ordering
		want      []string
	}{
		{"by name", "sharma", nil, []string{"Rahul Sharma"}},
		{"by email", "priya.patel@", nil, []string{"Priya Patel"}},
		{"by id", "s100", nil, []string{
			"Ananya Reddy", "Anjali Gupta", "Arjun Nair", "Meera Joshi",
			"Priya Patel", "Rahul Sharma", "Raj Kumar", "Vikram Singh",
		}},
		{"gpa descending", "", []Ordering{{Field: "gpa"}}, []string{
			"Meera Joshi", "Priya Patel", "Rahul Sharma", "Ananya Reddy",
			"Anjali Gupta", "Raj Kumar", "Arjun Nair", "Vikram Singh",
		}},
		{"year then name", "a", []Ordering{{Field: "year", Ascending: true}, {Field: "name", Ascending: false}}, []string{
			"Rahul Sharma", "Meera Joshi", "Anjali Gupta",
			"Raj Kumar", "Priya Patel", "Ananya Reddy",
			"Vikram Singh", "Arjun Nair",
		}},
		{"no match", "zzz", nil, []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, names(FilterStudents(all, tc.search, tc.orderings...)))
		})
	}
}

func TestResolver_Dashboard(t *testing.T) {
	ctx := context.Background()
	r, store := newTestResolver()

	t.Run("demo student", func(t *testing.T) {
		dash, err := r.Dashboard(ctx, demoStudent)
		require.NoError(t, err)
		assert.Equal(t, 4, dash.ActiveCourses)
		assert.Equal(t, 4, dash.UpcomingAssignments)
		assert.Len(t, dash.CourseProgress, 4)
		assert.Equal(t, 76000, dash.PendingFees)
		assert.Len(t, dash.Announcements, 3)
		require.NotNil(t, dash.NextClass)
		assert.Equal(t, "Computer Science 101", dash.NextClass.Title)
		assert.Empty(t, dash.Tasks)
	})

	t.Run("demo faculty", func(t *testing.T) {
		dash, err := r.Dashboard(ctx, demoFaculty)
		require.NoError(t, err)
		assert.Equal(t, 3, dash.ActiveCourses)
		assert.Equal(t, 78, dash.TotalStudents)
		assert.Equal(t, 3, dash.ActiveAssignments)
		assert.Len(t, dash.Tasks, 3)
		assert.Empty(t, dash.CourseProgress)
	})

	t.Run("fresh user", func(t *testing.T) {
		dash, err := r.Dashboard(ctx, alice)
		require.NoError(t, err)
		assert.Zero(t, dash.ActiveCourses)
		assert.Nil(t, dash.NextClass)
		assert.Empty(t, dash.Announcements)
	})

	t.Run("stored data", func(t *testing.T) {
		require.NoError(t, record.WriteJSON(ctx, store, "courses_bob", []Course{
			{ID: 1, Name: "Go", Progress: 10, Status: StatusActive},
			{ID: 2, Name: "C", Progress: 100, Status: StatusCompleted},
		}))
		dash, err := r.Dashboard(ctx, bob)
		require.NoError(t, err)
		assert.Equal(t, 1, dash.ActiveCourses)
		assert.Equal(t, []CourseProgress{{Name: "Go", Progress: 10}}, dash.CourseProgress)
	})
}
