package portal

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/campusdesk/portal/core"
	"github.com/campusdesk/portal/core/record"
	"github.com/campusdesk/portal/core/session"
)

var (
	ErrAssignmentNotFound = errors.New("assignment not found")

	errNoFile = core.NewValidationError(
		errors.New("missing information"),
		core.FieldError{Field: "fileName", Error: "please select a file to upload"},
	)
	errNoFees = core.NewValidationError(
		errors.New("missing information"),
		core.FieldError{Field: "feeIds", Error: "please select at least one fee to pay"},
	)
)

type (
	// Source is where the list of one entity of a session is loaded from and saved to.
	Source[T any] interface {
		Load(ctx context.Context) ([]T, error)
		Save(ctx context.Context, list []T) error
		// Demo reports whether the list is the fixed demo dataset.
		Demo() bool
	}

	seedSource[T any] struct {
		entity Entity
		sess   session.Session
	}

	storeSource[T any] struct {
		store record.Store
		key   string
	}
)

func (src seedSource[T]) Load(context.Context) ([]T, error) {
	return seed[T](src.entity, src.sess.Role), nil
}

// Save discards the list: demo data never changes.
func (seedSource[T]) Save(context.Context, []T) error { return nil }
func (seedSource[T]) Demo() bool                      { return true }

func (src storeSource[T]) Load(ctx context.Context) ([]T, error) {
	return record.ReadList[T](ctx, src.store, src.key)
}

func (src storeSource[T]) Save(ctx context.Context, list []T) error {
	return record.WriteJSON(ctx, src.store, src.key, list)
}

func (storeSource[T]) Demo() bool { return false }

// Resolver serves every entity list of a session, either from the demo dataset or from the store.
type Resolver struct {
	store record.Store
}

func NewResolver(store record.Store) *Resolver {
	return &Resolver{store: store}
}

// SourceFor decides once where entity e of sess comes from.
func SourceFor[T any](r *Resolver, e Entity, sess session.Session) Source[T] {
	if sess.IsDemoIdentity() {
		return seedSource[T]{entity: e, sess: sess}
	}
	return storeSource[T]{store: r.store, key: e.Key(sess.Role, sess.Username)}
}

func load[T any](ctx context.Context, r *Resolver, e Entity, sess session.Session) ([]T, error) {
	list, err := SourceFor[T](r, e, sess).Load(ctx)
	return list, errors.Wrapf(err, "loading %s", e)
}

func (r *Resolver) Courses(ctx context.Context, sess session.Session) ([]Course, error) {
	return load[Course](ctx, r, Courses, sess)
}

func (r *Resolver) Assignments(ctx context.Context, sess session.Session) ([]Assignment, error) {
	return load[Assignment](ctx, r, Assignments, sess)
}

func (r *Resolver) AttendanceCourses(ctx context.Context, sess session.Session) ([]CourseAttendance, error) {
	return load[CourseAttendance](ctx, r, AttendanceCourses, sess)
}

func (r *Resolver) AttendanceRecords(ctx context.Context, sess session.Session) ([]AttendanceRecord, error) {
	return load[AttendanceRecord](ctx, r, AttendanceRecords, sess)
}

func (r *Resolver) Fees(ctx context.Context, sess session.Session) ([]Fee, error) {
	return load[Fee](ctx, r, Fees, sess)
}

func (r *Resolver) Events(ctx context.Context, sess session.Session) ([]Event, error) {
	return load[Event](ctx, r, Events, sess)
}

func (r *Resolver) Announcements(ctx context.Context, sess session.Session) ([]Announcement, error) {
	return load[Announcement](ctx, r, Announcements, sess)
}

func (r *Resolver) Tasks(ctx context.Context, sess session.Session) ([]Task, error) {
	return load[Task](ctx, r, Tasks, sess)
}

func (r *Resolver) Roster(ctx context.Context, sess session.Session) ([]Student, error) {
	return load[Student](ctx, r, Roster, sess)
}

func (r *Resolver) Classes(ctx context.Context, sess session.Session) ([]ClassInfo, error) {
	return load[ClassInfo](ctx, r, Classes, sess)
}

func (r *Resolver) ClassStudents(ctx context.Context, sess session.Session) ([]ClassStudent, error) {
	return load[ClassStudent](ctx, r, ClassStudents, sess)
}

func (r *Resolver) AttendanceUploads(ctx context.Context, sess session.Session) ([]AttendanceUpload, error) {
	return load[AttendanceUpload](ctx, r, AttendanceUploads, sess)
}

func (r *Resolver) ClassPerformance(ctx context.Context, sess session.Session) ([]PerformanceSummary, error) {
	return load[PerformanceSummary](ctx, r, ClassPerformance, sess)
}

func (r *Resolver) PerformanceAssignments(ctx context.Context, sess session.Session) ([]PerformanceAssignment, error) {
	return load[PerformanceAssignment](ctx, r, PerformanceAssignments, sess)
}

func (r *Resolver) Assessments(ctx context.Context, sess session.Session) ([]Assessment, error) {
	return load[Assessment](ctx, r, Assessments, sess)
}

// SubmitAssignment marks assignment id as completed with fileName attached.
// The updated list is always returned; it is saved only for non-demo identities.
func (r *Resolver) SubmitAssignment(ctx context.Context, sess session.Session, id int, fileName string) ([]Assignment, error) {
	fileName = core.CleanString(fileName)
	if fileName == "" {
		return nil, errNoFile
	}

	src := SourceFor[Assignment](r, Assignments, sess)
	list, err := src.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "loading assignments")
	}

	found := false
	for i := range list {
		if list[i].ID == id {
			list[i].Status = StatusCompleted
			list[i].UploadedFile = fileName
			list[i].SubmissionDate = core.NowFunc().UTC().Format(time.RFC3339)
			found = true
			break
		}
	}
	if !found {
		return nil, ErrAssignmentNotFound
	}

	if err = src.Save(ctx, list); err != nil {
		return nil, errors.Wrap(err, "saving assignments")
	}
	return list, nil
}

// PayFees marks the fees with the given ids as paid. Unknown ids are ignored.
// The updated list is always returned; it is saved only for non-demo identities.
func (r *Resolver) PayFees(ctx context.Context, sess session.Session, ids []string) ([]Fee, error) {
	if len(ids) == 0 {
		return nil, errNoFees
	}
	selected := make(map[string]bool, len(ids))
	for _, id := range ids {
		selected[id] = true
	}

	src := SourceFor[Fee](r, Fees, sess)
	list, err := src.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "loading fees")
	}
	for i := range list {
		if selected[list[i].ID] {
			list[i].Status = StatusPaid
		}
	}

	if err = src.Save(ctx, list); err != nil {
		return nil, errors.Wrap(err, "saving fees")
	}
	return list, nil
}
