package echoapi

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/campusdesk/portal/core"
	"github.com/campusdesk/portal/core/account"
	"github.com/campusdesk/portal/core/portal"
	"github.com/campusdesk/portal/core/session"
)

const (
	msgFeesStudentsOnly = "Fee payment is only available for students."
	msgAttendanceMarked = "Attendance has been recorded successfully."
)

var errUnknownClass = core.NewValidationError(
	errors.New("unknown class"),
	core.FieldError{Field: "classId", Error: "please select one of your classes"},
)

type pagesApi struct {
	validate *validator.Validate
}

func registerPagesAPI(g *echo.Group, validate *validator.Validate) {
	api := pagesApi{validate: validate}

	student := guard(account.RoleStudent)
	faculty := guard(account.RoleFaculty)
	anyRole := guard()

	g.GET("/dashboard", api.dashboard, anyRole)
	g.GET("/courses", api.courses, anyRole)
	g.GET("/assignments", api.assignments, anyRole)
	g.POST("/assignments/:id/submit", api.submitAssignment, student)
	g.GET("/schedule", api.schedule, anyRole)
	g.GET("/profile", api.profile, anyRole)
	g.GET("/fee-payment", api.feePayment, anyRole)
	g.POST("/fee-payment", api.payFees, student)

	// student pages
	g.GET("/attendance", api.attendance, student)

	// faculty pages
	g.GET("/students", api.students, faculty)
	g.GET("/attendance-management", api.attendanceManagement, faculty)
	g.POST("/attendance-management", api.markAttendance, faculty)
	g.GET("/student-performance", api.studentPerformance, faculty)
}

type (
	SubmitAssignmentRequest struct {
		FileName string `json:"fileName"`
	}

	PayFeesRequest struct {
		FeeIDs []string `json:"feeIds"`
	}

	MarkAttendanceRequest struct {
		ClassID string `json:"classId" validate:"required,notblank"`
		Date    string `json:"date" validate:"required,datetime=2006-01-02"`
	}

	MessageResponse struct {
		Message string `json:"message"`
	}

	ProfileResponse struct {
		Session session.Session `json:"session"`
		Email   string          `json:"email,omitempty"`
	}

	ScheduleResponse struct {
		Date   string         `json:"date,omitempty"`
		Events []portal.Event `json:"events"`
	}

	StudentsResponse struct {
		Total    int              `json:"total"`
		Students []portal.Student `json:"students"`
	}

	AttendanceResponse struct {
		Courses []portal.CourseAttendance `json:"courses"`
		Records []portal.AttendanceRecord `json:"records"`
	}

	FeesResponse struct {
		Fees    []portal.Fee       `json:"fees"`
		Summary *portal.FeeSummary `json:"summary,omitempty"`
		Message string             `json:"message,omitempty"`
	}

	AttendanceManagementResponse struct {
		Classes  []portal.ClassInfo        `json:"classes"`
		Students []portal.ClassStudent     `json:"students"`
		Uploads  []portal.AttendanceUpload `json:"uploads"`
	}

	PerformanceResponse struct {
		Performance []portal.PerformanceSummary    `json:"performance"`
		Assignments []portal.PerformanceAssignment `json:"assignments"`
		Assessments []portal.Assessment            `json:"assessments"`
	}
)

// pageContext returns the profile and the session of a guarded request.
func pageContext(ctx echo.Context) (*profile, session.Session, error) {
	prof, err := getContextProfile(ctx)
	if err != nil {
		return nil, session.Session{}, err
	}
	sess, ok, err := getContextSession(ctx)
	if err != nil {
		return nil, session.Session{}, errors.Wrap(err, "getting context session")
	}
	if !ok {
		return nil, session.Session{}, errors.New("guarded page reached without a session")
	}
	return prof, sess, nil
}

// Handlers

func (api *pagesApi) dashboard(ctx echo.Context) error {
	prof, sess, err := pageContext(ctx)
	if err != nil {
		return err
	}
	dash, err := prof.resolver.Dashboard(ctx.Request().Context(), sess)
	if err != nil {
		return errors.Wrap(err, "building dashboard")
	}
	return ctx.JSON(http.StatusOK, dash)
}

func (api *pagesApi) courses(ctx echo.Context) error {
	prof, sess, err := pageContext(ctx)
	if err != nil {
		return err
	}
	courses, err := prof.resolver.Courses(ctx.Request().Context(), sess)
	if err != nil {
		return errors.Wrap(err, "loading courses")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"courses": courses})
}

func (api *pagesApi) assignments(ctx echo.Context) error {
	prof, sess, err := pageContext(ctx)
	if err != nil {
		return err
	}
	assignments, err := prof.resolver.Assignments(ctx.Request().Context(), sess)
	if err != nil {
		return errors.Wrap(err, "loading assignments")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"assignments": assignments})
}

func (api *pagesApi) submitAssignment(ctx echo.Context) error {
	prof, sess, err := pageContext(ctx)
	if err != nil {
		return err
	}
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return portal.ErrAssignmentNotFound
	}
	var data SubmitAssignmentRequest
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SubmitAssignmentRequest")
	}

	assignments, err := prof.resolver.SubmitAssignment(ctx.Request().Context(), sess, id, data.FileName)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"assignments": assignments})
}

func (api *pagesApi) schedule(ctx echo.Context) error {
	prof, sess, err := pageContext(ctx)
	if err != nil {
		return err
	}
	events, err := prof.resolver.Events(ctx.Request().Context(), sess)
	if err != nil {
		return errors.Wrap(err, "loading events")
	}
	date := core.CleanString(ctx.QueryParam("date"))
	return ctx.JSON(http.StatusOK, ScheduleResponse{Date: date, Events: portal.EventsOn(events, date)})
}

func (api *pagesApi) profile(ctx echo.Context) error {
	prof, sess, err := pageContext(ctx)
	if err != nil {
		return err
	}
	resp := ProfileResponse{Session: sess}
	if !sess.IsDemoIdentity() {
		accounts, err := prof.accounts.All(ctx.Request().Context())
		if err != nil {
			return errors.Wrap(err, "loading accounts")
		}
		for _, acc := range accounts {
			if acc.Role == sess.Role && acc.Username == sess.Username {
				resp.Email = acc.Email
				break
			}
		}
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (api *pagesApi) feePayment(ctx echo.Context) error {
	prof, sess, err := pageContext(ctx)
	if err != nil {
		return err
	}
	if !sess.IsStudent() {
		return ctx.JSON(http.StatusOK, FeesResponse{Fees: []portal.Fee{}, Message: msgFeesStudentsOnly})
	}
	fees, err := prof.resolver.Fees(ctx.Request().Context(), sess)
	if err != nil {
		return errors.Wrap(err, "loading fees")
	}
	summary := portal.SummarizeFees(fees)
	return ctx.JSON(http.StatusOK, FeesResponse{Fees: fees, Summary: &summary})
}

func (api *pagesApi) payFees(ctx echo.Context) error {
	prof, sess, err := pageContext(ctx)
	if err != nil {
		return err
	}
	var data PayFeesRequest
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to PayFeesRequest")
	}

	fees, err := prof.resolver.PayFees(ctx.Request().Context(), sess, data.FeeIDs)
	if err != nil {
		return err
	}
	summary := portal.SummarizeFees(fees)
	return ctx.JSON(http.StatusOK, FeesResponse{Fees: fees, Summary: &summary})
}

func (api *pagesApi) attendance(ctx echo.Context) error {
	prof, sess, err := pageContext(ctx)
	if err != nil {
		return err
	}
	var resp AttendanceResponse
	if resp.Courses, err = prof.resolver.AttendanceCourses(ctx.Request().Context(), sess); err != nil {
		return errors.Wrap(err, "loading attendance courses")
	}
	if resp.Records, err = prof.resolver.AttendanceRecords(ctx.Request().Context(), sess); err != nil {
		return errors.Wrap(err, "loading attendance records")
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (api *pagesApi) students(ctx echo.Context) error {
	prof, sess, err := pageContext(ctx)
	if err != nil {
		return err
	}
	roster, err := prof.resolver.Roster(ctx.Request().Context(), sess)
	if err != nil {
		return errors.Wrap(err, "loading roster")
	}
	ordering := new(Ordering)
	ordering.Bind(ctx)

	students := portal.FilterStudents(roster, ctx.QueryParam("search"), ordering.Orderings...)
	return ctx.JSON(http.StatusOK, StudentsResponse{Total: len(students), Students: students})
}

func (api *pagesApi) attendanceManagement(ctx echo.Context) error {
	prof, sess, err := pageContext(ctx)
	if err != nil {
		return err
	}
	reqCtx := ctx.Request().Context()

	var resp AttendanceManagementResponse
	if resp.Classes, err = prof.resolver.Classes(reqCtx, sess); err != nil {
		return errors.Wrap(err, "loading classes")
	}
	if resp.Students, err = prof.resolver.ClassStudents(reqCtx, sess); err != nil {
		return errors.Wrap(err, "loading class students")
	}
	if resp.Uploads, err = prof.resolver.AttendanceUploads(reqCtx, sess); err != nil {
		return errors.Wrap(err, "loading attendance uploads")
	}
	return ctx.JSON(http.StatusOK, resp)
}

// markAttendance validates the request against the faculty's classes. Nothing is persisted.
func (api *pagesApi) markAttendance(ctx echo.Context) error {
	prof, sess, err := pageContext(ctx)
	if err != nil {
		return err
	}
	var data MarkAttendanceRequest
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to MarkAttendanceRequest")
	}
	data.ClassID = core.CleanString(data.ClassID)
	data.Date = core.CleanString(data.Date)
	if err = api.validate.Struct(data); err != nil {
		return err
	}

	classes, err := prof.resolver.Classes(ctx.Request().Context(), sess)
	if err != nil {
		return errors.Wrap(err, "loading classes")
	}
	for _, c := range classes {
		if c.ID == data.ClassID {
			return ctx.JSON(http.StatusOK, MessageResponse{Message: msgAttendanceMarked})
		}
	}
	return errUnknownClass
}

func (api *pagesApi) studentPerformance(ctx echo.Context) error {
	prof, sess, err := pageContext(ctx)
	if err != nil {
		return err
	}
	reqCtx := ctx.Request().Context()

	var resp PerformanceResponse
	if resp.Performance, err = prof.resolver.ClassPerformance(reqCtx, sess); err != nil {
		return errors.Wrap(err, "loading class performance")
	}
	if resp.Assignments, err = prof.resolver.PerformanceAssignments(reqCtx, sess); err != nil {
		return errors.Wrap(err, "loading performance assignments")
	}
	if resp.Assessments, err = prof.resolver.Assessments(reqCtx, sess); err != nil {
		return errors.Wrap(err, "loading assessments")
	}
	return ctx.JSON(http.StatusOK, resp)
}
