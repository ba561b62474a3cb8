package portal

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rhyrak/go-timetable/internal/csvio"
	"github.com/rhyrak/go-timetable/internal/pipeline"
	"github.com/rhyrak/go-timetable/pkg/model"
)

const (
	pageTitle      = "Weekly Timetable Portal"
	msgSetup       = "System Setup: Please add the course CSV files to the source directory to activate the system."
	msgMissing     = "Please enter both Name and Roll Number."
	msgNotFound    = "Credentials not found. Please verify your Name and Roll Number."
	msgUnavailable = "The timetable could not be loaded. Please try again later."
	msgWelcome     = "Login Successful! Welcome, %s."
)

type page struct {
	Title      string
	NotReady   bool
	Warning    string
	Error      string
	Success    string
	Name       string
	RollNumber string
	Grid       *Grid
	Details    model.Schedule
}

func newPage() page {
	return page{Title: pageTitle}
}

// snapshot loads the pipeline output. ready is false when no roster exists;
// a non-nil error means the sources could not be read at all.
func (s *Server) snapshot(ctx *gin.Context) (snap *pipeline.Snapshot, ready bool, err error) {
	snap, err = s.src.Snapshot()
	if errors.Is(err, pipeline.ErrNoRoster) {
		return snap, false, nil
	}
	if err != nil {
		s.log.Error().Err(err).Str("request_id", ctx.GetString("request_id")).Msg("snapshot failed")
		return nil, false, err
	}
	return snap, true, nil
}

func (s *Server) handleIndex(ctx *gin.Context) {
	p := newPage()
	_, ready, err := s.snapshot(ctx)
	if err != nil {
		p.NotReady, p.Warning = true, msgUnavailable
		ctx.HTML(http.StatusInternalServerError, "portal.html", p)
		return
	}
	if !ready {
		p.NotReady, p.Warning = true, msgSetup
		ctx.HTML(http.StatusServiceUnavailable, "portal.html", p)
		return
	}
	ctx.HTML(http.StatusOK, "portal.html", p)
}

func (s *Server) handleLogin(ctx *gin.Context) {
	p := newPage()
	snap, _, err := s.snapshot(ctx)
	if err != nil {
		p.NotReady, p.Warning = true, msgUnavailable
		ctx.HTML(http.StatusInternalServerError, "portal.html", p)
		return
	}

	var creds Credentials
	if err := ctx.ShouldBind(&creds); err != nil {
		creds = Credentials{}
	}
	p.Name, p.RollNumber = creds.Name, creds.RollNumber

	var roster model.Roster
	if snap != nil && snap.Dataset != nil {
		roster = snap.Roster
	}
	student, outcome := FindStudent(roster, creds)
	s.metrics.Login(outcome)

	switch outcome {
	case OutcomeNotReady:
		p.NotReady, p.Warning = true, msgSetup
		ctx.HTML(http.StatusServiceUnavailable, "portal.html", p)
	case OutcomeMissingFields:
		p.Warning = msgMissing
		ctx.HTML(http.StatusBadRequest, "portal.html", p)
	case OutcomeNotFound:
		p.Error = msgNotFound
		ctx.HTML(http.StatusNotFound, "portal.html", p)
	case OutcomeOK:
		personal := snap.Schedule.Filter(student.Subjects)
		p.Success = fmt.Sprintf(msgWelcome, student.Name)
		p.Grid = Pivot(personal, s.placeholder)
		p.Details = personal
		ctx.HTML(http.StatusOK, "portal.html", p)
	}
}

func (s *Server) handleGetTimetable(ctx *gin.Context) {
	snap, ready, err := s.snapshot(ctx)
	if err != nil {
		ctx.Status(http.StatusInternalServerError)
		return
	}
	if !ready {
		ctx.Status(http.StatusServiceUnavailable)
		return
	}

	content, err := csvio.ExportScheduleString(snap.Schedule)
	if err != nil {
		s.log.Error().Err(err).Msg("export timetable")
		ctx.Status(http.StatusInternalServerError)
		return
	}
	ctx.Header("Content-Disposition", `attachment; filename="timetable.csv"`)
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(content))
}

func (s *Server) handleHealth(ctx *gin.Context) {
	snap, ready, err := s.snapshot(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error"})
		return
	}
	status, code := "ok", http.StatusOK
	if !ready {
		status, code = "not_ready", http.StatusServiceUnavailable
	}
	body := gin.H{"status": status, "rows": 0, "students": 0, "subjects": 0, "slots": 0}
	if snap != nil && snap.Dataset != nil {
		body["rows"] = len(snap.Roster)
		body["students"] = len(snap.Students)
		body["subjects"] = snap.Courses.Len()
		body["slots"] = len(snap.Schedule)
	}
	ctx.JSON(code, body)
}
