package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog"

	"github.com/rhyrak/go-timetable/pkg/model"
)

// Markers recognised in course exports.
const (
	markerFaculty     = "Faculty Name"
	markerStudentID   = "Student ID"
	markerStudentName = "Student Name"
	markerGroupMail   = "Group Mail ID"
	markerSerial      = "SN"

	// Only the top of a file is searched for the faculty label and header row.
	metadataLines = 10
)

var (
	ErrNoHeader       = errors.New("student header row not found")
	ErrMissingColumns = errors.New("student id or name column missing")
	ErrNotUTF8        = errors.New("source is not valid UTF-8")
)

// Source is the raw content of one course export.
type Source struct {
	Name string
	Data []byte
}

// Loader turns course exports into a roster and a subject table.
type Loader struct {
	log zerolog.Logger
}

func NewLoader(log zerolog.Logger) *Loader {
	return &Loader{log: log}
}

// ReadSources reads every regular file in dir matching pattern, in lexical
// order. Files that cannot be read are skipped.
func (l *Loader) ReadSources(dir string, pattern string) ([]Source, error) {
	paths, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("match %q in %s: %w", pattern, dir, err)
	}

	sources := make([]Source, 0, len(paths))
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			l.log.Debug().Err(err).Str("file", path).Msg("skipping unreadable source")
			continue
		}
		sources = append(sources, Source{Name: filepath.Base(path), Data: data})
	}
	return sources, nil
}

// Load extracts subject metadata and student rows from every source.
// A source whose student table cannot be decoded still contributes its
// subject, but no roster rows. A source that is not UTF-8 contributes nothing.
func (l *Loader) Load(sources []Source) (model.Roster, *model.CourseInfo) {
	roster := model.Roster{}
	info := model.NewCourseInfo()

	for _, src := range sources {
		if !utf8.Valid(src.Data) {
			l.log.Debug().Err(ErrNotUTF8).Str("file", src.Name).Msg("skipping source")
			continue
		}
		lines := splitLines(src.Data)
		meta := sniffMetadata(src.Name, lines)
		info.Set(meta.subject, meta.faculty)

		entries, err := decodeStudents(lines, meta.headerRow)
		if err != nil {
			l.log.Debug().Err(err).Str("file", src.Name).Str("subject", meta.subject).Msg("no students decoded")
			continue
		}
		for _, e := range entries {
			roster = append(roster, model.RosterEntry{
				StudentID:   strings.ToUpper(strings.TrimSpace(e.StudentID)),
				StudentName: strings.TrimSpace(e.StudentName),
				Subject:     meta.subject,
			})
		}
	}

	l.log.Info().Int("files", len(sources)).Int("rows", len(roster)).Int("subjects", info.Len()).Msg("roster loaded")
	return roster, info
}

// LoadDir reads and loads all matching sources in dir.
func (l *Loader) LoadDir(dir string, pattern string) (model.Roster, *model.CourseInfo, error) {
	sources, err := l.ReadSources(dir, pattern)
	if err != nil {
		return nil, nil, err
	}
	roster, info := l.Load(sources)
	return roster, info, nil
}

type metadata struct {
	faculty   string
	subject   string
	headerRow int
}

func sniffMetadata(name string, lines []string) metadata {
	meta := metadata{faculty: model.UnknownFaculty, headerRow: -1}

	for i, line := range lines[:min(len(lines), metadataLines)] {
		if strings.Contains(line, markerFaculty) {
			parts := strings.Split(line, ",")
			if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
				meta.faculty = strings.TrimSpace(parts[1])
			}
		}
		if strings.Contains(line, markerStudentID) && strings.Contains(line, markerStudentName) {
			meta.headerRow = i
			break
		}
	}

	// The last labelled line above the header names the subject.
	for _, line := range lines[:max(0, meta.headerRow)] {
		if strings.Contains(line, markerFaculty) || strings.Contains(line, markerGroupMail) {
			continue
		}
		if cell := firstCell(line); cell != "" && cell != markerSerial {
			meta.subject = cell
		}
	}

	if meta.subject == "" {
		meta.subject = strings.TrimSuffix(name, filepath.Ext(name))
	}
	return meta
}

func decodeStudents(lines []string, headerRow int) (entries []model.RosterEntry, err error) {
	if headerRow < 0 {
		return nil, ErrNoHeader
	}
	defer func() {
		if r := recover(); r != nil {
			entries, err = nil, fmt.Errorf("decode student table: %v", r)
		}
	}()

	r := csv.NewReader(strings.NewReader(strings.Join(lines[headerRow:], "\n")))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read student table: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoHeader
	}

	header := normalizeHeader(records[0])
	if !hasColumns(header, markerStudentID, markerStudentName) {
		return nil, ErrMissingColumns
	}

	if err := gocsv.UnmarshalCSV(newTableReader(header, records[1:]), &entries); err != nil {
		return nil, fmt.Errorf("unmarshal student table: %w", err)
	}

	kept := entries[:0]
	for _, e := range entries {
		if strings.TrimSpace(e.StudentID) == "" && strings.TrimSpace(e.StudentName) == "" {
			continue
		}
		kept = append(kept, e)
	}
	return kept, nil
}

// normalizeHeader trims column names, names blank columns after their
// position and suffixes repeated names so every column is addressable.
func normalizeHeader(cells []string) []string {
	header := make([]string, len(cells))
	seen := make(map[string]int, len(cells))
	for i, c := range cells {
		name := strings.TrimSpace(c)
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if n := seen[name]; n > 0 {
			seen[name]++
			name = fmt.Sprintf("%s.%d", name, n)
		} else {
			seen[name] = 1
		}
		header[i] = name
	}
	return header
}

func hasColumns(header []string, names ...string) bool {
	for _, name := range names {
		found := false
		for _, h := range header {
			if h == name {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func firstCell(line string) string {
	cell, _, _ := strings.Cut(line, ",")
	return strings.Trim(strings.TrimSpace(cell), `"`)
}

func splitLines(data []byte) []string {
	text := strings.TrimPrefix(string(data), "\ufeff")
	text = strings.TrimRight(text, "\r\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// tableReader feeds already split records to gocsv with every row sized to
// the header.
type tableReader struct {
	rows [][]string
	next int
}

func newTableReader(header []string, body [][]string) *tableReader {
	rows := make([][]string, 0, len(body)+1)
	rows = append(rows, header)
	for _, rec := range body {
		row := make([]string, len(header))
		copy(row, rec)
		rows = append(rows, row)
	}
	return &tableReader{rows: rows}
}

func (t *tableReader) Read() ([]string, error) {
	if t.next >= len(t.rows) {
		return nil, io.EOF
	}
	row := t.rows[t.next]
	t.next++
	return row, nil
}

func (t *tableReader) ReadAll() ([][]string, error) {
	rest := t.rows[t.next:]
	t.next = len(t.rows)
	return rest, nil
}
