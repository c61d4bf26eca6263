package outlet

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/medialens/medialens/pkg/errors"
)

// Required CSV columns. Column order in the file does not matter; the header
// row is used to build an index map.
const (
	colOutlet       = "outlet"
	colOwner        = "owner"
	colFoundingYear = "founding_year"
	colEndYear      = "end_year"
	colAudience     = "audience_size"
)

// Warning describes a recoverable problem with a single CSV row.
// Rows with warnings are either kept with the bad field zeroed (numeric
// fields) or dropped entirely (missing outlet/owner); either way the sum
// aggregates never see NaN-like garbage.
type Warning struct {
	Line    int    // 1-based line number in the source file
	Field   string // column name, empty for row-level problems
	Message string
}

// String formats the warning for log output.
func (w Warning) String() string {
	if w.Field == "" {
		return fmt.Sprintf("line %d: %s", w.Line, w.Message)
	}
	return fmt.Sprintf("line %d: %s: %s", w.Line, w.Field, w.Message)
}

// ParseResult holds the outcome of a CSV ingestion.
type ParseResult struct {
	Records  []Record
	Warnings []Warning
}

// ParseCSV reads outlet records from r. The first line must be a header row
// containing at least the outlet, owner, founding_year, end_year and
// audience_size columns (any order, extra columns ignored).
//
// Malformed numeric fields are zero-filled and reported as warnings rather
// than rejecting the row; rows without an outlet id or owner are dropped
// with a warning. A missing required column or an unreadable header is a
// hard error.
func ParseCSV(r io.Reader) (*ParseResult, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1 // ragged rows are handled per-field below

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "empty CSV input")
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read CSV header")
	}

	idx, err := headerIndex(header)
	if err != nil {
		return nil, err
	}

	result := &ParseResult{}
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.warn(line, "", "unreadable row: %v", err)
			continue
		}

		rec, warns, ok := parseRow(row, idx, line)
		result.Warnings = append(result.Warnings, warns...)
		if ok {
			result.Records = append(result.Records, rec)
		}
	}

	return result, nil
}

// ParseFile reads outlet records from a CSV file on disk.
func ParseFile(path string) (*ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return ParseCSV(f)
}

// columnIndex maps required column names to their position in the header.
type columnIndex map[string]int

// headerIndex validates the header row and builds the column index.
func headerIndex(header []string) (columnIndex, error) {
	idx := make(columnIndex, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colOutlet, colOwner, colFoundingYear, colEndYear, colAudience} {
		if _, ok := idx[required]; !ok {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "missing required column %q", required)
		}
	}
	return idx, nil
}

// parseRow converts one CSV row into a Record. ok is false when the row must
// be dropped (no outlet id or owner).
func parseRow(row []string, idx columnIndex, line int) (Record, []Warning, bool) {
	var warns []Warning
	field := func(name string) string {
		i := idx[name]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	rec := Record{
		Outlet: field(colOutlet),
		Owner:  field(colOwner),
	}
	if rec.Outlet == "" {
		return Record{}, append(warns, Warning{line, colOutlet, "missing outlet id, row dropped"}), false
	}
	if rec.Owner == "" {
		return Record{}, append(warns, Warning{line, colOwner, "missing owner, row dropped"}), false
	}

	if v, w := parseIntField(field(colFoundingYear), colFoundingYear, line); w != nil {
		warns = append(warns, *w)
	} else {
		rec.FoundingYear = v
	}

	// Empty end_year means the outlet is still operating.
	if raw := field(colEndYear); raw != "" {
		if v, w := parseIntField(raw, colEndYear, line); w != nil {
			warns = append(warns, *w)
		} else {
			rec.EndYear = &v
		}
	}

	if v, w := parseIntField(field(colAudience), colAudience, line); w != nil {
		warns = append(warns, *w)
	} else if v < 0 {
		warns = append(warns, Warning{line, colAudience, fmt.Sprintf("negative audience %d treated as 0", v)})
	} else {
		rec.Audience = v
	}

	return rec, warns, true
}

// parseIntField parses a numeric field, returning a warning instead of an
// error so callers can zero-fill and continue.
func parseIntField(raw, name string, line int) (int, *Warning) {
	if raw == "" {
		return 0, &Warning{line, name, "empty value treated as 0"}
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &Warning{line, name, fmt.Sprintf("invalid number %q treated as 0", raw)}
	}
	return v, nil
}

func (r *ParseResult) warn(line int, field, format string, args ...any) {
	r.Warnings = append(r.Warnings, Warning{line, field, fmt.Sprintf(format, args...)})
}
