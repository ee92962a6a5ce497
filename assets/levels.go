package assets

import (
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

//go:embed levels/*.lvl
var levelFS embed.FS

// LevelCount is the number of embedded levels, numbered from 0.
const LevelCount = 2

// Record is one spawn row of a level file: name,x,y[,moveRight].
type Record struct {
	Kind         string
	X, Y         float64
	HasDirection bool
	MoveRight    bool
	Line         int
}

// ParseLevel reads spawn records from r. Malformed rows are reported in the
// returned error slice and skipped; the remaining rows are still returned in
// file order. Blank lines and lines starting with '#' are ignored.
func ParseLevel(r io.Reader) ([]Record, []error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var (
		records []Record
		errs    []error
	)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("read level row: %w", err))
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				continue
			}
			break
		}
		line, _ := cr.FieldPos(0)
		rec, err := parseRecord(row)
		if err != nil {
			errs = append(errs, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		rec.Line = line
		records = append(records, rec)
	}
	return records, errs
}

func parseRecord(row []string) (Record, error) {
	if len(row) < 3 || len(row) > 4 {
		return Record{}, fmt.Errorf("expected 3 or 4 fields, got %d", len(row))
	}
	rec := Record{Kind: strings.TrimSpace(row[0])}
	if rec.Kind == "" {
		return Record{}, errors.New("empty kind")
	}
	var err error
	if rec.X, err = strconv.ParseFloat(strings.TrimSpace(row[1]), 64); err != nil {
		return Record{}, fmt.Errorf("x: %w", err)
	}
	if rec.Y, err = strconv.ParseFloat(strings.TrimSpace(row[2]), 64); err != nil {
		return Record{}, fmt.Errorf("y: %w", err)
	}
	if len(row) == 4 {
		if rec.MoveRight, err = strconv.ParseBool(strings.TrimSpace(row[3])); err != nil {
			return Record{}, fmt.Errorf("moveRight: %w", err)
		}
		rec.HasDirection = true
	}
	return rec, nil
}

// LoadLevel parses embedded level n. Row errors are returned alongside the
// records that did parse; a missing level is the only hard failure.
func LoadLevel(n int) ([]Record, []error, error) {
	f, err := levelFS.Open(fmt.Sprintf("levels/%d.lvl", n))
	if err != nil {
		return nil, nil, fmt.Errorf("open level %d: %w", n, err)
	}
	defer f.Close()
	records, rowErrs := ParseLevel(f)
	return records, rowErrs, nil
}
