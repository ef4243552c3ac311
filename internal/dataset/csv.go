package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lsqfit/polyfit"
)

func decodeCSV(r io.Reader) ([]polyfit.Point, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	var pts []polyfit.Point
	for rec := 0; ; rec++ {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: csv: %w: %v", ErrMalformed, err)
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("dataset: csv record %d: %d field(s): %w", rec, len(fields), ErrMalformed)
		}
		x, errX := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if errX != nil || errY != nil {
			if rec == 0 {
				continue // header
			}

			return nil, fmt.Errorf("dataset: csv record %d %q: %w", rec, fields[:2], ErrMalformed)
		}
		pts = append(pts, polyfit.Point{X: x, Y: y})
	}

	return pts, nil
}

// WriteCSV writes points with an "x,y" header, shortest round-trip floats.
func WriteCSV(w io.Writer, points []polyfit.Point) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y"}); err != nil {
		return fmt.Errorf("dataset: csv: %w", err)
	}
	for _, p := range points {
		rec := []string{
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("dataset: csv: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("dataset: csv: %w", err)
	}

	return nil
}
