package series

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
)

// xColumns are header names recognised as the shared x column
// (case-insensitive). Without one the first column is x.
var xColumns = []string{"x", "t", "time", "index", "idx"}

// LoadCSV reads a CSV file; see ReadCSV.
func LoadCSV(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, err
	}
	defer f.Close()
	d, err := ReadCSV(f)
	if err != nil {
		return Data{}, fmt.Errorf("%s: %w", path, err)
	}
	d.Source = path
	return d, nil
}

// ReadCSV reads columns of numbers. Every column other than x becomes a
// series named after its header. A first row that is entirely numeric is
// data, and the series are named y1, y2, ...
func ReadCSV(r io.Reader) (Data, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	cr.Comment = '#'
	recs, err := cr.ReadAll()
	if err != nil {
		return Data{}, fmt.Errorf("csv: %w", err)
	}
	if len(recs) == 0 {
		return Data{}, fmt.Errorf("csv: %w", ErrNoPoints)
	}

	header := recs[0]
	rows := recs[1:]
	if numericRow(header) {
		rows = recs
		header = make([]string, len(recs[0]))
		for i := range header {
			header[i] = "y" + strconv.Itoa(i)
		}
		header[0] = "x"
	}

	idxX := 0
	for i, h := range header {
		if isXColumn(h) {
			idxX = i
			break
		}
	}
	if len(header) < 2 {
		return Data{}, fmt.Errorf("csv: need an x column and at least one y column")
	}

	cols := make([]Series, len(header))
	for i, h := range header {
		cols[i].Name = strings.TrimSpace(h)
	}
	for _, row := range rows {
		if idxX >= len(row) {
			continue
		}
		x, err := parseFloat(row[idxX])
		if err != nil {
			continue
		}
		for i := range cols {
			if i == idxX || i >= len(row) {
				continue
			}
			y, err := parseFloat(row[i])
			if err != nil {
				continue
			}
			cols[i].Add(x, y)
		}
	}

	var d Data
	for i, s := range cols {
		if i != idxX {
			d.add(s)
		}
	}
	if d.empty() {
		return Data{}, fmt.Errorf("csv: %w", ErrNoPoints)
	}
	return d, nil
}

func isXColumn(h string) bool {
	return slices.Contains(xColumns, strings.ToLower(strings.TrimSpace(h)))
}

func numericRow(row []string) bool {
	for _, f := range row {
		if _, err := parseFloat(f); err != nil {
			return false
		}
	}
	return len(row) > 0
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
