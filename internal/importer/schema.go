// Package importer reads Toggl-style detailed CSV exports into entry rows.
// Parsing is header-driven, so column order and the extra report columns
// (client, billable, amounts) do not matter.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Row is one parsed CSV record, still in the exporter's wall-clock terms.
// Instants are resolved against the importing user's timezone in Convert.
type Row struct {
	Description string
	StartDate   string // 2006-01-02
	StartTime   string // 15:04:05
	EndDate     string
	EndTime     string
	Tags        []string
}

// column headers recognized in Toggl detailed exports, lowercased.
const (
	colDescription = "description"
	colStartDate   = "start date"
	colStartTime   = "start time"
	colEndDate     = "end date"
	colEndTime     = "end time"
	colTags        = "tags"
)

var requiredColumns = []string{colDescription, colStartDate, colStartTime, colEndDate, colEndTime}

// Parse reads all rows from a Toggl detailed CSV export.
func Parse(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty CSV input")
		}
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("CSV is missing required column %q", col)
		}
	}

	field := func(record []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []Row
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV line %d: %w", line, err)
		}

		row := Row{
			Description: field(record, colDescription),
			StartDate:   field(record, colStartDate),
			StartTime:   field(record, colStartTime),
			EndDate:     field(record, colEndDate),
			EndTime:     field(record, colEndTime),
		}
		if raw := field(record, colTags); raw != "" {
			for _, tag := range strings.Split(raw, ",") {
				if t := strings.TrimSpace(tag); t != "" {
					row.Tags = append(row.Tags, t)
				}
			}
		}
		rows = append(rows, row)
	}
}
