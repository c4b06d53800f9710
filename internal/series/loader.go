package series

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// Required columns after the optional rename mapping has been applied.
var requiredColumns = []string{"DATE", "TMAX", "TMIN"}

// Accepted date layouts, tried in order.
var dateLayouts = []string{"2006-01-02", "1/2/2006", "2006/01/02"}

// LoadStats reports how much of the raw input survived cleaning.
// It is metadata for the caller, not an error condition.
type LoadStats struct {
	TotalRows      int     `json:"total_rows"`
	ValidRows      int     `json:"valid_rows"`
	DroppedRows    int     `json:"dropped_rows"`
	DroppedPercent float64 `json:"dropped_percent"`
}

// LoadCSV reads a daily temperature CSV from disk. columnMap renames
// source columns to the required names before validation, e.g.
// {"Max_Temp": "TMAX"}.
func LoadCSV(path string, columnMap map[string]string) (*Series, *LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f, columnMap)
}

// Load reads a daily temperature CSV from r.
//
// Cleaning rules:
//   - rows missing TMAX or TMIN are dropped entirely and counted in LoadStats
//   - if the TAVG column is absent, or present but missing for any row,
//     TAVG is recomputed as (TMAX+TMIN)/2 for every record
//   - records are sorted ascending by date; duplicate dates are an error
//   - zero valid rows after cleaning is an error
func Load(r io.Reader, columnMap map[string]string) (*Series, *LoadStats, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv header: %w", err)
	}

	// Apply column mapping if provided
	for i, name := range header {
		name = strings.TrimSpace(name)
		if mapped, ok := columnMap[name]; ok {
			name = mapped
		}
		header[i] = name
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		if _, seen := cols[name]; !seen {
			cols[name] = i
		}
	}

	// Validate required columns exist
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, nil, fmt.Errorf(
			"missing required columns: %s (available columns: %s); use a column mapping to rename your columns, e.g. MaxTemp=TMAX",
			strings.Join(missing, ", "), strings.Join(header, ", "))
	}

	dateIdx := cols["DATE"]
	tmaxIdx := cols["TMAX"]
	tminIdx := cols["TMIN"]
	tavgIdx, hasTAvg := cols["TAVG"]

	var (
		records   []DailyRecord
		stats     LoadStats
		tavgClean = hasTAvg // flips false on the first missing TAVG cell
	)

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read csv row: %w", err)
		}
		stats.TotalRows++

		date, ok := parseDate(field(row, dateIdx))
		if !ok {
			stats.DroppedRows++
			continue
		}
		tmax, okMax := parseFloat(field(row, tmaxIdx))
		tmin, okMin := parseFloat(field(row, tminIdx))
		if !okMax || !okMin {
			stats.DroppedRows++
			continue
		}

		rec := DailyRecord{Date: date, TMax: tmax, TMin: tmin}
		if hasTAvg {
			if tavg, ok := parseFloat(field(row, tavgIdx)); ok {
				rec.TAvg = tavg
			} else {
				tavgClean = false
			}
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, nil, fmt.Errorf("no valid rows after filtering (%d rows read, %d dropped)",
			stats.TotalRows, stats.DroppedRows)
	}

	// Data-quality normalization: an inconsistently populated TAVG column
	// is recomputed for every record, not just the missing ones.
	if !tavgClean {
		for i := range records {
			records[i].TAvg = (records[i].TMax + records[i].TMin) / 2
		}
	}

	stats.ValidRows = len(records)
	if stats.TotalRows > 0 {
		stats.DroppedPercent = float64(stats.DroppedRows) / float64(stats.TotalRows) * 100
	}

	s, err := New(records)
	if err != nil {
		return nil, nil, err
	}
	return s, &stats, nil
}

func field(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseFloat(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
