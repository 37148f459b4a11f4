package dataset

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"k8s.io/klog/v2"

	"github.com/spaceviz/spaceviz/pkg/missions"
)

// Column names of the processed mission CSV.
const (
	ColumnYear             = "Year"
	ColumnCompany          = "Company Name"
	ColumnLocation         = "Location"
	ColumnStatusSimplified = "Status Mission Simplified"
	ColumnStatus           = "Status Mission"
	ColumnDate             = "Datum"
	ColumnDetail           = "Detail"
	ColumnRocketStatus     = "Status Rocket"
)

// Source names where the mission CSV lives. FilePath wins over URL.
type Source struct {
	FilePath string
	URL      string
}

func (s Source) String() string {
	if s.FilePath != "" {
		return s.FilePath
	}
	return s.URL
}

// Load reads and parses the mission records named by src.
func Load(ctx context.Context, src Source) ([]missions.Record, error) {
	raw, err := readSource(ctx, src.FilePath, src.URL)
	if err != nil {
		return nil, fmt.Errorf("load data source: %w", err)
	}

	records, err := Parse(ctx, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse mission dataset: %w", err)
	}
	return records, nil
}

// Parse decodes mission rows from a CSV stream with a header line.
//
// Year values that are not integers become 0 and unparseable dates are
// left zero; neither is an error. Rows with no fields are skipped.
func Parse(ctx context.Context, r io.Reader) ([]missions.Record, error) {
	log := klog.FromContext(ctx)

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []missions.Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := indexColumns(header)
	for _, required := range []string{ColumnCompany, ColumnLocation} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}
	statusCol := ColumnStatusSimplified
	if _, ok := cols[statusCol]; !ok {
		statusCol = ColumnStatus
	}

	records := make([]missions.Record, 0)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if isBlank(row) {
			continue
		}

		line, _ := reader.FieldPos(0)
		field := func(name string) string {
			idx, ok := cols[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return row[idx]
		}

		launched, err := parseDate(field(ColumnDate))
		if err != nil {
			log.V(1).Info("warning: invalid launch date", "line", line, "value", field(ColumnDate), "err", err)
		}

		year := missions.ParseYear(field(ColumnYear))
		if _, ok := cols[ColumnYear]; !ok && !launched.IsZero() {
			year = launched.Year()
		}

		records = append(records, missions.Record{
			Year:         year,
			Organization: field(ColumnCompany),
			Location:     field(ColumnLocation),
			Status:       missions.Status(field(statusCol)),
			LaunchDate:   launched,
			Detail:       field(ColumnDetail),
			RocketStatus: field(ColumnRocketStatus),
		})
	}

	log.V(1).Info("parsed mission dataset", "records", len(records))
	return records, nil
}

func readSource(ctx context.Context, filePath, url string) ([]byte, error) {
	switch {
	case filePath != "":
		return os.ReadFile(filePath)
	case url != "":
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	default:
		return nil, errors.New("either file or url must be provided")
	}
}

// indexColumns maps trimmed header names to their position. The source
// data has headers such as " Rocket" with stray spaces, and a leading BOM.
func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}
	return cols
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

var dateLayouts = []string{
	"Mon Jan 02, 2006 15:04 MST",
	"Mon Jan 02, 2006",
	"2006-01-02 15:04:05-07:00",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02",
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", value)
}
