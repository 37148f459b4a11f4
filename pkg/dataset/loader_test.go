package dataset

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/go-cmp/cmp"
	"k8s.io/klog/v2"

	"github.com/spaceviz/spaceviz/pkg/missions"
)

func testContext() context.Context {
	return klog.NewContext(context.Background(), logr.Discard())
}

func TestLoadFromFile(t *testing.T) {
	records, err := Load(testContext(), Source{FilePath: filepath.Join("testdata", "missions.csv")})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("expected 5 records, got %d", len(records))
	}

	want := missions.Record{
		Year:         2020,
		Organization: "SpaceX",
		Location:     "LC-39A, Kennedy Space Center, Florida, USA",
		Status:       missions.StatusSuccess,
		LaunchDate:   time.Date(2020, time.August, 7, 5, 12, 0, 0, time.UTC),
		Detail:       "Falcon 9 Block 5 | Starlink V1 L9 & BlackSky",
		RocketStatus: "StatusActive",
	}
	if diff := cmp.Diff(want, records[0]); diff != "" {
		t.Errorf("first record mismatch (-want +got):\n%s", diff)
	}

	last := records[4]
	if last.Year != 0 {
		t.Errorf("expected empty Year to fall back to 0, got %d", last.Year)
	}
	if last.Status != "Other" {
		t.Errorf("expected status taken verbatim from simplified column, got %q", last.Status)
	}
	if !last.LaunchDate.Equal(time.Date(1958, time.July, 22, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected date-only Datum to parse, got %v", last.LaunchDate)
	}
}

func TestLoadFromURL(t *testing.T) {
	body, err := os.ReadFile(filepath.Join("testdata", "missions.csv"))
	if err != nil {
		t.Fatal(err)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/Space_Processed.csv" {
			http.NotFound(w, r)
			return
		}
		w.Write(body)
	}))
	defer srv.Close()

	records, err := Load(testContext(), Source{URL: srv.URL + "/Space_Processed.csv"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(records) != 5 {
		t.Errorf("expected 5 records, got %d", len(records))
	}

	_, err = Load(testContext(), Source{URL: srv.URL + "/missing.csv"})
	if err == nil || !strings.Contains(err.Error(), "unexpected status 404") {
		t.Errorf("expected status error, got %v", err)
	}
}

func TestLoadRequiresSource(t *testing.T) {
	_, err := Load(testContext(), Source{})
	if err == nil || !strings.Contains(err.Error(), "either file or url") {
		t.Errorf("expected missing source error, got %v", err)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []missions.Record
		wantErr string
	}{
		{
			name:  "empty input",
			input: "",
			want:  []missions.Record{},
		},
		{
			name:  "header only",
			input: "Company Name,Location,Year\n",
			want:  []missions.Record{},
		},
		{
			name:    "missing location column",
			input:   "Company Name,Year\nNASA,1960\n",
			wantErr: `missing required column "Location"`,
		},
		{
			name:  "falls back to raw status column",
			input: "Company Name,Location,Year,Status Mission\nNASA,LC-39A,1969,Success\n",
			want: []missions.Record{
				{Year: 1969, Organization: "NASA", Location: "LC-39A", Status: missions.StatusSuccess},
			},
		},
		{
			name:  "unparseable year groups under zero",
			input: "Company Name,Location,Year,Status Mission Simplified\nISRO,Sriharikota,n/a,Failure\n",
			want: []missions.Record{
				{Year: 0, Organization: "ISRO", Location: "Sriharikota", Status: missions.StatusFailure},
			},
		},
		{
			name:  "year derived from date without year column",
			input: "Company Name,Location,Datum\nCASC,Xichang,\"Sun Mar 09, 2008 16:59 UTC\"\n",
			want: []missions.Record{
				{Year: 2008, Organization: "CASC", Location: "Xichang", LaunchDate: time.Date(2008, time.March, 9, 16, 59, 0, 0, time.UTC)},
			},
		},
		{
			name:  "bad date is not an error",
			input: "Company Name,Location,Datum,Year\nNASA,LC-39A,yesterday,1981\n",
			want: []missions.Record{
				{Year: 1981, Organization: "NASA", Location: "LC-39A"},
			},
		},
		{
			name:  "padded headers and short rows",
			input: "\ufeff Company Name , Location ,Year\nNASA,LC-39A\n",
			want: []missions.Record{
				{Organization: "NASA", Location: "LC-39A"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(testContext(), strings.NewReader(tt.input))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSourceString(t *testing.T) {
	if got := (Source{FilePath: "a.csv", URL: "http://x"}).String(); got != "a.csv" {
		t.Errorf("expected file path to win, got %q", got)
	}
	if got := (Source{URL: "http://x"}).String(); got != "http://x" {
		t.Errorf("expected url, got %q", got)
	}
}
