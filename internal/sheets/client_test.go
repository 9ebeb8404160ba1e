package sheets_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"onboard/internal/config"
	"onboard/internal/sheets"
)

func TestNewRequiresCredentials(t *testing.T) {
	t.Parallel()

	if _, err := sheets.New("", "key"); err == nil {
		t.Fatal("expected error when spreadsheet id missing")
	}
	if _, err := sheets.New("sheet", " "); err == nil {
		t.Fatal("expected error when api key missing")
	}
}

func TestValuesSuccess(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "/sheet-1/values/") {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "key" {
			t.Fatalf("expected key query parameter, got %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"range":"Sheet1!A:E","values":[["Name","Email"],["Ada","ada@corp.example"]]}`))
	}))
	t.Cleanup(server.Close)

	client, err := sheets.New("sheet-1", "key", sheets.WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	rows, err := client.Values(context.Background(), "Sheet1!A:E")
	if err != nil {
		t.Fatalf("Values returned error: %v", err)
	}
	if len(rows) != 2 || rows[1][0] != "Ada" {
		t.Fatalf("unexpected rows: %#v", rows)
	}
}

func TestValuesHTTPError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"status":"PERMISSION_DENIED"}}`))
	}))
	t.Cleanup(server.Close)

	client, err := sheets.New("sheet-1", "key", sheets.WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if _, err := client.Values(context.Background(), "Sheet1!A:E"); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestValuesMalformedPayload(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"values": "not-rows"`))
	}))
	t.Cleanup(server.Close)

	client, err := sheets.New("sheet-1", "key", sheets.WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if _, err := client.Values(context.Background(), "Sheet1!A:E"); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}

func newTestSource(t *testing.T, serverURL string) *sheets.Source {
	t.Helper()

	cfg := config.Default()
	cfg.Sheets.SpreadsheetID = "sheet-1"
	cfg.Sheets.APIKey = "key"
	cfg.Sheets.BaseURL = serverURL

	source, err := sheets.NewSource(&cfg)
	if err != nil {
		t.Fatalf("NewSource returned error: %v", err)
	}
	return source
}

func TestNewEmployeesFiltersAndPreservesOrder(t *testing.T) {
	t.Parallel()

	today := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"values":[
			["Name","Email","Department","Start Date","Manager"],
			["Ada Lovelace","ada@corp.example","Engineering","2026-03-12","Grace Hopper"],
			["Too Early","early@corp.example","Sales","2026-03-09","Mgr"],
			["Short Row","short@corp.example","Sales"],
			["Bad Date","bad@corp.example","Sales","soon","Mgr"],
			["Bo Diddley","bo@corp.example","Marketing","2026-03-17","Muddy Waters"]
		]}`))
	}))
	t.Cleanup(server.Close)

	source := newTestSource(t, server.URL)

	employees, err := source.NewEmployees(context.Background(), today)
	if err != nil {
		t.Fatalf("NewEmployees returned error: %v", err)
	}
	if len(employees) != 2 {
		t.Fatalf("expected 2 employees, got %d: %#v", len(employees), employees)
	}
	if employees[0].Name != "Ada Lovelace" || employees[1].Name != "Bo Diddley" {
		t.Fatalf("expected sheet row order, got %#v", employees)
	}
}

func TestNewEmployeesHeaderOnlySheet(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"values":[["Name","Email","Department","Start Date","Manager"]]}`))
	}))
	t.Cleanup(server.Close)

	source := newTestSource(t, server.URL)

	employees, err := source.NewEmployees(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("NewEmployees returned error: %v", err)
	}
	if len(employees) != 0 {
		t.Fatalf("expected no employees, got %#v", employees)
	}
}

func TestNewEmployeesSurfacesFetchFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	source := newTestSource(t, server.URL)

	if _, err := source.NewEmployees(context.Background(), time.Now()); err == nil {
		t.Fatal("expected fetch failure to surface as an error")
	}
}
