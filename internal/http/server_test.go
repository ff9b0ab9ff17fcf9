package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"extras/internal/core"
)

type staticDataset struct {
	records []core.Record
}

func (d *staticDataset) Records(ctx context.Context) []core.Record {
	return d.records
}

func testRecords() []core.Record {
	return []core.Record{
		{Date: "2024-03-12", Value: 1500.25, Collaborator: "João", Client: "Residencial Sol", Sector: "Elétrica", Reason: "Troca de disjuntor", Billable: core.Yes, TimeIn: "08:00", TimeOut: "12:00", Transport: core.No},
		{Date: "2024-03-14", Value: 1200.25, Collaborator: "Maria", Client: "Condomínio Lua", Sector: "Hidráulica", Reason: "Vazamento", Billable: core.No, TimeIn: "14:30", TimeOut: "18:00", Transport: core.Yes},
		{Date: "2024-03-06", Value: 800, Collaborator: "João", Client: "Residencial Sol", Sector: "Elétrica", Reason: "Manutenção", Billable: core.Yes, TimeIn: "09:00", TimeOut: "11:00", Transport: core.No},
	}
}

func newTestServer(records []core.Record) *Server {
	return NewServer(":0", &staticDataset{records: records})
}

func doRequest(t *testing.T, s *Server, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	s.Server.Handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoints(t *testing.T) {
	s := newTestServer(nil)
	defer s.Shutdown(context.Background())

	for _, path := range []string{"/healthz", "/readyz"} {
		rec := doRequest(t, s, http.MethodGet, path)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestRecordsEndpoint(t *testing.T) {
	s := newTestServer(testRecords())
	defer s.Shutdown(context.Background())

	rec := doRequest(t, s, http.MethodGet, "/api/records")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp RecordsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 3 || len(resp.Records) != 3 {
		t.Errorf("expected 3 records, got count=%d len=%d", resp.Count, len(resp.Records))
	}
	if resp.Records[0].Collaborator != "João" {
		t.Errorf("expected spreadsheet order preserved, got %q first", resp.Records[0].Collaborator)
	}
}

func TestRecordsEndpointEmptyDataset(t *testing.T) {
	s := newTestServer(nil)
	defer s.Shutdown(context.Background())

	rec := doRequest(t, s, http.MethodGet, "/api/records")
	var resp RecordsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Records == nil {
		t.Error("records must serialize as [] even when empty")
	}
}

func TestOverviewEndpoint(t *testing.T) {
	s := newTestServer(testRecords())
	defer s.Shutdown(context.Background())

	rec := doRequest(t, s, http.MethodGet, "/api/overview")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp OverviewResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	wantTotal := 1500.25 + 1200.25 + 800
	if resp.KPI.Total != wantTotal {
		t.Errorf("expected total %v, got %v", wantTotal, resp.KPI.Total)
	}
	if resp.KPI.Collaborators != 2 {
		t.Errorf("expected 2 distinct collaborators, got %d", resp.KPI.Collaborators)
	}
	if len(resp.TopClients) != 2 {
		t.Errorf("expected 2 client groups, got %d", len(resp.TopClients))
	}
	if resp.TopCollaborators[0].Name != "João" {
		t.Errorf("expected João ranked first, got %q", resp.TopCollaborators[0].Name)
	}
	if len(resp.Daily) != 3 {
		t.Errorf("expected 3 daily points, got %d", len(resp.Daily))
	}
}

func TestStrategyEndpoint(t *testing.T) {
	s := newTestServer(testRecords())
	defer s.Shutdown(context.Background())

	rec := doRequest(t, s, http.MethodGet, "/api/strategy")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp StrategyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(resp.Hours) != 24 {
		t.Errorf("expected 24 hour buckets, got %d", len(resp.Hours))
	}
	if len(resp.Pareto.Entries) != 2 {
		t.Errorf("expected 2 pareto entries, got %d", len(resp.Pareto.Entries))
	}
	wantBillable := 1500.25 + 800
	if resp.Leakage.Billable != wantBillable {
		t.Errorf("expected billable %v, got %v", wantBillable, resp.Leakage.Billable)
	}
	if resp.Transport.With != 1200.25 {
		t.Errorf("expected transport-with %v, got %v", 1200.25, resp.Transport.With)
	}
}

func TestWeeklyEndpoint(t *testing.T) {
	s := newTestServer(testRecords())
	defer s.Shutdown(context.Background())

	// Ref 2024-03-20: last full week is Mon 2024-03-11 to Sun 2024-03-17.
	rec := doRequest(t, s, http.MethodGet, "/api/weekly?ref=2024-03-20T12:00:00Z")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp WeeklyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.Current.Count != 2 {
		t.Errorf("expected 2 records in current week, got %d", resp.Current.Count)
	}
	if resp.Previous.Count != 1 {
		t.Errorf("expected 1 record in previous week, got %d", resp.Previous.Count)
	}
	if !resp.TotalDelta.HasBaseline {
		t.Error("expected a baseline for the total delta")
	}
	if len(resp.TopOffenders) == 0 || resp.TopOffenders[0].Name != "João" {
		t.Errorf("expected João as top offender, got %v", resp.TopOffenders)
	}
}

func TestWeeklyEndpointRejectsBadRef(t *testing.T) {
	s := newTestServer(nil)
	defer s.Shutdown(context.Background())

	rec := doRequest(t, s, http.MethodGet, "/api/weekly?ref=yesterday")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed ref, got %d", rec.Code)
	}
}

func TestAPIRejectsNonGet(t *testing.T) {
	s := newTestServer(nil)
	defer s.Shutdown(context.Background())

	for _, path := range []string{"/api/records", "/api/overview", "/api/strategy", "/api/weekly"} {
		rec := doRequest(t, s, http.MethodPost, path)
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("%s: expected 405, got %d", path, rec.Code)
		}
	}
}
