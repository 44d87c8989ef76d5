package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/darkstore/rackplan/pkg/catalog"
	"github.com/darkstore/rackplan/pkg/pipeline"
	"github.com/darkstore/rackplan/pkg/store"
)

func testScenario() catalog.Scenario {
	return catalog.Scenario{
		Name:     "api-test",
		Floor:    catalog.FloorConfig{Width: 20, Height: 30},
		Entrance: catalog.PointConfig{X: 19, Y: 1},
		Dock:     catalog.PointConfig{X: 1, Y: 29},
		Racks: []catalog.RackMixEntry{
			{Kind: "standard", Count: 2},
		},
		Optimizer: catalog.OptimizerConfig{MaxIterations: 5},
	}
}

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	srv := New(pipeline.NewRunner(nil, nil), store.NewMemoryStore(), nil)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return srv, ts
}

func postOptimize(t *testing.T, ts *httptest.Server) optimizeResponse {
	t.Helper()
	body, err := json.Marshal(pipeline.Options{Scenario: testScenario()})
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(ts.URL+"/api/optimize", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("optimize status = %d", resp.StatusCode)
	}
	var out optimizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	return out
}

func TestHealthz(t *testing.T) {
	_, ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestOptimizeEndpoint(t *testing.T) {
	_, ts := newTestServer(t)
	out := postOptimize(t, ts)

	if out.ID == "" {
		t.Error("response missing record id")
	}
	if out.Name != "api-test" {
		t.Errorf("name = %q", out.Name)
	}
	if out.Score <= 0 {
		t.Errorf("score = %v", out.Score)
	}
	if out.PlacedRacks == 0 {
		t.Error("no racks placed on an open floor")
	}
	if len(out.Document.Solution.Racks) != out.PlacedRacks {
		t.Errorf("document racks = %d, placed = %d", len(out.Document.Solution.Racks), out.PlacedRacks)
	}
}

func TestOptimizeRejectsBadScenario(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/optimize", "application/json",
		strings.NewReader(`{"scenario":{"floor":{"width":0,"height":0}}}`))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	var er errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil {
		t.Fatal(err)
	}
	if er.Code != "INVALID_LAYOUT" {
		t.Errorf("code = %q", er.Code)
	}
}

func TestSolutionLifecycle(t *testing.T) {
	_, ts := newTestServer(t)
	created := postOptimize(t, ts)

	resp, err := http.Get(ts.URL + "/api/solutions")
	if err != nil {
		t.Fatal(err)
	}
	var list []solutionSummary
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if len(list) != 1 || list[0].ID != created.ID {
		t.Fatalf("list = %+v, want single record %s", list, created.ID)
	}

	resp, err = http.Get(ts.URL + "/api/solutions/" + created.ID)
	if err != nil {
		t.Fatal(err)
	}
	var rec store.Record
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if rec.Document.Solution.Score != created.Score {
		t.Errorf("stored score = %v, want %v", rec.Document.Solution.Score, created.Score)
	}

	req, _ := http.NewRequest(http.MethodDelete, ts.URL+"/api/solutions/"+created.ID, nil)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("delete status = %d", resp.StatusCode)
	}

	resp, err = http.Get(ts.URL + "/api/solutions/" + created.ID)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("get after delete status = %d", resp.StatusCode)
	}
}

func TestSolutionRenders(t *testing.T) {
	_, ts := newTestServer(t)
	created := postOptimize(t, ts)

	resp, err := http.Get(fmt.Sprintf("%s/api/solutions/%s.svg", ts.URL, created.ID))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("content type = %q", ct)
	}
	if !strings.HasPrefix(buf.String(), "<svg") {
		t.Errorf("svg malformed: %.40s", buf.String())
	}

	resp, err = http.Get(fmt.Sprintf("%s/api/solutions/%s.txt", ts.URL, created.ID))
	if err != nil {
		t.Fatal(err)
	}
	buf.Reset()
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if !strings.Contains(buf.String(), "EXECUTIVE SUMMARY") {
		t.Error("report missing summary section")
	}
}

func TestUnknownSolution(t *testing.T) {
	_, ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/api/solutions/nope")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}
