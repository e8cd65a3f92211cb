package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/mhalvorsen/cutsheet/pkg/egif"
	"github.com/mhalvorsen/cutsheet/pkg/egjson"
	egerr "github.com/mhalvorsen/cutsheet/pkg/errors"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	ts := httptest.NewServer(New(logger).Router())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Post %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestHealth(t *testing.T) {
	ts := testServer(t)
	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	var body map[string]string
	decodeBody(t, resp, &body)
	if body["status"] != "ok" {
		t.Errorf("body = %v", body)
	}
}

func TestParseEndpoint(t *testing.T) {
	ts := testServer(t)
	resp := postJSON(t, ts.URL+"/parse", map[string]string{
		"egif": "~[ (man *x) ~[ (mortal x) ] ]",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Graph egjson.Graph `json:"graph"`
		EGIF  string       `json:"egif"`
	}
	decodeBody(t, resp, &body)
	if body.EGIF != "~[ (man *x) ~[ (mortal x) ] ]" {
		t.Errorf("egif = %q", body.EGIF)
	}
	if len(body.Graph.Cuts) != 2 || len(body.Graph.Edges) != 2 || len(body.Graph.Vertices) != 1 {
		t.Errorf("graph = %d vertices, %d edges, %d cuts",
			len(body.Graph.Vertices), len(body.Graph.Edges), len(body.Graph.Cuts))
	}
}

func TestParseSyntaxError(t *testing.T) {
	ts := testServer(t)
	resp := postJSON(t, ts.URL+"/parse", map[string]string{"egif": "~[ (p *x)"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	var body errorEnvelope
	decodeBody(t, resp, &body)
	if body.Code != "SYNTAX_ERROR" {
		t.Errorf("code = %q, want SYNTAX_ERROR", body.Code)
	}
	if body.Error == "" {
		t.Error("error message is empty")
	}
}

func TestParseBadBody(t *testing.T) {
	ts := testServer(t)
	resp, err := http.Post(ts.URL+"/parse", "application/json", bytes.NewReader([]byte("{")))
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestGenerateEndpoint(t *testing.T) {
	ts := testServer(t)
	g, err := egif.Parse("(man *x) (mortal x)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	resp := postJSON(t, ts.URL+"/generate", egjson.FromGraph(g))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body map[string]string
	decodeBody(t, resp, &body)
	if body["egif"] != "(man *x) (mortal x)" {
		t.Errorf("egif = %q", body["egif"])
	}
}

func TestApplyEndpoint(t *testing.T) {
	ts := testServer(t)
	g, err := egif.Parse("(p *x)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	// Context defaults to the sheet when omitted.
	resp := postJSON(t, ts.URL+"/apply/vertex-add", map[string]any{
		"graph": egjson.FromGraph(g),
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body struct {
		Graph egjson.Graph `json:"graph"`
	}
	decodeBody(t, resp, &body)
	if len(body.Graph.Vertices) != 2 {
		t.Errorf("vertices = %d, want 2", len(body.Graph.Vertices))
	}
}

func TestApplyIllegalTransformation(t *testing.T) {
	ts := testServer(t)
	g, err := egif.Parse("~[ (p *x) ]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	wire := egjson.FromGraph(g)

	// Erasing inside a cut is illegal, but the request is well formed.
	resp := postJSON(t, ts.URL+"/apply/erase", map[string]any{
		"graph":   wire,
		"targets": []string{wire.Edges[0].ID},
	})
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}
	var body errorEnvelope
	decodeBody(t, resp, &body)
	if body.Code != "ILLEGAL_CONTEXT" {
		t.Errorf("code = %q, want ILLEGAL_CONTEXT", body.Code)
	}
}

func TestApplyUnknownRule(t *testing.T) {
	ts := testServer(t)
	g, err := egif.Parse("(p *x)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	resp := postJSON(t, ts.URL+"/apply/fold", map[string]any{
		"graph": egjson.FromGraph(g),
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestRunEndpoint(t *testing.T) {
	ts := testServer(t)
	resp := postJSON(t, ts.URL+"/run", map[string]any{
		"input":   "(p *x)",
		"steps":   []map[string]any{{"rule": "double-cut-add"}},
		"formats": []string{"egif"},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Outputs map[string][]byte `json:"outputs"`
		Stats   struct {
			CutCount int `json:"CutCount"`
		} `json:"stats"`
	}
	decodeBody(t, resp, &body)
	if got := string(body.Outputs["egif"]); got != "(p *x) ~[ ~[ ] ]\n" {
		t.Errorf("egif output = %q", got)
	}
	if body.Stats.CutCount != 2 {
		t.Errorf("cut count = %d, want 2", body.Stats.CutCount)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{"SYNTAX_ERROR", http.StatusBadRequest},
		{"UNDEFINED_VARIABLE", http.StatusBadRequest},
		{"INVALID_RULE", http.StatusBadRequest},
		{"STRUCTURAL_SELECTION", http.StatusUnprocessableEntity},
		{"ILLEGAL_CONTEXT", http.StatusUnprocessableEntity},
		{"INVALID_CUT_STRUCTURE", http.StatusUnprocessableEntity},
		{"ELEMENT_NOT_FOUND", http.StatusNotFound},
		{"NOT_FOUND", http.StatusNotFound},
		{"INTERNAL_ERROR", http.StatusInternalServerError},
		{"", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(egerr.Code(tt.code)); got != tt.status {
			t.Errorf("statusFor(%q) = %d, want %d", tt.code, got, tt.status)
		}
	}
}
