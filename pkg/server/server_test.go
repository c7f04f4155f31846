package server

import (
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/wetland/pkg/errors"
	"github.com/matzehuels/wetland/pkg/observability"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	s := New(nil, log.New(io.Discard))
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(b)
}

func TestFormPage(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	body := readBody(t, resp)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	for _, name := range []string{formPopulation, formWastewater, formCi, formCe, formType} {
		if !strings.Contains(body, `name="`+name+`"`) {
			t.Errorf("form missing field %q", name)
		}
	}
	if !strings.Contains(body, `value="HF" selected`) {
		t.Error("horizontal flow should be preselected")
	}
}

func TestFormSubmit(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.PostForm(ts.URL+"/", url.Values{
		formPopulation: {"1000"},
		formWastewater: {"150"},
		formCi:         {"300"},
		formCe:         {"30"},
		formType:       {"HF"},
	})
	if err != nil {
		t.Fatal(err)
	}
	body := readBody(t, resp)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200\n%s", resp.StatusCode, body)
	}
	for _, want := range []string{
		"Constructed Wetland Design Summary",
		"Required wetland area: 2302.59 m²",
		"Adjusted for 3 parallel sections:",
		"Section 3<br>15.00 m × 51.17 m",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestFormSubmitInvalid(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.PostForm(ts.URL+"/", url.Values{
		formPopulation: {"lots"},
		formWastewater: {"150"},
		formCi:         {"300"},
		formCe:         {"-30"},
		formType:       {"HF"},
	})
	if err != nil {
		t.Fatal(err)
	}
	body := readBody(t, resp)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if !strings.Contains(body, "please enter valid positive numbers for all fields") {
		t.Error("page should show the validation message")
	}
	if strings.Contains(body, `id="results"`) || strings.Contains(body, `id="plot"`) {
		t.Error("invalid submission must not show results")
	}
	if !strings.Contains(body, `value="lots"`) {
		t.Error("submitted values should be kept in the form")
	}
}

func TestSizeAPI(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/v1/size", "application/json", strings.NewReader(`{
		"name": "Village A",
		"population": 1000,
		"per_capita_flow": 150,
		"influent_concentration": "300",
		"effluent_concentration": 30,
		"regime": "HF"
	}`))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var got sizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.Name != "Village A" || got.Result.SectionCount != 3 {
		t.Errorf("response = %+v", got)
	}
	if got.Summary.SectionHeading != "Adjusted for 3 parallel sections" {
		t.Errorf("summary heading = %q", got.Summary.SectionHeading)
	}
	if got.RequestID == "" || got.RequestID != resp.Header.Get(HeaderRequestID) {
		t.Errorf("request id = %q, header %q", got.RequestID, resp.Header.Get(HeaderRequestID))
	}
}

func TestSizeAPIErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   errors.Code
		wantFields int
	}{
		{
			name:       "invalid inputs",
			body:       `{"population": 0, "per_capita_flow": 150, "influent_concentration": 300, "effluent_concentration": 30, "regime": "XF"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   errors.ErrCodeInvalidInput,
			wantFields: 2,
		},
		{
			name:       "degenerate",
			body:       `{"population": 1000, "per_capita_flow": 150, "influent_concentration": 30, "effluent_concentration": 30, "regime": "VF"}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   errors.ErrCodeDegenerateResult,
		},
		{
			name:       "flow beyond float range",
			body:       `{"population": 10, "per_capita_flow": 1e308, "influent_concentration": 300, "effluent_concentration": 30, "regime": "HF"}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   errors.ErrCodeDegenerateResult,
			wantFields: 2,
		},
		{
			name:       "oversized body",
			body:       strings.Repeat(" ", maxBodyBytes+1) + `{}`,
			wantStatus: http.StatusRequestEntityTooLarge,
			wantCode:   errors.ErrCodeRequestTooLarge,
		},
		{
			name:       "malformed body",
			body:       `{"population":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   errors.ErrCodeInvalidDesign,
		},
	}

	ts := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(ts.URL+"/api/v1/size", "application/json", strings.NewReader(tt.body))
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			var got errorBody
			if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
				t.Fatal(err)
			}
			if got.Error.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", got.Error.Code, tt.wantCode)
			}
			if tt.wantFields > 0 && len(got.Error.Fields) != tt.wantFields {
				t.Errorf("fields = %v, want %d", got.Error.Fields, tt.wantFields)
			}
		})
	}
}

func TestPlanSVG(t *testing.T) {
	ts := newTestServer(t)

	q := url.Values{
		"population":             {"10"},
		"per_capita_flow":        {"100"},
		"influent_concentration": {"200"},
		"effluent_concentration": {"20"},
		"regime":                 {"vertical"},
		"style":                  {"plain"},
	}
	resp, err := http.Get(ts.URL + "/api/v1/plan.svg?" + q.Encode())
	if err != nil {
		t.Fatal(err)
	}
	body := readBody(t, resp)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200\n%s", resp.StatusCode, body)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
	if got := strings.Count(body, `class="section"`); got != 1 {
		t.Errorf("sections = %d, want 1", got)
	}
}

func TestPlanSVGBadViz(t *testing.T) {
	ts := newTestServer(t)

	q := url.Values{
		"population":             {"10"},
		"per_capita_flow":        {"100"},
		"influent_concentration": {"200"},
		"effluent_concentration": {"20"},
		"regime":                 {"HF"},
		"viz":                    {"tower"},
	}
	resp, err := http.Get(ts.URL + "/api/v1/plan.svg?" + q.Encode())
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/v1/missing")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	var got errorBody
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.Error.Code != errors.ErrCodeNotFound || got.Error.RequestID == "" {
		t.Errorf("error = %+v", got.Error)
	}
}

func TestWriteJSONEncodeFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusOK, map[string]float64{"width": math.Inf(1)})

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	var got errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("body should be a JSON error: %v\n%s", err, rec.Body.String())
	}
	if got.Error.Code != errors.ErrCodeInternal {
		t.Errorf("code = %s", got.Error.Code)
	}
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	body := readBody(t, resp)
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, `"status":"ok"`) {
		t.Errorf("healthz = %d %s", resp.StatusCode, body)
	}
}

func TestRequestIDPropagation(t *testing.T) {
	ts := newTestServer(t)
	id := uuid.NewString()

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	req.Header.Set(HeaderRequestID, id)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if got := resp.Header.Get(HeaderRequestID); got != id {
		t.Errorf("X-Request-ID = %q, want %q", got, id)
	}

	req.Header.Set(HeaderRequestID, "not-a-uuid")
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if _, err := uuid.Parse(resp.Header.Get(HeaderRequestID)); err != nil {
		t.Errorf("invalid client id should be replaced, got %q", resp.Header.Get(HeaderRequestID))
	}
}

type recordingHTTPHooks struct {
	observability.NoopHTTPHooks

	mu       sync.Mutex
	statuses []int
}

func (h *recordingHTTPHooks) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.statuses = append(h.statuses, status)
}

func TestHTTPHooks(t *testing.T) {
	hooks := &recordingHTTPHooks{}
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	ts := newTestServer(t)
	for _, path := range []string{"/healthz", "/missing"} {
		resp, err := http.Get(ts.URL + path)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
	}

	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	if len(hooks.statuses) != 2 || hooks.statuses[0] != http.StatusOK || hooks.statuses[1] != http.StatusNotFound {
		t.Errorf("statuses = %v, want [200 404]", hooks.statuses)
	}
}
