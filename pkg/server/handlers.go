package server

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"html/template"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wetland/pkg/buildinfo"
	"github.com/matzehuels/wetland/pkg/errors"
	wio "github.com/matzehuels/wetland/pkg/io"
	"github.com/matzehuels/wetland/pkg/pipeline"
	"github.com/matzehuels/wetland/pkg/render/summary"
	"github.com/matzehuels/wetland/pkg/wetland"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 64 << 10

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	s.writePage(w, r, http.StatusOK, pageData{})
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.writePage(w, r, http.StatusBadRequest, pageData{Error: "could not read the submitted form"})
		return
	}
	raw := wetland.RawInputs{
		Population:    r.PostFormValue(formPopulation),
		PerCapitaFlow: r.PostFormValue(formWastewater),
		InfluentConc:  r.PostFormValue(formCi),
		EffluentConc:  r.PostFormValue(formCe),
		Regime:        r.PostFormValue(formType),
	}
	data := pageData{Values: raw}

	in, err := wetland.ParseInputs(raw)
	if err != nil {
		data.Error = errors.UserMessage(err)
		s.writePage(w, r, statusFor(err), data)
		return
	}

	res, err := s.runner.Execute(r.Context(), pipeline.Options{
		Inputs:  in,
		Formats: []string{pipeline.FormatHTML},
		Logger:  log.FromContext(r.Context()),
	})
	if err != nil {
		data.Error = errors.UserMessage(err)
		s.writePage(w, r, statusFor(err), data)
		return
	}

	sum := summary.Build(res.Sizing)
	data.Summary = &sum
	data.Plan = template.HTML(res.Artifacts[pipeline.FormatHTML])
	s.writePage(w, r, http.StatusOK, data)
}

func (s *Server) writePage(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	data.Regimes = wetland.Regimes
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, data); err != nil {
		log.FromContext(r.Context()).Error("render page", "error", err)
	}
}

type sizeResponse struct {
	RequestID string          `json:"request_id"`
	Name      string          `json:"name,omitempty"`
	Result    wetland.Result  `json:"result"`
	Summary   summary.Summary `json:"summary"`
}

// handleSize sizes a JSON design brief. Input values may be numbers or
// strings, exactly as in a design file.
func (s *Server) handleSize(w http.ResponseWriter, r *http.Request) {
	d, err := wio.ReadDesign(http.MaxBytesReader(w, r.Body, maxBodyBytes), wio.FormatJSON)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			err = errors.Wrap(errors.ErrCodeRequestTooLarge, err, "request body exceeds %d bytes", tooLarge.Limit)
		}
		s.writeError(w, r, err)
		return
	}
	in, err := wetland.ParseInputs(d.Inputs)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	res, err := s.runner.Size(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sizeResponse{
		RequestID: RequestIDFromContext(r.Context()),
		Name:      d.Name,
		Result:    res,
		Summary:   summary.Build(res),
	})
}

// handlePlanSVG renders the plan for inputs given as query parameters named
// like the design file keys. Optional viz and style parameters select the
// visualization.
func (s *Server) handlePlanSVG(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	in, err := wetland.ParseInputs(wetland.RawInputs{
		Population:    q.Get(wetland.FieldPopulation),
		PerCapitaFlow: q.Get(wetland.FieldPerCapitaFlow),
		InfluentConc:  q.Get(wetland.FieldInfluentConc),
		EffluentConc:  q.Get(wetland.FieldEffluentConc),
		Regime:        q.Get(wetland.FieldRegime),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.runner.Execute(r.Context(), pipeline.Options{
		Inputs:  in,
		VizType: q.Get("viz"),
		Style:   q.Get("style"),
		Formats: []string{pipeline.FormatSVG},
		Logger:  log.FromContext(r.Context()),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[pipeline.FormatSVG])
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, r, errors.New(errors.ErrCodeNotFound, "no route for %s %s", r.Method, r.URL.Path))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code      errors.Code `json:"code"`
	Message   string      `json:"message"`
	Fields    []string    `json:"fields,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	logger := log.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "error", err)
	} else {
		logger.Debug("request rejected", "code", code, "error", err)
	}

	writeJSON(w, status, errorBody{Error: errorDetail{
		Code:      code,
		Message:   errors.UserMessage(err),
		Fields:    errors.Fields(err),
		RequestID: RequestIDFromContext(r.Context()),
	}})
}

// statusFor maps an error code to an HTTP status.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidStyle,
		errors.ErrCodeInvalidVizType, errors.ErrCodeInvalidDesign, errors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case errors.ErrCodeRequestTooLarge:
		return http.StatusRequestEntityTooLarge
	case errors.ErrCodeDegenerateResult:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// encodeFailure is sent when a response value cannot be encoded. The status
// line is not written until encoding succeeds.
const encodeFailure = `{"error":{"code":"INTERNAL_ERROR","message":"could not encode response"}}` + "\n"

func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(encodeFailure))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
