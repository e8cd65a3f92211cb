package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mhalvorsen/cutsheet/pkg/eg"
	"github.com/mhalvorsen/cutsheet/pkg/eg/transform"
	"github.com/mhalvorsen/cutsheet/pkg/egif"
	"github.com/mhalvorsen/cutsheet/pkg/egjson"
	egerr "github.com/mhalvorsen/cutsheet/pkg/errors"
	"github.com/mhalvorsen/cutsheet/pkg/pipeline"
)

// errorEnvelope is the JSON body returned for every failed request.
type errorEnvelope struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

// parseRequest is the body for POST /parse.
type parseRequest struct {
	EGIF string `json:"egif"`
}

// graphResponse carries a graph in both wire forms.
type graphResponse struct {
	Graph egjson.Graph `json:"graph"`
	EGIF  string       `json:"egif"`
}

// applyRequest is the body for POST /apply/{rule}. The rule comes from the
// URL; Fragment is EGIF source for the insertion rule.
type applyRequest struct {
	Graph    egjson.Graph `json:"graph"`
	Targets  []string     `json:"targets,omitempty"`
	Context  string       `json:"context,omitempty"`
	Fragment string       `json:"fragment,omitempty"`
}

// runResponse is the body for POST /run.
type runResponse struct {
	Outputs map[string][]byte `json:"outputs"`
	Stats   pipeline.Stats    `json:"stats"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if !s.decode(w, r, &req) {
		return
	}
	g, err := egif.Parse(req.EGIF)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, graphResponse{
		Graph: egjson.FromGraph(g),
		EGIF:  egif.Generate(g),
	})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var wire egjson.Graph
	if !s.decode(w, r, &wire) {
		return
	}
	g, err := egjson.ToGraph(wire)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"egif": egif.Generate(g)})
}

func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	rule := chi.URLParam(r, "rule")
	var req applyRequest
	if !s.decode(w, r, &req) {
		return
	}

	g, err := egjson.ToGraph(req.Graph)
	if err != nil {
		s.writeError(w, err)
		return
	}

	treq := transform.Request{Rule: rule, Context: eg.ID(req.Context)}
	for _, t := range req.Targets {
		treq.Targets = append(treq.Targets, eg.ID(t))
	}
	if req.Fragment != "" {
		frag, err := egif.Parse(req.Fragment)
		if err != nil {
			s.writeError(w, err)
			return
		}
		treq.Fragment = frag
	}
	if treq.Context == "" {
		treq.Context = g.Sheet()
	}

	out, err := transform.Apply(g, treq)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, graphResponse{
		Graph: egjson.FromGraph(out),
		EGIF:  egif.Generate(out),
	})
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if !s.decode(w, r, &opts) {
		return
	}
	opts.Logger = s.logger

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, runResponse{
		Outputs: result.Outputs,
		Stats:   result.Stats,
	})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.writeError(w, egerr.Wrap(egerr.ErrCodeInvalidInput, err, "decode request body"))
		return false
	}
	return true
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := egerr.GetCode(err)
	writeJSON(w, statusFor(code), errorEnvelope{
		Code:  string(code),
		Error: egerr.UserMessage(err),
	})
}

// statusFor maps structured error codes onto HTTP statuses: malformed input
// is 400, well-formed but illegal transformations are 422, missing elements
// are 404, everything else is a 500.
func statusFor(code egerr.Code) int {
	switch code {
	case egerr.ErrCodeSyntax,
		egerr.ErrCodeUndefinedVariable,
		egerr.ErrCodeDuplicateDefinition,
		egerr.ErrCodeInvalidInput,
		egerr.ErrCodeInvalidFormat,
		egerr.ErrCodeInvalidRule:
		return http.StatusBadRequest
	case egerr.ErrCodeStructuralSelection,
		egerr.ErrCodeIllegalContext,
		egerr.ErrCodeInvalidCutStructure:
		return http.StatusUnprocessableEntity
	case egerr.ErrCodeElementNotFound, egerr.ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
