package notify

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/vk/sceneforge/internal/engine"
	"github.com/vk/sceneforge/internal/scene"
)

// NodeReport identifies one node in a report.
type NodeReport struct {
	ID      string `json:"id"`
	Path    string `json:"path"`
	Kind    string `json:"kind"`
	Summary string `json:"summary,omitempty"`
}

// ErrorReport is a node whose rebuild failed.
type ErrorReport struct {
	NodeReport
	Error string `json:"error"`
}

// Report is the serializable outcome of one pass.
type Report struct {
	Sequence uint64        `json:"sequence"`
	Time     time.Time     `json:"time"`
	Built    []NodeReport  `json:"built"`
	Errors   []ErrorReport `json:"errors,omitempty"`
	Stale    []NodeReport  `json:"stale,omitempty"`
	Invoked  int           `json:"invoked"`
}

// NewReport converts a pass result.
func NewReport(seq uint64, at time.Time, res *engine.Result) *Report {
	r := &Report{
		Sequence: seq,
		Time:     at,
		Built:    make([]NodeReport, 0, len(res.Built)),
		Invoked:  res.Invoked,
	}
	for _, n := range res.Built {
		r.Built = append(r.Built, describe(n))
	}
	for _, e := range res.Errors {
		r.Errors = append(r.Errors, ErrorReport{NodeReport: describe(e.Node), Error: e.Cause.Error()})
	}
	for _, n := range res.Stale {
		r.Stale = append(r.Stale, describe(n))
	}
	return r
}

func describe(n *scene.Node) NodeReport {
	nr := NodeReport{
		ID:   n.ID().String(),
		Path: n.String(),
		Kind: n.Builder().Kind(),
	}
	if s, ok := n.Content().(fmt.Stringer); ok {
		nr.Summary = s.String()
	}
	return nr
}

// OK reports whether every rebuild in the pass succeeded.
func (r *Report) OK() bool { return len(r.Errors) == 0 }

// Map returns the report as generic JSON values, for transports that
// serialize arbitrary payloads themselves.
func (r *Report) Map() (map[string]any, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}
