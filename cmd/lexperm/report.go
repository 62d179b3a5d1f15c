package main

import (
	"encoding/json"
	"fmt"
	"io"

	yaml "gopkg.in/yaml.v2"

	"github.com/reallyasi9/lexperm/internal/jobs"
	"github.com/reallyasi9/lexperm/internal/perm"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// output holds the flags that control how results are printed.
type output struct {
	format string
}

func (o *output) validate() error {
	switch o.format {
	case formatText, formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q: expected %s, %s, or %s", o.format, formatText, formatJSON, formatYAML)
	}
}

// write encodes v as JSON or YAML, or prints the text lines for text output.
func (o *output) write(w io.Writer, v interface{}, text []string) error {
	switch o.format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	default:
		for _, line := range text {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	}
}

func (o *output) writeReports(w io.Writer, reports []Report) error {
	text := make([]string, len(reports))
	for i, r := range reports {
		text[i] = r.String()
	}
	return o.write(w, reports, text)
}

// Report is a computed permutation, or the reason it could not be computed.
type Report struct {
	// Name identifies the job in a batch; empty for single lookups.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// Index is the 1-based permutation index that was requested.
	Index uint64 `json:"index" yaml:"index"`
	// Sequence is the input sequence, whose order defines lexicographic order.
	Sequence perm.Sequence `json:"sequence" yaml:"sequence,flow"`
	// Permutation is the Index-th permutation of Sequence.
	Permutation perm.Sequence `json:"permutation,omitempty" yaml:"permutation,omitempty,flow"`
	// Error is set when the job's arguments were rejected.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

func newReport(result jobs.Result) Report {
	r := Report{
		Name:        result.Job.Name,
		Index:       result.Job.Index,
		Sequence:    result.Job.Sequence,
		Permutation: result.Permutation,
	}
	if result.Err != nil {
		r.Error = result.Err.Error()
	}
	return r
}

func (r Report) String() string {
	var s string
	if r.Error != "" {
		s = fmt.Sprintf("The %dth permutation of the sequence %s could not be found: %s", r.Index, r.Sequence, r.Error)
	} else {
		s = fmt.Sprintf("The %dth permutation of the sequence %s is: %s", r.Index, r.Sequence, r.Permutation)
	}
	if r.Name != "" {
		return r.Name + ": " + s
	}
	return s
}

// countReport is the number of permutations of N elements.
type countReport struct {
	N            uint64 `json:"n" yaml:"n"`
	Permutations uint64 `json:"permutations" yaml:"permutations"`
}

func (c countReport) String() string {
	return fmt.Sprintf("%d! = %d", c.N, c.Permutations)
}
