// Package jobs loads batches of permutation lookups from YAML or TOML files
// and evaluates them concurrently.
package jobs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/segmentio/fasthash/jody"
	yaml "gopkg.in/yaml.v2"

	"github.com/reallyasi9/lexperm/internal/perm"
)

// Format is the encoding of a job file.
type Format string

const (
	// YAML job files end in .yaml or .yml.
	YAML Format = "yaml"
	// TOML job files end in .toml.
	TOML Format = "toml"
)

// FormatOf determines the format of a job file from its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return "", fmt.Errorf("unrecognized job file extension %q: expected .yaml, .yml, or .toml", filepath.Ext(path))
	}
}

// Job is a single lookup: the Index-th permutation of Sequence.
type Job struct {
	Name     string        `yaml:"name" toml:"name" json:"name"`
	Index    uint64        `yaml:"index" toml:"index" json:"index"`
	Sequence perm.Sequence `yaml:"sequence" toml:"sequence" json:"sequence"`
}

// List is an ordered collection of jobs.
type List []Job

// file is the on-disk layout shared by both formats.
type file struct {
	Jobs List `yaml:"jobs" toml:"jobs"`
}

// Load reads and validates a job file, choosing the decoder by extension.
func Load(path string) (List, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	list, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}

// Parse decodes and validates job file contents. Jobs without a name are
// called "job-<position>", counting from 1.
func Parse(data []byte, format Format) (List, error) {
	var f file
	switch format {
	case YAML:
		if err := yaml.UnmarshalStrict(data, &f); err != nil {
			return nil, err
		}
	case TOML:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown keys in job file: %v", undecoded)
		}
	default:
		return nil, fmt.Errorf("unknown job file format %q", format)
	}

	names := make(map[string]int, len(f.Jobs))
	for i := range f.Jobs {
		job := &f.Jobs[i]
		if job.Name == "" {
			job.Name = fmt.Sprintf("job-%d", i+1)
		}
		if j, ok := names[job.Name]; ok {
			return nil, fmt.Errorf("job name %q used at positions %d and %d: %w", job.Name, j+1, i+1, perm.ErrInvalidArgument)
		}
		names[job.Name] = i
		if err := job.Sequence.Validate(); err != nil {
			return nil, fmt.Errorf("job %q: %w", job.Name, err)
		}
	}
	return f.Jobs, nil
}

func hashJob(j Job) uint64 {
	return jody.AddUint64(j.Sequence.Hash(), j.Index)
}

// Duplicates groups jobs that ask for the same index of the same sequence.
// Keys are the name of the first job of each group; values name the later
// jobs that repeat it, in list order. Jobs without duplicates are omitted.
// Names are assumed unique, as Parse guarantees.
func (l List) Duplicates() map[string][]string {
	return l.duplicates(hashJob)
}

func (l List) duplicates(hash func(Job) uint64) map[string][]string {
	// Jobs in a bucket share a hash; each is the first of a distinct group.
	buckets := make(map[uint64][]int)
	out := make(map[string][]string)
	for i, job := range l {
		h := hash(job)
		found := false
		for _, r := range buckets[h] {
			first := l[r]
			if job.Index == first.Index && job.Sequence.Equal(first.Sequence) {
				out[first.Name] = append(out[first.Name], job.Name)
				found = true
				break
			}
		}
		if !found {
			buckets[h] = append(buckets[h], i)
		}
	}
	return out
}

// Names returns the job names in sorted order.
func (l List) Names() []string {
	out := make([]string, len(l))
	for i, job := range l {
		out[i] = job.Name
	}
	sort.Strings(out)
	return out
}
