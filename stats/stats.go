package stats

import (
	"encoding/json"
	"fmt"
	"linklist/list"
	"os"
)

// RunStats represents the summary of replaying a script
type RunStats struct {
	CountersByKind  map[string]*KindStats `json:"countersByKind"`
	TotalOperations int                   `json:"totalOperations"`
}

// KindStats represents the counters for a single list kind
type KindStats struct {
	Operations  int `json:"operations"`
	Modified    int `json:"modified"`
	Ignored     int `json:"ignored"`
	Unsupported int `json:"unsupported"`
	Traversals  int `json:"traversals"`
	FinalSize   int `json:"finalSize"`
}

// NewRunStats creates a new RunStats instance with initialized maps
func NewRunStats() *RunStats {
	return &RunStats{
		CountersByKind:  make(map[string]*KindStats),
		TotalOperations: 0,
	}
}

func (rs *RunStats) kind(kind string) *KindStats {
	if _, exists := rs.CountersByKind[kind]; !exists {
		rs.CountersByKind[kind] = &KindStats{}
	}
	return rs.CountersByKind[kind]
}

// AddOutcome counts a mutating operation by whether it changed the list
func (rs *RunStats) AddOutcome(kind string, outcome list.Outcome) {
	rs.TotalOperations++
	counters := rs.kind(kind)
	counters.Operations++
	if outcome.Modified() {
		counters.Modified++
	} else {
		counters.Ignored++
	}
}

// AddUnsupported counts an operation the kind does not provide
func (rs *RunStats) AddUnsupported(kind string) {
	rs.TotalOperations++
	counters := rs.kind(kind)
	counters.Operations++
	counters.Unsupported++
}

func (rs *RunStats) AddTraversal(kind string) {
	rs.TotalOperations++
	counters := rs.kind(kind)
	counters.Operations++
	counters.Traversals++
}

func (rs *RunStats) SetFinalSize(kind string, size int) {
	rs.kind(kind).FinalSize = size
}

// Merge adds the counters of other into rs
func (rs *RunStats) Merge(other *RunStats) {
	rs.TotalOperations += other.TotalOperations
	for kind, counters := range other.CountersByKind {
		target := rs.kind(kind)
		target.Operations += counters.Operations
		target.Modified += counters.Modified
		target.Ignored += counters.Ignored
		target.Unsupported += counters.Unsupported
		target.Traversals += counters.Traversals
		target.FinalSize = counters.FinalSize
	}
}

// WriteFile writes the stats as indented JSON to outputPath
func (rs *RunStats) WriteFile(outputPath string) error {
	data, err := json.MarshalIndent(rs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %v", err)
	}
	err = os.WriteFile(outputPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write stats to '%v': %w", outputPath, err)
	}
	return nil
}
