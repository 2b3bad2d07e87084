package harness

import (
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/primesieve/internal/canon"
)

// GoldenDir is the directory, next to the scenario files, that holds one
// <scenario name>.golden snapshot per scenario. The test command and
// RunWithGolden both use this layout.
const GoldenDir = "golden"

// GoldenFixtureDir is where this package's own golden snapshots live.
var GoldenFixtureDir = filepath.Join("testdata", "scenarios", GoldenDir)

// GoldenPath returns the golden file for the scenario named scenarioName
// loaded from scenarioFile.
func GoldenPath(scenarioFile, scenarioName string) string {
	return filepath.Join(filepath.Dir(scenarioFile), GoldenDir, scenarioName+".golden")
}

// Snapshot is the golden-file view of a run: everything that must stay
// byte-identical across runs of the same scenario.
type Snapshot struct {
	ScenarioName string
	RunToken     string
	Stats        map[string]any
	Trace        []TraceEvent
}

// NewSnapshot builds the snapshot for a finished run.
func NewSnapshot(scenarioName string, result *Result) Snapshot {
	return Snapshot{
		ScenarioName: scenarioName,
		RunToken:     result.RunToken,
		Stats: map[string]any{
			"last_prime": result.Stats.LastPrime,
			"cached":     result.Stats.Cached,
			"pulls":      result.Stats.Pulls,
		},
		Trace: result.Trace,
	}
}

// CanonicalValue implements canon.Canonicalizer.
func (s Snapshot) CanonicalValue() any {
	trace := make([]any, len(s.Trace))
	for i, e := range s.Trace {
		trace[i] = e
	}
	return map[string]any{
		"scenario_name": s.ScenarioName,
		"run_token":     s.RunToken,
		"stats":         s.Stats,
		"trace":         trace,
	}
}

// MarshalSnapshot returns the canonical JSON golden bytes for a run.
func MarshalSnapshot(scenarioName string, result *Result) ([]byte, error) {
	return canon.Marshal(NewSnapshot(scenarioName, result))
}

// RunWithGolden executes a scenario and compares its snapshot against
// testdata/scenarios/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns an error if the scenario cannot run. A golden mismatch fails t.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}
	if err := AssertGolden(t, scenario.Name, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares an existing result against its golden file.
func AssertGolden(t *testing.T, scenarioName string, result *Result) error {
	t.Helper()

	data, err := MarshalSnapshot(scenarioName, result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir(GoldenFixtureDir),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, data)
	return nil
}
