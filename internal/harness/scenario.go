package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance scenario for the oracle and generator.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name" json:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description" json:"description"`

	// RunToken is a fixed token for deterministic golden traces.
	// Empty means testutil.DefaultRunToken.
	RunToken string `yaml:"run_token,omitempty" json:"run_token,omitempty"`

	// Limit is the Oracle's query limit. Zero means unlimited.
	Limit uint64 `yaml:"limit,omitempty" json:"limit,omitempty"`

	// Steps run in order. Each step is either an is_prime query or a next pull.
	Steps []Step `yaml:"steps" json:"steps"`

	// Assertions are checked against the final state and trace.
	Assertions []Assertion `yaml:"assertions" json:"assertions"`
}

// Step is one scenario action.
type Step struct {
	// IsPrime queries the Oracle.
	IsPrime *uint64 `yaml:"is_prime,omitempty" json:"is_prime,omitempty"`

	// Expect is the expected answer to IsPrime. Nil skips the check.
	Expect *bool `yaml:"expect,omitempty" json:"expect,omitempty"`

	// ExpectError is the expected error code for IsPrime, e.g. OUT_OF_RANGE.
	ExpectError string `yaml:"expect_error,omitempty" json:"expect_error,omitempty"`

	// Next pulls this many primes from the step Generator.
	Next *int `yaml:"next,omitempty" json:"next,omitempty"`

	// ExpectPrimes is the expected output of Next. Nil skips the check.
	ExpectPrimes []uint64 `yaml:"expect_primes,omitempty" json:"expect_primes,omitempty"`
}

// Assertion validates final state or the trace.
type Assertion struct {
	// Type is one of the Assert* constants.
	Type string `yaml:"type" json:"type"`

	// Kind selects the event kind for trace_count.
	Kind string `yaml:"kind,omitempty" json:"kind,omitempty"`

	// Value is the expected number.
	Value uint64 `yaml:"value" json:"value"`
}

// Assertion type constants.
const (
	AssertLastPrime  = "last_prime"
	AssertCacheSize  = "cache_size"
	AssertPulls      = "pulls"
	AssertGenerated  = "generated"
	AssertTraceCount = "trace_count"
)

var assertionTypes = []string{
	AssertLastPrime,
	AssertCacheSize,
	AssertPulls,
	AssertGenerated,
	AssertTraceCount,
}

// Labels a CUE scenario may declare, per level. They mirror the yaml tags.
var (
	scenarioFields  = []string{"name", "description", "run_token", "limit", "steps", "assertions"}
	stepFields      = []string{"is_prime", "expect", "expect_error", "next", "expect_primes"}
	assertionFields = []string{"type", "kind", "value"}
)

// IsScenarioFile reports whether path has a scenario extension.
func IsScenarioFile(path string) bool {
	switch filepath.Ext(path) {
	case ".yaml", ".yml", ".cue":
		return true
	}
	return false
}

// LoadScenario reads and validates a scenario file. The format is chosen by
// extension. Unknown fields, malformed files and missing required fields are
// errors.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario *Scenario
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		scenario, err = parseYAML(data)
	case ".cue":
		scenario, err = parseCUE(data, path)
	default:
		return nil, fmt.Errorf("unsupported scenario extension %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	if err := validateScenario(scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return scenario, nil
}

func parseYAML(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject typos like "assertion:"
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &scenario, nil
}

func parseCUE(data []byte, path string) (*Scenario, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("failed to compile CUE: %w", err)
	}

	// Decode ignores labels with no struct field, so typos are caught here
	// at every level YAML's KnownFields would catch them.
	if err := checkCUEFields(v, scenarioFields, "scenario"); err != nil {
		return nil, err
	}
	if err := checkCUEList(v, "steps", stepFields); err != nil {
		return nil, err
	}
	if err := checkCUEList(v, "assertions", assertionFields); err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := v.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to decode CUE: %w", err)
	}
	return &scenario, nil
}

// checkCUEFields rejects any label of struct v not listed in allowed.
func checkCUEFields(v cue.Value, allowed []string, where string) error {
	fields, err := v.Fields()
	if err != nil {
		return fmt.Errorf("failed to read CUE fields of %s: %w", where, err)
	}
	for fields.Next() {
		label := fields.Selector().String()
		if !slices.Contains(allowed, label) {
			return fmt.Errorf("failed to parse CUE: %s: unknown field %q", where, label)
		}
	}
	return nil
}

// checkCUEList applies checkCUEFields to every element of the list at name.
// A missing list is left to validateScenario.
func checkCUEList(v cue.Value, name string, allowed []string) error {
	list := v.LookupPath(cue.ParsePath(name))
	if !list.Exists() {
		return nil
	}
	elems, err := list.List()
	if err != nil {
		return fmt.Errorf("failed to parse CUE: %s must be a list: %w", name, err)
	}
	for i := 0; elems.Next(); i++ {
		if err := checkCUEFields(elems.Value(), allowed, fmt.Sprintf("%s[%d]", name, i)); err != nil {
			return err
		}
	}
	return nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		if err := validateStep(i, &step); err != nil {
			return err
		}
	}

	for i, a := range s.Assertions {
		if a.Type == "" {
			return fmt.Errorf("assertions[%d]: type is required", i)
		}
		if !slices.Contains(assertionTypes, a.Type) {
			return fmt.Errorf("assertions[%d]: unknown assertion type %q", i, a.Type)
		}
		if a.Type == AssertTraceCount && a.Kind != KindQuery && a.Kind != KindNext {
			return fmt.Errorf("assertions[%d]: trace_count requires kind %q or %q", i, KindQuery, KindNext)
		}
	}

	return nil
}

func validateStep(i int, step *Step) error {
	switch {
	case step.IsPrime != nil && step.Next != nil:
		return fmt.Errorf("steps[%d]: is_prime and next are mutually exclusive", i)
	case step.IsPrime == nil && step.Next == nil:
		return fmt.Errorf("steps[%d]: one of is_prime or next is required", i)
	case step.IsPrime != nil:
		if step.ExpectPrimes != nil {
			return fmt.Errorf("steps[%d]: expect_primes only applies to next", i)
		}
		if step.Expect != nil && step.ExpectError != "" {
			return fmt.Errorf("steps[%d]: expect and expect_error are mutually exclusive", i)
		}
	default:
		if *step.Next < 0 {
			return fmt.Errorf("steps[%d]: next must be non-negative", i)
		}
		if step.Expect != nil || step.ExpectError != "" {
			return fmt.Errorf("steps[%d]: expect and expect_error only apply to is_prime", i)
		}
	}
	return nil
}
