// Package harness runs conformance scenarios against the prime oracle and
// the sieve generator.
//
// # Scenario Format
//
// Scenarios are YAML (.yaml, .yml) or CUE (.cue) files:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	run_token: "run-001"   # optional, fixed for golden comparison
//	limit: 10000           # optional oracle query limit
//	steps:
//	  - is_prime: 97
//	    expect: true
//	  - is_prime: 20000
//	    expect_error: OUT_OF_RANGE
//	  - next: 5
//	    expect_primes: [2, 3, 5, 7, 11]
//	assertions:
//	  - type: last_prime
//	    value: 97
//	  - type: trace_count
//	    kind: query
//	    value: 2
//
// An is_prime step queries the scenario's Oracle. A next step pulls primes
// from a separate Generator, so it never disturbs the Oracle's cache.
//
// # Assertion Types
//
//   - last_prime: the Oracle's watermark equals value
//   - cache_size: the Oracle caches exactly value primes
//   - pulls: the Oracle pulled exactly value primes from its source
//   - generated: the step Generator produced exactly value primes
//   - trace_count: the trace holds exactly value events of kind
//
// # Deterministic Testing
//
// Every run gets a fresh Oracle over a pull-counting source, a fresh
// Generator, a StepClock starting at 0 and a fixed run token. Two runs of the
// same scenario produce byte-identical canonical traces, which is what golden
// files under testdata/scenarios/golden compare against.
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/basics.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(scenario)
//	if !result.Pass {
//	    for _, e := range result.Errors {
//	        log.Println(e)
//	    }
//	}
package harness
