package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithGolden_FirstThousand(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/first_thousand.yaml")
	require.NoError(t, err)

	result, err := RunWithGolden(t, scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
}

func TestRunWithGolden_RangeLimit(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/range_limit.yaml")
	require.NoError(t, err)

	result, err := RunWithGolden(t, scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
}

func TestRunWithGolden_Idempotent(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/idempotent.cue")
	require.NoError(t, err)

	result, err := RunWithGolden(t, scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
}

func TestGoldenPath_MatchesFixtureLayout(t *testing.T) {
	for _, file := range []string{"first_thousand.yaml", "range_limit.yaml", "idempotent.cue"} {
		t.Run(file, func(t *testing.T) {
			scenarioFile := filepath.Join("testdata", "scenarios", file)
			scenario, err := LoadScenario(scenarioFile)
			require.NoError(t, err)

			path := GoldenPath(scenarioFile, scenario.Name)
			assert.Equal(t, filepath.Join(GoldenFixtureDir, scenario.Name+".golden"), path)

			result, err := Run(scenario)
			require.NoError(t, err)
			want, err := os.ReadFile(path)
			require.NoError(t, err, "every fixture scenario has a checked-in golden file")
			got, err := MarshalSnapshot(scenario.Name, result)
			require.NoError(t, err)
			assert.Equal(t, string(want), string(got))
		})
	}
}

func TestMarshalSnapshot_Shape(t *testing.T) {
	r := NewResult("tok")
	r.AddQueryTrace(1, 2, true, 1)
	r.AddNextTrace(2, nil)
	r.Stats.LastPrime = 2
	r.Stats.Cached = 1
	r.Stats.Pulls = 1

	data, err := MarshalSnapshot("shape", r)
	require.NoError(t, err)
	assert.Equal(t,
		`{"run_token":"tok","scenario_name":"shape","stats":{"cached":1,"last_prime":2,"pulls":1},`+
			`"trace":[{"kind":"query","n":2,"pulled":1,"result":true,"seq":1},{"count":0,"kind":"next","primes":[],"seq":2}]}`,
		string(data))
}
