package metrics_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lonelu/Informed-Proteomics/metrics"
)

func TestObserveBuild(t *testing.T) {
	m := metrics.New()
	m.ObserveBuild("bottom-up", 3*time.Millisecond, 20, 30)
	m.ObserveBuild("top-down", time.Millisecond, 70, 140)

	assert.Equal(t, 20.0, testutil.ToFloat64(m.Combinations.WithLabelValues("bottom-up")))
	assert.Equal(t, 140.0, testutil.ToFloat64(m.Transitions.WithLabelValues("top-down")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.BuildDuration))

	expected := `
# HELP modcat_catalogue_combinations Number of catalogued modification combinations, by profile.
# TYPE modcat_catalogue_combinations gauge
modcat_catalogue_combinations{profile="bottom-up"} 20
modcat_catalogue_combinations{profile="top-down"} 70
`
	require.NoError(t, testutil.CollectAndCompare(m.Combinations, strings.NewReader(expected)))
}

func TestObserveFailure(t *testing.T) {
	m := metrics.New()
	m.ObserveFailure("huge")
	m.ObserveFailure("huge")
	assert.Equal(t, 2.0, testutil.ToFloat64(m.BuildFailures.WithLabelValues("huge")))
}

func TestWriteTextfile(t *testing.T) {
	m := metrics.New()
	m.ObserveBuild("p", time.Millisecond, 6, 6)

	path := filepath.Join(t.TempDir(), "modcat.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `modcat_catalogue_combinations{profile="p"} 6`)
	assert.Contains(t, string(data), "modcat_catalogue_build_duration_seconds_count")
}
