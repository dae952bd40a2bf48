package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lonelu/Informed-Proteomics/catalogue"
	"github.com/lonelu/Informed-Proteomics/modcomb"
)

const testConfig = `
logging:
  level: debug
profiles:
  - name: ox-ac
    maxModifications: 2
    modifications:
      - {name: Oxidation, massDelta: 15.994915, residue: M}
      - {name: Acetylation, massDelta: 42.010565, residue: "*", location: protein-n-term}
  - name: phospho
    maxModifications: 3
    modifications:
      - {name: Phosphorylation, massDelta: 79.966331, residue: S}
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "modcat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRun_Summary(t *testing.T) {
	path := writeConfig(t, testConfig)
	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-config", path}, &stdout, &stderr))

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "ox-ac: 2 types"))
	assert.Contains(t, lines[1], "phospho: 1 types")
	assert.Contains(t, stderr.String(), "catalogue built")
}

func TestRun_DumpOneProfile(t *testing.T) {
	path := writeConfig(t, testConfig)
	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-config", path, "-profile", "ox-ac", "-dump"}, &stdout, &stderr))

	out := stdout.String()
	assert.NotContains(t, out, "phospho")
	assert.Contains(t, out, "INDEX")
	assert.Contains(t, out, "0→1 1→2")
}

func TestRun_UnknownProfile(t *testing.T) {
	path := writeConfig(t, testConfig)
	err := run(context.Background(), []string{"-config", path, "-profile", "nope"}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.True(t, errors.Is(err, catalogue.ErrUnknownProfile))
}

func TestRun_MetricsTextfile(t *testing.T) {
	prom := filepath.Join(t.TempDir(), "modcat.prom")
	path := writeConfig(t, testConfig+"metrics:\n  enabled: true\n  textfile: "+prom+"\n")

	require.NoError(t, run(context.Background(), []string{"-config", path}, &bytes.Buffer{}, &bytes.Buffer{}))
	data, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(data), `modcat_catalogue_combinations{profile="ox-ac"} 6`)
	assert.Contains(t, string(data), `modcat_catalogue_combinations{profile="phospho"} 4`)
}

func TestRun_TooLarge(t *testing.T) {
	path := writeConfig(t, testConfig+"catalogue:\n  maxCombinations: 5\n")
	err := run(context.Background(), []string{"-config", path}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.True(t, errors.Is(err, modcomb.ErrCatalogueTooLarge))
}

func TestRun_BadFlags(t *testing.T) {
	err := run(context.Background(), []string{"-help"}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.True(t, errors.Is(err, flag.ErrHelp))

	err = run(context.Background(), []string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
