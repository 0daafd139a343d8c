package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/golangdaddy/smartroad/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(ticks, spawnEvery int) *config.Config {
	conf := config.DefaultConfig()
	conf.WindowWidth = 320
	conf.WindowHeight = 320
	conf.Seed = 42
	conf.Headless.Ticks = ticks
	conf.Headless.SpawnEvery = spawnEvery
	return conf
}

func TestRunWithoutExitsPrintsNoData(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(testConfig(1, 30), &out))
	assert.Contains(t, out.String(), "Status: No data collected yet")
}

func TestRunPrintsReport(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(testConfig(600, 20), &out))

	report := out.String()
	assert.True(t, strings.HasPrefix(report, "=== SMART ROAD STATISTICS ==="))
	assert.True(t, strings.HasSuffix(report, "\n"))
}

func TestRunIsDeterministicForSeed(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, run(testConfig(900, 25), &a))
	require.NoError(t, run(testConfig(900, 25), &b))
	assert.Equal(t, a.String(), b.String())
}

func TestRunRejectsSmallWindow(t *testing.T) {
	conf := testConfig(10, 5)
	conf.WindowWidth = 64

	var out bytes.Buffer
	assert.Error(t, run(conf, &out))
	assert.Empty(t, out.String())
}
