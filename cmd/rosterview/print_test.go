package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosterview/internal/config"
	"rosterview/internal/metrics"
	"rosterview/internal/roster"
)

const fixture = "../../internal/roster/testdata/roster.json"

func testConfig() *config.Config {
	return &config.Config{
		URL:     roster.DefaultURL,
		Timeout: roster.DefaultTimeout,
		LogFile: logOff,
	}
}

func TestPrintRoster_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printRoster(context.Background(), &buf, roster.FileSource{Path: fixture}, formatText))
	out := buf.String()

	dates := []string{"10/01/2022", "10/02/2022", "10/03/2022", "10/04/2022"}
	last := -1
	for _, d := range dates {
		i := strings.Index(out, d)
		require.Greater(t, i, last, "date %s out of order:\n%s", d, out)
		last = i
	}
	assert.Contains(t, out, "AMS - MAD")
	assert.Contains(t, out, "06:55 - 09:40")
	assert.Contains(t, out, "Layover")
	assert.Contains(t, out, "(Match Crew)")
	assert.Equal(t, 1, strings.Count(out, "Match Crew"))
}

func TestPrintRoster_JSONKeepsDateOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printRoster(context.Background(), &buf, roster.FileSource{Path: fixture}, formatJSON))

	var decoded map[string][]map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded, 4)
	assert.Len(t, decoded["10/01/2022"], 2)

	out := buf.String()
	assert.Less(t, strings.Index(out, "10/01/2022"), strings.Index(out, "10/04/2022"))
}

func TestPrintRoster_Empty(t *testing.T) {
	var buf bytes.Buffer
	f := fetchFunc(func(context.Context) ([]roster.DutyRecord, error) { return nil, nil })
	require.NoError(t, printRoster(context.Background(), &buf, f, formatText))
	assert.Equal(t, "No data found\n", buf.String())
}

func TestPrintRoster_FetchError(t *testing.T) {
	var buf bytes.Buffer
	err := printRoster(context.Background(), &buf, roster.FileSource{Path: "does-not-exist.json"}, formatText)
	require.Error(t, err)
	assert.ErrorIs(t, err, roster.ErrTransport)
	assert.Empty(t, buf.String())
}

func TestRootCmd_FlagsOverrideConfig(t *testing.T) {
	cfg := testConfig()
	root := newRootCmd(cfg)
	require.NoError(t, root.ParseFlags([]string{"--url", "http://localhost:9000/r.json", "--timeout", "2s", "--metrics-addr", ":9999"}))

	assert.Equal(t, "http://localhost:9000/r.json", cfg.URL)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.Equal(t, ":9999", cfg.MetricsAddr)
}

func TestPrintCmd_EndToEnd(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	cfg := testConfig()
	root := newRootCmd(cfg)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"print", "--file", fixture})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "MAD - AMS")
}

func TestPrintCmd_RejectsUnknownFormat(t *testing.T) {
	root := newRootCmd(testConfig())
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"print", "--file", fixture, "--format", "yaml"})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "yaml")
}

func TestServices_FetcherSelection(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	cfg := testConfig()
	s, err := startServices(context.Background(), cfg, false)
	require.NoError(t, err)
	defer s.close()

	client, ok := s.fetcher(cfg).(*roster.Client)
	require.True(t, ok)
	assert.Equal(t, roster.DefaultURL, client.URL())

	cfg.File = fixture
	records, err := s.fetcher(cfg).Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 5)
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.FetchesTotal.WithLabelValues(metrics.OutcomeOK)),
		"file fetches are counted like network fetches")
}

// fetchFunc adapts a function to roster.Fetcher.
type fetchFunc func(ctx context.Context) ([]roster.DutyRecord, error)

func (f fetchFunc) Fetch(ctx context.Context) ([]roster.DutyRecord, error) { return f(ctx) }

func TestServices_CloseStopsMetricsWatcher(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	cfg := testConfig()
	cfg.MetricsAddr = "127.0.0.1:0"
	s, err := startServices(context.Background(), cfg, false)
	require.NoError(t, err)
	require.NotNil(t, s.watched)

	s.close()
	select {
	case <-s.watched:
	case <-time.After(5 * time.Second):
		t.Fatal("metrics watcher still running after close")
	}
}
