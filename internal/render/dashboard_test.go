package render

import (
	"bytes"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CoinChart/internal/model"
)

func testSeries() model.Series {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	prices := []float64{61018.29, 62000, 63500, 62800, 63179.71}
	s := make(model.Series, len(prices))
	for i, p := range prices {
		s[i] = model.Sample{Time: base.Add(time.Duration(i) * 6 * time.Hour), Price: p, Volume: 1000 + float64(i)*10}
	}
	return s
}

func testRenderer() *Renderer {
	return &Renderer{
		Width:        40,
		MovingPeriod: 3,
		Settings: Settings{
			PointsPerDay:  4,
			DayMultiplier: 7,
			StartPrice:    63000,
			PriceFloor:    60000,
			VolumeFloor:   100,
		},
	}
}

func renderTab(t *testing.T, tab model.Tab, series model.Series) string {
	t.Helper()
	var buf bytes.Buffer
	err := testRenderer().Render(&buf, Frame{
		ViewID:   "view-1",
		Tab:      tab,
		Snapshot: model.Snapshot{Range: model.Range1W, Series: series},
		Days:     21,
	})
	require.NoError(t, err)
	return buf.String()
}

func TestHeader(t *testing.T) {
	assert.Equal(t, "63,179.71 USD\n+2,161.42 (3.54%)\n", Header(testSeries()))
	assert.Contains(t, Header(nil), placeholder)
}

func TestTabStripAndRangeStrip(t *testing.T) {
	strip := TabStrip(model.TabStatistics)
	assert.Contains(t, strip, "[Statistics]")
	assert.Contains(t, strip, " Chart ")
	assert.Equal(t, 1, strings.Count(strip, "["))

	rs := RangeStrip(model.Range1M)
	assert.Contains(t, rs, "[1m]")
	assert.Contains(t, rs, " max ")
}

func TestSparkline(t *testing.T) {
	assert.Equal(t, "", Sparkline(nil, 10))
	assert.Equal(t, "▁▄█", Sparkline([]float64{1, 1.5, 2}, 10))
	assert.Equal(t, "▄▄▄", Sparkline([]float64{5, 5, 5}, 10))

	long := make([]float64, 196)
	for i := range long {
		long[i] = float64(i)
	}
	line := Sparkline(long, 60)
	assert.Equal(t, 60, utf8.RuneCountInString(line))
	assert.True(t, strings.HasPrefix(line, "▁"))
	assert.True(t, strings.HasSuffix(line, "█"))
}

func TestRender_ChartTab(t *testing.T) {
	out := renderTab(t, model.TabChart, testSeries())
	assert.Contains(t, out, "[Chart]")
	assert.Contains(t, out, "[1w]")
	assert.Contains(t, out, "highest  $63,500.00")
	assert.Contains(t, out, "last     $63,179.71")
}

func TestRender_StatisticsTab(t *testing.T) {
	out := renderTab(t, model.TabStatistics, testSeries())
	assert.Contains(t, out, "Samples       5")
	assert.Contains(t, out, "Lowest        $61,018.29")
	assert.Contains(t, out, "Total volume  5,100")
}

func TestRender_OtherTabs(t *testing.T) {
	assert.Contains(t, renderTab(t, model.TabSummary, testSeries()), "1w (21 days, 5 samples)")
	assert.Contains(t, renderTab(t, model.TabAnalysis, testSeries()), "SMA(3)")
	settings := renderTab(t, model.TabSettings, testSeries())
	assert.Contains(t, settings, "view-1")
	assert.Contains(t, settings, "$60,000.00")
}

func TestRender_EmptySeries(t *testing.T) {
	for _, tab := range model.Tabs {
		out := renderTab(t, tab, model.Series{})
		assert.NotEmpty(t, out, "tab %s", tab)
	}
	assert.Contains(t, renderTab(t, model.TabStatistics, nil), "no data")
}

func TestRender_UnknownTab(t *testing.T) {
	var buf bytes.Buffer
	err := testRenderer().Render(&buf, Frame{Tab: "orders"})
	assert.ErrorIs(t, err, model.ErrInvalidTab)
}

func longSeries(n int) model.Series {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	s := make(model.Series, n)
	for i := range s {
		s[i] = model.Sample{Time: base.Add(time.Duration(i) * 6 * time.Hour), Price: 60000 + float64(i), Volume: 100}
	}
	return s
}

func lineWithPrefix(t *testing.T, out, prefix string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, prefix) {
			return line
		}
	}
	t.Fatalf("no line starting with %q in:\n%s", prefix, out)
	return ""
}

func TestRender_ChartFullscreen(t *testing.T) {
	series := longSeries(100)
	frame := Frame{Tab: model.TabChart, Snapshot: model.Snapshot{Range: model.Range1W, Series: series}}

	var normal bytes.Buffer
	require.NoError(t, testRenderer().Render(&normal, frame))
	assert.Contains(t, normal.String(), "USD")
	assert.Contains(t, normal.String(), "[ ] Fullscreen")
	assert.Equal(t, 7+40, utf8.RuneCountInString(lineWithPrefix(t, normal.String(), "price  ")))

	frame.Fullscreen = true
	var full bytes.Buffer
	require.NoError(t, testRenderer().Render(&full, frame))
	out := full.String()
	assert.NotContains(t, out, "USD", "fullscreen hides the header")
	assert.NotContains(t, out, "[Chart]", "fullscreen hides the tab strip")
	assert.Contains(t, out, "[x] Fullscreen")
	assert.Equal(t, 7+80, utf8.RuneCountInString(lineWithPrefix(t, out, "price  ")))
}

func TestRender_FullscreenOnlyAffectsChart(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testRenderer().Render(&buf, Frame{
		Tab:        model.TabStatistics,
		Snapshot:   model.Snapshot{Range: model.Range1W, Series: testSeries()},
		Fullscreen: true,
	}))
	assert.Contains(t, buf.String(), "[Statistics]")
}

func TestRender_ChartCompare(t *testing.T) {
	frame := Frame{Tab: model.TabChart, Snapshot: model.Snapshot{Range: model.Range1W, Series: testSeries()}}

	var plain bytes.Buffer
	require.NoError(t, testRenderer().Render(&plain, frame))
	assert.NotContains(t, plain.String(), "sma")

	frame.Compare = true
	var cmp bytes.Buffer
	require.NoError(t, testRenderer().Render(&cmp, frame))
	out := cmp.String()
	assert.Contains(t, out, "[x] Compare")
	line := lineWithPrefix(t, out, "sma3")
	assert.Equal(t, 7+len(testSeries()), utf8.RuneCountInString(line))
}
