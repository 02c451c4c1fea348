package render

import (
	"fmt"
	"io"
	"strings"

	"CoinChart/internal/calculator"
	"CoinChart/internal/model"
)

const placeholder = "—"

// Settings describes the generator and range mapping behind a view.
type Settings struct {
	PointsPerDay  int
	DayMultiplier int
	StartPrice    float64
	PriceFloor    float64
	VolumeFloor   float64
}

// Frame is everything needed to draw one view.
type Frame struct {
	ViewID   string
	Tab      model.Tab
	Snapshot model.Snapshot
	Days     int

	// Fullscreen draws the chart alone at twice the width.
	Fullscreen bool
	// Compare overlays the moving average on the price line.
	Compare bool
}

// Renderer draws dashboard frames as plain text.
type Renderer struct {
	Width        int
	MovingPeriod int
	Settings     Settings
}

// Render writes the header, the tab strip and the active tab.
func (r *Renderer) Render(w io.Writer, f Frame) error {
	var b strings.Builder
	series := f.Snapshot.Series

	if f.Fullscreen && f.Tab == model.TabChart {
		b.WriteString(r.chart(f))
		_, err := io.WriteString(w, b.String())
		return err
	}

	b.WriteString(Header(series))
	b.WriteString("\n")
	b.WriteString(TabStrip(f.Tab))
	b.WriteString("\n\n")

	switch f.Tab {
	case model.TabSummary:
		b.WriteString(r.summary(f))
	case model.TabChart:
		b.WriteString(r.chart(f))
	case model.TabStatistics:
		b.WriteString(r.statistics(series))
	case model.TabAnalysis:
		b.WriteString(r.analysis(series))
	case model.TabSettings:
		b.WriteString(r.settings(f))
	default:
		return fmt.Errorf("render: %w: %q", model.ErrInvalidTab, f.Tab)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Header shows the last price and the change over the series.
func Header(series model.Series) string {
	last, err := calculator.Last(series)
	if err != nil {
		return fmt.Sprintf("%s USD\n%s\n", placeholder, placeholder)
	}
	abs, pct, _ := calculator.Change(series)
	return fmt.Sprintf("%s USD\n%s\n", Amount(last.Price), SignedChange(abs, pct))
}

// TabStrip lists the tabs with the active one bracketed.
func TabStrip(active model.Tab) string {
	parts := make([]string, len(model.Tabs))
	for i, t := range model.Tabs {
		if t == active {
			parts[i] = "[" + t.Title() + "]"
		} else {
			parts[i] = " " + t.Title() + " "
		}
	}
	return strings.Join(parts, " ")
}

// RangeStrip lists the ranges with the selected one bracketed.
func RangeStrip(selected model.Range) string {
	parts := make([]string, len(model.Ranges))
	for i, rg := range model.Ranges {
		if rg == selected {
			parts[i] = "[" + string(rg) + "]"
		} else {
			parts[i] = " " + string(rg) + " "
		}
	}
	return strings.Join(parts, " ")
}

// ChartControls shows the fullscreen and compare toggles beside the ranges.
func ChartControls(f Frame) string {
	return fmt.Sprintf("%s Fullscreen  %s Compare   %s",
		checkbox(f.Fullscreen), checkbox(f.Compare), RangeStrip(f.Snapshot.Range))
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

// Tooltip renders a labelled price marker for one sample.
func Tooltip(label string, s model.Sample) string {
	return fmt.Sprintf("%-8s %s  %s", label, Currency(s.Price), s.Time.Format("Jan 02 15:04"))
}

func (r *Renderer) chart(f Frame) string {
	var b strings.Builder
	series := f.Snapshot.Series
	b.WriteString(ChartControls(f))
	b.WriteString("\n\n")

	if len(series) == 0 {
		b.WriteString(placeholder + "\n")
		return b.String()
	}

	width := r.Width
	if f.Fullscreen {
		width *= 2
	}
	prices := series.Prices()
	b.WriteString("price  " + Sparkline(prices, width) + "\n")
	if f.Compare {
		b.WriteString(r.compareLine(prices, width))
	}
	b.WriteString("volume " + Sparkline(series.Volumes(), width) + "\n")
	b.WriteString(fmt.Sprintf("       %s → %s\n\n",
		series[0].Time.Format("Jan 02 15:04"), series[len(series)-1].Time.Format("Jan 02 15:04")))

	high, _ := calculator.HighestPrice(series)
	last, _ := calculator.Last(series)
	b.WriteString(Tooltip("highest", high) + "\n")
	b.WriteString(Tooltip("last", last) + "\n")
	return b.String()
}

// compareLine draws the moving average under the price line, padded on the
// left with its first value so both lines end on the same sample.
func (r *Renderer) compareLine(prices []float64, width int) string {
	period := min(r.MovingPeriod, len(prices))
	ma, err := calculator.MovingAverage(prices, period)
	if err != nil {
		return fmt.Sprintf("sma    %s\n", placeholder)
	}
	padded := make([]float64, len(prices))
	copy(padded[len(prices)-len(ma):], ma)
	for i := 0; i < len(prices)-len(ma); i++ {
		padded[i] = ma[0]
	}
	return fmt.Sprintf("sma%-3d %s\n", period, Sparkline(padded, width))
}

func (r *Renderer) summary(f Frame) string {
	series := f.Snapshot.Series
	var b strings.Builder
	b.WriteString(fmt.Sprintf("range:   %s (%d days, %d samples)\n", f.Snapshot.Range, f.Days, len(series)))
	st, err := calculator.Summarize(series, r.MovingPeriod)
	if err != nil {
		b.WriteString(fmt.Sprintf("high:    %s\nlow:     %s\n", placeholder, placeholder))
		return b.String()
	}
	b.WriteString(fmt.Sprintf("high:    %s\n", Currency(st.Highest.Price)))
	b.WriteString(fmt.Sprintf("low:     %s\n", Currency(st.Lowest.Price)))
	b.WriteString(fmt.Sprintf("volume:  %s\n", Volume(st.TotalVolume)))
	return b.String()
}

func (r *Renderer) statistics(series model.Series) string {
	st, err := calculator.Summarize(series, r.MovingPeriod)
	if err != nil {
		return "no data\n"
	}
	rows := [][2]string{
		{"Samples", fmt.Sprintf("%d", st.Count)},
		{"Open", Currency(st.First.Price)},
		{"Last", Currency(st.Last.Price)},
		{"Highest", Currency(st.Highest.Price)},
		{"Lowest", Currency(st.Lowest.Price)},
		{"Average", Currency(st.AvgPrice)},
		{"Change", SignedChange(st.Change, st.ChangePct)},
		{"Total volume", Volume(st.TotalVolume)},
		{"Avg volume", Volume(st.AvgVolume)},
	}
	return table(rows)
}

func (r *Renderer) analysis(series model.Series) string {
	st, err := calculator.Summarize(series, r.MovingPeriod)
	if err != nil {
		return "no data\n"
	}
	trend := "above"
	if st.Last.Price < st.MovingAvg {
		trend = "below"
	}
	rows := [][2]string{
		{fmt.Sprintf("SMA(%d)", st.MovingPeriod), Currency(st.MovingAvg)},
		{"Last vs SMA", trend},
		{fmt.Sprintf("RSI(%d)", st.RSIPeriod), fmt.Sprintf("%.0f", st.RSI)},
		{"Range position", Percent(st.Position)},
	}
	return table(rows)
}

func (r *Renderer) settings(f Frame) string {
	s := r.Settings
	rows := [][2]string{
		{"View", f.ViewID},
		{"Points per day", fmt.Sprintf("%d", s.PointsPerDay)},
		{"Day multiplier", fmt.Sprintf("%d", s.DayMultiplier)},
		{"Start price", Currency(s.StartPrice)},
		{"Price floor", Currency(s.PriceFloor)},
		{"Volume floor", Volume(s.VolumeFloor)},
	}
	return table(rows)
}

func table(rows [][2]string) string {
	width := 0
	for _, row := range rows {
		if len(row[0]) > width {
			width = len(row[0])
		}
	}
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%-*s  %s\n", width, row[0], row[1]))
	}
	return b.String()
}
