package main

import (
	"io"
	"strconv"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// maxChartPoints bounds the series length; longer runs are bucketed.
const maxChartPoints = 2000

// WriteChart renders update times as an HTML line chart.
func WriteChart(w io.Writer, samples []time.Duration) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Update Time", Subtitle: strconv.Itoa(len(samples)) + " frames"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Name: "frame"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "ms"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider", Start: 0, End: 100}),
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "400px"}),
	)

	points := bucketMax(samples, maxChartPoints)
	labels := make([]string, len(points))
	data := make([]opts.LineData, len(points))
	for i, p := range points {
		labels[i] = strconv.Itoa(p.frame)
		data[i] = opts.LineData{Value: float64(p.value) / float64(time.Millisecond)}
	}

	line.SetXAxis(labels).AddSeries("update", data,
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
	)
	return line.Render(w)
}

type chartPoint struct {
	frame int
	value time.Duration
}

// bucketMax splits samples into at most n buckets and keeps the slowest frame
// of each, so spikes survive downsampling.
func bucketMax(samples []time.Duration, n int) []chartPoint {
	if len(samples) == 0 || n <= 0 {
		return nil
	}
	size := (len(samples) + n - 1) / n

	points := make([]chartPoint, 0, min(len(samples), n))
	for start := 0; start < len(samples); start += size {
		end := min(start+size, len(samples))
		worst := chartPoint{frame: start, value: samples[start]}
		for i := start + 1; i < end; i++ {
			if samples[i] > worst.value {
				worst = chartPoint{frame: i, value: samples[i]}
			}
		}
		points = append(points, worst)
	}
	return points
}
