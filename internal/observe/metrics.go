// SPDX-License-Identifier: EPL-2.0

// Package observe holds the OpenTelemetry metric instruments of colorfreq and
// the Prometheus bridge that exposes them on /metrics.
//
// Instruments are always built with [NewMetrics] from an explicit
// [metric.MeterProvider], so tests can read them with a manual reader.
package observe

import "go.opentelemetry.io/otel/metric"

const meterName = "github.com/ik5/colorfreq"

// Metrics holds every instrument recorded by the capture and render loops.
type Metrics struct {
	// Frames counts frames pulled from the source. Use with attribute
	// attribute.String("status", "ok"|"error").
	Frames metric.Int64Counter

	// PipelineDuration is the time spent turning one frame into a reading.
	PipelineDuration metric.Float64Histogram

	// PeakFrequency records the dominant frequency of each frame.
	PeakFrequency metric.Float64Histogram

	// ReadingsOverwritten counts readings replaced in the render mailbox
	// before the renderer picked them up.
	ReadingsOverwritten metric.Int64Counter

	// RenderErrors counts failed Display calls.
	RenderErrors metric.Int64Counter

	// Viewers is the number of connected browser viewers.
	Viewers metric.Int64UpDownCounter
}

var durationBuckets = []float64{
	0.00001, 0.000025, 0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.05,
}

// frequencyBuckets are octave steps across the audible band.
var frequencyBuckets = []float64{
	20, 40, 80, 160, 320, 640, 1280, 2560, 5120, 10240, 20480,
}

// NewMetrics creates all instruments from mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.Frames, err = m.Int64Counter("colorfreq.frames",
		metric.WithDescription("Frames read from the audio source by status."),
	); err != nil {
		return nil, err
	}
	if met.PipelineDuration, err = m.Float64Histogram("colorfreq.pipeline.duration",
		metric.WithDescription("Time to analyze one frame and map it to a color."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(durationBuckets...),
	); err != nil {
		return nil, err
	}
	if met.PeakFrequency, err = m.Float64Histogram("colorfreq.peak.frequency",
		metric.WithDescription("Dominant frequency per frame."),
		metric.WithUnit("Hz"),
		metric.WithExplicitBucketBoundaries(frequencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.ReadingsOverwritten, err = m.Int64Counter("colorfreq.readings.overwritten",
		metric.WithDescription("Readings superseded before they were rendered."),
	); err != nil {
		return nil, err
	}
	if met.RenderErrors, err = m.Int64Counter("colorfreq.render.errors",
		metric.WithDescription("Failed renderer Display calls."),
	); err != nil {
		return nil, err
	}
	if met.Viewers, err = m.Int64UpDownCounter("colorfreq.viewers",
		metric.WithDescription("Connected websocket viewers."),
	); err != nil {
		return nil, err
	}

	return met, nil
}
