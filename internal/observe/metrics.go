// Package observe wires OpenTelemetry metrics and tracing into lingolab and
// provides the HTTP middleware that records both for every request.
//
// Tests should build their own [Metrics] with [NewMetrics] and a manual
// reader instead of relying on [DefaultMetrics].
package observe

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "lingolab"

// Metrics holds the instruments recorded by the web server and services.
type Metrics struct {
	// HTTPRequestDuration tracks request processing time. Attributes: method, path.
	HTTPRequestDuration metric.Float64Histogram

	// TranscriptComparisons counts transcript comparisons. Attribute: source
	// ("dictation" or "api").
	TranscriptComparisons metric.Int64Counter

	// ComparisonErrors counts categorised word errors. Attribute: category.
	ComparisonErrors metric.Int64Counter

	// ComparisonAccuracy records the accuracy percentage of each comparison.
	ComparisonAccuracy metric.Float64Histogram

	SpeakingEvaluations metric.Int64Counter
	QuizSubmissions     metric.Int64Counter

	// ProgressSaves counts autosaves. Attribute: status.
	ProgressSaves metric.Int64Counter

	// TTSRequests counts speech synthesis lookups. Attribute: cache ("hit" or "miss").
	TTSRequests metric.Int64Counter

	ActiveDictationSessions metric.Int64UpDownCounter
	RunningWritingTimers    metric.Int64UpDownCounter
}

var latencyBuckets = []float64{
	0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5,
}

var accuracyBuckets = []float64{
	10, 20, 30, 40, 50, 60, 70, 80, 90, 95, 100,
}

// NewMetrics creates all instruments from mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.HTTPRequestDuration, err = m.Float64Histogram("lingolab.http.request.duration",
		metric.WithDescription("Duration of HTTP request handling."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.ComparisonAccuracy, err = m.Float64Histogram("lingolab.compare.accuracy",
		metric.WithDescription("Word accuracy of transcript comparisons."),
		metric.WithUnit("%"),
		metric.WithExplicitBucketBoundaries(accuracyBuckets...),
	); err != nil {
		return nil, err
	}

	if met.TranscriptComparisons, err = m.Int64Counter("lingolab.compare.total",
		metric.WithDescription("Number of transcript comparisons."),
	); err != nil {
		return nil, err
	}
	if met.ComparisonErrors, err = m.Int64Counter("lingolab.compare.errors",
		metric.WithDescription("Word errors found by comparisons, by category."),
	); err != nil {
		return nil, err
	}
	if met.SpeakingEvaluations, err = m.Int64Counter("lingolab.speaking.evaluations",
		metric.WithDescription("Number of speaking recordings evaluated."),
	); err != nil {
		return nil, err
	}
	if met.QuizSubmissions, err = m.Int64Counter("lingolab.quiz.submissions",
		metric.WithDescription("Number of reading quiz submissions."),
	); err != nil {
		return nil, err
	}
	if met.ProgressSaves, err = m.Int64Counter("lingolab.progress.saves",
		metric.WithDescription("Dictation progress autosaves."),
	); err != nil {
		return nil, err
	}
	if met.TTSRequests, err = m.Int64Counter("lingolab.tts.requests",
		metric.WithDescription("Text-to-speech requests."),
	); err != nil {
		return nil, err
	}

	if met.ActiveDictationSessions, err = m.Int64UpDownCounter("lingolab.dictation.active_sessions",
		metric.WithDescription("Dictation sessions held in memory."),
	); err != nil {
		return nil, err
	}
	if met.RunningWritingTimers, err = m.Int64UpDownCounter("lingolab.writing.running_timers",
		metric.WithDescription("Writing countdowns currently running."),
	); err != nil {
		return nil, err
	}

	return met, nil
}

var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns metrics bound to the global meter provider.
// Panics if instrument creation fails.
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		var err error
		defaultMetrics, err = NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("observe: failed to create default metrics: " + err.Error())
		}
	})
	return defaultMetrics
}

// Attr is shorthand for [attribute.String].
func Attr(key, value string) attribute.KeyValue {
	return attribute.String(key, value)
}

// RecordComparison records one comparison with its accuracy and the number of
// errors per category.
func (m *Metrics) RecordComparison(ctx context.Context, source string, accuracy float64, byCategory map[string]int) {
	m.TranscriptComparisons.Add(ctx, 1, metric.WithAttributes(Attr("source", source)))
	m.ComparisonAccuracy.Record(ctx, accuracy, metric.WithAttributes(Attr("source", source)))
	for category, n := range byCategory {
		if n == 0 {
			continue
		}
		m.ComparisonErrors.Add(ctx, int64(n), metric.WithAttributes(Attr("category", category)))
	}
}

// RecordProgressSave counts an autosave attempt; status is "ok" or "error".
func (m *Metrics) RecordProgressSave(ctx context.Context, status string) {
	m.ProgressSaves.Add(ctx, 1, metric.WithAttributes(Attr("status", status)))
}

func (m *Metrics) RecordTTS(ctx context.Context, cached bool) {
	v := "miss"
	if cached {
		v = "hit"
	}
	m.TTSRequests.Add(ctx, 1, metric.WithAttributes(Attr("cache", v)))
}
