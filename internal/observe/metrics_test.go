package observe

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newTestMetrics(t *testing.T) (*Metrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := NewMetrics(mp)
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}
	return m, reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect: %v", err)
	}
	return rm
}

func findMetric(rm metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

func sumByAttr(t *testing.T, m *metricdata.Metrics, key string) map[string]int64 {
	t.Helper()
	sum, ok := m.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("%s: data is %T, want Sum[int64]", m.Name, m.Data)
	}
	out := map[string]int64{}
	for _, dp := range sum.DataPoints {
		v, _ := dp.Attributes.Value(attribute.Key(key))
		out[v.AsString()] += dp.Value
	}
	return out
}

func TestRecordComparison(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.RecordComparison(ctx, "dictation", 80, map[string]int{"spelling": 2, "grammar": 1, "listening": 0})
	m.RecordComparison(ctx, "api", 100, nil)

	rm := collect(t, reader)

	total := findMetric(rm, "lingolab.compare.total")
	if total == nil {
		t.Fatal("compare.total not recorded")
	}
	bySource := sumByAttr(t, total, "source")
	if bySource["dictation"] != 1 || bySource["api"] != 1 {
		t.Errorf("by source = %v", bySource)
	}

	errs := findMetric(rm, "lingolab.compare.errors")
	if errs == nil {
		t.Fatal("compare.errors not recorded")
	}
	byCat := sumByAttr(t, errs, "category")
	if byCat["spelling"] != 2 || byCat["grammar"] != 1 {
		t.Errorf("by category = %v", byCat)
	}
	if _, ok := byCat["listening"]; ok {
		t.Error("zero counts should not be recorded")
	}

	acc := findMetric(rm, "lingolab.compare.accuracy")
	if acc == nil {
		t.Fatal("compare.accuracy not recorded")
	}
	hist := acc.Data.(metricdata.Histogram[float64])
	var count uint64
	for _, dp := range hist.DataPoints {
		count += dp.Count
	}
	if count != 2 {
		t.Errorf("accuracy observations = %d, want 2", count)
	}
}

func TestProgressAndTTSCounters(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.RecordProgressSave(ctx, "ok")
	m.RecordProgressSave(ctx, "ok")
	m.RecordProgressSave(ctx, "error")
	m.RecordTTS(ctx, true)
	m.RecordTTS(ctx, false)
	m.RecordTTS(ctx, false)

	rm := collect(t, reader)

	saves := sumByAttr(t, findMetric(rm, "lingolab.progress.saves"), "status")
	if saves["ok"] != 2 || saves["error"] != 1 {
		t.Errorf("saves = %v", saves)
	}
	tts := sumByAttr(t, findMetric(rm, "lingolab.tts.requests"), "cache")
	if tts["hit"] != 1 || tts["miss"] != 2 {
		t.Errorf("tts = %v", tts)
	}
}

func TestUpDownCounters(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.ActiveDictationSessions.Add(ctx, 3)
	m.ActiveDictationSessions.Add(ctx, -1)

	rm := collect(t, reader)
	got := findMetric(rm, "lingolab.dictation.active_sessions")
	if got == nil {
		t.Fatal("active_sessions not recorded")
	}
	sum := got.Data.(metricdata.Sum[int64])
	if len(sum.DataPoints) != 1 || sum.DataPoints[0].Value != 2 {
		t.Errorf("active sessions = %+v, want 2", sum.DataPoints)
	}
}
