package snapmeta

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// instrumentationName identifies this package's tracer and meter scope.
const instrumentationName = "github.com/structmerge/snapmeta"

// storeMetrics holds the OpenTelemetry metric instruments for a Store.
// These are created once during New when a MeterProvider is configured and
// reused for all annotation operations.
type storeMetrics struct {
	// generatedMarks counts generation markers attached.
	generatedMarks metric.Int64Counter

	// constraintMarks counts differential-constraint tags attached.
	constraintMarks metric.Int64Counter

	// constraintClears counts live differential-constraint tags removed,
	// by single-node and recursive clears alike.
	constraintClears metric.Int64Counter

	// deepClearNodes counts nodes visited by recursive clears.
	deepClearNodes metric.Int64Counter

	// crossReferences counts cross-references recorded.
	crossReferences metric.Int64Counter
}

// newStoreMetrics creates and initializes all metric instruments.
func newStoreMetrics(meter metric.Meter) (*storeMetrics, error) {
	m := &storeMetrics{}
	var err error

	m.generatedMarks, err = meter.Int64Counter(
		"snapmeta.generation.marks",
		metric.WithDescription("Number of generation markers attached"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create generation marks counter: %w", err)
	}

	m.constraintMarks, err = meter.Int64Counter(
		"snapmeta.constraint.marks",
		metric.WithDescription("Number of differential-constraint tags attached"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create constraint marks counter: %w", err)
	}

	m.constraintClears, err = meter.Int64Counter(
		"snapmeta.constraint.clears",
		metric.WithDescription("Number of live differential-constraint tags removed"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create constraint clears counter: %w", err)
	}

	m.deepClearNodes, err = meter.Int64Counter(
		"snapmeta.constraint.deep_clear.nodes",
		metric.WithDescription("Number of nodes visited by recursive constraint clears"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create deep clear nodes counter: %w", err)
	}

	m.crossReferences, err = meter.Int64Counter(
		"snapmeta.crossreference.sets",
		metric.WithDescription("Number of differential-to-snapshot cross-references recorded"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create cross-reference counter: %w", err)
	}

	return m, nil
}
