// Package pipe implements the pass-through instrumentation stages of the
// decoding pipeline (spec §4.9): they observe the data flowing through a
// stage — raw samples, framed records, or decoded events — and forward it
// unchanged to whatever sits downstream.
package pipe

import (
	"github.com/psi46/datastream/event"
	"github.com/psi46/datastream/record"
)

// Uint16Source is the pull interface a sample-level pipe sits in front of.
type Uint16Source interface {
	Get() (uint16, error)
}

// RecordSource is the pull interface a record-level pipe sits in front of.
type RecordSource interface {
	Read() (*record.Record, error)
}

// EventSource is the pull interface an event-level pipe sits in front of.
type EventSource interface {
	Read() (*event.Event, error)
}

// Histogram is the opaque downstream sink LevelHistogram accumulates into
// (spec §6 Downstream interfaces): any integer-sample histogram.
type Histogram interface {
	Add(sample int)
}
