package state

import "maps"

// Aggregator folds a stream of timed updates into a stream of timed
// snapshots, one per update, in input order. Applying an update sets
// every present value and removes every tombstoned key. The fold is
// pure: the same update stream always yields the same snapshots.
type Aggregator struct {
	source UpdateSource
	state  Snapshot
	cur    TimedSnapshot
}

// Aggregate returns an iterator yielding the materialized state after
// each update of source. Consumers may stop pulling at any point.
func Aggregate(source UpdateSource) *Aggregator {
	return &Aggregator{source: source, state: Snapshot{}}
}

// Next folds in the next update and prepares its snapshot
func (a *Aggregator) Next() bool {
	if !a.source.Next() {
		return false
	}
	in := a.source.Update()
	for key, value := range in.Update {
		if value == nil {
			delete(a.state, key)
		} else {
			a.state[key] = value
		}
	}
	// Each yielded snapshot is a fresh copy; later folds must not
	// mutate state a consumer already holds.
	a.cur = TimedSnapshot{Elapsed: in.Elapsed, State: maps.Clone(a.state)}
	return true
}

// Snapshot returns the snapshot produced by the last call to Next
func (a *Aggregator) Snapshot() TimedSnapshot {
	return a.cur
}

// Err reports the underlying source's error, if any
func (a *Aggregator) Err() error {
	return a.source.Err()
}
