package coverage

import (
	"sync"

	"github.com/elC0mpa/aws-ri-doctor/model"
)

// Key identifies a row of the instance view.
type Key struct {
	Workload string
	Shape    string
}

// GroupedCounter holds the counts for one (platform, instance type) pair.
type GroupedCounter struct {
	Workload        string
	Shape           string
	Running         int64
	ReservedActive  int64
	ReservedExpired int64
}

func (c GroupedCounter) Key() Key {
	return Key{Workload: c.Workload, Shape: c.Shape}
}

func (c GroupedCounter) Family() (string, error) {
	family, _, err := SplitShape(c.Shape)
	return family, err
}

func (c GroupedCounter) Size() (string, error) {
	_, size, err := SplitShape(c.Shape)
	return size, err
}

// Table accumulates instances and reservations into grouped counters.
// It has a single writer at a time; readers work on snapshots.
type Table struct {
	mu    sync.RWMutex
	index map[Key]int
	rows  []GroupedCounter
}

func NewTable() *Table {
	return &Table{
		index: make(map[Key]int),
	}
}

// IngestInstance counts a running instance against its row. Instances in any
// other state do not create or change a row.
func (t *Table) IngestInstance(instance model.RawInstance) error {
	if instance.State != model.InstanceStateRunning {
		return nil
	}
	if err := validateShape(instance.InstanceType); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	row := t.row(Key{Workload: instance.PlatformDetails, Shape: instance.InstanceType})
	row.Running++
	return nil
}

// IngestReservation adds the reserved quantity to the active or the expired
// count. Reservations in any other state are dropped.
func (t *Table) IngestReservation(reservation model.RawReservation) error {
	if reservation.State != model.ReservationStateActive && reservation.State != model.ReservationStateRetired {
		return nil
	}
	if err := validateShape(reservation.InstanceType); err != nil {
		return err
	}

	quantity := int64(reservation.InstanceCount)
	if quantity < 0 {
		quantity = 0
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	row := t.row(Key{Workload: reservation.ProductDescription, Shape: reservation.InstanceType})
	if reservation.State == model.ReservationStateActive {
		row.ReservedActive += quantity
	} else {
		row.ReservedExpired += quantity
	}
	return nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

// Snapshot returns a copy of the current rows in first-seen order.
func (t *Table) Snapshot() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()

	rows := make([]GroupedCounter, len(t.rows))
	copy(rows, t.rows)
	return Snapshot{rows: rows}
}

// Normalized derives the family view from the current rows.
func (t *Table) Normalized() ([]NormalizedCounter, error) {
	return t.Snapshot().Normalized()
}

// row returns the counter for key, appending a new one if needed.
// The caller must hold the write lock.
func (t *Table) row(key Key) *GroupedCounter {
	if i, ok := t.index[key]; ok {
		return &t.rows[i]
	}
	t.rows = append(t.rows, GroupedCounter{Workload: key.Workload, Shape: key.Shape})
	t.index[key] = len(t.rows) - 1
	return &t.rows[len(t.rows)-1]
}

// An absent instance type is a valid, if uninformative, key.
func validateShape(shape string) error {
	if shape == "" {
		return nil
	}
	_, _, err := SplitShape(shape)
	return err
}

// Snapshot is an immutable view of a Table at a point in time.
type Snapshot struct {
	rows []GroupedCounter
}

// NewSnapshot builds a snapshot from rows, mostly for callers that already
// hold aggregated data.
func NewSnapshot(rows []GroupedCounter) Snapshot {
	cp := make([]GroupedCounter, len(rows))
	copy(cp, rows)
	return Snapshot{rows: cp}
}

func (s Snapshot) Len() int {
	return len(s.rows)
}

// Rows returns a copy of the rows in first-seen order.
func (s Snapshot) Rows() []GroupedCounter {
	rows := make([]GroupedCounter, len(s.rows))
	copy(rows, s.rows)
	return rows
}

func (s Snapshot) Lookup(workload, shape string) (GroupedCounter, bool) {
	for _, r := range s.rows {
		if r.Workload == workload && r.Shape == shape {
			return r, true
		}
	}
	return GroupedCounter{}, false
}

// ByKey indexes the rows by key, ignoring order.
func (s Snapshot) ByKey() map[Key]GroupedCounter {
	out := make(map[Key]GroupedCounter, len(s.rows))
	for _, r := range s.rows {
		out[r.Key()] = r
	}
	return out
}
