package coverage

import (
	"fmt"
	"strconv"
)

const columnWidthPercent = 15

// View is one of the two projections of a Snapshot. The set of views is
// closed: InstanceView and NormalizedView.
type View interface {
	Name() string
	Tab() string
	Title() string
	Header() []string
	Widths() []int
	Rows(s Snapshot) ([][]string, error)

	isView()
}

type InstanceView struct{}

func (InstanceView) Name() string  { return "instance" }
func (InstanceView) Tab() string   { return "Instance" }
func (InstanceView) Title() string { return "EC2 Instance" }

func (InstanceView) Header() []string {
	return []string{
		"product_description",
		"instance_type",
		"running_count",
		"reserved_active_count",
		"reserved_expired_count(all)",
	}
}

func (v InstanceView) Widths() []int {
	return equalWidths(len(v.Header()))
}

func (InstanceView) Rows(s Snapshot) ([][]string, error) {
	rows := make([][]string, 0, s.Len())
	for _, r := range s.rows {
		rows = append(rows, []string{
			r.Workload,
			r.Shape,
			strconv.FormatInt(r.Running, 10),
			strconv.FormatInt(r.ReservedActive, 10),
			strconv.FormatInt(r.ReservedExpired, 10),
		})
	}
	return rows, nil
}

func (InstanceView) isView() {}

type NormalizedView struct{}

func (NormalizedView) Name() string  { return "normalized" }
func (NormalizedView) Tab() string   { return "NormalizationFactor" }
func (NormalizedView) Title() string { return "EC2 RI NormalizationFactor" }

func (NormalizedView) Header() []string {
	return []string{
		"product_description",
		"instance_family",
		"running_count_normalization_factor",
		"reserved_active_normalization_factor",
		"normalization_factor_diff",
		"normalization_factor_coverage",
	}
}

func (v NormalizedView) Widths() []int {
	return equalWidths(len(v.Header()))
}

func (NormalizedView) Rows(s Snapshot) ([][]string, error) {
	counters, err := s.Normalized()
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(counters))
	for _, n := range counters {
		rows = append(rows, []string{
			n.Workload,
			n.Family,
			FormatUnits(n.Running),
			FormatUnits(n.ReservedActive),
			FormatUnits(n.CoverageGap()),
			FormatPercent(n.CoverageRatio()),
		})
	}
	return rows, nil
}

func (NormalizedView) isView() {}

// Views lists every view in tab order.
var Views = []View{InstanceView{}, NormalizedView{}}

// ParseView resolves a view by name.
func ParseView(name string) (View, error) {
	for _, v := range Views {
		if v.Name() == name {
			return v, nil
		}
	}
	return nil, fmt.Errorf("unknown view %q", name)
}

// Selector tracks which view is shown. The zero value selects the instance
// view.
type Selector struct {
	idx int
}

func NewSelector(initial View) Selector {
	for i, v := range Views {
		if v == initial {
			return Selector{idx: i}
		}
	}
	return Selector{}
}

func (s Selector) Current() View {
	return Views[s.idx]
}

func (s Selector) Index() int {
	return s.idx
}

func (s *Selector) Next() {
	s.idx = (s.idx + 1) % len(Views)
}

func (s *Selector) Prev() {
	s.idx = (s.idx + len(Views) - 1) % len(Views)
}

// Toggle switches to the other view.
func (s *Selector) Toggle() {
	s.Next()
}

// FormatUnits prints a normalized value with the shortest exact decimal text.
func FormatUnits(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatPercent prints a ratio as a percentage with one fractional digit.
func FormatPercent(ratio float64) string {
	return fmt.Sprintf("%.1f%%", ratio*100)
}

func equalWidths(n int) []int {
	widths := make([]int, n)
	for i := range widths {
		widths[i] = columnWidthPercent
	}
	return widths
}
