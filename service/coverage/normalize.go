package coverage

// FamilyKey identifies a row of the normalized view.
type FamilyKey struct {
	Workload string
	Family   string
}

// NormalizedCounter is the capacity of one instance family expressed in
// normalization units.
type NormalizedCounter struct {
	Workload       string
	Family         string
	Running        float64
	ReservedActive float64
}

// CoverageGap is positive when running capacity exceeds reserved capacity.
func (n NormalizedCounter) CoverageGap() float64 {
	return n.Running - n.ReservedActive
}

// CoverageRatio is reserved over running capacity, or 0 with nothing running.
func (n NormalizedCounter) CoverageRatio() float64 {
	if n.Running == 0 {
		return 0
	}
	return n.ReservedActive / n.Running
}

// Normalized groups the rows by (platform, family), converting counts to
// normalization units. Expired reservations are not part of this view.
// Rows without an instance type cannot be attributed to a family and are
// left out.
func (s Snapshot) Normalized() ([]NormalizedCounter, error) {
	index := make(map[FamilyKey]int)
	var out []NormalizedCounter

	for _, row := range s.rows {
		if row.Shape == "" {
			continue
		}

		family, size, err := SplitShape(row.Shape)
		if err != nil {
			return nil, err
		}
		factor, ok := NormalizationFactor(size)
		if !ok {
			return nil, &FactorError{Shape: row.Shape, Size: size}
		}

		key := FamilyKey{Workload: row.Workload, Family: family}
		i, ok := index[key]
		if !ok {
			out = append(out, NormalizedCounter{Workload: row.Workload, Family: family})
			i = len(out) - 1
			index[key] = i
		}
		out[i].Running += float64(row.Running) * factor
		out[i].ReservedActive += float64(row.ReservedActive) * factor
	}

	filtered := out[:0]
	for _, n := range out {
		if n.Running == 0 && n.ReservedActive == 0 {
			continue
		}
		filtered = append(filtered, n)
	}
	return filtered, nil
}
