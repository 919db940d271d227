package engine

// PointsTable maps an integer point total to a published risk percentage.
// Totals outside [Min, Max] are clamped to the nearest row before lookup;
// the published tables are never extrapolated.
type PointsTable struct {
	Name string
	Min  int
	Max  int
	Risk map[int]float64
}

// Lookup returns the risk percentage for the given point total.  A missing
// row after clamping is a transcription defect and yields a
// LookupMissError.
func (t PointsTable) Lookup(points int) (float64, error) {
	points = ClampIndex(points, t.Min, t.Max)
	risk, ok := t.Risk[points]
	if !ok {
		return 0, LookupMissError{Table: t.Name, Key: points}
	}
	return risk, nil
}
