package sampling

// PeakRecord is the sample with the largest spectrum value.
type PeakRecord struct {
	Index int     // grid index of the peak
	W     float64 // frequency at the peak
	Value float64 // unnormalized spectrum value at the peak
}

// FindPeak scans values in index order. The first sample initializes the
// record and later samples replace it only on strict improvement, so ties
// keep the earliest index. ok is false for empty input.
func FindPeak(ws, values []float64) (rec PeakRecord, ok bool) {
	for i, v := range values {
		if i == 0 || v > rec.Value {
			rec = PeakRecord{Index: i, W: ws[i], Value: v}
		}
	}

	return rec, len(values) > 0
}
