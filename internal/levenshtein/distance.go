// Package levenshtein computes edit distances between domain names,
// with a bounded variant that abandons hopeless comparisons early.
package levenshtein

// Distance returns the Levenshtein edit distance between a and b.
func Distance(a, b string) int {
	return compute([]rune(a), []rune(b), -1)
}

// DistanceWithin returns the edit distance between a and b when it is
// at most limit. ok is false when the distance exceeds limit; in that
// case the computation is cut short as soon as the outcome is certain
// and dist is meaningless.
func DistanceWithin(a, b string, limit int) (dist int, ok bool) {
	if limit < 0 {
		return 0, false
	}
	ar, br := []rune(a), []rune(b)
	// The distance is at least the length difference.
	if d := len(ar) - len(br); d > limit || -d > limit {
		return 0, false
	}
	d := compute(ar, br, limit)
	if d > limit {
		return 0, false
	}
	return d, true
}

// compute runs the dynamic program over a single row with a diagonal
// carry, using O(min(m,n)) memory. A non-negative limit enables early
// abandonment: row minima never decrease, so once a whole row exceeds
// limit the final distance must too, and the row minimum is returned.
func compute(ar, br []rune, limit int) int {
	if len(ar) == 0 {
		return len(br)
	}
	if len(br) == 0 {
		return len(ar)
	}
	// The shorter string forms the row.
	if len(ar) > len(br) {
		ar, br = br, ar
	}

	row := make([]int, len(ar)+1)
	for i := range row {
		row[i] = i
	}

	for j, bc := range br {
		diag := row[0]
		row[0] = j + 1
		rowMin := row[0]
		for i, ac := range ar {
			d := diag // substitution
			if ac != bc {
				d++
			}
			diag = row[i+1]
			if row[i]+1 < d { // insertion
				d = row[i] + 1
			}
			if diag+1 < d { // deletion
				d = diag + 1
			}
			row[i+1] = d
			if d < rowMin {
				rowMin = d
			}
		}
		if limit >= 0 && rowMin > limit {
			return rowMin
		}
	}
	return row[len(ar)]
}
