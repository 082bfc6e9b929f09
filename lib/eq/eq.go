/*
package eq is a simple package for telling whether two arrays are equal to
one another. It exists so tests don't need to hand-roll the same loops.
*/
package eq

// Strings returns true if two []string arrays are the same and false
// otherwise.
func Strings(x, y []string) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// Ints returns true if two []int arrays are the same and false otherwise.
func Ints(x, y []int) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// Float64s returns true if two []float64 arrays are the same and false
// otherwise.
func Float64s(x, y []float64) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// Float64sEps returns true if the two []float64 arrays are within eps of one
// another and false otherwise.
func Float64sEps(x, y []float64, eps float64) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i]+eps < y[i] || x[i]-eps > y[i] {
			return false
		}
	}
	return true
}

// Vec2sEps returns true if the two [][2]float64 arrays are componentwise
// within eps of one another and false otherwise.
func Vec2sEps(x, y [][2]float64, eps float64) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		for d := 0; d < 2; d++ {
			if x[i][d]+eps < y[i][d] || x[i][d]-eps > y[i][d] {
				return false
			}
		}
	}
	return true
}

// UnorderedVec2sEps returns true if the two [][2]float64 arrays contain the
// same points to within eps, ignoring order. It is quadratic and only meant
// for test-sized inputs.
func UnorderedVec2sEps(x, y [][2]float64, eps float64) bool {
	if len(x) != len(y) {
		return false
	}
	used := make([]bool, len(y))
	for i := range x {
		found := false
		for j := range y {
			if used[j] {
				continue
			}
			if Vec2sEps([][2]float64{x[i]}, [][2]float64{y[j]}, eps) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
