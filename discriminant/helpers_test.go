package discriminant

import (
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// makeBlobs draws perClass isotropic Gaussian points around each center.
// Labels are the center indices.
func makeBlobs(seed uint64, centers [][]float64, perClass int, spread float64) (*mat.Dense, *mat.Dense) {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	n := len(centers[0])
	rows := len(centers) * perClass

	X := mat.NewDense(rows, n, nil)
	y := mat.NewDense(rows, 1, nil)
	for c, center := range centers {
		for i := 0; i < perClass; i++ {
			row := c*perClass + i
			for j, v := range center {
				X.Set(row, j, v+spread*rng.NormFloat64())
			}
			y.Set(row, 0, float64(c))
		}
	}
	return X, y
}

// clusterScenario returns three five-point clusters centered on (0,0),
// (10,0) and (5,10). Each cluster is tight along x and spread along y,
// with centroids exactly on the listed points, so the x axis through
// (0,0) and (10,0) separates the classes best.
func clusterScenario() (*mat.Dense, *mat.Dense) {
	centroids := [][2]float64{{0, 0}, {10, 0}, {5, 10}}
	dx := []float64{0.1, -0.1, 0, -0.1, 0.1}
	dy := []float64{-2, -1, 0, 1, 2}

	X := mat.NewDense(15, 2, nil)
	y := mat.NewDense(15, 1, nil)
	for c, ctr := range centroids {
		for i := range dx {
			row := c*len(dx) + i
			X.Set(row, 0, ctr[0]+dx[i])
			X.Set(row, 1, ctr[1]+dy[i])
			y.Set(row, 0, float64(c))
		}
	}
	return X, y
}

// absCosine returns |<a, b>| / (|a||b|).
func absCosine(a, b []float64) float64 {
	d := floats.Dot(a, b) / (floats.Norm(a, 2) * floats.Norm(b, 2))
	if d < 0 {
		return -d
	}
	return d
}

func requireFinite(t *testing.T, m mat.Matrix) {
	t.Helper()
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := m.At(i, j)
			if v != v || v > 1e300 || v < -1e300 {
				t.Fatalf("non-finite value %v at (%d, %d)", v, i, j)
			}
		}
	}
}
