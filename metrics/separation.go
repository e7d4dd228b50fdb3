// Package metrics は射影後の特徴空間でクラスがどれだけ分離しているかを評価する
package metrics

import (
	"math"

	"github.com/YuminosukeSato/mda/core/classes"
	"github.com/YuminosukeSato/mda/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// classCentroids は Z の行をラベルごとにまとめ、各クラスの重心を返す。
// クラス番号はラベルの初出順
func classCentroids(op string, Z, y mat.Matrix) (centroids [][]float64, assign []int, sizes []int, err error) {
	r, c := Z.Dims()
	if r == 0 || c == 0 {
		return nil, nil, nil, errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}
	labels, err := classes.Column(op, y, r)
	if err != nil {
		return nil, nil, nil, err
	}
	groups := classes.Partition(labels)
	if len(groups) < 2 {
		return nil, nil, nil, errors.NewValidationError("y", "at least two distinct classes are required", len(groups))
	}

	centroids = make([][]float64, len(groups))
	assign = make([]int, r)
	sizes = make([]int, len(groups))
	row := make([]float64, c)
	for k, rows := range groups {
		centroids[k] = make([]float64, c)
		for _, i := range rows {
			assign[i] = k
			floats.Add(centroids[k], mat.Row(row, i, Z))
		}
		sizes[k] = len(rows)
		floats.Scale(1/float64(sizes[k]), centroids[k])
	}
	return centroids, assign, sizes, nil
}

// SeparationRatio はクラス間散布とクラス内散布のトレース比 tr(Sb)/tr(Sw) を計算する
//
// Z は評価する特徴量（射影前でも射影後でもよい）、y は n_samples×1 のラベル列。
// 値が大きいほどクラスが離れている。クラス内のばらつきがない場合は +Inf を返す。
func SeparationRatio(Z, y mat.Matrix) (float64, error) {
	const op = "SeparationRatio"
	centroids, assign, sizes, err := classCentroids(op, Z, y)
	if err != nil {
		return 0, err
	}

	r, c := Z.Dims()
	mean := make([]float64, c)
	for k, ctr := range centroids {
		floats.AddScaled(mean, float64(sizes[k]), ctr)
	}
	floats.Scale(1/float64(r), mean)

	// tr(Sw) = Σ_i ||z_i - m_c(i)||²
	var within float64
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		d := floats.Distance(mat.Row(row, i, Z), centroids[assign[i]], 2)
		within += d * d
	}

	// tr(Sb) = Σ_c N_c ||m_c - m||²
	var between float64
	for k, ctr := range centroids {
		d := floats.Distance(ctr, mean, 2)
		between += float64(sizes[k]) * d * d
	}

	if within == 0 {
		if between == 0 {
			return 0, nil
		}
		return math.Inf(1), nil
	}
	return between / within, nil
}

// NearestCentroidAccuracy は各サンプルを最も近いクラス重心（ユークリッド距離）に
// 割り当てたときの正解率を計算する。重心は Z と y 自身から求める
func NearestCentroidAccuracy(Z, y mat.Matrix) (float64, error) {
	const op = "NearestCentroidAccuracy"
	centroids, assign, _, err := classCentroids(op, Z, y)
	if err != nil {
		return 0, err
	}

	r, c := Z.Dims()
	row := make([]float64, c)
	correct := 0
	for i := 0; i < r; i++ {
		mat.Row(row, i, Z)
		best, bestDist := 0, math.Inf(1)
		for k, ctr := range centroids {
			if d := floats.Distance(row, ctr, 2); d < bestDist {
				best, bestDist = k, d
			}
		}
		if best == assign[i] {
			correct++
		}
	}
	return float64(correct) / float64(r), nil
}
