// Package preprocessing はモデル学習前の特徴量変換を提供する。
//
// 判別分析は特徴量のスケールに依存しないが、固有ベクトルの成分を比較したい
// 場合や、値の大きく異なる特徴量を扱う場合は事前に標準化しておくと解釈しやすい。
package preprocessing

import (
	"fmt"

	"github.com/YuminosukeSato/mda/core/model"
	"github.com/YuminosukeSato/mda/core/parallel"
	"github.com/YuminosukeSato/mda/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// zeroScaleTolerance 未満の標準偏差は1として扱う（定数列でのゼロ除算を避ける）
const zeroScaleTolerance = 1e-8

// scalerStats は学習済みの平均と標準偏差
type scalerStats struct {
	mean  []float64
	scale []float64
}

// StandardScaler はデータを平均0、標準偏差1に変換する
type StandardScaler struct {
	withMean          bool
	withStd           bool
	parallelThreshold int

	state *model.StateManager[*scalerStats]
}

var _ model.Preprocessor = (*StandardScaler)(nil)

// NewStandardScaler は新しいStandardScalerを作成する
//
// パラメータ:
//   - withMean: 平均を引くかどうか
//   - withStd: 標準偏差で割るかどうか
//
// 使用例:
//
//	scaler := preprocessing.NewStandardScaler(true, true)
//	XScaled, err := scaler.FitTransform(X)
func NewStandardScaler(withMean, withStd bool) *StandardScaler {
	return &StandardScaler{
		withMean:          withMean,
		withStd:           withStd,
		parallelThreshold: 1000,
		state:             model.NewStateManager[*scalerStats](),
	}
}

// NewStandardScalerDefault はデフォルト設定でStandardScalerを作成する
func NewStandardScalerDefault() *StandardScaler {
	return NewStandardScaler(true, true)
}

// Fit は訓練データから各特徴量の平均と母標準偏差を計算する
func (s *StandardScaler) Fit(X mat.Matrix) error {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError("StandardScaler.Fit", "empty data", errors.ErrEmptyData)
	}

	st := &scalerStats{
		mean:  make([]float64, c),
		scale: make([]float64, c),
	}
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, X)
		mean, std := stat.PopMeanStdDev(col, nil)
		// NaN の std は閾値判定をすり抜けるため、マスク前に検査する
		if stats := []float64{mean, std}; errors.CheckNumericalStability("StandardScaler.Fit", stats) != nil {
			return errors.NewNumericalInstabilityError("StandardScaler.Fit", stats, -1, j)
		}

		if s.withMean {
			st.mean[j] = mean
		}
		st.scale[j] = 1
		if s.withStd && std >= zeroScaleTolerance {
			st.scale[j] = std
		}
	}

	s.state.Store(st, c, r)
	return nil
}

// Transform は学習済みの統計量でデータを標準化する
func (s *StandardScaler) Transform(X mat.Matrix) (mat.Matrix, error) {
	return s.apply("Transform", X, func(row []float64, st *scalerStats) {
		floats.Sub(row, st.mean)
		floats.Div(row, st.scale)
	})
}

// FitTransform は訓練データで学習し、同じデータを変換する
func (s *StandardScaler) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}

// InverseTransform は標準化されたデータを元のスケールに戻す
func (s *StandardScaler) InverseTransform(X mat.Matrix) (mat.Matrix, error) {
	return s.apply("InverseTransform", X, func(row []float64, st *scalerStats) {
		floats.Mul(row, st.scale)
		floats.Add(row, st.mean)
	})
}

func (s *StandardScaler) apply(method string, X mat.Matrix, fn func(row []float64, st *scalerStats)) (mat.Matrix, error) {
	st, ok := s.state.Load()
	if !ok {
		return nil, errors.NewNotFittedError("StandardScaler", method)
	}
	r, c := X.Dims()
	if c != len(st.mean) {
		return nil, errors.NewDimensionError("StandardScaler."+method, len(st.mean), c, 1)
	}

	result := mat.DenseCopyOf(X)
	parallel.ParallelizeWithThreshold(r, s.parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			fn(result.RawRowView(i), st)
		}
	})
	return result, nil
}

// Mean は学習済みの平均を返す。未学習の場合は nil
func (s *StandardScaler) Mean() []float64 {
	st, ok := s.state.Load()
	if !ok {
		return nil
	}
	return append([]float64(nil), st.mean...)
}

// Scale は学習済みの標準偏差を返す。未学習の場合は nil
func (s *StandardScaler) Scale() []float64 {
	st, ok := s.state.Load()
	if !ok {
		return nil
	}
	return append([]float64(nil), st.scale...)
}

// IsFitted は学習済みかどうかを返す
func (s *StandardScaler) IsFitted() bool {
	return s.state.IsFitted()
}

// GetParams はスケーラーのパラメータを取得する
func (s *StandardScaler) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"with_mean": s.withMean,
		"with_std":  s.withStd,
	}
}

// String はスケーラーの文字列表現を返す
func (s *StandardScaler) String() string {
	nFeatures, _ := s.state.GetDimensions()
	if !s.IsFitted() {
		return fmt.Sprintf("StandardScaler(with_mean=%t, with_std=%t)", s.withMean, s.withStd)
	}
	return fmt.Sprintf("StandardScaler(with_mean=%t, with_std=%t, n_features=%d)",
		s.withMean, s.withStd, nFeatures)
}
