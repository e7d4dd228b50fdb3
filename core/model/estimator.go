package model

import "gonum.org/v1/gonum/mat"

// SupervisedFitter はラベル付きデータから学習するモデルのインターフェース
type SupervisedFitter interface {
	// Fit は特徴量行列 X とラベル列 y でモデルを学習させる
	Fit(X, y mat.Matrix) error
}

// Transformer は学習済みパラメータでデータを変換するインターフェース
type Transformer interface {
	// Transform はデータを変換する
	Transform(X mat.Matrix) (mat.Matrix, error)
}

// SupervisedTransformer は教師あり次元削減のインターフェース
// 判別分析のように学習にラベルを使い、変換には特徴量のみを使うモデルが実装する
type SupervisedTransformer interface {
	SupervisedFitter
	Transformer

	// FitTransform はFitとTransformを同時に実行する
	FitTransform(X, y mat.Matrix) (mat.Matrix, error)

	// IsFitted はモデルが学習済みかどうかを返す
	IsFitted() bool
}

// Fitter はラベルを使わずに統計量を学習するモデルのインターフェース
type Fitter interface {
	Fit(X mat.Matrix) error
}

// Preprocessor は標準化などの可逆な前処理のインターフェース
type Preprocessor interface {
	Fitter
	Transformer

	FitTransform(X mat.Matrix) (mat.Matrix, error)
	InverseTransform(X mat.Matrix) (mat.Matrix, error)
	IsFitted() bool
}
