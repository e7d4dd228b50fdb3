// Package errors はプロジェクト全体のエラーハンドリングと警告システムを提供します。
// 判別分析の各段階（入力検証、連立方程式の求解、固有値分解）で発生する
// 失敗を構造化された型として表現し、cockroachdb/errors でスタックトレースを付与します。
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	グローバル警告ハンドリング
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// デフォルトのハンドラは標準エラー出力にログを出す
		log.Printf("mda-Warning: %v\n", w)
	}
	// zerologロガー（循環importを避けるため pkg/log 側から登録される）
	zerologWarnFunc func(warning error)
)

// SetWarningHandler はライブラリ全体の警告ハンドラを設定します。
// NumericDegeneracyWarning などの非致命的な警告の処理方法を制御できます。
//
// 例:
//
//	errors.SetWarningHandler(func(w error) {
//	    // 警告を無視する
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc はzerolog警告関数を設定します（循環importを避けるため）。
// nil を渡すと従来のハンドラに戻ります。
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn は警告を発生させます。
// zerologが登録されている場合は構造化ログとして出力し、そうでなければ従来のハンドラを使用します。
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	警告型
//
// ===========================================================================

// NumericDegeneracyWarning は級内散布行列が特異または悪条件で、
// 厳密な求解の代わりに最小二乗解へフォールバックした場合の警告です。
// Cause は ErrSingularMatrix をラップしており、errors.Is で判定できます。
type NumericDegeneracyWarning struct {
	Operation string
	Cause     error
	Rank      int // 擬似逆行列で採用した特異値の数
	Size      int // 行列の次数
}

func (w *NumericDegeneracyWarning) Error() string {
	return fmt.Sprintf("%s: within-class scatter is degenerate (%v); using least-squares solution with rank %d of %d",
		w.Operation, w.Cause, w.Rank, w.Size)
}

// Unwrap は原因となったエラーを返します。
func (w *NumericDegeneracyWarning) Unwrap() error {
	return w.Cause
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *NumericDegeneracyWarning) MarshalZerologObject(e *zerolog.Event) {
	e.AnErr("reason", w.Cause).
		Str("operation", w.Operation).
		Int("rank", w.Rank).
		Int("size", w.Size).
		Str("type", "NumericDegeneracyWarning")
}

// NewNumericDegeneracyWarning は新しいNumericDegeneracyWarningを作成します。
// cause が ErrSingularMatrix を含まない場合はラップして付与します。
func NewNumericDegeneracyWarning(op string, cause error, rank, size int) *NumericDegeneracyWarning {
	switch {
	case cause == nil:
		cause = ErrSingularMatrix
	case !errors.Is(cause, ErrSingularMatrix):
		cause = errors.Wrap(ErrSingularMatrix, cause.Error())
	}
	return &NumericDegeneracyWarning{Operation: op, Cause: cause, Rank: rank, Size: size}
}

// DataConversionWarning はデータの型が暗黙的に変換された場合に発生する警告です。
// 複素固有値の実部のみを採用した場合などに使われます。
type DataConversionWarning struct {
	FromType string
	ToType   string
	Reason   string
}

func (w *DataConversionWarning) Error() string {
	return fmt.Sprintf("data converted from %s to %s. Reason: %s", w.FromType, w.ToType, w.Reason)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *DataConversionWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("from_type", w.FromType).
		Str("to_type", w.ToType).
		Str("reason", w.Reason).
		Str("type", "DataConversionWarning")
}

// NewDataConversionWarning は新しいDataConversionWarningを作成します。
func NewDataConversionWarning(from, to, reason string) *DataConversionWarning {
	return &DataConversionWarning{FromType: from, ToType: to, Reason: reason}
}

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// NotFittedError はモデルが未学習の状態で `Transform` などを呼び出した場合のエラーです。
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("mda: %s: this model is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError は新しいNotFittedErrorを作成し、スタックトレースを付与します。
func NewNotFittedError(modelName, method string) error {
	err := &NotFittedError{ModelName: modelName, Method: method}
	return errors.WithStack(err)
}

// DimensionError は入力データの次元が期待値と異なる場合のエラーです。
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/features
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("mda: %s: dimension mismatch on axis %d (%s). Expected %d, got %d",
		e.Op, e.Axis, e.axisName(), e.Expected, e.Got)
}

func (e *DimensionError) axisName() string {
	if e.Axis == 0 {
		return "rows"
	}
	return "features"
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", e.axisName()).
		Str("type", "DimensionError")
}

// NewDimensionError は新しいDimensionErrorを作成し、スタックトレースを付与します。
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// InvalidDimensionError は要求された判別空間の次元数が
// 理論上の上限 min(C-1, n) を超える、または1未満の場合のエラーです。
type InvalidDimensionError struct {
	Op        string
	Requested int
	Max       int
}

func (e *InvalidDimensionError) Error() string {
	return fmt.Sprintf("mda: %s: target dimensions must satisfy 1 <= k <= min(n_classes-1, n_features) = %d, got %d",
		e.Op, e.Max, e.Requested)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *InvalidDimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("requested", e.Requested).
		Int("max", e.Max).
		Str("type", "InvalidDimensionError")
}

// NewInvalidDimensionError は新しいInvalidDimensionErrorを作成し、スタックトレースを付与します。
func NewInvalidDimensionError(op string, requested, max int) error {
	err := &InvalidDimensionError{Op: op, Requested: requested, Max: max}
	return errors.WithStack(err)
}

// ValidationError は入力パラメータの検証に失敗した場合のエラーです。
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("mda: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError は新しいValidationErrorを作成し、スタックトレースを付与します。
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// ModelError は機械学習モデルに関する一般的なエラーです。
type ModelError struct {
	Op   string
	Kind string
	Err  error
}

func (e *ModelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("mda: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("mda: %s: %s", e.Op, e.Kind)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// NewModelError は新しいModelErrorを作成し、スタックトレースを付与します。
func NewModelError(op, kind string, err error) error {
	modelErr := &ModelError{Op: op, Kind: kind, Err: err}
	return errors.WithStack(modelErr)
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// ===========================================================================
//
//	共通エラー変数
//
// ===========================================================================

var (
	// ErrEmptyData は空のデータが渡された場合のエラーです。
	ErrEmptyData = New("empty data")

	// ErrSingularMatrix は特異行列の場合のエラーです。
	ErrSingularMatrix = New("singular matrix")

	// ErrEigenFailed は固有値分解が収束しなかった場合のエラーです。
	ErrEigenFailed = New("eigendecomposition did not converge")
)
