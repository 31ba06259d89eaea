// Package errors はプロジェクト全体のエラーハンドリングと警告システムを提供します。
// 実験レジストリ（モデルグリッド）の操作で発生する構造化されたエラー情報を提供します。
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
		log.Printf("ModelGrid-Warning: %v\n", w)
	}
	// zerologロガー（循環importを避けるため遅延初期化）
	zerologWarnFunc func(warning error)
)

// SetWarningHandler はライブラリ全体の警告ハンドラを設定します。
// これにより、ExperimentFailedWarningなどのカスタム警告の処理方法を制御できます。
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
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn は警告を発生させます。
// zerologが利用可能な場合は構造化ログとして出力し、そうでなければ従来のハンドラを使用します。
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	// zerologが設定されている場合は優先的に使用
	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	// フォールバック: 従来のハンドラ
	if warningHandler != nil {
		warningHandler(w)
	}
}

// ExperimentFailedWarning は実験の学習が失敗してもグリッド全体の実行が
// 継続される場合に発生する警告です。
type ExperimentFailedWarning struct {
	Experiment string
	Stage      string // "preprocess" or "train"
	Cause      error
}

func (w *ExperimentFailedWarning) Error() string {
	return fmt.Sprintf("experiment %q failed during %s: %v. Remaining experiments will still be attempted.", w.Experiment, w.Stage, w.Cause)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *ExperimentFailedWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("experiment", w.Experiment).
		Str("stage", w.Stage).
		AnErr("cause", w.Cause).
		Str("type", "ExperimentFailedWarning")
}

// NewExperimentFailedWarning は新しいExperimentFailedWarningを作成します。
func NewExperimentFailedWarning(experiment, stage string, cause error) *ExperimentFailedWarning {
	return &ExperimentFailedWarning{Experiment: experiment, Stage: stage, Cause: cause}
}

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// DuplicateNameError は既に登録済みの名前で実験を追加しようとした場合のエラーです。
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("modelgrid: experiment %q is already registered. Choose a unique name or Remove() the existing one first", e.Name)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DuplicateNameError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("experiment", e.Name).
		Str("type", "DuplicateNameError")
}

// NewDuplicateNameError は新しいDuplicateNameErrorを作成し、スタックトレースを付与します。
func NewDuplicateNameError(name string) error {
	err := &DuplicateNameError{Name: name}
	return errors.WithStack(err)
}

// NotFoundError は未登録の実験名を参照・削除しようとした場合のエラーです。
type NotFoundError struct {
	Op   string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("modelgrid: %s: experiment %q is not registered", e.Op, e.Name)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *NotFoundError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("experiment", e.Name).
		Str("type", "NotFoundError")
}

// NewNotFoundError は新しいNotFoundErrorを作成し、スタックトレースを付与します。
func NewNotFoundError(op, name string) error {
	err := &NotFoundError{Op: op, Name: name}
	return errors.WithStack(err)
}

// PreprocessingError は前処理エンジンが特定の実験で失敗した場合のエラーです。
// 失敗した実験名と元のエラーを保持します。
type PreprocessingError struct {
	Experiment string
	Err        error
}

func (e *PreprocessingError) Error() string {
	return fmt.Sprintf("modelgrid: preprocessing failed for experiment %q: %v", e.Experiment, e.Err)
}

func (e *PreprocessingError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *PreprocessingError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("experiment", e.Experiment).
		AnErr("cause", e.Err).
		Str("type", "PreprocessingError")
}

// NewPreprocessingError は新しいPreprocessingErrorを作成し、スタックトレースを付与します。
func NewPreprocessingError(experiment string, err error) error {
	prepErr := &PreprocessingError{Experiment: experiment, Err: err}
	return errors.WithStack(prepErr)
}

// TrainingError はトレーナーが特定の実験で失敗した場合のエラーです。
// 失敗した実験名と元のエラーを保持します。
type TrainingError struct {
	Experiment string
	Err        error
}

func (e *TrainingError) Error() string {
	return fmt.Sprintf("modelgrid: training failed for experiment %q: %v", e.Experiment, e.Err)
}

func (e *TrainingError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *TrainingError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("experiment", e.Experiment).
		AnErr("cause", e.Err).
		Str("type", "TrainingError")
}

// NewTrainingError は新しいTrainingErrorを作成し、スタックトレースを付与します。
func NewTrainingError(experiment string, err error) error {
	trainErr := &TrainingError{Experiment: experiment, Err: err}
	return errors.WithStack(trainErr)
}

// ValidationError は入力パラメータの検証に失敗した場合のエラーです。
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("modelgrid: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
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

// DimensionError は入力データの次元が期待値と異なる場合のエラーです。
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/features
}

func (e *DimensionError) Error() string {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("modelgrid: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", axisName).
		Str("type", "DimensionError")
}

// NewDimensionError は新しいDimensionErrorを作成し、スタックトレースを付与します。
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
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

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf は新しいフォーマット済みエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack はエラーにスタックトレースを付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}

// CombineErrors は2つのエラーを1つに結合します。どちらかがnilの場合は他方を返します。
func CombineErrors(err, other error) error {
	return errors.CombineErrors(err, other)
}

// ===========================================================================
//
//	共通エラー変数
//
// ===========================================================================

var (
	// ErrNoExperiments は実験が1つも登録されていないグリッドを実行した場合のエラーです。
	ErrNoExperiments = New("no experiments registered")

	// ErrNilTrainer はトレーナーが設定されていない場合のエラーです。
	ErrNilTrainer = New("trainer must not be nil")

	// ErrNilPreprocessor は前処理エンジンが設定されていない場合のエラーです。
	ErrNilPreprocessor = New("preprocessor must not be nil")

	// ErrEmptyData は空のデータが渡された場合のエラーです。
	ErrEmptyData = New("empty data")
)
