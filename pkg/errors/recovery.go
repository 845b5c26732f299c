package errors

import (
	"fmt"
	"runtime/debug"
)

// PanicError はrecoverされたpanicから生成されるエラーです。
// panic時の値とスタックトレース、発生箇所の操作名を保持します。
type PanicError struct {
	// PanicValue はpanic()に渡された元の値
	PanicValue interface{}

	// StackTrace はpanic発生時点のスタックトレース
	StackTrace string

	// Operation はpanicをrecoverした操作名
	Operation string

	// cause はpanic発生前に既に設定されていたエラー（存在する場合）
	cause error
}

func (e *PanicError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("panic in %s: %v (original error: %v)", e.Operation, e.PanicValue, e.cause)
	}
	return fmt.Sprintf("panic in %s: %v", e.Operation, e.PanicValue)
}

// Unwrap はpanic発生前のエラーを返します（なければnil）。
func (e *PanicError) Unwrap() error {
	return e.cause
}

// String はスタックトレースを含む詳細表現を返します。
func (e *PanicError) String() string {
	return fmt.Sprintf("%s\nStack trace:\n%s", e.Error(), e.StackTrace)
}

// Recover はdeferで使用するpanic回復ユーティリティです。
// panicを構造化されたPanicErrorに変換してerrに代入します。
// 既にerrが設定されている場合は元のエラーをcauseとして保持します。
//
// 使用例:
//
//	func (nb *GaussianNB[T]) Fit(...) (err error) {
//	    defer errors.Recover(&err, "GaussianNB.Fit")
//	    ...
//	}
func Recover(err *error, operation string) {
	r := recover()
	if r == nil {
		return
	}
	*err = &PanicError{
		PanicValue: r,
		StackTrace: string(debug.Stack()),
		Operation:  operation,
		cause:      *err,
	}
}

// SafeExecute はfnを実行し、panicをエラーに変換して返します。
// 呼び出し側から渡された行列への操作など、panicしうる処理のラッパーとして使います。
func SafeExecute(operation string, fn func() error) (err error) {
	defer Recover(&err, operation)
	return fn()
}
