// Package metrics provides evaluation metrics for classification models.
package metrics

import (
	"cmp"

	"github.com/YuminosukeSato/nbayes/pkg/errors"
)

// AccuracyScore は正解率（accuracy）を計算する
//
// accuracy = (1/n) * Σ 1[yTrue[i] == yPred[i]]
func AccuracyScore[T cmp.Ordered](yTrue, yPred []T) (float64, error) {
	// 入力検証
	n := len(yTrue)
	if n == 0 {
		return 0, errors.NewValueError("AccuracyScore", "empty label slice")
	}

	if len(yPred) != n {
		return 0, errors.NewDimensionError("AccuracyScore", n, len(yPred), 0)
	}

	correct := 0
	for i := 0; i < n; i++ {
		if yTrue[i] == yPred[i] {
			correct++
		}
	}

	return float64(correct) / float64(n), nil
}

// ErrorRate は誤分類率（1 - accuracy）を計算する
func ErrorRate[T cmp.Ordered](yTrue, yPred []T) (float64, error) {
	acc, err := AccuracyScore(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return 1 - acc, nil
}
