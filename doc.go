// Package nbayes provides a Gaussian Naive Bayes classifier for Go,
// designed for backend services and real-time inference applications.
//
// nbayes offers a scikit-learn-like API that makes it easy for data
// scientists and engineers familiar with Python's ecosystem to train and
// serve Naive Bayes models in Go.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/nbayes/naive_bayes"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := mat.NewDense(4, 2, []float64{
//	        1, 20,
//	        2, 21,
//	        3, 22,
//	        4, 22,
//	    })
//	    y := []int{1, 0, 1, 0}
//
//	    clf := naive_bayes.NewGaussianNB[int]()
//	    if err := clf.Fit(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    labels, err := clf.Predict(mat.NewDense(1, 2, []float64{1, 20}))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println("Predicted:", labels[0])
//	}
//
// # Packages
//
//   - naive_bayes: the GaussianNB estimator (fit, predict, streaming
//     prediction, parameter snapshots)
//   - metrics: evaluation metrics for classification
//   - core/model: estimator interfaces, state management and persistence
//   - core/parallel: parallel processing utilities
//   - pkg/errors: structured error and warning types
//   - pkg/log: structured logging helpers
//
// Labels may be any ordered type (ints, floats, strings); the estimator is
// generic over the label type. Feature matrices use gonum's mat package.
package nbayes
