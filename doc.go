// Package sklearn provides scikit-learn compatible utilities for Go,
// designed for backend services that train and serve models on
// imbalanced data.
//
// The library ports the estimator-independent weighting helpers from
// sklearn.utils.class_weight: given observed labels it computes per-class
// or per-sample weights that up-weight rare classes and down-weight common
// ones while preserving the total weighted sample mass.
//
// # Features
//
//   - scikit-learn compatible API: ComputeClassWeight and ComputeSampleWeight
//     mirror compute_class_weight / compute_sample_weight semantics
//   - Multi-output labels: per-column weighting combined multiplicatively
//   - Subsample-aware statistics: bootstrap row indices restrict frequency
//     counts while weights are still reported for every original row
//   - Robust error handling: structured errors with stack traces via
//     cockroachdb/errors
//   - Observable deprecation notices: the legacy "auto" policy emits a
//     warning through a pluggable side channel (zerolog supported)
//
// # Quick Start
//
// Compute balanced class weights for an imbalanced label vector:
//
//	package main
//
//	import (
//	    "fmt"
//
//	    "github.com/bkgoksel/scikit-learn/sklearn/utils"
//	)
//
//	func main() {
//	    y := []float64{2, 2, 2, 3, 3, 4}
//	    classes := []float64{2, 3, 4}
//
//	    weights, err := utils.ComputeClassWeight(utils.Balanced(), classes, y)
//	    if err != nil {
//	        panic(err)
//	    }
//	    fmt.Println(weights) // [0.6667 1 2]
//	}
//
// Derive per-sample weights for a multi-output label matrix with a
// bootstrap subsample:
//
//	y := mat.NewDense(6, 2, []float64{
//	    1, 0,
//	    1, 0,
//	    1, 0,
//	    2, 1,
//	    2, 1,
//	    2, 1,
//	})
//	weights, err := utils.ComputeSampleWeightMatrix(utils.Balanced(), y, []int{0, 1, 1, 2, 2, 3})
//
// # Concurrency
//
// All weighting functions are pure: they never mutate their inputs and
// allocate fresh output per call, so they are safe for concurrent use
// without locking.
//
// # License
//
// Released under the MIT License.
package sklearn
