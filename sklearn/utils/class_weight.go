// Package utils provides estimator-independent helper routines compatible
// with scikit-learn's sklearn.utils module.
//
// The weighting helpers in this package counteract class imbalance: rare
// classes are up-weighted and common classes down-weighted so that the total
// weighted sample mass is preserved. They are pure functions over immutable
// inputs and safe for concurrent use.
package utils

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/bkgoksel/scikit-learn/pkg/errors"
)

type policyKind int

const (
	kindUniform policyKind = iota
	kindBalanced
	kindLegacy
	kindMapping
	kindMappingList
)

// Policy selects how per-class weights are derived. It is a tagged union over
// the accepted class_weight arguments of scikit-learn: a preset token
// ("balanced", the deprecated "auto", "none"), an explicit class-to-weight
// mapping, or a list of mappings for multi-output labels.
//
// The zero value means "no weighting requested" and behaves like Uniform().
type Policy struct {
	kind     policyKind
	mapping  map[float64]float64
	mappings []map[float64]float64
}

// Balanced returns the policy that weights each class inversely proportional
// to its frequency: w[c] = nSamples / (nClasses * count(c)).
func Balanced() Policy { return Policy{kind: kindBalanced} }

// Legacy returns the historical "auto" policy.
//
// Deprecated: "auto" is retained for backward compatibility only. It computes
// the same weights as Balanced and additionally emits a DeprecationWarning
// through the errors.Warn side channel. Use Balanced instead.
func Legacy() Policy { return Policy{kind: kindLegacy} }

// Uniform returns the "none" policy: every class receives weight 1.
func Uniform() Policy { return Policy{kind: kindUniform} }

// FromMap returns a policy using an explicit class-to-weight mapping.
// Classes absent from the mapping default to weight 1.
func FromMap(m map[float64]float64) Policy {
	return Policy{kind: kindMapping, mapping: m}
}

// FromMaps returns a policy carrying one mapping per output column, for use
// with multi-output label matrices in ComputeSampleWeightMatrix.
func FromMaps(ms []map[float64]float64) Policy {
	return Policy{kind: kindMappingList, mappings: ms}
}

// ParsePolicy converts a preset token into a Policy. The only valid presets
// are "balanced", "auto" (deprecated) and "none"; any other token fails with
// a ValidationError regardless of the data it would have been applied to.
func ParsePolicy(token string) (Policy, error) {
	switch token {
	case "balanced":
		return Balanced(), nil
	case "auto":
		return Legacy(), nil
	case "none":
		return Uniform(), nil
	default:
		return Policy{}, errors.NewValidationError("class_weight",
			`the only valid presets are "balanced", "auto" and "none"`, token)
	}
}

// String returns the scikit-learn-style token for the policy.
func (p Policy) String() string {
	switch p.kind {
	case kindBalanced:
		return "balanced"
	case kindLegacy:
		return "auto"
	case kindMapping:
		return "mapping"
	case kindMappingList:
		return "mapping_list"
	default:
		return "none"
	}
}

// warnIfDeprecated emits the deprecation notice for the legacy "auto" policy.
// The returned weights are unaffected; the notice is observable through
// errors.SetWarningHandler or errors.SetZerologWarnFunc.
func (p Policy) warnIfDeprecated() {
	if p.kind == kindLegacy {
		errors.Warn(errors.NewDeprecationWarning("class_weight='auto'", "class_weight='balanced'", ""))
	}
}

// ComputeClassWeight estimates one weight per catalog class for unbalanced
// datasets, mirroring sklearn.utils.class_weight.compute_class_weight.
//
// classes is the ordered catalog of expected class labels and y the observed
// label vector. The returned slice has one entry per catalog class, in
// catalog order. Under Balanced (or the deprecated Legacy alias) a catalog
// class that never occurs in y makes the weight undefined and the call fails
// with an UndefinedWeightError.
func ComputeClassWeight(policy Policy, classes []float64, y []float64) ([]float64, error) {
	const op = "ComputeClassWeight"

	if len(y) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, op)
	}

	switch policy.kind {
	case kindUniform:
		weights := make([]float64, len(classes))
		for i := range weights {
			weights[i] = 1
		}
		return weights, nil
	case kindBalanced, kindLegacy:
		policy.warnIfDeprecated()
		return balancedWeights(op, classes, y)
	case kindMapping:
		return mappingWeights(op, classes, policy.mapping)
	default:
		return nil, errors.NewValidationError("class_weight",
			"a list of mappings is only valid for multi-output sample weighting", policy.String())
	}
}

// ComputeSampleWeight estimates one weight per sample for a single-output
// label vector. It is the one-column case of ComputeSampleWeightMatrix.
//
// subsample optionally restricts which rows contribute to frequency
// statistics; indices may repeat (bootstrap) and need not cover all rows.
// Weights are still returned for every original row. nil means all rows.
func ComputeSampleWeight(policy Policy, y []float64, subsample []int) ([]float64, error) {
	if len(y) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "ComputeSampleWeight")
	}
	return ComputeSampleWeightMatrix(policy, mat.NewDense(len(y), 1, y), subsample)
}

// ComputeSampleWeightMatrix estimates one weight per row of a possibly
// multi-output label matrix, mirroring
// sklearn.utils.class_weight.compute_sample_weight.
//
// Each column is weighted independently: the class catalog and frequency
// statistics for a column come from the subsampled rows when subsample is
// given, otherwise from all rows. A row whose label in some column occurs
// only outside the subsample receives weight 0. The final weight of a row is
// the product of its per-column weights, assigned back to all original rows.
//
// Explicit mappings are valid for single-output y only, a mapping list must
// carry exactly one mapping per column of a multi-output y, and neither form
// may be combined with a subsample.
func ComputeSampleWeightMatrix(policy Policy, y mat.Matrix, subsample []int) (weights []float64, err error) {
	const op = "ComputeSampleWeightMatrix"
	defer errors.Recover(&err, op)

	nSamples, nOutputs := y.Dims()
	if nSamples == 0 || nOutputs == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, op)
	}

	switch policy.kind {
	case kindMapping:
		if subsample != nil {
			return nil, errors.NewValidationError("class_weight",
				`the only policies valid with a subsample are "balanced" and "auto"`, policy.String())
		}
		if nOutputs > 1 {
			return nil, errors.NewValidationError("class_weight",
				"for multi-output labels, class weights should be a list of mappings or a preset policy", policy.String())
		}
	case kindMappingList:
		if subsample != nil {
			return nil, errors.NewValidationError("class_weight",
				`the only policies valid with a subsample are "balanced" and "auto"`, policy.String())
		}
		if nOutputs == 1 {
			return nil, errors.NewValidationError("class_weight",
				"a list of mappings is only valid for multi-output labels", policy.String())
		}
		if len(policy.mappings) != nOutputs {
			return nil, errors.NewDimensionError(op, nOutputs, len(policy.mappings), 1)
		}
	}

	for _, idx := range subsample {
		if idx < 0 || idx >= nSamples {
			return nil, errors.NewValidationError("subsample",
				fmt.Sprintf("row index out of range [0, %d)", nSamples), idx)
		}
	}

	policy.warnIfDeprecated()

	weights = make([]float64, nSamples)
	for i := range weights {
		weights[i] = 1
	}
	if policy.kind == kindUniform {
		return weights, nil
	}

	col := make([]float64, nSamples)
	for k := 0; k < nOutputs; k++ {
		mat.Col(col, k, y)

		colPolicy := policy
		if policy.kind == kindMappingList {
			colPolicy = FromMap(policy.mappings[k])
		}

		colWeights, err := columnWeights(colPolicy, col, subsample)
		if err != nil {
			return nil, err
		}
		for i := range weights {
			weights[i] *= colWeights[i]
		}
	}
	return weights, nil
}

// columnWeights resolves per-row weights for a single label column. The rows
// contributing to catalog discovery and counts are selected by subsample;
// weight lookup still runs over every original row, so labels outside the
// selected catalog resolve to 0.
func columnWeights(policy Policy, col []float64, subsample []int) ([]float64, error) {
	const op = "ComputeSampleWeight"

	selected := col
	if subsample != nil {
		selected = make([]float64, len(subsample))
		for i, idx := range subsample {
			selected[i] = col[idx]
		}
	}

	catalog := uniqueSorted(selected)

	var perClass []float64
	var err error
	switch policy.kind {
	case kindBalanced, kindLegacy:
		perClass, err = balancedWeights(op, catalog, selected)
	case kindMapping:
		perClass, err = mappingWeights(op, catalog, policy.mapping)
	default:
		return nil, errors.NewValidationError("class_weight", "unsupported policy for column weighting", policy.String())
	}
	if err != nil {
		return nil, err
	}

	lookup := make(map[float64]float64, len(catalog))
	for i, c := range catalog {
		lookup[c] = perClass[i]
	}

	out := make([]float64, len(col))
	for i, label := range col {
		out[i] = lookup[label]
	}
	return out, nil
}

// balancedWeights computes w[c] = nSamples / (nClasses * count(c)) over the
// given label vector, in catalog order. The same routine serves the plain and
// the subsample-restricted paths; callers choose which labels count.
func balancedWeights(op string, classes, y []float64) ([]float64, error) {
	counts := make(map[float64]int, len(classes))
	for _, label := range y {
		counts[label]++
	}

	nSamples := float64(len(y))
	nClasses := float64(len(classes))

	weights := make([]float64, len(classes))
	for i, c := range classes {
		count := counts[c]
		if count == 0 {
			return nil, errors.NewUndefinedWeightError(op, c, "balanced")
		}
		weights[i] = nSamples / (nClasses * float64(count))
	}
	return weights, nil
}

// mappingWeights expands an explicit class-to-weight mapping over the
// catalog. Catalog classes absent from the mapping default to 1; a mapping
// key that is not a catalog class is rejected.
func mappingWeights(op string, classes []float64, mapping map[float64]float64) ([]float64, error) {
	index := make(map[float64]int, len(classes))
	for i, c := range classes {
		index[c] = i
	}

	weights := make([]float64, len(classes))
	for i := range weights {
		weights[i] = 1
	}
	for c, w := range mapping {
		i, ok := index[c]
		if !ok {
			return nil, errors.NewValueError(op, fmt.Sprintf("class label %g is not present in classes", c))
		}
		weights[i] = w
	}
	return weights, nil
}

// uniqueSorted returns the distinct values of a label vector in ascending
// order, matching numpy.unique.
func uniqueSorted(values []float64) []float64 {
	seen := make(map[float64]struct{}, len(values))
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Float64s(out)
	return out
}
