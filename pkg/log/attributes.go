// Package log defines standard attribute keys for machine learning operations.
//
// This file contains predefined attribute keys that provide consistency across
// all logging operations. Using these standard keys enables better log analysis,
// monitoring, and debugging of machine learning workflows.
//
// These keys follow a hierarchical naming convention (e.g., "data.samples",
// "weight.policy") to enable structured log analysis and filtering.
package log

// Model and Operation Context
// These attributes identify the component and operation being performed.
const (
	// OperationKey specifies the machine learning operation being performed.
	// Standard values: "compute_class_weight", "compute_sample_weight"
	OperationKey = "ml.operation"

	// ComponentKey identifies which component or package is performing the operation.
	// Examples: "utils", "preprocessing", "metrics"
	ComponentKey = "ml.component"
)

// Data Shape and Characteristics
// These attributes describe the structure and properties of data being processed.
const (
	// SamplesKey indicates the number of samples (rows) in the dataset.
	SamplesKey = "data.samples"

	// OutputsKey indicates the number of label columns for multi-output data.
	OutputsKey = "data.outputs"

	// ClassesKey indicates the number of distinct class labels in the catalog.
	ClassesKey = "data.classes"

	// SubsampleKey indicates the number of row indices contributing to
	// frequency statistics when a subsample is supplied.
	SubsampleKey = "data.subsample"
)

// Weighting Context
const (
	// PolicyKey identifies the class weighting policy in effect.
	// Standard values: "balanced", "auto", "none", "mapping", "mapping_list"
	PolicyKey = "weight.policy"
)
