package domain

// JSONPathExpectation is a check against one JSONPath of a landing result.
// Unset fields are skipped.
type JSONPathExpectation struct {
	Exists bool
	Eq     *string
	Gt     *float64
	Lt     *float64
}

// ExpectSpec defines what a launch in a scenario is expected to produce.
type ExpectSpec struct {
	Converged *bool

	// JSONPath is keyed by expression, e.g. "$.distance".
	JSONPath map[string]JSONPathExpectation
}

// LaunchSpec is a named launch inside a scenario.
type LaunchSpec struct {
	Name   string
	Params LaunchParameters
	Expect ExpectSpec
}

// Scenario groups launches under one Git-friendly file.
type Scenario struct {
	Name     string
	Launches []LaunchSpec
}

// ScenarioRef is a lightweight reference to a scenario file on disk.
type ScenarioRef struct {
	Name string
	Path string
}

// WorkspaceSpec describes where a workspace should be created.
type WorkspaceSpec struct {
	Root string
}
