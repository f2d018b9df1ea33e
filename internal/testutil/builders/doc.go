// Package builders provides test data builders for configs, event payloads and issue snapshots.
//
// # Example
//
//	cfg := NewConfigBuilder().
//	    WithAddLabels("a, b").
//	    WithIgnoreIfAssigned().
//	    Build()
//
//	payload := NewPayloadBuilder().
//	    WithRepository("o", "r").
//	    WithProjectCard("https://api.github.com/repos/o/r/issues/3").
//	    Build()
package builders
