// Package agent holds the process-wide registry of live agent contexts and
// the delegation chain each context's root agent heads. The settings service
// walks this structure to propagate reconfiguration.
package agent
