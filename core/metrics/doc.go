// Package metrics keeps Prometheus counters for stacking outcomes.
//
// Counters live on a private registry owned by a Recorder; nothing is served
// over the network. Callers read them back through Gather (the simulate
// command prints them) or prometheus/testutil in tests.
package metrics
