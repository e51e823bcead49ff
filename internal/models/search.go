package models

// SearchRequest captures the inputs of one collection run. It is built once
// from configuration and flags and never mutated afterwards.
type SearchRequest struct {
	Keywords    string
	Location    string
	TargetCount int
	MaxPages    int
}
