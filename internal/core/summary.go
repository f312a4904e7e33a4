package core

// Snapshot is what a caller re-renders after a mutation: the numbered
// rows and the running total.
type Snapshot struct {
	Rows  []Row
	Total float64
}
