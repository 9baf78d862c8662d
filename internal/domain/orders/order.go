// Package orders models the server-owned stock order lifecycle as seen by
// the console. Orders are created and stored upstream; the console only
// reads them and requests forward status transitions.
package orders

// Status is the lifecycle state of a stock order.
type Status string

const (
	StatusProcessing Status = "Processing"
	StatusCompleted  Status = "Completed"
	StatusReturned   Status = "Returned"
)

// Valid reports whether s is a known order status.
func (s Status) Valid() bool {
	switch s {
	case StatusProcessing, StatusCompleted, StatusReturned:
		return true
	}
	return false
}

// StockType classifies the movement an order records.
type StockType string

const (
	StockIn       StockType = "In"
	StockOut      StockType = "Out"
	StockReturned StockType = "Returned"
)

// CanTransition reports whether the console is allowed to request the given
// status change. The console only ever moves orders forward: a Processing
// order can be completed, or marked returned right after a return
// submission. The upstream stays authoritative; this is a fail-fast check.
func CanTransition(from, to Status) bool {
	if from != StatusProcessing {
		return false
	}
	return to == StatusCompleted || to == StatusReturned
}
