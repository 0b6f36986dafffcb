package quality

import "errors"

// LogType says which flow the inspection belongs to.
type LogType string

const (
	// TypePurchases inspects incoming purchase orders.
	TypePurchases LogType = "PURCHASES"
	// TypeFinishedProducts inspects completed production batches.
	TypeFinishedProducts LogType = "FINISHED_PRODUCTS"
	// TypeReturns inspects returned goods before any restock decision.
	TypeReturns LogType = "RETURNS"
)

// ParseLogType validates a user-supplied log type.
func ParseLogType(s string) (LogType, error) {
	switch LogType(s) {
	case TypePurchases, TypeFinishedProducts, TypeReturns:
		return LogType(s), nil
	}
	return "", ErrUnknownLogType
}

// Status is the outcome of an inspection.
type Status string

const (
	// StatusPass cleared inspection.
	StatusPass Status = "PASS"
	// StatusFail was rejected.
	StatusFail Status = "FAIL"
	// StatusPending awaits inspection.
	StatusPending Status = "PENDING"
)

// ParseStatus validates a user-supplied inspection status.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPass, StatusFail, StatusPending:
		return Status(s), nil
	}
	return "", ErrUnknownStatus
}

// Log is one inspection record. ReferenceID points at the production
// order, purchase order or return request being inspected.
type Log struct {
	ID          string  `json:"id"`
	Type        LogType `json:"type"`
	ReferenceID string  `json:"reference_id"`
	ProductName string  `json:"product_name"`
	Date        string  `json:"date"`
	Inspector   string  `json:"inspector"`
	Status      Status  `json:"status"`
	Notes       string  `json:"notes,omitempty"`
}

// State is the quality-control slice of the shared object graph.
type State struct {
	Logs []Log
}

// FindLog returns a pointer into Logs by id, or nil.
func (s *State) FindLog(id string) *Log {
	for i := range s.Logs {
		if s.Logs[i].ID == id {
			return &s.Logs[i]
		}
	}
	return nil
}

// ErrLogNotFound indicates an unknown inspection id.
var ErrLogNotFound = errors.New("quality: log not found")

// ErrUnknownLogType indicates a type outside the inspection flows.
var ErrUnknownLogType = errors.New("quality: unknown log type")

// ErrUnknownStatus indicates a status outside the outcome set.
var ErrUnknownStatus = errors.New("quality: unknown status")
