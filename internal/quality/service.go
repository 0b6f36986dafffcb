package quality

import (
	"fmt"

	"github.com/abkrino/cozmo-factor/internal/shared"
)

// StateStore is the slice of the store quality control needs.
type StateStore interface {
	UpdateQuality(fn func(*State) error) error
	ViewQuality(fn func(State))
}

// Service owns inspection commands.
type Service struct {
	store StateStore
	clock shared.Clock
}

// NewService wires the quality service.
func NewService(store StateStore, clock shared.Clock) *Service {
	return &Service{store: store, clock: clock}
}

// NewLogInput carries the open-inspection form.
type NewLogInput struct {
	Type        LogType
	ReferenceID string
	ProductName string
	Inspector   string
	Notes       string
}

// OpenLog records a pending inspection.
func (s *Service) OpenLog(in NewLogInput) (Log, error) {
	log := Log{
		ID:          shared.NewCode("QC"),
		Type:        in.Type,
		ReferenceID: in.ReferenceID,
		ProductName: in.ProductName,
		Date:        s.clock.Today(),
		Inspector:   in.Inspector,
		Status:      StatusPending,
		Notes:       in.Notes,
	}
	err := s.store.UpdateQuality(func(st *State) error {
		st.Logs = append([]Log{log}, st.Logs...)
		return nil
	})
	if err != nil {
		return Log{}, err
	}
	return log, nil
}

// ListLogs returns inspections, optionally filtered by type. An empty
// filter returns everything.
func (s *Service) ListLogs(filter LogType) []Log {
	var out []Log
	s.store.ViewQuality(func(st State) {
		for _, l := range st.Logs {
			if filter == "" || l.Type == filter {
				out = append(out, l)
			}
		}
	})
	return out
}

// RecordOutcome sets the result of an inspection. The outcome is a record
// only; stock movements stay in the warehouse screens.
func (s *Service) RecordOutcome(id string, status Status, notes string) (Log, error) {
	var updated Log
	err := s.store.UpdateQuality(func(st *State) error {
		l := st.FindLog(id)
		if l == nil {
			return fmt.Errorf("record outcome of %q: %w", id, ErrLogNotFound)
		}
		l.Status = status
		if notes != "" {
			l.Notes = notes
		}
		updated = *l
		return nil
	})
	if err != nil {
		return Log{}, err
	}
	return updated, nil
}
