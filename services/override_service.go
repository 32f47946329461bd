package services

import (
	"fmt"
	"sync"
)

// OverrideState is the serializable override bookkeeping for one
// hotel + room type: committed values, locally entered but unsubmitted
// values, and saved dates still awaiting sink acknowledgement.
type OverrideState struct {
	Pending     map[string]float64 `json:"pending"`
	Saved       map[string]float64 `json:"saved"`
	Unconfirmed map[string]bool    `json:"unconfirmed"`
}

func NewOverrideState() OverrideState {
	return OverrideState{
		Pending:     map[string]float64{},
		Saved:       map[string]float64{},
		Unconfirmed: map[string]bool{},
	}
}

// Clone returns a deep copy so callers can hold a snapshot while the
// service keeps mutating its own copy.
func (st OverrideState) Clone() OverrideState {
	out := NewOverrideState()
	for k, v := range st.Pending {
		out.Pending[k] = v
	}
	for k, v := range st.Saved {
		out.Saved[k] = v
	}
	for k, v := range st.Unconfirmed {
		out.Unconfirmed[k] = v
	}
	return out
}

// SetOverride records a pending override. Frozen days are rejected
// silently: the returned state is unchanged and applied is false.
func SetOverride(st OverrideState, frozen bool, date string, value float64) (OverrideState, bool) {
	if frozen {
		return st, false
	}
	out := st.Clone()
	out.Pending[date] = value
	return out, true
}

// ClearOverride removes the pending value for a date, revealing the saved
// value (or nothing). Frozen days are rejected silently, same as
// SetOverride; clearing a date with no pending value is a no-op.
func ClearOverride(st OverrideState, frozen bool, date string) (OverrideState, bool) {
	if frozen {
		return st, false
	}
	if _, ok := st.Pending[date]; !ok {
		return st, true
	}
	out := st.Clone()
	delete(out.Pending, date)
	return out, true
}

// CommitBatch optimistically moves every pending entry into saved, marks
// the moved dates unconfirmed and clears them from pending. Dates the
// frozen predicate reports as frozen are skipped: a pending value whose
// date slid into the freeze window stays pending and never reaches saved.
// The moved batch is returned for dispatch.
func CommitBatch(st OverrideState, frozen func(date string) bool) (OverrideState, map[string]float64) {
	if len(st.Pending) == 0 {
		return st, map[string]float64{}
	}
	out := st.Clone()
	batch := make(map[string]float64, len(out.Pending))
	for date, rate := range out.Pending {
		if frozen != nil && frozen(date) {
			continue
		}
		batch[date] = rate
		out.Saved[date] = rate
		out.Unconfirmed[date] = true
		delete(out.Pending, date)
	}
	return out, batch
}

// RestoreBatch puts a failed batch back into pending so the user's input
// is not lost. Saved is deliberately not rolled back; the unconfirmed
// marks keep the inconsistency visible.
func RestoreBatch(st OverrideState, batch map[string]float64) OverrideState {
	if len(batch) == 0 {
		return st
	}
	out := st.Clone()
	for date, rate := range batch {
		out.Pending[date] = rate
	}
	return out
}

// ConfirmBatch clears the unconfirmed marks once the sink acknowledged.
func ConfirmBatch(st OverrideState, batch map[string]float64) OverrideState {
	if len(batch) == 0 {
		return st
	}
	out := st.Clone()
	for date := range batch {
		delete(out.Unconfirmed, date)
	}
	return out
}

// OverrideService owns the per-(hotel, room type) override state. Handlers
// run concurrently, so access goes through a mutex; the transitions above
// stay pure.
type OverrideService struct {
	mu     sync.Mutex
	states map[string]OverrideState
	store  SavedOverrideStore
}

func NewOverrideService(store SavedOverrideStore) *OverrideService {
	return &OverrideService{
		states: map[string]OverrideState{},
		store:  store,
	}
}

func stateKey(hotelID, roomTypeID uint) string {
	return fmt.Sprintf("%d:%d", hotelID, roomTypeID)
}

// lockedState returns the current state, hydrating saved overrides from
// the store on first access. Caller must hold s.mu.
func (s *OverrideService) lockedState(hotelID, roomTypeID uint) OverrideState {
	key := stateKey(hotelID, roomTypeID)
	if st, ok := s.states[key]; ok {
		return st
	}
	st := NewOverrideState()
	if s.store != nil {
		if saved, unconfirmed, err := s.store.Load(hotelID, roomTypeID); err == nil {
			st.Saved = saved
			st.Unconfirmed = unconfirmed
		}
	}
	s.states[key] = st
	return st
}

// State returns a snapshot of the override state for one hotel + room type.
func (s *OverrideService) State(hotelID, roomTypeID uint) OverrideState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lockedState(hotelID, roomTypeID).Clone()
}

// Set applies a pending override; returns false when the day is frozen.
func (s *OverrideService) Set(hotelID, roomTypeID uint, frozen bool, date string, value float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, applied := SetOverride(s.lockedState(hotelID, roomTypeID), frozen, date, value)
	s.states[stateKey(hotelID, roomTypeID)] = st
	return applied
}

// Clear drops the pending override for a date; returns false when the day
// is frozen.
func (s *OverrideService) Clear(hotelID, roomTypeID uint, frozen bool, date string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, applied := ClearOverride(s.lockedState(hotelID, roomTypeID), frozen, date)
	s.states[stateKey(hotelID, roomTypeID)] = st
	return applied
}

// Commit moves pending into saved and returns the batch for dispatch.
// Frozen dates stay pending and are left out of the batch.
func (s *OverrideService) Commit(hotelID, roomTypeID uint, frozen func(date string) bool) map[string]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, batch := CommitBatch(s.lockedState(hotelID, roomTypeID), frozen)
	s.states[stateKey(hotelID, roomTypeID)] = st
	return batch
}

// Restore returns a failed batch to pending.
func (s *OverrideService) Restore(hotelID, roomTypeID uint, batch map[string]float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[stateKey(hotelID, roomTypeID)] = RestoreBatch(s.lockedState(hotelID, roomTypeID), batch)
}

// Confirm clears unconfirmed marks for an acknowledged batch.
func (s *OverrideService) Confirm(hotelID, roomTypeID uint, batch map[string]float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[stateKey(hotelID, roomTypeID)] = ConfirmBatch(s.lockedState(hotelID, roomTypeID), batch)
}
