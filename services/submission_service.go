package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sort"
	"time"

	"github.com/google/uuid"

	"rate-calendar-backend/models"
)

// RateSink is the external persistence/sync boundary overrides are pushed
// to. The batch is dispatched exactly once; there is no automatic retry
// and no per-date acknowledgement.
type RateSink interface {
	PushOverrides(hotelID, roomTypeID uint, batchID string, entries []OverrideEntry) error
}

// HTTPRateSink posts override batches to the PMS endpoint. When no URL is
// configured it logs a mock push and reports success, so local development
// works without a PMS (same fallback the rest of the stack uses for
// unconfigured externals).
type HTTPRateSink struct {
	URL    string
	Client *http.Client
}

func NewHTTPRateSink(url string) *HTTPRateSink {
	return &HTTPRateSink{
		URL:    url,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

type sinkPayload struct {
	HotelID    uint            `json:"hotelId"`
	RoomTypeID uint            `json:"roomTypeId"`
	BatchID    string          `json:"batchId"`
	Overrides  []OverrideEntry `json:"overrides"`
}

func (s *HTTPRateSink) PushOverrides(hotelID, roomTypeID uint, batchID string, entries []OverrideEntry) error {
	if s.URL == "" {
		log.Printf("[MOCK PMS PUSH] hotel:%d room:%d batch:%s overrides:%d", hotelID, roomTypeID, batchID, len(entries))
		return nil
	}

	body, err := json.Marshal(sinkPayload{
		HotelID:    hotelID,
		RoomTypeID: roomTypeID,
		BatchID:    batchID,
		Overrides:  entries,
	})
	if err != nil {
		return fmt.Errorf("failed to encode override batch: %w", err)
	}

	resp, err := s.Client.Post(s.URL, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("pms push failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("pms push rejected: status %d", resp.StatusCode)
	}
	return nil
}

var ErrNoPendingOverrides = errors.New("no_pending_overrides")

// SubmissionService hands pending override batches to the sink with
// optimistic semantics: local state reflects success before the dispatch
// resolves, and a failed dispatch restores pending without rolling back
// saved (the unconfirmed marks keep that visible).
type SubmissionService struct {
	Overrides *OverrideService
	Store     SavedOverrideStore
	Sink      RateSink
}

func NewSubmissionService(overrides *OverrideService, store SavedOverrideStore, sink RateSink) *SubmissionService {
	return &SubmissionService{Overrides: overrides, Store: store, Sink: sink}
}

func batchEntries(batch map[string]float64) []OverrideEntry {
	entries := make([]OverrideEntry, 0, len(batch))
	for date, rate := range batch {
		entries = append(entries, OverrideEntry{Date: date, Rate: rate})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })
	return entries
}

// Submit commits and dispatches every pending override for one
// hotel + room type. Dates the frozen predicate reports as frozen stay
// pending and are excluded from the batch. Returns the batch ID and entry
// count on success.
func (s *SubmissionService) Submit(hotelID, roomTypeID uint, frozen func(date string) bool) (string, int, error) {
	batch := s.Overrides.Commit(hotelID, roomTypeID, frozen)
	if len(batch) == 0 {
		return "", 0, ErrNoPendingOverrides
	}

	batchID := uuid.NewString()
	entries := batchEntries(batch)

	if err := s.Store.UpsertBatch(hotelID, roomTypeID, entries, batchID, models.SyncUnconfirmed); err != nil {
		s.Overrides.Restore(hotelID, roomTypeID, batch)
		return batchID, 0, fmt.Errorf("failed to persist override batch: %w", err)
	}

	if err := s.Sink.PushOverrides(hotelID, roomTypeID, batchID, entries); err != nil {
		// restore the user's input; saved stays committed and marked
		// unconfirmed
		s.Overrides.Restore(hotelID, roomTypeID, batch)
		return batchID, 0, err
	}

	if err := s.Store.MarkConfirmed(hotelID, roomTypeID, batchID); err != nil {
		log.Printf("warning: failed to mark batch %s confirmed: %v", batchID, err)
	}
	s.Overrides.Confirm(hotelID, roomTypeID, batch)

	return batchID, len(entries), nil
}
