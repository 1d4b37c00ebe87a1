// Package viewmodel owns the fetch lifecycle of the slot list screen:
// load on open, reload on filter change, deletion with confirmation, and
// re-fetch after every mutation instead of optimistic local edits.
package viewmodel

import (
	"context"
	"errors"
	"sync"

	"github.com/SahanHeshan/GovPortal/internal/adminconsole/models"
	"github.com/SahanHeshan/GovPortal/internal/adminconsole/slotfilter"
)

var (
	// ErrNoPendingDelete is returned when ConfirmDelete runs without a
	// preceding RequestDelete
	ErrNoPendingDelete = errors.New("viewmodel: no deletion pending")

	// ErrClosed is returned once the view-model has been torn down
	ErrClosed = errors.New("viewmodel: closed")
)

// ViewModel drives one slot list for one owning-service context.
//
// Every load carries the sequence number of the filter state it was issued
// for; a response whose number no longer matches is dropped, so an answer
// for a stale filter can never overwrite fresher data no matter how the
// responses are ordered.
type ViewModel struct {
	mu            sync.Mutex
	gw            Gateway
	log           Logger
	reservationID int64
	date          *string // nil = view all
	serviceFilter *int64  // optional client-side narrowing of the visible set
	slots         []models.TimeSlot
	seq           uint64
	pendingDelete *int64
	lastErr       error
	closed        bool
}

// New creates a view-model for one service's slots
func New(reservationID int64, gw Gateway, log Logger) *ViewModel {
	return &ViewModel{
		gw:            gw,
		log:           log,
		reservationID: reservationID,
	}
}

// Load fetches the slot list for the current filter state. A transport
// failure keeps the previous list and surfaces a retryable error: calling
// Load again is the retry.
func (vm *ViewModel) Load(ctx context.Context) error {
	vm.mu.Lock()
	if vm.closed {
		vm.mu.Unlock()
		return ErrClosed
	}
	vm.seq++
	snapshot := vm.seq
	reservationID := vm.reservationID
	date := vm.date
	vm.mu.Unlock()

	var (
		slots []models.TimeSlot
		err   error
	)
	if date != nil {
		slots, err = vm.gw.ListSlotsByDate(ctx, reservationID, *date)
	} else {
		slots, err = vm.gw.ListSlots(ctx, reservationID)
	}

	vm.mu.Lock()
	defer vm.mu.Unlock()

	if vm.closed {
		return ErrClosed
	}
	if snapshot != vm.seq {
		// A newer load superseded this one while it was in flight
		vm.log.Info("Load: discarding stale response for reservation=%d", reservationID)
		return nil
	}

	if err != nil {
		vm.log.Error("Load: fetch failed for reservation=%d: %v", reservationID, err)
		vm.lastErr = err
		return err
	}

	vm.slots = slots
	vm.lastErr = nil
	vm.log.Info("Load: %d slot(s) for reservation=%d", len(slots), reservationID)
	return nil
}

// SetDate switches to view-by-date mode and reloads
func (vm *ViewModel) SetDate(ctx context.Context, date string) error {
	vm.mu.Lock()
	vm.date = &date
	vm.mu.Unlock()
	return vm.Load(ctx)
}

// ClearDate switches back to view-all mode and reloads
func (vm *ViewModel) ClearDate(ctx context.Context) error {
	vm.mu.Lock()
	vm.date = nil
	vm.mu.Unlock()
	return vm.Load(ctx)
}

// SetServiceFilter narrows the visible set to one service without refetching
func (vm *ViewModel) SetServiceFilter(serviceID int64) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.serviceFilter = &serviceID
}

// ClearServiceFilter drops the service narrowing
func (vm *ViewModel) ClearServiceFilter() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.serviceFilter = nil
}

// Visible returns the slots to render: the fetched collection run through
// the filter, in source order. The fetched collection itself is never
// mutated.
func (vm *ViewModel) Visible() []models.TimeSlot {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	return slotfilter.Filter(vm.slots, slotfilter.Criteria{
		Date:          vm.date,
		ReservationID: vm.serviceFilter,
	})
}

// Err returns the last load error, nil after a successful load
func (vm *ViewModel) Err() error {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.lastErr
}

// RequestDelete opens the confirmation flow for one slot. No backend call
// happens until ConfirmDelete.
func (vm *ViewModel) RequestDelete(slotID int64) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.pendingDelete = &slotID
}

// PendingDelete returns the slot awaiting confirmation, if any
func (vm *ViewModel) PendingDelete() (int64, bool) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if vm.pendingDelete == nil {
		return 0, false
	}
	return *vm.pendingDelete, true
}

// CancelDelete discards the pending deletion without touching the backend
func (vm *ViewModel) CancelDelete() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.pendingDelete = nil
}

// ConfirmDelete issues the delete call and re-fetches the list on success.
// Re-fetching instead of splicing locally keeps the view converged with the
// server under concurrent edits from other sessions.
func (vm *ViewModel) ConfirmDelete(ctx context.Context) error {
	vm.mu.Lock()
	if vm.closed {
		vm.mu.Unlock()
		return ErrClosed
	}
	if vm.pendingDelete == nil {
		vm.mu.Unlock()
		return ErrNoPendingDelete
	}
	slotID := *vm.pendingDelete
	vm.pendingDelete = nil
	vm.mu.Unlock()

	if err := vm.gw.DeleteSlot(ctx, slotID); err != nil {
		vm.log.Error("ConfirmDelete: delete failed for slot=%d: %v", slotID, err)
		vm.mu.Lock()
		vm.lastErr = err
		vm.mu.Unlock()
		return err
	}

	vm.log.Info("ConfirmDelete: slot=%d deleted, re-fetching list", slotID)
	return vm.Load(ctx)
}

// Close tears the view-model down. Late responses from in-flight loads are
// discarded instead of being applied to a defunct view.
func (vm *ViewModel) Close() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.closed = true
}
