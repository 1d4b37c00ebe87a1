// Package slotform bridges a persisted time slot and its editable draft:
// seeding, validation, and the two wire payload shapes for create and update.
package slotform

import (
	"context"
	"sync"
	"time"

	"github.com/SahanHeshan/GovPortal/internal/adminconsole/models"
	"github.com/SahanHeshan/GovPortal/internal/domain"
	"github.com/SahanHeshan/GovPortal/pkg/types"
)

// Mode distinguishes a create dialog from an edit dialog
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

// State is the dialog lifecycle position
type State int

const (
	StateEmpty State = iota
	StatePopulated
	StateEditing
	StateSubmitting
	StateSuccess
	StateError
)

const defaultCloseDelay = 2 * time.Second

const msgSubmitSuccess = "Slot saved successfully"

// Draft is the editable field set. Times are canonical "HH:MM";
// the seconds suffix is added only at payload construction.
type Draft struct {
	BookingDate    string
	StartTime      string
	EndTime        string
	MaxCapacity    int
	ReservedCount  int
	RecurrentCount int
	Status         string
	ServiceID      int64
}

// Form is one open create/edit dialog instance. The draft exists only while
// the dialog is open and is never partially persisted: the backend sees a
// payload exactly once, on a successful submit.
type Form struct {
	mu         sync.Mutex
	mode       Mode
	state      State
	slotID     int64
	draft      Draft
	message    string
	onRefresh  func()
	onClose    func()
	closeDelay time.Duration
	closeTimer *time.Timer
}

// NewCreateForm opens a create dialog with the documented field defaults.
// onRefresh fires after a successful submit so the owning list can re-fetch;
// onClose fires shortly after, once the confirmation has been readable.
func NewCreateForm(onRefresh, onClose func()) *Form {
	return &Form{
		mode:  ModeCreate,
		state: StateEmpty,
		draft: Draft{
			MaxCapacity:    domain.DefaultMaxCapacity,
			ReservedCount:  domain.DefaultReservedCount,
			RecurrentCount: domain.DefaultRecurrentCount,
			Status:         string(domain.DefaultSlotStatus),
		},
		onRefresh:  onRefresh,
		onClose:    onClose,
		closeDelay: defaultCloseDelay,
	}
}

// NewEditForm opens an edit dialog seeded from an existing slot. The owning
// service must resolve against the fetched catalogue before the dialog opens;
// a slot pointing at an unknown service yields ErrServiceNotInCatalogue
// instead of a draft that silently fails required-field validation.
func NewEditForm(slot models.TimeSlot, services []models.Service, onRefresh, onClose func()) (*Form, error) {
	serviceID := int64(0)
	for _, svc := range services {
		if svc.ServiceID == slot.ReservationID {
			serviceID = svc.ServiceID
			break
		}
	}
	if serviceID == 0 {
		return nil, ErrServiceNotInCatalogue
	}

	startTime, err := types.NewTimeStringFromString(slot.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := types.NewTimeStringFromString(slot.EndTime)
	if err != nil {
		return nil, err
	}

	return &Form{
		mode:   ModeEdit,
		state:  StatePopulated,
		slotID: slot.SlotID,
		draft: Draft{
			BookingDate:    slot.BookingDate,
			StartTime:      startTime.String(),
			EndTime:        endTime.String(),
			MaxCapacity:    slot.MaxCapacity,
			ReservedCount:  slot.ReservedCount,
			RecurrentCount: slot.RecurrentCount,
			Status:         slot.Status,
			ServiceID:      serviceID,
		},
		onRefresh:  onRefresh,
		onClose:    onClose,
		closeDelay: defaultCloseDelay,
	}, nil
}

// Mode returns the dialog mode
func (f *Form) Mode() Mode {
	return f.mode
}

// State returns the current lifecycle state
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Message returns the inline confirmation or error text, empty when none
func (f *Form) Message() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.message
}

// Draft returns a copy of the current draft
func (f *Form) Draft() Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// SetBookingDate records the selected calendar date ("YYYY-MM-DD")
func (f *Form) SetBookingDate(date string) error {
	return f.edit(func(d *Draft) { d.BookingDate = date })
}

// SetStartTime records the selected start time ("HH:MM")
func (f *Form) SetStartTime(value string) error {
	return f.edit(func(d *Draft) { d.StartTime = value })
}

// SetEndTime records the selected end time ("HH:MM")
func (f *Form) SetEndTime(value string) error {
	return f.edit(func(d *Draft) { d.EndTime = value })
}

// SetMaxCapacity records the capacity
func (f *Form) SetMaxCapacity(capacity int) error {
	return f.edit(func(d *Draft) { d.MaxCapacity = capacity })
}

// SetReservedCount records the reserved count
func (f *Form) SetReservedCount(count int) error {
	return f.edit(func(d *Draft) { d.ReservedCount = count })
}

// SetRecurrentCount records the recurrence. Create mode only.
func (f *Form) SetRecurrentCount(count int) error {
	if f.mode == ModeEdit {
		return ErrRecurrenceFixed
	}
	return f.edit(func(d *Draft) { d.RecurrentCount = count })
}

// SetStatus records the status tag
func (f *Form) SetStatus(status string) error {
	return f.edit(func(d *Draft) { d.Status = status })
}

// SetService records the owning service selection
func (f *Form) SetService(serviceID int64) error {
	return f.edit(func(d *Draft) { d.ServiceID = serviceID })
}

func (f *Form) edit(apply func(*Draft)) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StateSubmitting {
		return ErrSubmitInProgress
	}

	apply(&f.draft)
	f.state = StateEditing
	f.message = ""
	return nil
}

// Validate checks the draft. Fail-fast: the first broken rule wins and its
// message is what the form surfaces.
func (f *Form) Validate() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validateLocked()
}

func (f *Form) validateLocked() error {
	if f.draft.BookingDate == "" || f.draft.StartTime == "" || f.draft.EndTime == "" || f.draft.ServiceID == 0 {
		return ErrRequiredFields
	}

	start, err := types.NewTimeStringFromString(f.draft.StartTime)
	if err != nil {
		return err
	}
	end, err := types.NewTimeStringFromString(f.draft.EndTime)
	if err != nil {
		return err
	}
	if !start.IsBefore(end) {
		return ErrEndNotAfterStart
	}

	if f.draft.ReservedCount > f.draft.MaxCapacity {
		return ErrReservedExceedsCapacity
	}

	return nil
}

// CreatePayload builds the create request body from the draft
func (f *Form) CreatePayload() models.CreateSlotPayload {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.createPayloadLocked()
}

func (f *Form) createPayloadLocked() models.CreateSlotPayload {
	return models.CreateSlotPayload{
		ReservationID:  f.draft.ServiceID,
		BookingDate:    f.draft.BookingDate,
		StartTime:      withSeconds(f.draft.StartTime),
		EndTime:        withSeconds(f.draft.EndTime),
		MaxCapacity:    f.draft.MaxCapacity,
		ReservedCount:  f.draft.ReservedCount,
		RecurrentCount: f.draft.RecurrentCount,
		Status:         f.draft.Status,
	}
}

// UpdatePayload builds the update request body from the draft. Deliberately
// narrower than the create shape: no recurrence, no re-parenting.
func (f *Form) UpdatePayload() models.UpdateSlotPayload {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.updatePayloadLocked()
}

func (f *Form) updatePayloadLocked() models.UpdateSlotPayload {
	return models.UpdateSlotPayload{
		BookingDate:   f.draft.BookingDate,
		StartTime:     withSeconds(f.draft.StartTime),
		EndTime:       withSeconds(f.draft.EndTime),
		MaxCapacity:   f.draft.MaxCapacity,
		ReservedCount: f.draft.ReservedCount,
		Status:        f.draft.Status,
	}
}

// Submit validates the draft and sends it. Exactly one submission can be in
// flight per dialog: a second Submit while one runs gets ErrSubmitInProgress.
// On success the form signals the owning list to refresh and schedules its
// own closure after a short delay; on failure the dialog stays open and the
// next field edit returns it to Editing.
func (f *Form) Submit(ctx context.Context, gw Gateway) error {
	f.mu.Lock()

	if f.state == StateSubmitting {
		f.mu.Unlock()
		return ErrSubmitInProgress
	}

	if err := f.validateLocked(); err != nil {
		f.state = StateError
		f.message = err.Error()
		f.mu.Unlock()
		return err
	}

	f.state = StateSubmitting
	f.message = ""
	mode := f.mode
	slotID := f.slotID
	createPayload := f.createPayloadLocked()
	updatePayload := f.updatePayloadLocked()
	f.mu.Unlock()

	var err error
	if mode == ModeCreate {
		_, err = gw.CreateSlot(ctx, createPayload)
	} else {
		_, err = gw.UpdateSlot(ctx, slotID, updatePayload)
	}

	f.mu.Lock()

	if err != nil {
		f.state = StateError
		f.message = err.Error()
		f.mu.Unlock()
		return err
	}

	f.state = StateSuccess
	f.message = msgSubmitSuccess

	refresh := f.onRefresh
	if f.onClose != nil {
		f.closeTimer = time.AfterFunc(f.closeDelay, f.onClose)
	}
	f.mu.Unlock()

	// The refresh callback runs outside the lock so it may read the form
	if refresh != nil {
		refresh()
	}

	return nil
}

// Close tears the dialog down, cancelling any pending delayed closure
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closeTimer != nil {
		f.closeTimer.Stop()
		f.closeTimer = nil
	}
}

// SetCloseDelay overrides how long the success confirmation stays visible
// before the dialog closes itself
func (f *Form) SetCloseDelay(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closeDelay = d
}

func withSeconds(value string) string {
	return value + ":00"
}
