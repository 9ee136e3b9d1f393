package client

import (
	"encoding/json"
	"errors"
	"time"
)

// PaymentState is a step of the UPI confirmation flow.
type PaymentState string

const (
	StateIdle    PaymentState = "idle"
	StateWaiting PaymentState = "waiting"
	StateAsk     PaymentState = "ask"
	StatePaid    PaymentState = "paid"
	StateNotPaid PaymentState = "not_paid"
)

// PaymentWindow is how long the flow waits after the customer opens their UPI
// app before asking whether they paid.
const PaymentWindow = 120 * time.Second

var ErrInvalidTransition = errors.New("invalid payment flow transition")

// PaymentFlow drives the checkout confirmation steps:
//
//	idle → waiting → ask → paid | not_paid, not_paid → idle
//
// The waiting start timestamp persists through Storage so a page reload
// resumes mid-countdown instead of resetting. The flow is honor-system only:
// the backend never verifies the "paid" claim.
type PaymentFlow struct {
	storage Storage
	nowFunc func() time.Time
	state   PaymentState
}

type persistedStart struct {
	StartedAt int64 `json:"startedAt"` // unix milliseconds
}

func NewPaymentFlow(storage Storage) *PaymentFlow {
	return &PaymentFlow{
		storage: storage,
		nowFunc: time.Now,
		state:   StateIdle,
	}
}

func (f *PaymentFlow) State() PaymentState {
	return f.state
}

// Start begins the countdown when the customer says they opened a UPI app or
// scanned the QR.
func (f *PaymentFlow) Start() error {
	if f.state != StateIdle {
		return ErrInvalidTransition
	}
	data, err := json.Marshal(persistedStart{StartedAt: f.nowFunc().UnixMilli()})
	if err != nil {
		return err
	}
	f.storage.Set(PaymentStartKey, data)
	f.state = StateWaiting
	return nil
}

// Resume restores the flow after a reload. With no persisted start the flow
// is idle; with one, it lands in waiting or, when the window already elapsed,
// straight in ask.
func (f *PaymentFlow) Resume() {
	raw, ok := f.storage.Get(PaymentStartKey)
	if !ok {
		f.state = StateIdle
		return
	}
	var start persistedStart
	if err := json.Unmarshal(raw, &start); err != nil || start.StartedAt <= 0 {
		f.storage.Delete(PaymentStartKey)
		f.state = StateIdle
		return
	}
	if f.elapsed(start) >= PaymentWindow {
		f.state = StateAsk
		return
	}
	f.state = StateWaiting
}

// Tick advances waiting to ask once the countdown reaches zero. The UI calls
// it once per second while waiting and must stop ticking on unmount.
func (f *PaymentFlow) Tick() {
	if f.state != StateWaiting {
		return
	}
	if f.Remaining() == 0 {
		f.state = StateAsk
	}
}

// Remaining reports how much of the countdown is left, zero outside waiting.
func (f *PaymentFlow) Remaining() time.Duration {
	if f.state != StateWaiting {
		return 0
	}
	raw, ok := f.storage.Get(PaymentStartKey)
	if !ok {
		return 0
	}
	var start persistedStart
	if err := json.Unmarshal(raw, &start); err != nil {
		return 0
	}
	left := PaymentWindow - f.elapsed(start)
	if left < 0 {
		return 0
	}
	return left
}

// ConfirmPaid is the only transition that unblocks order submission.
func (f *PaymentFlow) ConfirmPaid() error {
	if f.state != StateAsk {
		return ErrInvalidTransition
	}
	f.state = StatePaid
	return nil
}

func (f *PaymentFlow) DenyPaid() error {
	if f.state != StateAsk {
		return ErrInvalidTransition
	}
	f.state = StateNotPaid
	return nil
}

// Retry returns to idle from not_paid and clears the persisted countdown.
func (f *PaymentFlow) Retry() error {
	if f.state != StateNotPaid {
		return ErrInvalidTransition
	}
	f.storage.Delete(PaymentStartKey)
	f.state = StateIdle
	return nil
}

// CanSubmit gates the order request: payment must be confirmed, the address
// fields filled in and a UPI destination configured.
func (f *PaymentFlow) CanSubmit(name, mobile, address, upiID string) bool {
	return f.state == StatePaid &&
		name != "" && mobile != "" && address != "" && upiID != ""
}

func (f *PaymentFlow) elapsed(start persistedStart) time.Duration {
	return time.Duration(f.nowFunc().UnixMilli()-start.StartedAt) * time.Millisecond
}
