package wallet

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"quorumwallet/internal/event"
	"quorumwallet/internal/identity"
	"quorumwallet/internal/ledger"
	"quorumwallet/internal/metrics"
	"quorumwallet/internal/quorum"
	"quorumwallet/internal/sink"
)

// Config is the construction-time wallet configuration. It is immutable
// after construction: there is no owner add/remove/replace and no
// threshold change.
type Config struct {
	Owners    []identity.Address
	Threshold int
}

// Validate enforces the configuration invariant:
// 1 <= threshold <= |owners|, owners non-empty with no duplicates.
func (c Config) Validate() error {
	if len(c.Owners) == 0 {
		return errors.Wrap(ErrInvalidConfig, "no owners")
	}
	if c.Threshold < 1 {
		return errors.Wrapf(ErrInvalidConfig, "threshold %d is below 1", c.Threshold)
	}
	if c.Threshold > len(c.Owners) {
		return errors.Wrapf(ErrInvalidConfig,
			"threshold %d exceeds owner count %d", c.Threshold, len(c.Owners))
	}
	if _, err := identity.NewRoster(c.Owners); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	return nil
}

// Wallet is the quorum authorization state machine. All state changes go
// through the four public operations; each appears atomic to reentrant
// calls made by the outbound sink during execution.
type Wallet struct {
	mu        sync.Mutex
	roster    *identity.Roster
	threshold int
	store     ledger.Store
	events    *event.Log
	out       sink.Sink
	log       *zap.Logger
	balance   uint64
}

// New creates a wallet. The store holds the action ledger, events receives
// the audit trail, and out performs the one external side effect.
func New(cfg Config, store ledger.Store, events *event.Log, out sink.Sink, log *zap.Logger) (*Wallet, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	roster, err := identity.NewRoster(cfg.Owners)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidConfig, err.Error())
	}
	if store == nil {
		store = ledger.NewInMemoryStore()
	}
	if events == nil {
		events = event.NewLog()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Wallet{
		roster:    roster,
		threshold: cfg.Threshold,
		store:     store,
		events:    events,
		out:       out,
		log:       log,
	}, nil
}

// Propose creates a new action and records the proposer's confirmation in
// the same atomic step, so a proposed-but-unconfirmed action is never
// observable. The confirmation may already reach quorum (threshold 1), in
// which case execution is attempted before returning.
func (w *Wallet) Propose(ctx context.Context, caller identity.Address, target string, value uint64, payload []byte) (uint64, error) {
	w.mu.Lock()
	if !w.roster.Contains(caller) {
		w.mu.Unlock()
		return 0, errors.Wrapf(ErrUnauthorized, "caller %s", caller)
	}

	a := w.store.Append(target, value, payload)
	a.ConfirmedBy[caller] = true
	if err := w.store.Put(a); err != nil {
		w.mu.Unlock()
		return 0, errors.Wrap(err, "record proposal")
	}
	w.events.Append(event.Proposed, a.ID, "")
	w.events.Append(event.Confirmed, a.ID, caller)
	w.mu.Unlock()

	metrics.Proposals.Inc()
	metrics.Confirmations.Inc()
	w.log.Info("action proposed",
		zap.Uint64("action_id", a.ID),
		zap.String("caller", caller.String()),
		zap.String("target", target),
		zap.Uint64("value", value),
	)

	w.tryExecute(ctx, a.ID)
	return a.ID, nil
}

// Confirm records the caller's confirmation and then always attempts
// execution, so the confirmation that reaches quorum triggers the external
// call in the same operation.
func (w *Wallet) Confirm(ctx context.Context, caller identity.Address, id uint64) error {
	w.mu.Lock()
	if !w.roster.Contains(caller) {
		w.mu.Unlock()
		return errors.Wrapf(ErrUnauthorized, "caller %s", caller)
	}
	a := w.store.Get(id)
	if a == nil {
		w.mu.Unlock()
		return errors.Wrapf(ErrUnknownAction, "id %d", id)
	}
	if a.Executed {
		w.mu.Unlock()
		return errors.Wrapf(ErrAlreadyExecuted, "id %d", id)
	}
	if a.Confirmed(caller) {
		w.mu.Unlock()
		return errors.Wrapf(ErrAlreadyConfirmed, "id %d caller %s", id, caller)
	}

	a.ConfirmedBy[caller] = true
	if err := w.store.Put(a); err != nil {
		w.mu.Unlock()
		return errors.Wrap(err, "record confirmation")
	}
	w.events.Append(event.Confirmed, id, caller)
	w.mu.Unlock()

	metrics.Confirmations.Inc()
	w.log.Info("action confirmed",
		zap.Uint64("action_id", id),
		zap.String("caller", caller.String()),
	)

	w.tryExecute(ctx, id)
	return nil
}

// Revoke removes the caller's confirmation from a not-yet-executed action.
func (w *Wallet) Revoke(caller identity.Address, id uint64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	a := w.store.Get(id)
	if a == nil {
		return errors.Wrapf(ErrUnknownAction, "id %d", id)
	}
	if a.Executed {
		return errors.Wrapf(ErrAlreadyExecuted, "id %d", id)
	}
	if !w.roster.Contains(caller) {
		return errors.Wrapf(ErrUnauthorized, "caller %s", caller)
	}
	if !a.Confirmed(caller) {
		return errors.Wrapf(ErrNotConfirmed, "id %d caller %s", id, caller)
	}

	delete(a.ConfirmedBy, caller)
	if err := w.store.Put(a); err != nil {
		return errors.Wrap(err, "record revocation")
	}
	w.events.Append(event.Revoked, id, caller)

	metrics.Revocations.Inc()
	w.log.Info("confirmation revoked",
		zap.Uint64("action_id", id),
		zap.String("caller", caller.String()),
	)
	return nil
}

// Execute attempts to execute an action. It is callable by anyone: quorum
// is the authorization gate, not caller identity. Below quorum it is a
// successful no-op, so speculative calls are valid.
func (w *Wallet) Execute(ctx context.Context, id uint64) error {
	w.mu.Lock()
	a := w.store.Get(id)
	if a == nil {
		w.mu.Unlock()
		return errors.Wrapf(ErrUnknownAction, "id %d", id)
	}
	if a.Executed {
		w.mu.Unlock()
		return errors.Wrapf(ErrAlreadyExecuted, "id %d", id)
	}
	w.mu.Unlock()

	w.tryExecute(ctx, id)
	return nil
}

// tryExecute performs the quorum check and, when met, the external call.
// The executed flag is set before calling out (checks-effects-interactions
// ordering); a reentrant call arriving during the external call therefore
// observes executed=true. On call failure the flag is reset so a later
// attempt may retry, and the failure is reported only through the
// ExecutionFailed event, never as an operation error.
func (w *Wallet) tryExecute(ctx context.Context, id uint64) {
	w.mu.Lock()
	a := w.store.Get(id)
	if a == nil || a.Executed {
		w.mu.Unlock()
		return
	}
	tally := quorum.Evaluate(w.roster, a.ConfirmedBy, w.threshold)
	if !tally.Met {
		w.mu.Unlock()
		return
	}

	if w.balance < a.Value {
		// The transfer cannot be funded. Counts as a failed external call:
		// the action stays retryable.
		w.events.Append(event.ExecutionFailed, id, "")
		w.mu.Unlock()
		metrics.Executions.WithLabelValues("failure").Inc()
		w.log.Warn("execution failed: insufficient balance",
			zap.Uint64("action_id", id),
			zap.Uint64("value", a.Value),
		)
		return
	}

	// Mark executed and debit before the external call. The sink may
	// reenter any public operation before returning.
	a.Executed = true
	if err := w.store.Put(a); err != nil {
		w.mu.Unlock()
		w.log.Error("mark executed", zap.Uint64("action_id", id), zap.Error(err))
		return
	}
	w.balance -= a.Value
	w.mu.Unlock()

	callErr := w.out.Call(ctx, a.Target, a.Value, a.Payload)

	w.mu.Lock()
	if callErr != nil {
		w.balance += a.Value
		cur := w.store.Get(id)
		if cur != nil {
			cur.Executed = false
			if err := w.store.Put(cur); err != nil {
				w.log.Error("reset executed", zap.Uint64("action_id", id), zap.Error(err))
			}
		}
		w.events.Append(event.ExecutionFailed, id, "")
		w.mu.Unlock()
		metrics.Executions.WithLabelValues("failure").Inc()
		w.log.Warn("execution failed",
			zap.Uint64("action_id", id),
			zap.String("target", a.Target),
			zap.Error(callErr),
		)
		return
	}
	w.events.Append(event.Executed, id, "")
	w.mu.Unlock()

	metrics.Executions.WithLabelValues("success").Inc()
	w.log.Info("action executed",
		zap.Uint64("action_id", id),
		zap.String("target", a.Target),
		zap.Uint64("value", a.Value),
	)
}

// IsConfirmed reports whether the action's confirmations meet the
// threshold.
func (w *Wallet) IsConfirmed(id uint64) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	a := w.store.Get(id)
	if a == nil {
		return false, errors.Wrapf(ErrUnknownAction, "id %d", id)
	}
	return quorum.Evaluate(w.roster, a.ConfirmedBy, w.threshold).Met, nil
}

// Deposit accepts value into the wallet with no other state change. Anyone
// may deposit. Returns the new balance.
func (w *Wallet) Deposit(amount uint64) uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.balance += amount
	metrics.Deposits.Inc()
	return w.balance
}

// Balance returns the escrowed balance.
func (w *Wallet) Balance() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.balance
}

// Action returns a copy of the action with the given id.
func (w *Wallet) Action(id uint64) (*ledger.Action, error) {
	a := w.store.Get(id)
	if a == nil {
		return nil, errors.Wrapf(ErrUnknownAction, "id %d", id)
	}
	return a, nil
}

// Actions returns copies of all actions in id order.
func (w *Wallet) Actions() []*ledger.Action {
	return w.store.List()
}

// NextActionID returns the id the next proposal will be assigned.
func (w *Wallet) NextActionID() uint64 {
	return w.store.NextID()
}

// Owners returns the owner roster in construction order.
func (w *Wallet) Owners() []identity.Address {
	return w.roster.Ordered()
}

// Threshold returns the confirmation threshold.
func (w *Wallet) Threshold() int {
	return w.threshold
}

// Events returns the wallet's event log.
func (w *Wallet) Events() *event.Log {
	return w.events
}
