// Package ledger provides the action store interface and in-memory
// implementation. The ledger assigns dense, monotonically increasing action
// ids starting at 0 and never reuses an id. It holds data only; all
// authorization and quorum rules live in the wallet.
package ledger
