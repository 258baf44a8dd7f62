// Package wallet implements the quorum authorization state machine. A
// fixed owner roster jointly controls escrowed funds and outgoing calls:
// an owner proposes an action, owners confirm or revoke, and once the
// confirmation count reaches the wallet threshold the action executes
// exactly once through the injected outbound sink.
//
// The executed flag is set before the outbound call is made. The sink is
// untrusted and may reenter any public operation before returning; that
// ordering is the sole guard against reentrant double execution. A failed
// outbound call resets the flag, so the action can be retried.
package wallet
