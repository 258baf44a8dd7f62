// Package sink defines the wallet's single outbound capability: delivering
// value and payload to an action's target. The sink is injected into the
// wallet and must be treated as untrusted; it may fail, and it may reenter
// any wallet operation before returning.
package sink
