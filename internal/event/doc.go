// Package event records the wallet's observable events for external
// indexers and auditors. The log is append-only; every event carries a
// strictly increasing sequence number so a consumer can resume from the
// last one it saw.
package event
