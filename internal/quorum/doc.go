// Package quorum evaluates whether an action's confirmation set meets the
// wallet threshold. Owners are scanned in roster order and the scan
// short-circuits as soon as the running count reaches the threshold; the
// order never changes the boolean outcome, only evaluation cost.
package quorum
