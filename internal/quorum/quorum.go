package quorum

import (
	"fmt"

	"quorumwallet/internal/identity"
)

// Tally represents the result of a quorum evaluation.
type Tally struct {
	Met           bool
	Confirmations int
	Required      int
	Owners        int
	// Counted holds the owners whose confirmations were counted, in roster
	// order. When the threshold is met this is exactly the first Required
	// confirming owners.
	Counted      []identity.Address
	ErrorMessage string
}

// Evaluate counts owners present in the confirmation set, scanning the
// roster in construction order and stopping as soon as required
// confirmations are found.
func Evaluate(roster *identity.Roster, confirmed map[identity.Address]bool, required int) Tally {
	owners := roster.Len()

	if required <= 0 {
		required = (owners / 2) + 1 // default: majority
	}

	if required > owners {
		return Tally{
			Required:     required,
			Owners:       owners,
			ErrorMessage: fmt.Sprintf("required=%d exceeds owner count=%d", required, owners),
		}
	}

	t := Tally{
		Required: required,
		Owners:   owners,
		Counted:  make([]identity.Address, 0, required),
	}
	for _, owner := range roster.Ordered() {
		if !confirmed[owner] {
			continue
		}
		t.Confirmations++
		t.Counted = append(t.Counted, owner)
		if t.Confirmations >= required {
			t.Met = true
			return t
		}
	}
	return t
}
