package identity

import (
	"strings"

	"github.com/pkg/errors"
)

// Address is an opaque principal identifier. Membership is tested by exact
// match; the wallet attaches no meaning to its contents beyond that.
type Address string

// Validate checks that the address is usable as an identifier.
func (a Address) Validate() error {
	if a == "" {
		return errors.New("address cannot be empty")
	}
	if strings.ContainsAny(string(a), ", \t\n") {
		return errors.Errorf("address %q contains reserved characters", a)
	}
	return nil
}

func (a Address) String() string { return string(a) }

// Roster is the fixed, ordered set of wallet owners.
type Roster struct {
	ordered []Address
	index   map[Address]int
}

// NewRoster builds a roster from owners in construction order.
// The order is canonical: quorum evaluation visits owners in this order.
func NewRoster(owners []Address) (*Roster, error) {
	if len(owners) == 0 {
		return nil, errors.New("no owners")
	}

	r := &Roster{
		ordered: make([]Address, 0, len(owners)),
		index:   make(map[Address]int, len(owners)),
	}
	for i, o := range owners {
		if err := o.Validate(); err != nil {
			return nil, errors.Wrapf(err, "owner %d", i)
		}
		if _, dup := r.index[o]; dup {
			return nil, errors.Errorf("duplicate owner %s", o)
		}
		r.index[o] = i
		r.ordered = append(r.ordered, o)
	}
	return r, nil
}

// Contains reports whether addr is an owner.
func (r *Roster) Contains(addr Address) bool {
	_, ok := r.index[addr]
	return ok
}

// Len returns the number of owners.
func (r *Roster) Len() int { return len(r.ordered) }

// Ordered returns the owners in construction order. The returned slice is a
// copy; callers cannot mutate the roster through it.
func (r *Roster) Ordered() []Address {
	out := make([]Address, len(r.ordered))
	copy(out, r.ordered)
	return out
}
