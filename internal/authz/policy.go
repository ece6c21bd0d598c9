// Package authz centralizes the role/amount access policy that the
// operations endpoints share.
package authz

const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

const (
	userLimit  = 2000
	adminLimit = 5000
)

// CanAccess reports whether a role may act on an operation of the given
// amount. Unknown roles are treated as plain users.
func CanAccess(role string, amount float64) bool {
	switch role {
	case RoleSuperadmin:
		return true
	case RoleAdmin:
		return amount <= adminLimit
	default:
		return amount <= userLimit
	}
}

// AmountWindow is the half-open amount band a role's operation list shows.
// Each role sees its own band only, so the three lists partition the data.
type AmountWindow struct {
	Min          float64
	MinExclusive bool
	Max          float64
	Unbounded    bool
}

func WindowFor(role string) AmountWindow {
	switch role {
	case RoleSuperadmin:
		return AmountWindow{Min: adminLimit, MinExclusive: true, Unbounded: true}
	case RoleAdmin:
		return AmountWindow{Min: userLimit, MinExclusive: true, Max: adminLimit}
	default:
		return AmountWindow{Min: 0, Max: userLimit}
	}
}

// Contains is the in-memory equivalent of the query filter WindowFor feeds.
func (w AmountWindow) Contains(amount float64) bool {
	if w.MinExclusive {
		if amount <= w.Min {
			return false
		}
	} else if amount < w.Min {
		return false
	}
	if w.Unbounded {
		return true
	}
	return amount <= w.Max
}
