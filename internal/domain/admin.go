package domain

// AdminStatus is the three-way result of the admin check. Unknown means
// the handle is not ready or the check failed; only a resolved AdminNo
// may be treated as "confirmed visitor".
type AdminStatus int

const (
	AdminUnknown AdminStatus = iota
	AdminYes
	AdminNo
)

func (s AdminStatus) String() string {
	switch s {
	case AdminYes:
		return "admin"
	case AdminNo:
		return "visitor"
	}
	return "unknown"
}
