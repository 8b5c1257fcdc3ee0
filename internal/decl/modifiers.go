package decl

// Modifiers is the set of visibility tokens literally present on a
// declaration. It reflects raw token presence, not resolved accessibility.
type Modifiers uint8

const (
	ModPublic Modifiers = 1 << iota
	ModPrivate
	ModProtected
	ModInternal
	ModProtectedInternal
	ModPrivateProtected
)

var modifierNames = map[string]Modifiers{
	"public":             ModPublic,
	"private":            ModPrivate,
	"protected":          ModProtected,
	"internal":           ModInternal,
	"protected internal": ModProtectedInternal,
	"protected-internal": ModProtectedInternal,
	"private protected":  ModPrivateProtected,
	"private-protected":  ModPrivateProtected,
}

// ModifierFromString parses one wire modifier token.
func ModifierFromString(s string) (Modifiers, bool) {
	m, ok := modifierNames[s]
	return m, ok
}

func (m Modifiers) Has(flag Modifiers) bool {
	return m&flag != 0
}

// Any reports whether any modifier from the mask is present.
func (m Modifiers) Any(mask Modifiers) bool {
	return m&mask != 0
}
