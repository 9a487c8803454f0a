package gecos

// Gecos is the structured form of a GECOS field.
//
// The four fixed slots are nil when not set. Other holds any additional
// comma-separated items in order; implementations differ in how many extra
// items they emit, so compatibility with a given consumer is the caller's
// responsibility.
type Gecos struct {
	FullName  *SanitizedString
	Room      *SanitizedString
	WorkPhone *SanitizedString
	HomePhone *SanitizedString
	Other     []SanitizedString
}

// Equal reports whether g and o hold the same field values. A nil fixed
// slot is only equal to another nil slot.
func (g Gecos) Equal(o Gecos) bool {
	if !fieldEqual(g.FullName, o.FullName) ||
		!fieldEqual(g.Room, o.Room) ||
		!fieldEqual(g.WorkPhone, o.WorkPhone) ||
		!fieldEqual(g.HomePhone, o.HomePhone) {
		return false
	}
	if len(g.Other) != len(o.Other) {
		return false
	}
	for i := range g.Other {
		if g.Other[i] != o.Other[i] {
			return false
		}
	}
	return true
}

func fieldEqual(a, b *SanitizedString) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
