package gecos

import "strings"

// GecosString renders g into the flat comma-separated form used in the
// passwd database: the four fixed slots followed by the Other items. Unset
// slots render as empty strings, so the result always contains at least
// four commas. Every value is already validated, so serialization cannot
// fail.
func (g Gecos) GecosString() string {
	var b strings.Builder
	b.WriteString(fieldText(g.FullName))
	b.WriteByte(',')
	b.WriteString(fieldText(g.Room))
	b.WriteByte(',')
	b.WriteString(fieldText(g.WorkPhone))
	b.WriteByte(',')
	b.WriteString(fieldText(g.HomePhone))
	b.WriteByte(',')
	for i := range g.Other {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(g.Other[i].str)
	}
	return b.String()
}

func fieldText(f *SanitizedString) string {
	if f == nil {
		return ""
	}
	return f.str
}
