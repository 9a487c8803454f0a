package gecos

import "strings"

// ParseGecos converts a flat GECOS string back into its structured form.
//
// Segments are consumed positionally for FullName, Room, WorkPhone and
// HomePhone. A missing segment (input ran out) and an empty segment both
// leave the slot nil. All remaining segments land in Other, where empty
// segments are kept as empty elements; a trailing comma therefore yields a
// trailing empty Other item. Any segment containing a forbidden character
// aborts the whole parse with an *InvalidCharError.
func ParseGecos(input string) (Gecos, error) {
	// Keep empty fields, same as splitting the passwd line on ':'.
	parts := strings.Split(input, ",")

	var g Gecos
	var err error
	if g.FullName, parts, err = takeFixed(parts); err != nil {
		return Gecos{}, err
	}
	if g.Room, parts, err = takeFixed(parts); err != nil {
		return Gecos{}, err
	}
	if g.WorkPhone, parts, err = takeFixed(parts); err != nil {
		return Gecos{}, err
	}
	if g.HomePhone, parts, err = takeFixed(parts); err != nil {
		return Gecos{}, err
	}

	g.Other = make([]SanitizedString, 0, len(parts))
	for _, seg := range parts {
		v, err := NewSanitizedString(seg)
		if err != nil {
			return Gecos{}, err
		}
		g.Other = append(g.Other, v)
	}
	return g, nil
}

// takeFixed consumes one fixed-slot segment, mapping both a missing and an
// empty segment to an unset slot.
func takeFixed(parts []string) (*SanitizedString, []string, error) {
	if len(parts) == 0 {
		return nil, nil, nil
	}
	seg := parts[0]
	v, err := NewSanitizedString(seg)
	if err != nil {
		return nil, nil, err
	}
	if seg == "" {
		return nil, parts[1:], nil
	}
	return &v, parts[1:], nil
}
