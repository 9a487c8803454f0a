// Package gecos converts the GECOS field of passwd entries between its
// flat comma-separated form and a structured record.
//
// The GECOS field is the fifth colon-separated field of a passwd line and
// conventionally holds the user's full name, room number, work phone and
// home phone, followed by any number of extra items:
//
//	full_name,room,work_phone,home_phone,other...
//
// Field values may not contain ',', ':', '=', '\', '"' or newline, the
// characters that would corrupt either the comma layout or the passwd
// line around it. This matches the set chfn(1) rejects. SanitizedString
// enforces the rule at construction, so a parsed or hand-built Gecos
// always serializes to a well-formed field.
//
// This package only converts the field itself; reading and writing the
// passwd database is left to the caller.
package gecos
