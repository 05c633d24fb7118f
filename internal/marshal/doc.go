// Package marshal converts between workspace pages and the portal's flat
// entity records, one function pair per entity type.
//
// The read path (XFromPage) is total: absent properties are replaced with
// documented defaults, so callers always receive a complete record. The
// write path (XProperties) is partial: zero-valued optional fields are
// omitted from the property bag, so updates never clobber workspace
// properties the record does not mention.
//
// Both directions are pure functions of their input; no I/O happens here.
package marshal
