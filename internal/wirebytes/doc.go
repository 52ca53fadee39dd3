// Package wirebytes handles the two byte-level concerns every wire
// value in the FIX tag-value encoding shares: which raw string
// payloads are forbidden from appearing inside a STRING-typed field,
// and how to render a framed wire message for human inspection.
//
// Unlike HL7, which escapes its delimiter characters so they can
// appear inside a field value, FIX simply forbids its two delimiter
// bytes (SOH and '=') from occurring inside a STRING-like field and
// leaves everything else as raw ASCII. There is no escape/unescape
// pair here, only a containment check and a diagnostic formatter.
package wirebytes
