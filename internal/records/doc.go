// Package records maps upstream API payloads into the stable record shapes the
// screens render.
//
// Two variants are supported and they deliberately differ:
//   - characters: every record is normalized; missing fields get defaults and
//     malformed elements are defaulted rather than dropped.
//   - posts: records are decoded as-is with no normalization at all.
//
// All normalizers are pure and total. They never panic and never return an
// error for a well-formed JSON document; only the byte-level decoders can fail,
// and only when the body is not valid JSON.
package records
