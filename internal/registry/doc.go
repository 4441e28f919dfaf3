// Package registry provides the central glue binding each entity kind's
// static pieces together: its record schema, its property type registry,
// its constructor, its equality test, and its normalize-and-store policy.
//
// The registry is populated once at startup and then validated: every
// property path a schema binds must resolve through the kind's type
// registry chain, and every nested record must name a registered child
// kind. A mismatch is a defect in static schema data, so validation
// panics instead of returning an error the caller could ignore.
package registry
