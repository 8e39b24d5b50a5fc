// Package tuning provides static interval ratio catalogs for historical
// tuning systems, per-position enharmonic interval variants, and small
// frequency helpers built on top of the ratio tables.
//
// Every lookup is a total function over its enumeration: unknown or custom
// tuning systems fall back to the equal temperament table rather than
// failing. The package holds no mutable state; all functions are pure and
// safe for unsynchronized concurrent use.
package tuning
