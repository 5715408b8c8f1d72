// Package rules holds the 5e arithmetic every sheet derivation is built on:
// ability modifiers, proficiency bonus, caster tiers and their slot tables,
// resource capacities, and the dot-toggle rule shared by every tracker.
//
// Everything here is pure and allocation-light; callers recompute on every
// state change instead of caching.
package rules
