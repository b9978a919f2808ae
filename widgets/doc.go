// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (boxes, stacks, button rows, centring)
//
// Not allowed here:
// - key handling, app state transitions, scope logic, or routing
package widgets
