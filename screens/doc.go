// Package screens contains the concrete views the router switches between.
//
// Allowed here:
// - screen implementations that satisfy core.Screen (registration form, welcome, login)
// - screen-specific presentation and interaction wiring
//
// Not allowed here:
// - app-wide routing tables and key registry ownership
// - low-level widget/layout primitives
package screens
