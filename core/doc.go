// Package core contains app-wide contracts and state orchestration.
//
// Allowed here:
// - the root model, route table and navigation between screens
// - message contracts shared by screens (navigation, status)
// - the key registry and default bindings
// - header, status bar and footer chrome
//
// Not allowed here:
// - concrete screen rendering or form behaviour
// - HTTP calls or any other I/O
package core
