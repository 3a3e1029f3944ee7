// Package client assembles and runs the terminal application: it
// bridges cross-process state changes onto the notification bus,
// records the app-open visit, and hands control to the UI.
package client
