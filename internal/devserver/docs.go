// Package devserver provides the building blocks of the development
// launcher: LAN address discovery for the startup banner, a polling source
// watcher that detects edits, and a runner that keeps the application
// subprocess alive across restarts.
//
// The watcher deliberately polls instead of subscribing to filesystem
// events. A one second scan of a small source tree is cheap, needs no
// platform-specific machinery, and cannot miss events during bursts of
// writes.
package devserver
