// Package clipboard gives the editor one copy/paste contract over the
// platform clipboards (X11 selection, Cocoa pasteboard, Windows clipboard)
// and a session-local fallback.
//
// A Facade probes the platform backend once at startup. If that backend
// later fails or stalls, the facade switches to the session clipboard for
// the rest of the process and never goes back. Callers never see clipboard
// errors; they only see reduced scope after a switch.
package clipboard
