// Package orchestrator composes the signup form from its parts: the UI schema
// decorates field descriptors, the theme selection resolves the banner
// palette, the renderer registry draws the result and the form config tunes
// the controller that runs a session.
package orchestrator
