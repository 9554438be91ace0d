// Package form is the pure core of the signup validator. It turns validation
// reports into a PresentationState value (five error slots plus the form
// message banner) without touching any input source or presentation sink.
// The controller package feeds it fresh reports and writes the resulting
// state out.
package form
