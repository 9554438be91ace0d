// Package template defines the template seam HTML renderers draw the signup
// form through.
package template
