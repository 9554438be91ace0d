// Package validation holds the signup field rules. Each rule is a plain
// predicate registered as a custom tag on a go-playground validator, so the
// same logic answers single-value checks for live feedback and whole-form
// checks at submit time. Outcomes are returned as Result values; a failed
// rule is never reported as a Go error.
package validation
