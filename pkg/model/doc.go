// Package model defines the signup form the rest of the module operates on:
// the five field identifiers, their descriptors (label, required-ness, trim
// behaviour, error slot) and the Values snapshot read from an input source.
// Values carries `validate` tags understood by pkg/validation so a whole form
// can be checked in one pass, while descriptors stay free of rule logic so
// renderers can lay fields out without importing the validator.
package model
