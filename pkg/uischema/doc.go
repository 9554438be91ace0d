// Package uischema loads YAML or JSON documents that configure how the
// signup form is presented: field labels, placeholders and help text, the
// form title, the reset delay and the banner theme. The validation rules are
// fixed and cannot be changed from a document.
package uischema
