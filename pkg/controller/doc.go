// Package controller is the adapter between the pure form core and the
// outside world. A Controller reads live values from an InputSource, runs a
// fresh validation pass for every event and writes the resulting
// form.PresentationState to a PresentationSink.
//
// Events are serialised under a mutex, standing in for the single-threaded
// event loop of an interactive page. The success reset is an explicit timer
// handle owned by the controller: a later Submit or Clear cancels it before
// doing anything else, and a callback that loses the race with cancellation
// is discarded by generation.
package controller
