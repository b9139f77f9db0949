// Package loader wires features into the Fiber application.
//
// A Feature bundles a service, its HTTP handler and route registration
// behind a single Register call. The start command creates all features,
// registers them with a Manager and calls LoadAll once the global
// middleware chain is in place.
package loader
