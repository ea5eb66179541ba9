// Package describe resolves enum-like values to human-readable display text.
//
// Values that carry their own display text implement Describable. Values
// from packages you do not own can be given display text through a Registry
// (or the package-level default registry), which also supports a startup-time
// validation pass:
//
//	describe.Register(StatusActive, "active")
//	describe.Register(StatusClosed, "closed")
//	if err := describe.Validate(StatusActive, StatusClosed); err != nil {
//	    log.Fatal(err)
//	}
//
// Text is the single resolution entry point used by the endpoint and signing
// packages.
package describe
