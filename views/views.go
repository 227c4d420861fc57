// Package views is the default set of page components for pubfolio. Replace
// any field of the ViewFuncs returned by Default to customise a page.
//
// The *_templ.go files are generated from the .templ sources with
// `templ generate`; edit the .templ files, not the generated code.
package views

import "github.com/eringen/pubfolio"

// Default returns the built-in page components.
func Default() pubfolio.ViewFuncs {
	return pubfolio.ViewFuncs{
		Home:        Home,
		Blog:        Blog,
		Post:        Post,
		NotFound:    NotFound,
		ServerError: ServerError,
	}
}
