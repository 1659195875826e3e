// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a failure with t.Errorf() and allow the test
// to continue. The Demand*() functions use t.Fatalf() and stop the test
// immediately.
//
// Each function accepts an optional list of tags. The tags are prefixed to
// any failure message and are useful for identifying the iteration of a loop
// in which a failure occurred.
package test
