// Package statsview is an optional package that can be included at build
// time with the statsview build tag.
//
// It provides a HTTP server running locally offering runtime statistics.
// Underlying functionality is provided by "github.com/go-echarts/statsview"
//
// After launch, graphical statistics will be viewable at:
//
//	localhost:12600/debug/statsview
//
// And standard Go pprof statistics are available at:
//
//	localhost:12600/debug/pprof/
package statsview
