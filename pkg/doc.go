// Package pkg provides the core libraries for rackplan dark store layout
// optimization.
//
// # Overview
//
// Rackplan searches for high-scoring storage rack placements on a warehouse
// floor. The pkg directory is organized into four main areas:
//
//  1. Domain logic (geometry, catalog, placement search, scoring)
//  2. Serialization (plan documents, scenario files, exports)
//  3. Infrastructure (caching, storage, observability)
//  4. Orchestration (pipeline: optimize → render)
//
// # Architecture
//
// The typical data flow through rackplan:
//
//	Scenario (TOML) or sample layout
//	         ↓
//	    [catalog] package (rack archetypes, floor layout)
//	         ↓
//	    [placement] package (grid search + greedy refinement)
//	         ↓
//	    [scoring] package (composite placement score)
//	         ↓
//	    [render] / [export] / [report] (SVG, PNG, PDF, HTML, XLSX, text)
//
// # Quick Start
//
// Optimize a layout and render a floor plan:
//
//	import (
//	    "github.com/darkstore/rackplan/pkg/catalog"
//	    "github.com/darkstore/rackplan/pkg/placement"
//	    "github.com/darkstore/rackplan/pkg/render/floorplan"
//	)
//
//	// 1. Describe the floor and rack mix
//	scenario := catalog.SampleScenario()
//	layout := scenario.Layout()
//	racks, _ := scenario.BuildRacks(catalog.Default())
//
//	// 2. Search for a placement
//	opt := placement.New()
//	sol, _ := opt.Optimize(layout, racks, 50)
//
//	// 3. Render to SVG
//	svg := floorplan.RenderSVG(layout, sol.Placements,
//	    floorplan.WithScore(sol.Score))
//
// # Main Packages
//
// ## Domain Logic
//
// [geometry] - Axis-aligned rectangles, overlap and containment checks, and
// distance helpers. Everything downstream builds on these primitives.
//
// [catalog] - Rack archetypes (standard, high density, freezer, bulk),
// floor layouts with fixed constraint zones, and TOML scenario files.
//
// [placement] - The optimizer: grid candidate generation, validity checking
// (bounds, obstacles, overlaps, aisle clearance) and iterative greedy search.
//
// [scoring] - Composite scoring engine weighing space efficiency,
// accessibility, workflow and storage density.
//
// ## Serialization
//
// [plan] - Solution and placement types plus the JSON document format used
// for persistence, caching and the score/render commands.
//
// [export] - XLSX workbook export (rack inventory + metrics sheets).
//
// [report] - Plain-text optimization report with recommendations.
//
// ## Infrastructure
//
// [cache] - Solution caching behind a small Cache interface. FileCache for
// the CLI (filesystem, sharded SHA-256 keys), RedisCache for the server,
// NullCache for tests and --no-cache.
//
// [store] - Persistent solution storage behind SolutionStore. MemoryStore
// for tests and the default server, MongoStore for durable deployments.
//
// [observability] - Hook interfaces for pipeline, cache and server events.
// No-op by default; deployments install their own implementations.
//
// [errors] - Coded errors shared across packages; codes map to HTTP status
// and CLI exit behavior.
//
// ## Orchestration
//
// [pipeline] - The optimize → render pipeline used by CLI and server.
// Handles caching, format dispatch and timing stats so both entry points
// behave identically.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/placement/...  # Specific package
//
// [geometry]: https://pkg.go.dev/github.com/darkstore/rackplan/pkg/geometry
// [catalog]: https://pkg.go.dev/github.com/darkstore/rackplan/pkg/catalog
// [placement]: https://pkg.go.dev/github.com/darkstore/rackplan/pkg/placement
// [scoring]: https://pkg.go.dev/github.com/darkstore/rackplan/pkg/scoring
// [plan]: https://pkg.go.dev/github.com/darkstore/rackplan/pkg/plan
// [export]: https://pkg.go.dev/github.com/darkstore/rackplan/pkg/export
// [report]: https://pkg.go.dev/github.com/darkstore/rackplan/pkg/report
// [cache]: https://pkg.go.dev/github.com/darkstore/rackplan/pkg/cache
// [store]: https://pkg.go.dev/github.com/darkstore/rackplan/pkg/store
// [observability]: https://pkg.go.dev/github.com/darkstore/rackplan/pkg/observability
// [errors]: https://pkg.go.dev/github.com/darkstore/rackplan/pkg/errors
// [pipeline]: https://pkg.go.dev/github.com/darkstore/rackplan/pkg/pipeline
// [render]: https://pkg.go.dev/github.com/darkstore/rackplan/pkg/render
package pkg
