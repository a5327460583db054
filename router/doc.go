// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table using Go 1.22+ method
patterns.

NewRouter wires the handlers over their dependencies:

	mux := router.NewRouter(router.Deps{
		Registry:   registry,
		Controller: controller,
		...
	})

All API routes are wrapped with request logging; the tile route is not,
since a map pan fetches dozens of tiles at once.
*/
package router
