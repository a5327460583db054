// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tiles is the offline cache for map imagery: a caching proxy over
the raster tile origin.

# Strategy

Cache-or-network, nothing fancier:

	body, ct, err := cache.Get(ctx, z, x, y)

A cached tile is served as-is; a miss fetches from the configured URL
template and caches the result opportunistically. There is deliberately no
eviction, no size bound and no staleness check — tiles live until the
cache file is deleted.

# Storage

One sqlite table keyed by (z, x, y) holding the tile blob and content
type. Open creates the database and schema; CreateSchema is safe to call
repeatedly.
*/
package tiles
