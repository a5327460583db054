// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package location wraps the device geolocation capability.

The device reports fixes and failures through the reporting boundary
(Report / ReportFailure); consumers pick one of three modes:

	coord, err := provider.RequestOnce(ctx)   // one-shot, resolves once
	sub := provider.Watch()                   // continuous, cancelable
	coord, ok := provider.Current()           // latched live coordinate

# Failure Reasons

One-shot requests surface PermissionDenied, PositionUnavailable, and
Timeout as distinct sentinels. Context expiry on RequestOnce is the
platform timeout and is reported as ErrTimeout. No retries happen here;
retrying is the caller's decision.

# Watch Lifecycle

Watch returns a Subscription whose channel emits at the provider's own
cadence. Cancel must be invoked exactly once on consumer teardown; Cancel
is internally idempotent, but a subscription nobody cancels keeps
consuming for the life of the provider.
*/
package location
