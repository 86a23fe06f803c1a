// Package gateservice implements the shared-passcode access gate inside the
// access-control context.
//
// A gate stores only a bcrypt hash of its passcode plus a monotonically
// incremented version. Clients cache "unlocked" state keyed by version, so
// rotating a passcode invalidates stale cookies without a revocation list.
// A fresh deployment self-heals: the first query lazily creates the default
// gate, guarded by the unique name constraint so concurrent first requests
// collapse into one row.
package gateservice
