// Package sessionservice implements both authentication domains of the
// election backend inside the identity-access context.
//
// Voters hold an opaque random session token stored on their row: issuing a
// new one overwrites (and thereby invalidates) the previous session, and
// logout clears it. Admins hold a stateless signed token carrying only their
// user id, verified by signature plus a fixed maximum age; there is no
// server-side revocation. Both verification paths fail closed with a uniform
// "unauthenticated" outcome.
package sessionservice
