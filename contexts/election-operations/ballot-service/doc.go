// Package ballotservice guards the act of voting: a full ballot is
// validated against the active election's positions and official
// candidates, then persisted all-or-nothing alongside the voter's
// has-voted flag. A unique index on (voter_id, position_id) backstops
// concurrent double submissions.
package ballotservice
