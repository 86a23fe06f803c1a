// Package electionservice owns the election record itself: its timeline,
// the position roster, phase resolution, result publication, turnout
// stats, reminders, and full election resets. Ballots and nominations
// live in their own services; this service only reads their tallies
// through ports.
package electionservice
