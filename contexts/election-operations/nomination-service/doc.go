// Package nominationservice manages the nomination lifecycle and the
// official candidate records that promotions produce. Each voter holds at
// most one non-rejected nomination per election; a rejected nomination is
// resubmitted in place rather than duplicated.
package nominationservice
