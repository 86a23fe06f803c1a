// Package notificationservice keeps the append-only notification feed.
// Every noteworthy event lands here as a row addressed either to one
// voter or to the admin inbox; readers page the newest items, track
// unread counts, and manage their inbox with read/dismiss/delete
// actions.
package notificationservice
