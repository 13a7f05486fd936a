package analyze

// Package analyze runs topic analyses in the background: it calls the search
// client (or resolves a playlist), aggregates the fetched videos and reports
// every job's final state exactly once through the update callback.
