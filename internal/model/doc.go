package model

// Package model defines domain data structures used across the app: fetched
// video records, aggregated suggestions, background search jobs and thumbnail
// fetch tasks. Structures are designed for direct binding in the UI and
// explicit state transitions.
