package youtube

// Package youtube implements the search client on top of the YouTube Data
// API v3: an exact-phrase video search followed by a bulk details lookup for
// snippet and statistics. The API key is passed explicitly through Config.
