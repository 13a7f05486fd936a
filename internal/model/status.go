package model

// JobStatus represents the status of a background search job
type JobStatus string

const (
	// JobStatusPending means the job is accepted but not started
	JobStatusPending JobStatus = "Pending"

	// JobStatusSearching means the upstream search is in progress
	JobStatusSearching JobStatus = "Searching"

	// JobStatusCompleted means suggestions were computed
	JobStatusCompleted JobStatus = "Completed"

	// JobStatusError means the search failed with an error
	JobStatusError JobStatus = "Error"
)

// String returns the string representation of JobStatus
func (js JobStatus) String() string {
	return string(js)
}

// IsActive returns true if the job has not reached a final state
func (js JobStatus) IsActive() bool {
	return js == JobStatusPending || js == JobStatusSearching
}

// IsFinished returns true if the job is completed or failed
func (js JobStatus) IsFinished() bool {
	return js == JobStatusCompleted || js == JobStatusError
}

// ThumbnailStatus represents the status of a single thumbnail download
type ThumbnailStatus string

const (
	ThumbnailStatusPending  ThumbnailStatus = "pending"
	ThumbnailStatusFetching ThumbnailStatus = "fetching"
	ThumbnailStatusComplete ThumbnailStatus = "completed"
	ThumbnailStatusError    ThumbnailStatus = "error"
	// Canceled is used when the results view was left before the fetch ran
	ThumbnailStatusCanceled ThumbnailStatus = "canceled"
)

// IsFinished returns true if no more updates will follow for the thumbnail
func (ts ThumbnailStatus) IsFinished() bool {
	return ts == ThumbnailStatusComplete || ts == ThumbnailStatusError || ts == ThumbnailStatusCanceled
}
