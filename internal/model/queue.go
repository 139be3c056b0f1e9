package model

type QueueSource = string

const (
	SourceBase        QueueSource = "base"
	SourcePriority    QueueSource = "priority"
	SourcePartnerLike QueueSource = "partner_like"
)

// QueueItem exists only within one queue response.
type QueueItem struct {
	Movie  MovieMeta
	Source QueueSource
}

// QueueMeta is computed from the pool's total size and the exclusion set,
// never from the returned page.
type QueueMeta struct {
	PriorityQueueRemaining int
	BasePoolRemaining      int
	TotalRemaining         int
	HasMore                bool
}
