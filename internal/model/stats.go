package model

// CompletionStats summarises a resource kind that can be completed.
type CompletionStats struct {
	Total          int64 `json:"total"`
	Completed      int64 `json:"completed"`
	CompletionRate int64 `json:"completionRate"` // whole percent, 0 when Total is 0
}

// CountStats summarises a resource kind without completion.
type CountStats struct {
	Total int64 `json:"total"`
}

// CategoryCount is one row of the todo category breakdown.
type CategoryCount struct {
	Category Category `json:"category"`
	Count    int64    `json:"count"`
}

// PriorityCount is one row of the todo priority breakdown.
type PriorityCount struct {
	Priority Priority `json:"priority"`
	Count    int64    `json:"count"`
}

// StatsReport is computed fresh on every request.
type StatsReport struct {
	Todos             CompletionStats `json:"todos"`
	Goals             CompletionStats `json:"goals"`
	Habits            CompletionStats `json:"habits"`
	Notes             CountStats      `json:"notes"`
	CategoryBreakdown []CategoryCount `json:"categoryBreakdown"`
	PriorityBreakdown []PriorityCount `json:"priorityBreakdown"`
}
