package tasks

import "caseshop/internal/service"

// FilterAll matches any status or category.
const FilterAll = "all"

// Stats counts tasks by status.
type Stats struct {
	Total      int
	Completed  int
	Pending    int
	InProgress int
}

// Stats summarizes the cache.
func (c *Collection) Stats() Stats {
	return Summarize(c.Tasks())
}

// Filter returns cached tasks matching status and category. Empty or "all"
// matches everything.
func (c *Collection) Filter(status, category string) []service.Task {
	return FilterTasks(c.Tasks(), status, category)
}

// Summarize counts list by status.
func Summarize(list []service.Task) Stats {
	s := Stats{Total: len(list)}
	for _, t := range list {
		switch t.Status {
		case service.StatusCompleted:
			s.Completed++
		case service.StatusPending:
			s.Pending++
		case service.StatusInProgress:
			s.InProgress++
		}
	}
	return s
}

// FilterTasks returns the tasks of list matching status and category.
func FilterTasks(list []service.Task, status, category string) []service.Task {
	var out []service.Task
	for _, t := range list {
		if Match(t, status, category) {
			out = append(out, t)
		}
	}
	return out
}

// Match reports whether t passes the status and category filters.
func Match(t service.Task, status, category string) bool {
	return matches(status, t.Status) && matches(category, t.Category)
}

func matches(want, got string) bool {
	return want == "" || want == FilterAll || want == got
}
