// Package progress tracks which lessons a learner has completed during the
// current run and the knowledge-check score each one earned. Nothing is
// persisted; a new Tracker starts empty.
package progress

import (
	"math"
	"sync"
)

// Status is the completion state of a module.
type Status int

const (
	NotStarted Status = iota
	InProgress
	Complete
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Complete:
		return "complete"
	default:
		return "not started"
	}
}

// Reader is read-only access to learner progress.
type Reader interface {
	IsCompleted(lessonID string) bool
	Score(lessonID string) (int, bool)
	CompletionPercent(allLessonIDs []string) int
	IsModuleComplete(moduleLessonIDs []string) bool
	ModuleStatus(moduleLessonIDs []string) Status
	CompletedCount() int
}

// Tracker records completed lessons and their latest quiz scores. A lesson
// is completed exactly when it has a score.
type Tracker struct {
	mu     sync.RWMutex
	scores map[string]int
}

var _ Reader = (*Tracker)(nil)

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{scores: make(map[string]int)}
}

// RecordQuizResult marks lessonID completed with score correct answers.
// Recording the same lesson again overwrites the earlier score.
func (t *Tracker) RecordQuizResult(lessonID string, score int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.scores[lessonID] = score
}

// IsCompleted reports whether lessonID has been completed.
func (t *Tracker) IsCompleted(lessonID string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.scores[lessonID]
	return ok
}

// Score returns the latest score for lessonID.
func (t *Tracker) Score(lessonID string) (int, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	s, ok := t.scores[lessonID]
	return s, ok
}

// CompletedCount returns the number of completed lessons.
func (t *Tracker) CompletedCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.scores)
}

// CompletedIDs returns the completed lesson ids in no particular order.
func (t *Tracker) CompletedIDs() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ids := make([]string, 0, len(t.scores))
	for id := range t.scores {
		ids = append(ids, id)
	}
	return ids
}

// CompletionPercent returns the rounded share of allLessonIDs that are
// completed. Recorded lessons outside the list do not count, and duplicate
// ids in the list count once. An empty list is 0%.
func (t *Tracker) CompletionPercent(allLessonIDs []string) int {
	catalog := make(map[string]struct{}, len(allLessonIDs))
	for _, id := range allLessonIDs {
		catalog[id] = struct{}{}
	}
	if len(catalog) == 0 {
		return 0
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	done := 0
	for id := range catalog {
		if _, ok := t.scores[id]; ok {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(catalog)) * 100))
}

// IsModuleComplete reports whether every lesson of a module is completed.
// A module without lessons is never complete.
func (t *Tracker) IsModuleComplete(moduleLessonIDs []string) bool {
	return t.ModuleStatus(moduleLessonIDs) == Complete
}

// ModuleStatus classifies a module by how many of its lessons are done.
func (t *Tracker) ModuleStatus(moduleLessonIDs []string) Status {
	if len(moduleLessonIDs) == 0 {
		return NotStarted
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	done := 0
	for _, id := range moduleLessonIDs {
		if _, ok := t.scores[id]; ok {
			done++
		}
	}
	switch done {
	case 0:
		return NotStarted
	case len(moduleLessonIDs):
		return Complete
	default:
		return InProgress
	}
}

// TotalScore sums the scores of the given lessons.
func (t *Tracker) TotalScore(lessonIDs []string) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	total := 0
	for _, id := range lessonIDs {
		total += t.scores[id]
	}
	return total
}
