// Package learner tracks per-word exposure so callers can decide when a
// reader has seen a word often and recently enough to no longer need a
// reading gloss. It is a policy component: nothing in the annotation
// engine depends on it, and callers wire it in as a gloss predicate.
package learner

import "sync"

const (
	// minMaxDistance is the forget horizon a word starts out with.
	minMaxDistance = 100
	// maxMaxDistance caps how far the horizon can grow.
	maxMaxDistance = 10000
)

type wordStats struct {
	// Position (in words processed) this word was last seen at.
	lastSeenAt int
	// How many times this word has been seen so far.
	timesSeen int
	// Maximum gap before help is needed again.
	maxDistance int
}

// Learner is a spaced-repetition-like exposure tracker. One instance
// covers one reading session; all methods are safe for concurrent use.
type Learner struct {
	mu             sync.Mutex
	stats          map[string]wordStats
	wordsProcessed int
	seenThreshold  int
}

// New returns a Learner that keeps glossing a word until it has been
// seen more than seenThreshold times.
func New(seenThreshold int) *Learner {
	return &Learner{
		stats:         make(map[string]wordStats),
		seenThreshold: seenThreshold,
	}
}

// Record notes one occurrence of word. Once a word has been seen more
// than the threshold, each occurrence inside its current forget horizon
// grows the horizon by min(gap, half the horizon), up to the cap.
func (l *Learner) Record(word string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if stats, ok := l.stats[word]; ok {
		distance := l.wordsProcessed - stats.lastSeenAt

		stats.lastSeenAt = l.wordsProcessed
		stats.timesSeen++
		if stats.timesSeen > l.seenThreshold {
			if distance < stats.maxDistance {
				stats.maxDistance += min(distance, stats.maxDistance/2)
			}
			if stats.maxDistance > maxMaxDistance {
				stats.maxDistance = maxMaxDistance
			}
		}
		l.stats[word] = stats
	} else {
		l.stats[word] = wordStats{
			lastSeenAt:  l.wordsProcessed,
			timesSeen:   1,
			maxDistance: minMaxDistance,
		}
	}
	l.wordsProcessed++
}

// NeedsHelp reports whether word still needs a gloss: it was never
// seen, has not yet crossed the seen threshold, or has gone unseen for
// longer than its forget horizon.
func (l *Learner) NeedsHelp(word string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	stats, ok := l.stats[word]
	if !ok {
		return true
	}
	distance := l.wordsProcessed - stats.lastSeenAt
	return stats.timesSeen <= l.seenThreshold || distance > stats.maxDistance
}

// Reset drops all exposure state, starting a fresh session.
func (l *Learner) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.stats = make(map[string]wordStats)
	l.wordsProcessed = 0
}
