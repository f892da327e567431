package words

import (
	"math/rand/v2"
	"strings"

	"github.com/samber/lo"

	"github.com/vovakirdan/tui-scribble/internal/config"
)

// Queue is the ordered word sequence of one session.
type Queue struct {
	words []Word
	next  int
}

// Build filters master by difficulty, drops repeated words, shuffles the
// rest uniformly and keeps at most target of them. A nil rng uses a
// randomly seeded source.
func Build(d config.Difficulty, master []Word, target int, rng *rand.Rand) *Queue {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	filtered := lo.Filter(master, func(w Word, _ int) bool {
		return w.Is(d) && strings.TrimSpace(w.Text) != ""
	})
	unique := lo.UniqBy(filtered, func(w Word) string {
		return strings.ToLower(strings.TrimSpace(w.Text))
	})

	// Fisher–Yates
	rng.Shuffle(len(unique), func(i, j int) {
		unique[i], unique[j] = unique[j], unique[i]
	})

	if target < 0 {
		target = 0
	}
	if len(unique) > target {
		unique = unique[:target]
	}
	return &Queue{words: unique}
}

// Next returns the following word, or false when the queue is exhausted.
func (q *Queue) Next() (Word, bool) {
	if q == nil || q.next >= len(q.words) {
		return Word{}, false
	}
	w := q.words[q.next]
	q.next++
	return w, true
}

// Len returns the total number of words in the queue.
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.words)
}

// Remaining returns how many words Next has yet to return.
func (q *Queue) Remaining() int {
	if q == nil {
		return 0
	}
	return len(q.words) - q.next
}

// Words returns a copy of the full sequence.
func (q *Queue) Words() []Word {
	if q == nil {
		return nil
	}
	return append([]Word(nil), q.words...)
}
