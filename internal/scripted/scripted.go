// Package scripted provides input providers that answer prompts without a human.
package scripted

import (
	"context"
	"errors"
	"fmt"
	rand "math/rand/v2"
	"sync"

	"github.com/lox/colorbet/internal/game"
)

// ErrExhausted is returned once a Queue has no answers left
var ErrExhausted = errors.New("scripted answers exhausted")

// Queue answers prompts from a fixed list, in order
type Queue struct {
	mu      sync.Mutex
	answers []int
	asked   []game.Prompt
}

// NewQueue creates a Queue that will give answers in order
func NewQueue(answers ...int) *Queue {
	return &Queue{answers: append([]int(nil), answers...)}
}

// PromptInt returns the next answer. Answers are not range checked; the
// driver re-prompts on anything outside the prompt's bounds.
func (q *Queue) PromptInt(ctx context.Context, p game.Prompt) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	q.asked = append(q.asked, p)
	if len(q.answers) == 0 {
		return 0, fmt.Errorf("%s prompt for player %d: %w", p.Kind, p.PlayerID, ErrExhausted)
	}
	v := q.answers[0]
	q.answers = q.answers[1:]
	return v, nil
}

// Remaining returns how many answers are left
func (q *Queue) Remaining() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.answers)
}

// Asked returns every prompt the queue has seen
func (q *Queue) Asked() []game.Prompt {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]game.Prompt(nil), q.asked...)
}

// Random answers uniformly within each prompt's bounds
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a Random provider. The rng is not safe for concurrent
// use, so each game needs its own provider.
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (r *Random) PromptInt(ctx context.Context, p game.Prompt) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if p.Max < p.Min {
		return p.Min, nil
	}
	return p.Min + r.rng.IntN(p.Max-p.Min+1), nil
}
