// Package responder implements the rule-based chat engine behind LIA, the
// Looply content assistant. Intents are matched by keyword scans over the
// utterance; responses come from static tables and templates.
package responder

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

const initialIntelligence = 5

// Responder holds the static reference data plus per-session state: a
// key-value memory and the intelligence level counter. One instance per
// session; the mutex makes a shared instance safe behind the HTTP server.
type Responder struct {
	name string

	mu           sync.Mutex
	rng          *rand.Rand
	memory       map[string]string
	intelligence int
}

type Option func(*Responder)

// WithRand replaces the random source, so tests can pin every random pick.
func WithRand(rng *rand.Rand) Option {
	return func(r *Responder) { r.rng = rng }
}

// WithName overrides the assistant's display name.
func WithName(name string) Option {
	return func(r *Responder) {
		if name != "" {
			r.name = name
		}
	}
}

func New(opts ...Option) *Responder {
	r := &Responder{
		name:         "LIA",
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		memory:       make(map[string]string),
		intelligence: initialIntelligence,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Responder) Name() string { return r.name }

// Learn stores value under key, overwriting any prior value.
func (r *Responder) Learn(key, value string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.memory[key] = value
	return fmt.Sprintf("✅ Learned %s. I'll remember this for our future conversations!", key)
}

// Recall returns the stored value for key, or a stock reply when unset.
// It never mutates memory.
func (r *Responder) Recall(key string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.memory[key]; ok {
		return v
	}
	return "🤔 I don't remember that yet. Want to teach me?"
}

// UpgradeIntelligence bumps the intelligence level. The level feeds nothing
// but the wording of the reply and the server's status metadata.
func (r *Responder) UpgradeIntelligence() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.intelligence++
	return fmt.Sprintf("🧠 Intelligence upgraded to level %d! Now I'm even better at helping with Looply content!", r.intelligence)
}

func (r *Responder) IntelligenceLevel() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.intelligence
}

// pick returns a uniformly random element. Callers must hold r.mu, since
// rand.Rand is not safe for concurrent use.
func (r *Responder) pick(list []string) string {
	return list[r.rng.Intn(len(list))]
}

// sample returns n distinct elements in random order. Callers must hold r.mu.
func (r *Responder) sample(list []string, n int) []string {
	out := make([]string, 0, n)
	for _, idx := range r.rng.Perm(len(list))[:n] {
		out = append(out, list[idx])
	}
	return out
}
