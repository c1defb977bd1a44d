package replay

import (
	"errors"
	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/zhouchenh/lrucache/internal/logger"
	"github.com/zhouchenh/lrucache/pkg/lru"
)

// Result records the outcome of one operation.
type Result struct {
	Index     int
	Operation Operation
	// Value is the value read by a get (None on a miss) or written by a put.
	Value fn.Option[string]
	// Evicted is the key a put pushed out of the cache, if any.
	Evicted fn.Option[string]
	// Keys is the recency order after the operation, most recent first.
	Keys []string
}

// Hit reports whether a get found its key.
func (r Result) Hit() bool {
	return r.Operation.Op == KindGet && r.Value.IsSome()
}

func (r Result) String() string {
	s := r.Operation.String()
	if r.Operation.Op == KindGet {
		s += " -> " + fn.ElimOption(r.Value, func() string { return "miss" }, quote)
	}
	r.Evicted.WhenSome(func(key string) {
		s += ", evicted " + quote(key)
	})
	return s
}

// Runner applies operations to a string cache, one at a time.
type Runner struct {
	cache   *lru.Cache[string, string]
	evicted fn.Option[string]
	applied int
}

func NewRunner(capacity int) (*Runner, error) {
	r := new(Runner)
	cache, err := lru.NewWithEvict(capacity, r.onEvict)
	if err != nil {
		return nil, err
	}
	r.cache = cache
	logger.Debug().Int("capacity", capacity).Msg("replay: Cache created")
	return r, nil
}

func (r *Runner) onEvict(key, value string) {
	r.evicted = fn.Some(key)
	logger.Info().Str("key", key).Str("value", value).Msg("replay: Evicted least recently used entry")
}

// Apply runs a single operation. A get that does not meet its expectation
// returns the result together with an *UnexpectedResultError.
func (r *Runner) Apply(op Operation) (Result, error) {
	if r == nil || r.cache == nil {
		return Result{}, ErrNilRunner
	}
	if err := op.Validate(); err != nil {
		return Result{}, InvalidOperationError{Index: r.applied, Err: err}
	}
	logger.Trace().Int("index", r.applied).Str("operation", op.String()).Msg("replay: Applying operation")
	result := Result{Index: r.applied, Operation: op}
	r.applied++
	r.evicted = fn.None[string]()

	switch op.Op {
	case KindGet:
		result.Value = r.cache.Lookup(op.Key)
	case KindPut:
		r.cache.Put(op.Key, op.Value)
		result.Value = fn.Some(op.Value)
	}
	result.Evicted = r.evicted
	result.Keys = r.cache.Keys()

	logger.Debug().
		Int("index", result.Index).
		Str("op", string(op.Op)).
		Str("key", op.Key).
		Bool("found", result.Value.IsSome()).
		Int("size", r.cache.Len()).
		Strs("keys", result.Keys).
		Msg("replay: Applied operation")

	var err error
	op.Expect.WhenSome(func(e Expectation) {
		if !e.Matches(result.Value) {
			err = &UnexpectedResultError{Index: result.Index, Operation: op, Got: result.Value}
		}
	})
	return result, err
}

// Run applies operations in order and stops at the first error. The result
// of a get that failed its expectation is kept as the last element.
func (r *Runner) Run(operations []Operation) ([]Result, error) {
	results := make([]Result, 0, len(operations))
	for _, op := range operations {
		result, err := r.Apply(op)
		var unexpected *UnexpectedResultError
		if err == nil || errors.As(err, &unexpected) {
			results = append(results, result)
		}
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

func (r *Runner) Len() int {
	return r.cache.Len()
}

func (r *Runner) Cap() int {
	return r.cache.Cap()
}

func (r *Runner) Evictions() uint64 {
	return r.cache.Evictions()
}

func (r *Runner) Keys() []string {
	return r.cache.Keys()
}
