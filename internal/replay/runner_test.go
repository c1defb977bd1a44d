package replay

import (
	"errors"
	"testing"

	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/stretchr/testify/require"
	"github.com/zhouchenh/lrucache/pkg/lru"
)

func TestNewRunnerRejectsInvalidCapacity(t *testing.T) {
	_, err := NewRunner(0)
	require.ErrorIs(t, err, lru.ErrInvalidCapacity)
}

func TestRunScenarios(t *testing.T) {
	cases := []struct {
		name      string
		capacity  int
		ops       []Operation
		wantKeys  []string
		wantEvict uint64
	}{
		{
			name:     "get promotes before eviction",
			capacity: 2,
			ops: []Operation{
				Put("1", "1"),
				Put("2", "2"),
				Get("1").Expecting(ExpectValue("1")),
				Put("3", "3"),
				Get("2").Expecting(ExpectMiss()),
				Get("3").Expecting(ExpectValue("3")),
				Get("1").Expecting(ExpectValue("1")),
			},
			wantKeys:  []string{"1", "3"},
			wantEvict: 1,
		},
		{
			name:     "capacity one",
			capacity: 1,
			ops: []Operation{
				Put("1", "1"),
				Put("2", "2"),
				Get("1").Expecting(ExpectMiss()),
				Get("2").Expecting(ExpectValue("2")),
			},
			wantKeys:  []string{"2"},
			wantEvict: 1,
		},
		{
			name:     "update in place",
			capacity: 2,
			ops: []Operation{
				Put("1", "1"),
				Put("1", "10"),
				Get("1").Expecting(ExpectValue("10")),
			},
			wantKeys: []string{"1"},
		},
		{
			name:     "miss on empty cache",
			capacity: 2,
			ops: []Operation{
				Get("5").Expecting(ExpectMiss()),
			},
			wantKeys: []string{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			runner, err := NewRunner(tc.capacity)
			require.NoError(t, err)

			results, err := runner.Run(tc.ops)
			require.NoError(t, err)
			require.Len(t, results, len(tc.ops))
			require.Equal(t, tc.wantKeys, runner.Keys())
			require.Equal(t, tc.wantEvict, runner.Evictions())
			require.Equal(t, len(tc.wantKeys), runner.Len())
		})
	}
}

func TestApplyRecordsEviction(t *testing.T) {
	runner, err := NewRunner(2)
	require.NoError(t, err)

	_, err = runner.Run([]Operation{Put("a", "1"), Put("b", "2")})
	require.NoError(t, err)

	result, err := runner.Apply(Put("c", "3"))
	require.NoError(t, err)
	require.Equal(t, 2, result.Index)
	require.Equal(t, "a", result.Evicted.UnwrapOr(""))
	require.Equal(t, []string{"c", "b"}, result.Keys)
	require.Equal(t, `put "c"="3", evicted "a"`, result.String())

	result, err = runner.Apply(Get("b"))
	require.NoError(t, err)
	require.True(t, result.Hit())
	require.True(t, result.Evicted.IsNone())
	require.Equal(t, `get "b" -> "2"`, result.String())
}

func TestRunStopsAtUnexpectedResult(t *testing.T) {
	runner, err := NewRunner(1)
	require.NoError(t, err)

	results, err := runner.Run([]Operation{
		Put("1", "1"),
		Put("2", "2"),
		Get("1").Expecting(ExpectValue("1")),
		Put("3", "3"),
	})

	var unexpected *UnexpectedResultError
	require.True(t, errors.As(err, &unexpected))
	require.Equal(t, 2, unexpected.Index)
	require.True(t, unexpected.Got.IsNone())
	require.Equal(t, `replay: Unexpected result at operation 2 (get "1"): expected "1", got miss`, err.Error())
	require.Len(t, results, 3)
	last := results[len(results)-1]
	require.Equal(t, 2, last.Index)
	require.False(t, last.Hit())
	require.Equal(t, `get "1" -> miss`, last.String())
	require.Equal(t, []string{"2"}, runner.Keys())
}

func TestApplyRejectsInvalidOperations(t *testing.T) {
	runner, err := NewRunner(2)
	require.NoError(t, err)

	cases := []struct {
		op   Operation
		want error
	}{
		{Operation{Op: "delete", Key: "a"}, ErrUnknownOperation},
		{Put("a", "1").Expecting(ExpectMiss()), ErrExpectOnPut},
	}
	for _, tc := range cases {
		_, err := runner.Apply(tc.op)
		require.ErrorIs(t, err, tc.want)
	}
	require.Zero(t, runner.Len())
}

func TestNilRunner(t *testing.T) {
	var runner *Runner
	_, err := runner.Apply(Get("a"))
	require.ErrorIs(t, err, ErrNilRunner)
}

func TestExpectationMatches(t *testing.T) {
	require.True(t, ExpectMiss().Matches(fn.None[string]()))
	require.False(t, ExpectMiss().Matches(fn.Some("x")))
	require.True(t, ExpectValue("x").Matches(fn.Some("x")))
	require.False(t, ExpectValue("x").Matches(fn.Some("y")))
	require.False(t, ExpectValue("").Matches(fn.None[string]()))
}

func TestEmptyKeyIsAValidKey(t *testing.T) {
	runner, err := NewRunner(2)
	require.NoError(t, err)

	results, err := runner.Run([]Operation{
		Put("", "empty"),
		Get("").Expecting(ExpectValue("empty")),
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, []string{""}, runner.Keys())
}

func TestRunDropsRejectedOperation(t *testing.T) {
	runner, err := NewRunner(2)
	require.NoError(t, err)

	results, err := runner.Run([]Operation{Put("a", "1"), {Op: "evict", Key: "a"}})
	require.ErrorIs(t, err, ErrUnknownOperation)
	require.Len(t, results, 1)
	require.Equal(t, 1, runner.Len())
}
