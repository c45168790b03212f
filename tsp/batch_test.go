package tsp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourplan/costmatrix"
	"github.com/katalvlaran/tourplan/tsp"
	"github.com/katalvlaran/tourplan/waypoint"
)

func TestSolveAll_MatchesSequentialSolve(t *testing.T) {
	reqs := []tsp.Request{
		{Locations: circleLocations(5), Metric: costmatrix.MinimizeStraightLine},
		{Locations: circleLocations(12), Metric: costmatrix.MinimizeStraightLine},
		{Locations: circleLocations(14), Metric: costmatrix.MinimizeStraightLine, Mode: costmatrix.Walking},
		{Locations: circleLocations(8), Metric: costmatrix.MinimizeStraightLine},
	}
	opts := tsp.DefaultOptions()
	opts.Seed = seedDet
	opts.Generations = gensSmall
	opts.Parallelism = 2

	got, err := tsp.SolveAll(context.Background(), reqs, nil, opts)
	require.NoError(t, err)
	require.Len(t, got, len(reqs))

	for i, req := range reqs {
		o := opts
		o.Seed = tsp.RequestSeed(opts.Seed, i)
		want, err := tsp.Solve(context.Background(), req, nil, o)
		require.NoError(t, err)
		require.Equal(t, want.Order(), got[i].Order(), "request %d", i)
		require.Equal(t, want.Weight(), got[i].Weight(), "request %d", i)
	}
}

func TestSolveAll_FirstErrorWins(t *testing.T) {
	reqs := []tsp.Request{
		{Locations: circleLocations(4), Metric: costmatrix.MinimizeStraightLine},
		{Locations: []waypoint.Location{waypoint.FromLatLng(1, 1)}, Metric: costmatrix.MinimizeStraightLine},
	}
	res, err := tsp.SolveAll(context.Background(), reqs, nil, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrInsufficientInput)
	require.ErrorContains(t, err, "request 1")
	require.Nil(t, res)
}

func TestSolveAll_Empty(t *testing.T) {
	res, err := tsp.SolveAll(context.Background(), nil, nil, tsp.DefaultOptions())
	require.NoError(t, err)
	require.Empty(t, res)
}
