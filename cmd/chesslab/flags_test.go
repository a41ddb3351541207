package main

import (
	"testing"

	"github.com/lgbarn/chesslab-go/internal/config"
	"github.com/lgbarn/chesslab-go/internal/testutil"
)

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyFlags_OnlySetFlagsOverride(t *testing.T) {
	defer saveRestoreInt(depth, 5)()
	defer saveRestoreInt(workers, 3)()
	defer saveRestoreBool(flipBoard, true)()

	cfg := config.NewConfig()
	cfg.Search.Depth = 1
	cfg.Search.Workers = 2

	applyFlags(cfg, map[string]bool{"depth": true})

	testutil.AssertEqual(t, cfg.Search.Depth, 5, "depth given on the command line")
	testutil.AssertEqual(t, cfg.Search.Workers, 2, "workers from the config file")
	testutil.AssertFalse(t, cfg.Display.Flipped, "flip not given")
}

func TestApplyInputFlags(t *testing.T) {
	defer saveRestoreString(recordFile, "game.txt")()
	defer saveRestoreString(startFEN, "8/8/8/8/8/8/8/K6k w - - 0 1")()
	defer saveRestoreInt(showPly, -1)()
	defer saveRestoreBool(checkOnly, true)()

	cfg := config.NewConfig()
	applyInputFlags(cfg, map[string]bool{"f": true, "fen": true, "ply": true, "check": true})

	testutil.AssertEqual(t, cfg.RecordFile, "game.txt")
	testutil.AssertEqual(t, cfg.StartFEN, "8/8/8/8/8/8/8/K6k w - - 0 1")
	testutil.AssertEqual(t, cfg.Ply, -1)
	testutil.AssertTrue(t, cfg.CheckOnly, "CheckOnly")
}

func TestApplySearchFlags(t *testing.T) {
	defer saveRestoreInt(depth, 3)()
	defer saveRestoreInt(workers, 4)()
	defer saveRestoreBool(suggest, true)()
	defer saveRestoreInt(top, 5)()
	defer saveRestoreInt(cache, 100)()

	cfg := config.NewConfig()
	applySearchFlags(cfg, map[string]bool{"depth": true, "workers": true, "suggest": true, "top": true, "cache": true})

	want := &config.SearchConfig{Depth: 3, Workers: 4, Suggest: true, Top: 5, CacheSize: 100}
	testutil.AssertEqual(t, cfg.Search, want)
}

func TestApplyDisplayFlags(t *testing.T) {
	tests := []struct {
		name  string
		flag  string
		ptr   *bool
		check func(*config.DisplayConfig) bool
	}{
		{"flip", "flip", flipBoard, func(d *config.DisplayConfig) bool { return d.Flipped }},
		{"noboard", "noboard", noBoard, func(d *config.DisplayConfig) bool { return !d.ShowBoard }},
		{"nomoves", "nomoves", noMoves, func(d *config.DisplayConfig) bool { return !d.ShowMoves }},
		{"showfen", "showfen", showFEN, func(d *config.DisplayConfig) bool { return d.ShowFEN }},
		{"json", "json", jsonOutput, func(d *config.DisplayConfig) bool { return d.JSON }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreBool(tt.ptr, true)()
			cfg := config.NewConfig()
			applyDisplayFlags(cfg, map[string]bool{tt.flag: true})
			testutil.AssertTrue(t, tt.check(cfg.Display), "-%s applied", tt.flag)
		})
	}

	t.Run("line length", func(t *testing.T) {
		defer saveRestoreInt(lineLength, 40)()
		cfg := config.NewConfig()
		applyDisplayFlags(cfg, map[string]bool{"w": true})
		testutil.AssertEqual(t, cfg.Display.MaxLineLength, 40)
	})
}

func TestApplyFlags_Verbosity(t *testing.T) {
	tests := []struct {
		name    string
		quiet   bool
		verbose bool
		want    int
	}{
		{"default", false, false, 1},
		{"quiet", true, false, 0},
		{"verbose", false, true, 2},
		{"quiet wins", true, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreBool(quiet, tt.quiet)()
			defer saveRestoreBool(verbose, tt.verbose)()
			cfg := config.NewConfig()
			applyFlags(cfg, map[string]bool{})
			testutil.AssertEqual(t, cfg.Verbosity, tt.want)
		})
	}
}

func TestSplitMoves(t *testing.T) {
	tests := []struct {
		list string
		want []string
	}{
		{"", []string{}},
		{"e2e4", []string{"e2e4"}},
		{"e2e4 e7e5", []string{"e2e4", "e7e5"}},
		{"e4, e5,Nf3", []string{"e4", "e5", "Nf3"}},
		{"  e4\tc5  ", []string{"e4", "c5"}},
	}

	for _, tt := range tests {
		got := splitMoves(tt.list)
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		testutil.AssertEqual(t, got, tt.want, "splitMoves(%q)", tt.list)
	}
}
