package main

import (
	"slices"
	"testing"

	"github.com/alecthomas/kong"
)

func newParser(t *testing.T, app *App) *kong.Kong {
	t.Helper()
	opts := append(parserOptions(), kong.Exit(func(int) { t.Fatal("parser tried to exit") }))
	parser, err := kong.New(app, opts...)
	if err != nil {
		t.Fatalf("invalid command model: %v", err)
	}
	return parser
}

func TestCommandModelBuilds(t *testing.T) {
	var app App
	newParser(t, &app)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		selected string
		check    func(t *testing.T, app *App)
	}{
		{name: "no command opens the tui", args: nil, selected: "tui"},
		{name: "global store flag", args: []string{"--store", ":memory:", "init"}, selected: "init",
			check: func(t *testing.T, app *App) {
				if app.Store != ":memory:" {
					t.Errorf("Store = %q", app.Store)
				}
			}},
		{name: "compat names", args: []string{"compat", "An", "Binh"}, selected: "compat",
			check: func(t *testing.T, app *App) {
				if !slices.Equal(app.Compat.Names, []string{"An", "Binh"}) {
					t.Errorf("Names = %v", app.Compat.Names)
				}
			}},
		{name: "bare wheel spins food", args: []string{"wheel"}, selected: "spin",
			check: func(t *testing.T, app *App) {
				if app.Wheel.Spin.Category != "food" {
					t.Errorf("Category = %q, want food", app.Wheel.Spin.Category)
				}
			}},
		{name: "wheel with a category spins it", args: []string{"wheel", "date"}, selected: "spin",
			check: func(t *testing.T, app *App) {
				if app.Wheel.Spin.Category != "date" {
					t.Errorf("Category = %q, want date", app.Wheel.Spin.Category)
				}
			}},
		{name: "wheel subcommand", args: []string{"wheel", "add", "date", "Picnic"}, selected: "add"},
		{name: "capsule defaults to show", args: []string{"capsule"}, selected: "show"},
		{name: "capsule seal joins words", args: []string{"capsule", "seal", "see", "you", "soon"}, selected: "seal",
			check: func(t *testing.T, app *App) {
				if len(app.Capsule.Seal.Message) != 3 {
					t.Errorf("Message = %v", app.Capsule.Seal.Message)
				}
			}},
		{name: "diary defaults to list", args: []string{"diary"}, selected: "list"},
		{name: "silent defaults to status", args: []string{"silent"}, selected: "silent",
			check: func(t *testing.T, app *App) {
				if app.Silent.Mode != "status" {
					t.Errorf("Mode = %q", app.Silent.Mode)
				}
			}},
		{name: "quiz player", args: []string{"quiz", "girl"}, selected: "quiz",
			check: func(t *testing.T, app *App) {
				if app.Quiz.Player != "girl" {
					t.Errorf("Player = %q", app.Quiz.Player)
				}
			}},
		{name: "letter defaults to boy", args: []string{"letter"}, selected: "letter",
			check: func(t *testing.T, app *App) {
				if app.Letter.From != "boy" {
					t.Errorf("From = %q", app.Letter.From)
				}
			}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var app App
			parser := newParser(t, &app)

			ctx, err := parser.Parse(tt.args)
			if err != nil {
				t.Fatalf("Parse(%v) error = %v", tt.args, err)
			}
			if ctx.Selected() == nil || ctx.Selected().Name != tt.selected {
				t.Fatalf("Parse(%v) selected %q, want %q", tt.args, ctx.Command(), tt.selected)
			}
			if tt.check != nil {
				tt.check(t, &app)
			}
		})
	}
}
