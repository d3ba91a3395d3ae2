package fun

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/lovecount/internal/cli"
	"github.com/julianstephens/lovecount/internal/constants"
	"github.com/julianstephens/lovecount/internal/love"
	"github.com/julianstephens/lovecount/internal/models"
	"github.com/julianstephens/lovecount/internal/state"
	"github.com/julianstephens/lovecount/internal/storage"
)

func newTestContext(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	store := storage.NewMemoryStore()
	out := &bytes.Buffer{}
	now := time.Date(2025, 2, 14, 9, 0, 0, 0, time.UTC)
	return &cli.Context{
		Store:  store,
		State:  state.New(store, state.WithClock(func() time.Time { return now }), state.WithLocation(time.UTC)),
		Picker: love.NewPicker(rand.New(rand.NewSource(1))),
		Out:    out,
	}, out
}

func TestWheelSpinCmd(t *testing.T) {
	ctx, out := newTestContext(t)

	cmd := &WheelSpinCmd{WheelArg{Category: "food"}}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("spin failed: %v", err)
	}

	found := false
	for _, o := range constants.DefaultFoodOptions {
		if strings.Contains(out.String(), o) {
			found = true
		}
	}
	if !found {
		t.Errorf("spin picked something off the wheel: %q", out.String())
	}
}

func TestWheelSpinCmd_TooFewOptions(t *testing.T) {
	ctx, _ := newTestContext(t)
	if err := ctx.Store.Set(constants.KeyWheelDate, `["Cafe ☕"]`); err != nil {
		t.Fatalf("failed to seed wheel: %v", err)
	}

	err := (&WheelSpinCmd{WheelArg{Category: "date"}}).Run(ctx)
	if !errors.Is(err, love.ErrTooFewOptions) {
		t.Errorf("expected ErrTooFewOptions, got %v", err)
	}
}

func TestWheelEditing(t *testing.T) {
	ctx, out := newTestContext(t)

	if err := (&WheelAddCmd{Category: "date", Option: "Picnic 🧺"}).Run(ctx); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := (&WheelAddCmd{Category: "date", Option: "Picnic 🧺"}).Run(ctx); err != nil {
		t.Fatalf("duplicate add failed: %v", err)
	}
	if !strings.Contains(out.String(), "Not added") {
		t.Errorf("duplicate option was not declined:\n%s", out.String())
	}

	opts, _ := ctx.State.LoadWheel(models.WheelDate)
	if len(opts) != len(constants.DefaultDateOptions)+1 {
		t.Fatalf("got %d options, want %d", len(opts), len(constants.DefaultDateOptions)+1)
	}

	if err := (&WheelRemoveCmd{Category: "date", Number: 1}).Run(ctx); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if err := (&WheelRemoveCmd{Category: "date", Number: 99}).Run(ctx); !errors.Is(err, state.ErrInvalidIndex) {
		t.Errorf("expected ErrInvalidIndex, got %v", err)
	}

	opts, _ = ctx.State.LoadWheel(models.WheelDate)
	if opts[0] == constants.DefaultDateOptions[0] {
		t.Errorf("first option was not removed: %v", opts)
	}

	if err := (&WheelResetCmd{WheelArg{Category: "date"}}).Run(ctx); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	opts, _ = ctx.State.LoadWheel(models.WheelDate)
	if len(opts) != len(constants.DefaultDateOptions) {
		t.Errorf("reset left %d options", len(opts))
	}
}

func TestChallengeCmd_CountsEveryDraw(t *testing.T) {
	ctx, out := newTestContext(t)

	for i := 0; i < 3; i++ {
		if err := (&ChallengeCmd{}).Run(ctx); err != nil {
			t.Fatalf("challenge failed: %v", err)
		}
	}
	stats, err := ctx.State.LoadStats()
	if err != nil {
		t.Fatalf("failed to load stats: %v", err)
	}
	if stats.ChallengesDone != 3 {
		t.Errorf("challengesDone = %d, want 3", stats.ChallengesDone)
	}
	if !strings.Contains(out.String(), "(3 challenges so far") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestMessageCmd_SubstitutesDays(t *testing.T) {
	ctx, out := newTestContext(t)
	if err := ctx.State.SaveProfile(models.CoupleProfile{
		BoyName: "Minh", GirlName: "Lan", BoyAge: 24, GirlAge: 23,
		MeetingDate: "2025-03-01", MeetingTime: "18:00",
	}); err != nil {
		t.Fatalf("failed to save profile: %v", err)
	}

	for i := 0; i < 50; i++ {
		if err := (&MessageCmd{}).Run(ctx); err != nil {
			t.Fatalf("message failed: %v", err)
		}
	}
	if strings.Contains(out.String(), "{days}") {
		t.Errorf("placeholder left in output:\n%s", out.String())
	}
}

func TestTruthAndDareHistory(t *testing.T) {
	ctx, out := newTestContext(t)

	if err := (&TruthCmd{By: "boy"}).Run(ctx); err != nil {
		t.Fatalf("truth failed: %v", err)
	}
	if err := (&DareCmd{}).Run(ctx); err != nil {
		t.Fatalf("dare failed: %v", err)
	}

	history, err := ctx.State.LoadTruthHistory()
	if err != nil {
		t.Fatalf("failed to load history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history has %d items, want 2", len(history))
	}
	if history[0].Type != models.Dare || history[1].Type != models.Truth {
		t.Errorf("history is not newest first: %+v", history)
	}
	if history[1].AnsweredBy != "boy" {
		t.Errorf("answeredBy = %q, want boy without a profile", history[1].AnsweredBy)
	}

	out.Reset()
	if err := (&HistoryCmd{Limit: 1}).Run(ctx); err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if strings.Count(out.String(), "\n") != 1 || !strings.Contains(out.String(), "dare") {
		t.Errorf("unexpected history output:\n%s", out.String())
	}
}

func saveCouple(t *testing.T, ctx *cli.Context) {
	t.Helper()
	if err := ctx.State.SaveProfile(models.CoupleProfile{
		BoyName: "Minh", GirlName: "Lan", BoyAge: 24, GirlAge: 23,
		MeetingDate: "2025-03-01", MeetingTime: "18:00", GirlNickname: "Bé",
	}); err != nil {
		t.Fatalf("failed to save profile: %v", err)
	}
}

func TestQuizCmd(t *testing.T) {
	tests := []struct {
		name    string
		player  string
		about   string
		heading string
	}{
		{"boy asks about girl nickname", "boy", "Bé", "Minh, how well do you know Bé?"},
		{"girl by name", "Lan", "Minh", "Bé, how well do you know Minh?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, out := newTestContext(t)
			saveCouple(t, ctx)

			if err := (&QuizCmd{Player: tt.player}).Run(ctx); err != nil {
				t.Fatalf("quiz failed: %v", err)
			}
			got := out.String()
			if !strings.Contains(got, tt.heading) {
				t.Errorf("missing heading %q:\n%s", tt.heading, got)
			}
			if strings.Count(got, tt.about) < constants.QuizLength+1 {
				t.Errorf("questions are not about %s:\n%s", tt.about, got)
			}
			if strings.Contains(got, "{partner}") {
				t.Errorf("placeholder left in output:\n%s", got)
			}
			for i := 1; i <= constants.QuizLength; i++ {
				if !strings.Contains(got, fmt.Sprintf("%d. ", i)) {
					t.Errorf("question %d missing:\n%s", i, got)
				}
			}
		})
	}
}

func TestQuizCmd_UnknownPlayer(t *testing.T) {
	ctx, _ := newTestContext(t)
	saveCouple(t, ctx)

	if err := (&QuizCmd{Player: "Hoa"}).Run(ctx); !errors.Is(err, state.ErrInvalidPartner) {
		t.Errorf("quiz error = %v, want ErrInvalidPartner", err)
	}
}

func TestLetterCmd(t *testing.T) {
	ctx, out := newTestContext(t)
	saveCouple(t, ctx)

	if err := (&LetterCmd{From: "girl"}).Run(ctx); err != nil {
		t.Fatalf("letter failed: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "Minh") {
		t.Errorf("letter is not addressed to Minh:\n%s", got)
	}
	if strings.Contains(got, "{from}") || strings.Contains(got, "{to}") {
		t.Errorf("placeholder left in output:\n%s", got)
	}
}
