package love

import (
	"errors"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/julianstephens/lovecount/internal/constants"
	"github.com/julianstephens/lovecount/internal/models"
)

func seeded() *Picker {
	return NewPicker(rand.New(rand.NewSource(42)))
}

func TestSpinRequiresTwoOptions(t *testing.T) {
	p := seeded()

	for _, opts := range [][]string{nil, {"Phở 🍜"}} {
		if _, _, err := p.Spin(opts); !errors.Is(err, ErrTooFewOptions) {
			t.Errorf("Spin(%v) error = %v, want ErrTooFewOptions", opts, err)
		}
	}

	opts := []string{"Phở 🍜", "Pizza 🍕"}
	for i := 0; i < 20; i++ {
		got, idx, err := p.Spin(opts)
		if err != nil {
			t.Fatalf("Spin() error = %v", err)
		}
		if opts[idx] != got {
			t.Errorf("Spin() = %q at %d, mismatch", got, idx)
		}
	}
}

func TestSeededPickerIsReproducible(t *testing.T) {
	a, b := seeded(), seeded()
	for i := 0; i < 10; i++ {
		if a.DateChallenge() != b.DateChallenge() {
			t.Fatal("same seed produced different draws")
		}
	}
}

func TestCuteMessageFillsDays(t *testing.T) {
	p := seeded()
	for i := 0; i < 50; i++ {
		msg := p.CuteMessage(12)
		if strings.Contains(msg, "{days}") {
			t.Fatalf("placeholder left in %q", msg)
		}
		if !slices.Contains(constants.CuteMessages, msg) && !strings.Contains(msg, "12") {
			t.Fatalf("unexpected message %q", msg)
		}
	}
}

func TestDrawCard(t *testing.T) {
	p := seeded()
	if !slices.Contains(constants.TruthQuestions, p.DrawCard(models.Truth)) {
		t.Error("truth card not from the truth list")
	}
	if !slices.Contains(constants.DareActions, p.DrawCard(models.Dare)) {
		t.Error("dare card not from the dare list")
	}
}

func TestNilRandIsSeeded(t *testing.T) {
	p := NewPicker(nil)
	if q := p.LoveQuote(); !slices.Contains(constants.LoveQuotes, q) {
		t.Errorf("LoveQuote() = %q", q)
	}
}

func TestQuiz(t *testing.T) {
	p := seeded()
	quiz := p.Quiz("Bé")

	if len(quiz) != constants.QuizLength {
		t.Fatalf("len(Quiz()) = %d, want %d", len(quiz), constants.QuizLength)
	}

	seen := map[string]bool{}
	for _, q := range quiz {
		if strings.Contains(q.Question, "{partner}") || !strings.Contains(q.Question, "Bé") {
			t.Errorf("partner not filled in: %q", q.Question)
		}
		if seen[q.Question] {
			t.Errorf("question %q drawn twice", q.Question)
		}
		seen[q.Question] = true

		var tmpl *constants.QuizTemplate
		for i := range constants.QuizTemplates {
			if strings.Replace(constants.QuizTemplates[i].Question, "{partner}", "Bé", 1) == q.Question {
				tmpl = &constants.QuizTemplates[i]
			}
		}
		if tmpl == nil {
			t.Fatalf("question %q matches no template", q.Question)
		}
		got := slices.Clone(q.Options)
		want := slices.Clone(tmpl.Options)
		slices.Sort(got)
		slices.Sort(want)
		if !slices.Equal(got, want) {
			t.Errorf("options of %q = %v, want a permutation of %v", q.Question, q.Options, tmpl.Options)
		}
	}

	if strings.Contains(constants.QuizTemplates[0].Question, "Bé") {
		t.Error("Quiz() modified the templates")
	}
}

func TestQuizIsReproducible(t *testing.T) {
	a, b := seeded().Quiz("An"), seeded().Quiz("An")
	for i := range a {
		if a[i].Question != b[i].Question || !slices.Equal(a[i].Options, b[i].Options) {
			t.Fatalf("same seed produced different quizzes at %d", i)
		}
	}
}

func TestQuizResult(t *testing.T) {
	p := seeded()
	if got := p.QuizResult(); !slices.Contains(constants.QuizResults, got) {
		t.Errorf("QuizResult() = %q, not a known result", got)
	}
}

func TestLetter(t *testing.T) {
	p := seeded()
	for i := 0; i < 20; i++ {
		l := p.Letter("An", "Binh")
		text := l.String()
		if strings.Contains(text, "{from}") || strings.Contains(text, "{to}") {
			t.Fatalf("placeholder left in %q", text)
		}
		if !strings.Contains(text, "Binh") {
			t.Errorf("letter does not address Binh: %q", text)
		}
		if l.Emoji == "" {
			t.Error("letter has no emoji")
		}
		if !strings.HasPrefix(text, l.Greeting+"\n\n") || !strings.HasSuffix(text, "\n\n"+l.Closing) {
			t.Errorf("String() layout = %q", text)
		}
	}
}
