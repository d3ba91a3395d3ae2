package love

import (
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/julianstephens/lovecount/internal/constants"
	"github.com/julianstephens/lovecount/internal/models"
)

// ErrTooFewOptions is returned when a wheel has fewer than two options.
var ErrTooFewOptions = errors.New("the wheel needs at least 2 options to spin")

// Picker draws from the fixed content lists. The zero value is not usable;
// use NewPicker.
type Picker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPicker wraps rng. A nil rng is seeded from the clock.
func NewPicker(rng *rand.Rand) *Picker {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Picker{rng: rng}
}

func (p *Picker) intn(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.Intn(n)
}

func (p *Picker) pick(list []string) string {
	return list[p.intn(len(list))]
}

// CuteMessage returns a random message with {days} filled in.
func (p *Picker) CuteMessage(daysLeft int) string {
	return strings.ReplaceAll(p.pick(constants.CuteMessages), "{days}", strconv.Itoa(daysLeft))
}

func (p *Picker) DateChallenge() string {
	return p.pick(constants.DateChallenges)
}

func (p *Picker) LoveQuote() string {
	return p.pick(constants.LoveQuotes)
}

// DrawCard returns a random truth question or dare.
func (p *Picker) DrawCard(kind models.CardKind) string {
	if kind == models.Dare {
		return p.pick(constants.DareActions)
	}
	return p.pick(constants.TruthQuestions)
}

// Spin picks one option and its index.
func (p *Picker) Spin(options []string) (string, int, error) {
	if len(options) < constants.MinWheelOptions {
		return "", -1, ErrTooFewOptions
	}
	i := p.intn(len(options))
	return options[i], i, nil
}

func (p *Picker) perm(n int) []int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.Perm(n)
}

// QuizQuestion is one question of a quiz with its options in display order.
type QuizQuestion struct {
	Question string
	Options  []string
}

// Quiz draws QuizLength distinct questions about partner, each with its
// options shuffled. The templates are left untouched.
func (p *Picker) Quiz(partner string) []QuizQuestion {
	order := p.perm(len(constants.QuizTemplates))
	n := min(constants.QuizLength, len(order))
	quiz := make([]QuizQuestion, 0, n)
	for _, i := range order[:n] {
		tmpl := constants.QuizTemplates[i]
		opts := make([]string, len(tmpl.Options))
		for j, k := range p.perm(len(tmpl.Options)) {
			opts[j] = tmpl.Options[k]
		}
		quiz = append(quiz, QuizQuestion{
			Question: strings.Replace(tmpl.Question, "{partner}", partner, 1),
			Options:  opts,
		})
	}
	return quiz
}

func (p *Picker) QuizResult() string {
	return p.pick(constants.QuizResults)
}

// Letter is a filled-in love letter.
type Letter struct {
	Greeting string
	Body     string
	Closing  string
	Emoji    string
}

func (l Letter) String() string {
	return l.Greeting + "\n\n" + l.Body + "\n\n" + l.Closing
}

// Letter picks a template and writes it from one partner to the other.
func (p *Picker) Letter(from, to string) Letter {
	tmpl := constants.LetterTemplates[p.intn(len(constants.LetterTemplates))]
	fill := strings.NewReplacer("{from}", from, "{to}", to).Replace
	return Letter{
		Greeting: fill(tmpl.Greeting),
		Body:     fill(tmpl.Body),
		Closing:  fill(tmpl.Closing),
		Emoji:    tmpl.Emoji,
	}
}
