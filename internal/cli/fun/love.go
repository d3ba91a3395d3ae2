package fun

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lovecount/internal/cli"
	"github.com/julianstephens/lovecount/internal/love"
)

// QuizCmd asks one partner questions about the other. There are no right
// answers; the other partner checks them.
type QuizCmd struct {
	Player      string `arg:"" optional:"" default:"boy" help:"Who plays: boy, girl, or a name. The questions are about the other one."`
	Interactive bool   `short:"i" help:"Answer the questions in a form."`
}

func (c *QuizCmd) Run(ctx *cli.Context) error {
	player, err := ctx.ParsePartner(c.Player)
	if err != nil {
		return err
	}
	partner := ctx.PartnerName(player.Other())
	quiz := ctx.Picker.Quiz(partner)

	ctx.Printf("💭 %s, how well do you know %s?\n\n", ctx.PartnerName(player), partner)
	if c.Interactive {
		answers, err := askQuiz(quiz)
		if err != nil {
			return fmt.Errorf("quiz cancelled: %w", err)
		}
		for i, q := range quiz {
			ctx.Printf("%d. %s\n   → %s\n", i+1, q.Question, answers[i])
		}
	} else {
		for i, q := range quiz {
			ctx.Printf("%d. %s\n", i+1, q.Question)
			for j, o := range q.Options {
				ctx.Printf("   %c) %s\n", 'a'+j, o)
			}
		}
	}
	ctx.Printf("\n%s\n", ctx.Picker.QuizResult())
	return nil
}

func askQuiz(quiz []love.QuizQuestion) ([]string, error) {
	answers := make([]string, len(quiz))
	groups := make([]*huh.Group, len(quiz))
	for i, q := range quiz {
		groups[i] = huh.NewGroup(
			huh.NewSelect[string]().
				Title(q.Question).
				Options(huh.NewOptions(q.Options...)...).
				Value(&answers[i]),
		)
	}
	if err := huh.NewForm(groups...).WithTheme(huh.ThemeDracula()).Run(); err != nil {
		return nil, err
	}
	return answers, nil
}

// LetterCmd writes a love letter from one partner to the other.
type LetterCmd struct {
	From string `arg:"" optional:"" default:"boy" help:"Who signs it: boy, girl, or a name."`
}

func (c *LetterCmd) Run(ctx *cli.Context) error {
	from, err := ctx.ParsePartner(c.From)
	if err != nil {
		return err
	}
	letter := ctx.Picker.Letter(ctx.PartnerName(from), ctx.PartnerName(from.Other()))
	ctx.Printf("%s\n\n%s\n", letter.Emoji, letter)
	return nil
}
