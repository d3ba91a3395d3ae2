// Package love holds the pure derived values shown around the countdown:
// the name compatibility score, the quote of the day, and the miss-counter
// winner.
package love

import (
	"time"
	"unicode/utf16"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/julianstephens/lovecount/internal/constants"
	"github.com/julianstephens/lovecount/internal/models"
	"github.com/julianstephens/lovecount/internal/utils"
)

const (
	compatibilityFloor = 70
	compatibilitySpan  = 30
)

// Compatibility scores two names in [70, 99]. The hash runs over
// lower(name1+name2) in UTF-16 code units with 32-bit wraparound, so the
// result is stable across runs and platforms. Argument order matters:
// Compatibility(a, b) and Compatibility(b, a) usually differ.
//
// Lowercasing uses the full Unicode mapping, so word-final Σ becomes ς and
// İ becomes i plus a combining dot, the same as a browser's toLowerCase.
func Compatibility(name1, name2 string) int {
	combined := cases.Lower(language.Und).String(name1 + name2)

	var h int32
	for _, unit := range utf16.Encode([]rune(combined)) {
		h = h*31 + int32(unit)
	}

	r := int(h % compatibilitySpan)
	if r < 0 {
		r = -r
	}
	return compatibilityFloor + r
}

// DailyQuote picks the quote for t's calendar day. Everyone sees the same
// quote on the same local day; it changes at local midnight.
func DailyQuote(t time.Time) string {
	return constants.DailyQuotes[utils.DayOfYear(t)%len(constants.DailyQuotes)]
}

// MissWinner reports who clicked "miss" more often. Equal counts, including
// 0-0, have no winner.
func MissWinner(rec models.MissCounter) (models.Partner, bool) {
	switch {
	case rec.BoyCount > rec.GirlCount:
		return models.Boy, true
	case rec.GirlCount > rec.BoyCount:
		return models.Girl, true
	}
	return "", false
}

// MissMargin is the absolute difference between the two counts.
func MissMargin(rec models.MissCounter) int {
	d := rec.BoyCount - rec.GirlCount
	if d < 0 {
		return -d
	}
	return d
}
