package models

import "fmt"

// Partner identifies one side of the couple.
type Partner string

const (
	Boy  Partner = "boy"
	Girl Partner = "girl"
)

// Partners lists both sides in display order.
var Partners = []Partner{Boy, Girl}

func ParsePartner(s string) (Partner, error) {
	switch Partner(s) {
	case Boy, Girl:
		return Partner(s), nil
	}
	return "", fmt.Errorf("unknown partner %q (expected boy or girl)", s)
}

func (p Partner) Valid() bool {
	return p == Boy || p == Girl
}

// Other returns the opposite partner.
func (p Partner) Other() Partner {
	if p == Boy {
		return Girl
	}
	return Boy
}
