package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// ExtractAmount strips every non-digit from a display price such as "€19" or
// "19 € / mois" and parses what remains as an integer.
func ExtractAmount(displayPrice string) (int64, error) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, displayPrice)

	if digits == "" {
		return 0, fmt.Errorf("display price '%s' contains no digits", displayPrice)
	}

	amount, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("display price '%s' is not a valid amount: %s", displayPrice, err)
	}

	return amount, nil
}
