package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePrice extracts a monthly rupee amount from a display price string such
// as "₹15,000/month", "1.2L" or "50K". Lakh and thousand suffixes are
// expanded; currency symbols, commas and the "/month" suffix are ignored.
func ParsePrice(price string) (float64, error) {
	s := strings.TrimSpace(price)
	s = strings.ReplaceAll(s, "₹", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "/month", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty price string")
	}

	multiplier := 1.0
	upper := strings.ToUpper(s)
	switch {
	case strings.HasSuffix(upper, "L"):
		multiplier = 100000
		s = s[:len(s)-1]
	case strings.HasSuffix(upper, "K"):
		multiplier = 1000
		s = s[:len(s)-1]
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable price %q: %w", price, err)
	}
	return value * multiplier, nil
}
