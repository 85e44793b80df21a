package grid

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	DefaultEventColor    = "#4eb8d5"
	DefaultResourceColor = "#87C2CA"

	backgroundTint = 0.85
	stripeShade    = 0.35
)

// Colors are the shades a block or column header is painted with.
type Colors struct {
	Base       string
	Background string
	Stripe     string
}

// Variants derives the pale background and the darker stripe from a base color.
// Invalid colors fall back to fallback.
func Variants(base, fallback string) Colors {
	if _, ok := parseHex(base); !ok {
		base = fallback
	}

	return Colors{
		Base:       normalizeHex(base),
		Background: Lighten(base, backgroundTint),
		Stripe:     Darken(base, stripeShade),
	}
}

// Lighten mixes the color with white. amount 1 gives white.
func Lighten(hex string, amount float64) string {
	rgb, ok := parseHex(hex)
	if !ok {
		return hex
	}

	for i, c := range rgb {
		rgb[i] = c + (255-c)*amount
	}

	return formatHex(rgb)
}

// Darken scales every channel towards black. amount 1 gives black.
func Darken(hex string, amount float64) string {
	rgb, ok := parseHex(hex)
	if !ok {
		return hex
	}

	for i, c := range rgb {
		rgb[i] = c * (1 - amount)
	}

	return formatHex(rgb)
}

func normalizeHex(hex string) string {
	rgb, ok := parseHex(hex)
	if !ok {
		return hex
	}

	return formatHex(rgb)
}

// parseHex accepts "#rrggbb" and "#rgb".
func parseHex(hex string) ([3]float64, bool) {
	var rgb [3]float64

	value := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(value) == 3 {
		value = string([]byte{value[0], value[0], value[1], value[1], value[2], value[2]})
	}

	if len(value) != 6 {
		return rgb, false
	}

	for i := range rgb {
		channel, err := strconv.ParseUint(value[i*2:i*2+2], 16, 8)
		if err != nil {
			return rgb, false
		}

		rgb[i] = float64(channel)
	}

	return rgb, true
}

func formatHex(rgb [3]float64) string {
	return fmt.Sprintf("#%02x%02x%02x", clampChannel(rgb[0]), clampChannel(rgb[1]), clampChannel(rgb[2]))
}

func clampChannel(c float64) int {
	return int(math.Max(0, math.Min(255, roundHalfUp(c))))
}
