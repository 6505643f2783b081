package web

import (
	"math"
	"strconv"
	"strings"

	"driftfield/internal/field"
)

// Custom properties written on [data-depth] elements.
const (
	LiftXProp = "--lift-x"
	LiftYProp = "--lift-y"
)

// rgba formats c for a canvas fillStyle or strokeStyle.
func rgba(c field.RGBA) string {
	var b strings.Builder
	b.Grow(28)
	b.WriteString("rgba(")
	b.WriteString(strconv.Itoa(int(c.R)))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(int(c.G)))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(int(c.B)))
	b.WriteByte(',')
	b.WriteString(strconv.FormatFloat(c.A, 'f', 3, 64))
	b.WriteByte(')')
	return b.String()
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64) + "px"
}

// parseDepth reads a data-depth attribute; anything unparsable is NaN and
// the element is left alone by the parallax pass.
func parseDepth(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
