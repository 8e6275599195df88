// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"fmt"
	"math"
	"strings"
	"text/template"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/vorlif/humanize"
)

func (p *Presenter) templateFuncMap() template.FuncMap {
	return template.FuncMap{
		"timeFormat":    p.timeFormat,
		"localizedTime": p.localizedTime,
		"floatFormat":   p.floatFormat,
		"round":         p.round,
		"emojiSpace":    EmojiWithSpace,
		"lc":            strings.ToLower,
		"uc":            strings.ToUpper,
	}
}

// localizedTime formats the time of day in plain English, e.g. "9:15 a.m.". Zero times render
// as an empty string.
func (p *Presenter) localizedTime(val time.Time) string {
	if val.IsZero() || p.humanizer == nil {
		return ""
	}
	return p.humanizer.FormatTime(val, humanize.TimeFormat)
}

func (p *Presenter) timeFormat(val time.Time, fmt string) string {
	return val.Format(fmt)
}

func (p *Presenter) floatFormat(val float64, precision int) string {
	pow := math.Pow(10, float64(precision))
	return fmt.Sprintf("%.*f", precision, math.Trunc(val*pow)/pow)
}

// round rounds half up, the same way the summaries round temperatures.
func (p *Presenter) round(val float64) int {
	return int(math.Floor(val + 0.5))
}

// EmojiWithSpace pads an emoji with spaces according to its display width, so that
// the text following it lines up in the waybar font.
func EmojiWithSpace(emoji string) string {
	if emoji == "" {
		return ""
	}
	width := runewidth.StringWidth(emoji)
	return fmt.Sprintf("%s%s", emoji, strings.Repeat(" ", max(1, 3-width)))
}
