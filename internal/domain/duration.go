package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	msPerSecond = int64(1000)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
)

type Components struct {
	Hours        int64
	Minutes      int64
	Seconds      int64
	Milliseconds int64
}

// DisplayFields are the zero-padded strings for each clock field.
type DisplayFields struct {
	Hours        string
	Minutes      string
	Seconds      string
	Milliseconds string
}

func Decompose(ms int64) (Components, error) {
	if ms < 0 {
		return Components{}, fmt.Errorf("%w: %dms is negative", ErrInvalidDuration, ms)
	}

	return Components{
		Hours:        ms / msPerHour,
		Minutes:      (ms % msPerHour) / msPerMinute,
		Seconds:      (ms % msPerMinute) / msPerSecond,
		Milliseconds: ms % msPerSecond,
	}, nil
}

func (c Components) TotalMs() int64 {
	return c.Hours*msPerHour + c.Minutes*msPerMinute + c.Seconds*msPerSecond + c.Milliseconds
}

func (c Components) Fields() DisplayFields {
	return DisplayFields{
		Hours:        pad(c.Hours, 2),
		Minutes:      pad(c.Minutes, 2),
		Seconds:      pad(c.Seconds, 2),
		Milliseconds: pad(c.Milliseconds, 3),
	}
}

// String drops the hours field when it is zero.
func (c Components) String() string {
	f := c.Fields()
	if c.Hours > 0 {
		return f.Hours + ":" + f.Minutes + ":" + f.Seconds + "." + f.Milliseconds
	}

	return f.Minutes + ":" + f.Seconds + "." + f.Milliseconds
}

func Format(ms int64) (string, error) {
	c, err := Decompose(ms)
	if err != nil {
		return "", err
	}

	return c.String(), nil
}

func FormatSplit(ms int64) (string, error) {
	formatted, err := Format(ms)
	if err != nil {
		return "", err
	}

	return "+" + formatted, nil
}

func pad(v int64, width int) string {
	s := strconv.FormatInt(v, 10)
	if len(s) >= width {
		return s
	}

	return strings.Repeat("0", width-len(s)) + s
}
