package team

import (
	"strconv"
	"strings"
)

// Stat is one of the six battle stats.
type Stat int

const (
	HP Stat = iota
	Atk
	Def
	SpA
	SpD
	Spe
)

// Stats lists every stat in display order.
var Stats = [...]Stat{HP, Atk, Def, SpA, SpD, Spe}

// DefaultIV is the IV assigned to every stat of a new entry.
const DefaultIV = 31

// String returns the export code of the stat.
func (s Stat) String() string {
	switch s {
	case HP:
		return "HP"
	case Atk:
		return "Atk"
	case Def:
		return "Def"
	case SpA:
		return "SpA"
	case SpD:
		return "SpD"
	case Spe:
		return "Spe"
	default:
		return "Stat(" + strconv.Itoa(int(s)) + ")"
	}
}

// ParseStat returns the stat with the given export code.
// Codes are case-sensitive.
func ParseStat(code string) (Stat, bool) {
	for _, s := range Stats {
		if s.String() == code {
			return s, true
		}
	}

	return 0, false
}

// StatValue is a single stat assignment read from a stat list.
type StatValue struct {
	Stat  Stat
	Value int
}

// StatSet maps stats to values.
type StatSet map[Stat]int

// Set assigns each value in vals.
func (s StatSet) Set(vals ...StatValue) {
	for _, v := range vals {
		s[v.Stat] = v.Value
	}
}

// Codes returns the set keyed by export code.
func (s StatSet) Codes() map[string]int {
	m := make(map[string]int, len(s))
	for k, v := range s {
		m[k.String()] = v
	}

	return m
}

// ParseStats parses a list of "<value> <code>" pairs separated by " / ",
// such as "252 Atk / 252 Spe / 4 HP". Values are not range checked.
//
// A segment without a value, or with a non-integer value, fails with
// [ErrMalformedLine]. An unknown code fails with [ErrUnresolvedToken].
// No values are returned when any segment fails.
func ParseStats(text string) ([]StatValue, error) {
	vals, err := parseStats(text)
	if err != nil {
		return nil, err
	}

	return vals, nil
}

func parseStats(text string) ([]StatValue, *Error) {
	var vals []StatValue

	for seg := range strings.SplitSeq(text, " / ") {
		num, code, ok := strings.Cut(seg, " ")
		if !ok {
			return nil, ErrMalformedLine.About(seg)
		}

		n, err := strconv.Atoi(num)
		if err != nil {
			return nil, ErrMalformedLine.About(num).Wrap(err)
		}

		stat, ok := ParseStat(code)
		if !ok {
			return nil, ErrUnresolvedToken.For(KindStat, code)
		}

		vals = append(vals, StatValue{Stat: stat, Value: n})
	}

	return vals, nil
}
