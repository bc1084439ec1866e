package progression

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/2beens/trainprogress/internal/program"
)

var abbreviations = map[string]string{
	"push":       "P",
	"pull":       "Pu",
	"legs":       "L",
	"upper":      "U",
	"upper body": "U",
	"lower":      "Lo",
	"lower body": "Lo",
	"full body":  "FB",
}

type DisplayName struct {
	Full  string `json:"full"`
	Short string `json:"short"`
}

// DisplayNames labels each slot. Repeated day names get occurrence numbers ("Push 1",
// "Push 2"); short names are never numbered.
func DisplayNames(sessions []program.SessionTemplate) []DisplayName {
	totals := make(map[string]int)
	for _, s := range sessions {
		totals[s.DayName]++
	}

	seen := make(map[string]int)
	names := make([]DisplayName, 0, len(sessions))
	for _, s := range sessions {
		seen[s.DayName]++
		full := s.DayName
		if totals[s.DayName] > 1 {
			full = fmt.Sprintf("%s %d", s.DayName, seen[s.DayName])
		}
		names = append(names, DisplayName{
			Full:  full,
			Short: Abbreviate(s.DayName),
		})
	}
	return names
}

func Abbreviate(dayName string) string {
	normalized := strings.ToLower(dayName)
	if short, ok := abbreviations[normalized]; ok {
		return short
	}
	if normalized == "" {
		return ""
	}
	first, _ := utf8.DecodeRuneInString(dayName)
	return string(unicode.ToUpper(first))
}
