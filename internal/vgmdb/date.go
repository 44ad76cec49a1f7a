package vgmdb

import (
	"fmt"
	"strings"

	"github.com/handiism/vgmdb-tagger/internal/model"
)

var months = map[string]int{
	"January": 1, "Jan": 1,
	"February": 2, "Feb": 2,
	"March": 3, "Mar": 3,
	"April": 4, "Apr": 4,
	"May": 5,
	"June": 6, "Jun": 6,
	"July": 7, "Jul": 7,
	"August": 8, "Aug": 8,
	"September": 9, "Sep": 9,
	"October": 10, "Oct": 10,
	"November": 11, "Nov": 11,
	"December": 12, "Dec": 12,
}

// NormalizeDate converts a VGMdb release date into a model.PartialDate.
//
// Three shapes are recognized after commas are stripped:
//   - "Aug 13, 2006" -> "2006-08-13" (the day is kept as written)
//   - "Jul 2017"     -> "2017-07"
//   - "2014"         -> "2014"
//
// Month names are case-sensitive English names or their three letter
// abbreviations. Returns ErrInvalidDate for an unknown month or empty text.
func NormalizeDate(text string) (model.PartialDate, error) {
	parts := strings.Fields(strings.ReplaceAll(strings.TrimSpace(text), ",", ""))

	switch {
	case len(parts) >= 3:
		month, err := parseMonth(parts[0])
		if err != nil {
			return "", err
		}
		return model.PartialDate(fmt.Sprintf("%s-%02d-%s", parts[2], month, parts[1])), nil
	case len(parts) == 2:
		month, err := parseMonth(parts[0])
		if err != nil {
			return "", err
		}
		return model.PartialDate(fmt.Sprintf("%s-%02d", parts[1], month)), nil
	case len(parts) == 1:
		return model.PartialDate(parts[0]), nil
	}

	return "", fmt.Errorf("%w: empty date", ErrInvalidDate)
}

func parseMonth(token string) (int, error) {
	month, ok := months[token]
	if !ok {
		return 0, fmt.Errorf("%w: unknown month %q", ErrInvalidDate, token)
	}
	return month, nil
}
