package profile

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const MaxCompanyLength = 100

var companyPattern = regexp.MustCompile(`^[\p{L}\p{N} \-'.&]+$`)

// NormalizeCompany trims, collapses inner whitespace and title-cases a company
// name. An empty name is allowed and returned as "".
func NormalizeCompany(raw string) (string, error) {
	name := strings.Join(strings.Fields(raw), " ")
	if name == "" {
		return "", nil
	}
	if utf8.RuneCountInString(name) > MaxCompanyLength {
		return "", ErrCompanyTooLong
	}
	if !companyPattern.MatchString(name) {
		return "", ErrCompanyInvalid
	}
	return cases.Title(language.English).String(name), nil
}
