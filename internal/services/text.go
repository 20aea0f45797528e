package services

import (
	"regexp"
	"strings"
)

// CountWords returns the number of whitespace-separated tokens in content
func CountWords(content string) int {
	return len(strings.Fields(content))
}

// ReplaceAll substitutes every match of the regular expression pattern.
// Replacement may reference groups as $1 or ${name}. An empty pattern
// leaves content unchanged.
func ReplaceAll(content, pattern, replacement string) (string, error) {
	if pattern == "" {
		return content, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return content, &PatternError{Pattern: pattern, Err: err}
	}

	return re.ReplaceAllString(content, replacement), nil
}

// ReplaceAllLiteral treats both find and replacement as plain text
func ReplaceAllLiteral(content, find, replacement string) string {
	if find == "" {
		return content
	}
	return strings.ReplaceAll(content, find, replacement)
}

// ReplaceRequest is what the find and replace dialog submits
type ReplaceRequest struct {
	Find    string
	Replace string
	Literal bool
}

// Apply runs the request against content. Literal requests never fail.
func (r ReplaceRequest) Apply(content string) (string, error) {
	if r.Literal {
		return ReplaceAllLiteral(content, r.Find, r.Replace), nil
	}
	return ReplaceAll(content, r.Find, r.Replace)
}
