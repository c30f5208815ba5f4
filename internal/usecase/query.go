package usecase

import (
	"regexp"
	"strings"
)

// Package-level compiled regex patterns for query cleanup.
var (
	// Characters that break the FDC API (nginx returns 400 for & etc.)
	specialCharsRegex = regexp.MustCompile(`[#%+@!^*()=\[\]{}<>|\\~` + "`" + `]`)
	multiSpaceRegex   = regexp.MustCompile(`\s+`)
)

// SplitQueries breaks comma-separated multi-food input ("banana, white
// rice") into individual cleaned queries, dropping pieces that are empty
// after trimming.
func SplitQueries(input string) []string {
	var queries []string
	for _, part := range strings.Split(input, ",") {
		q := CleanQuery(part)
		if q == "" {
			continue
		}
		queries = append(queries, q)
	}
	return queries
}

// CleanQuery sanitizes a single food name for the FDC search endpoint:
// replaces characters the API rejects and normalizes whitespace.
func CleanQuery(query string) string {
	cleaned := strings.ReplaceAll(query, "&", " and ")
	cleaned = specialCharsRegex.ReplaceAllString(cleaned, " ")
	cleaned = multiSpaceRegex.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}
