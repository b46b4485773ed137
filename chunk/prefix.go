package chunk

import (
	"regexp"
	"strings"

	"github.com/ajadach/robotframework-LogXML2Chunks/robotoutput"
)

// ResolvePrefix searches the log messages around a test for the first match
// of the filename prefix pattern and returns capture group 1 upper-cased.
//
// Suite setup keywords establish the session context test keywords reuse,
// which makes them the most reliable source, so the search order is: the
// owning suite's SETUP keywords (nested keywords included), then each
// ancestor suite's SETUP keywords walking up to the root, and finally the
// test's own keywords. The walk stops at the first match. No match is a
// normal outcome, reported through the second return value.
func ResolvePrefix(test *robotoutput.Test, pattern *regexp.Regexp) (string, bool) {
	if pattern == nil || pattern.NumSubexp() < 1 {
		return "", false
	}

	for suite := test.Suite(); suite != nil; suite = suite.Parent() {
		for _, setup := range suite.SetupKeywords() {
			if prefix, found := firstKeywordMatch(setup, pattern); found {
				return prefix, true
			}
		}
	}

	prefix := ""
	found := false
	test.EachMessage(func(text string) bool {
		if match := pattern.FindStringSubmatch(text); match != nil {
			prefix = strings.ToUpper(match[1])
			found = true
			return false
		}
		return true
	})
	return prefix, found
}

func firstKeywordMatch(keyword *robotoutput.Keyword, pattern *regexp.Regexp) (string, bool) {
	prefix := ""
	found := false
	keyword.EachMessage(func(text string) bool {
		if match := pattern.FindStringSubmatch(text); match != nil {
			prefix = strings.ToUpper(match[1])
			found = true
			return false
		}
		return true
	})
	return prefix, found
}
