package chunk

import (
	"regexp"
	"strings"
)

// Expected result recorded for a step that does not declare one.
const defaultExpectedResult = "pass"

type sectionKind int

const (
	sectionNone sectionKind = iota
	sectionSteps
	sectionRequirements
)

// Numbered ("1.") or bulleted ("-") list marker at the start of a line.
var listMarkerPattern = regexp.MustCompile(`^(?:\d+\.|-)\s*`)

// ParseDocumentation extracts the step table and the requirement list from a
// test's documentation text.
//
// A section starts at a header line ("*Steps*", "*Steps*:" or "Steps:", and
// the "Requirements" equivalents, case-insensitive) and runs until the next
// recognized header or the end of the text. A repeated header re-opens its
// section and extends it. Step lines hold an optional expected result after
// the first "/"; without one the expected result is "pass". Documentation
// without any recognized header yields empty results.
func ParseDocumentation(documentation string) (Steps, []string) {
	var steps Steps
	var requirements []string
	if documentation == "" {
		return steps, requirements
	}

	normalized := strings.ReplaceAll(documentation, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	section := sectionNone
	for _, line := range strings.Split(normalized, "\n") {
		line = strings.TrimSpace(line)

		// Robot Framework data files mark continuation lines with "...".
		if line == "..." {
			continue
		}
		line = strings.TrimSpace(strings.TrimPrefix(line, "..."))

		if kind := headerKind(line); kind != sectionNone {
			section = kind
			continue
		}
		if section == sectionNone || line == "" {
			continue
		}

		entry := strings.TrimSpace(listMarkerPattern.ReplaceAllString(line, ""))
		if entry == "" {
			continue
		}

		switch section {
		case sectionSteps:
			description, expected := splitStep(entry)
			if description == "" {
				continue
			}
			steps.set(description, expected)
		case sectionRequirements:
			requirements = append(requirements, entry)
		}
	}

	return steps, requirements
}

func headerKind(line string) sectionKind {
	lowered := strings.ToLower(line)
	switch {
	case strings.HasPrefix(lowered, "*steps*"), strings.HasPrefix(lowered, "steps:"):
		return sectionSteps
	case strings.HasPrefix(lowered, "*requirements*"), strings.HasPrefix(lowered, "requirements:"):
		return sectionRequirements
	}
	return sectionNone
}

func splitStep(entry string) (description string, expected string) {
	description, expected, found := strings.Cut(entry, "/")
	if !found {
		return strings.TrimSpace(description), defaultExpectedResult
	}
	return strings.TrimSpace(description), strings.TrimSpace(expected)
}
