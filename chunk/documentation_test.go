package chunk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocumentation_StepsSection(t *testing.T) {
	// Given
	documentation := `*Steps*:
1. First step / Expected A
2. Second step / Expected B
- Bulleted step`

	// When
	steps, requirements := ParseDocumentation(documentation)

	// Then
	require.Len(t, steps, 3)
	assert.Equal(t, Steps{
		{Description: "First step", Expected: "Expected A"},
		{Description: "Second step", Expected: "Expected B"},
		{Description: "Bulleted step", Expected: "pass"},
	}, steps)
	assert.Empty(t, requirements)
}

func TestParseDocumentation_RequirementsSection(t *testing.T) {
	// Given
	documentation := `*Requirements*:
1. REQ-001
2. REQ-002
- REQ-003`

	// When
	steps, requirements := ParseDocumentation(documentation)

	// Then
	assert.Empty(t, steps)
	assert.Equal(t, []string{"REQ-001", "REQ-002", "REQ-003"}, requirements)
}

func TestParseDocumentation_BothSections(t *testing.T) {
	// Given
	documentation := "Some intro text outside any section.\r\n" +
		"*Steps*\r\n" +
		"1. Open the page / Page is shown\r\n" +
		"Requirements:\r\n" +
		"REQ-1\r\n" +
		"REQ-2\r\n"

	// When
	steps, requirements := ParseDocumentation(documentation)

	// Then
	assert.Equal(t, Steps{{Description: "Open the page", Expected: "Page is shown"}}, steps)
	assert.Equal(t, []string{"REQ-1", "REQ-2"}, requirements)
}

func TestParseDocumentation_HeadersAreCaseInsensitive(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "Starred upper case", header: "*STEPS*"},
		{name: "Starred mixed case", header: "*Steps*:"},
		{name: "Colon form", header: "steps:"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			steps, _ := ParseDocumentation(test.header + "\n1. Do it / Done")

			assert.Equal(t, Steps{{Description: "Do it", Expected: "Done"}}, steps)
		})
	}
}

func TestParseDocumentation_RepeatedHeaderExtendsSection(t *testing.T) {
	// Given
	documentation := `*Steps*
1. First / A
*Requirements*
REQ-1
*Steps*
2. Second / B`

	// When
	steps, requirements := ParseDocumentation(documentation)

	// Then
	assert.Equal(t, Steps{
		{Description: "First", Expected: "A"},
		{Description: "Second", Expected: "B"},
	}, steps)
	assert.Equal(t, []string{"REQ-1"}, requirements)
}

func TestParseDocumentation_DuplicateStepKeepsLastExpectedResult(t *testing.T) {
	// Given
	documentation := `*Steps*
1. Check the result / First expectation
2. Another step / Something
3. Check the result / Final expectation`

	// When
	steps, _ := ParseDocumentation(documentation)

	// Then
	require.Len(t, steps, 2)
	assert.Equal(t, Steps{
		{Description: "Check the result", Expected: "Final expectation"},
		{Description: "Another step", Expected: "Something"},
	}, steps)
}

func TestParseDocumentation_ContinuationMarkersAreStripped(t *testing.T) {
	// Given
	documentation := `*Steps*
...    1. Continued step / Works
...
- Plain step`

	// When
	steps, _ := ParseDocumentation(documentation)

	// Then
	assert.Equal(t, Steps{
		{Description: "Continued step", Expected: "Works"},
		{Description: "Plain step", Expected: "pass"},
	}, steps)
}

func TestParseDocumentation_NoRecognizedSection(t *testing.T) {
	// Given
	documentation := `Free form documentation.
1. This numbered line belongs to no section.
- Neither does this one.`

	// When
	steps, requirements := ParseDocumentation(documentation)

	// Then
	assert.Empty(t, steps)
	assert.Empty(t, requirements)
}

func TestParseDocumentation_EmptyEntriesAreSkipped(t *testing.T) {
	// Given
	documentation := `*Steps*
1.
2. / Orphan expectation
3. Real step`

	// When
	steps, _ := ParseDocumentation(documentation)

	// Then
	assert.Equal(t, Steps{{Description: "Real step", Expected: "pass"}}, steps)
}

func TestParseDocumentation_Empty(t *testing.T) {
	steps, requirements := ParseDocumentation("")

	assert.Empty(t, steps)
	assert.Empty(t, requirements)
}
