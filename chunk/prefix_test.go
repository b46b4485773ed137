package chunk

import (
	"regexp"
	"strings"
	"testing"

	"github.com/ajadach/robotframework-LogXML2Chunks/robotoutput"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const prefixFixtureXML = `<?xml version="1.0" encoding="UTF-8"?>
<robot generator="Robot 6.1.1 (Python 3.11.4 on linux)" generated="20260831 10:00:00.000">
<suite id="s1" name="Root" source="/repo/tests/root.robot">
<kw name="Open Session" type="SETUP">
<msg timestamp="20260831 10:00:01.000" level="INFO">Session opened using interface cli</msg>
<status status="PASS"/>
</kw>
<suite id="s1-s1" name="Child" source="/repo/tests/child.robot">
<test id="s1-s1-t1" name="First">
<kw name="Do Something">
<msg timestamp="20260831 10:00:02.000" level="INFO">Request sent using interface rest</msg>
<status status="PASS"/>
</kw>
<status status="PASS">All good</status>
</test>
</suite>
</suite>
</robot>`

func TestResolvePrefix_SuiteSetupWinsOverTestKeywords(t *testing.T) {
	// Given
	test := parseSingleTest(t, prefixFixtureXML)
	pattern := regexp.MustCompile(`using interface (\w+)`)

	// When
	prefix, found := ResolvePrefix(test, pattern)

	// Then
	require.True(t, found)
	assert.Equal(t, "CLI", prefix)
}

func TestResolvePrefix_FallsBackToTestKeywords(t *testing.T) {
	// Given
	test := parseSingleTest(t, prefixFixtureXML)
	pattern := regexp.MustCompile(`Request sent using interface (\w+)`)

	// When
	prefix, found := ResolvePrefix(test, pattern)

	// Then
	require.True(t, found)
	assert.Equal(t, "REST", prefix)
}

func TestResolvePrefix_FindsMatchInNestedSetupKeyword(t *testing.T) {
	// Given
	fixture := `<robot>
<suite id="s1" name="Root">
<kw name="Suite Setup" type="SETUP">
<kw name="Inner">
<msg level="INFO">connected via grpc channel</msg>
</kw>
<status status="PASS"/>
</kw>
<test id="s1-t1" name="Only">
<status status="PASS"/>
</test>
</suite>
</robot>`
	test := parseSingleTest(t, fixture)
	pattern := regexp.MustCompile(`connected via (\w+)`)

	// When
	prefix, found := ResolvePrefix(test, pattern)

	// Then
	require.True(t, found)
	assert.Equal(t, "GRPC", prefix)
}

func TestResolvePrefix_NoMatch(t *testing.T) {
	// Given
	test := parseSingleTest(t, prefixFixtureXML)
	pattern := regexp.MustCompile(`protocol=(\w+)`)

	// When
	prefix, found := ResolvePrefix(test, pattern)

	// Then
	assert.False(t, found)
	assert.Empty(t, prefix)
}

func TestResolvePrefix_UnusablePattern(t *testing.T) {
	// Given
	test := parseSingleTest(t, prefixFixtureXML)

	// When
	_, foundWithNil := ResolvePrefix(test, nil)
	_, foundWithoutGroup := ResolvePrefix(test, regexp.MustCompile(`using interface \w+`))

	// Then
	assert.False(t, foundWithNil)
	assert.False(t, foundWithoutGroup)
}

func parseSingleTest(t *testing.T, fixture string) *robotoutput.Test {
	t.Helper()

	document, err := robotoutput.Parse(strings.NewReader(fixture))
	require.NoError(t, err)

	var found *robotoutput.Test
	document.EachTest(func(_ *robotoutput.Suite, test *robotoutput.Test) {
		if found == nil {
			found = test
		}
	})
	require.NotNil(t, found)

	return found
}
