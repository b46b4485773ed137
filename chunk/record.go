package chunk

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/ajadach/robotframework-LogXML2Chunks/robotoutput"
)

// Test statuses reported by Robot Framework.
const (
	StatusPass = "PASS"
	StatusFail = "FAIL"
	StatusSkip = "SKIP"
)

// Step is one entry of a test's step table.
type Step struct {
	Description string
	Expected    string
}

// Steps is the step table of one test in source order. Descriptions are
// unique; setting a repeated description overwrites the earlier entry in
// place (last write wins).
type Steps []Step

// Get returns the expected result recorded for a step description.
func (s Steps) Get(description string) (string, bool) {
	for _, step := range s {
		if step.Description == description {
			return step.Expected, true
		}
	}
	return "", false
}

func (s *Steps) set(description, expected string) {
	for i, step := range *s {
		if step.Description == description {
			(*s)[i].Expected = expected
			return
		}
	}
	*s = append(*s, Step{Description: description, Expected: expected})
}

// MarshalJSON renders the step table as a JSON object keyed by description,
// preserving source order.
func (s Steps) MarshalJSON() ([]byte, error) {
	var buffer bytes.Buffer
	buffer.WriteByte('{')
	for i, step := range s {
		if i > 0 {
			buffer.WriteByte(',')
		}
		description, err := json.Marshal(step.Description)
		if err != nil {
			return nil, err
		}
		expected, err := json.Marshal(step.Expected)
		if err != nil {
			return nil, err
		}
		buffer.Write(description)
		buffer.WriteByte(':')
		buffer.Write(expected)
	}
	buffer.WriteByte('}')
	return buffer.Bytes(), nil
}

// Record is the externally visible result of extracting one test case.
// XMLFile, LogFile, Success and Error are filled by the caller once file
// generation finished; the rest comes from the execution tree.
type Record struct {
	Index         int      `json:"index"`
	TestName      string   `json:"test_name"`
	TestID        string   `json:"test_id"`
	Status        string   `json:"status"`
	Documentation string   `json:"documentation"`
	Steps         Steps    `json:"steps"`
	Requirements  []string `json:"requirements"`
	Source        string   `json:"source"`
	Interface     string   `json:"interface,omitempty"`
	XMLFile       string   `json:"xml_file"`
	LogFile       string   `json:"log_file,omitempty"`
	Checksum      string   `json:"checksum"`
	Success       bool     `json:"success"`
	Error         string   `json:"error,omitempty"`
}

// MalformedRecordError reports a test node that cannot be turned into a
// record because a required field is missing. It isolates the broken test:
// the caller records the message and keeps processing sibling tests.
type MalformedRecordError struct {
	TestName string
	TestID   string
	Missing  string
}

func (e *MalformedRecordError) Error() string {
	identity := e.TestID
	if identity == "" {
		identity = e.TestName
	}
	if identity == "" {
		identity = "unknown test"
	}
	return fmt.Sprintf("malformed test node (%s): missing %s", identity, e.Missing)
}

// CompilePrefixPattern compiles a filename prefix pattern and validates that
// it has the capture group the prefix value is taken from. Callers should
// invoke it at configuration time so a broken pattern fails the run before
// any test is processed.
func CompilePrefixPattern(expression string) (*regexp.Regexp, error) {
	pattern, err := regexp.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid filename prefix pattern (%s): %s", expression, err)
	}
	if pattern.NumSubexp() < 1 {
		return nil, fmt.Errorf("filename prefix pattern (%s) has no capture group for the prefix value", expression)
	}
	return pattern, nil
}

// Builder assembles records for extracted test cases.
type Builder struct {
	pattern *regexp.Regexp
}

// NewBuilder creates a record builder. The pattern is the optional filename
// prefix pattern; pass nil when no prefix extraction is configured.
func NewBuilder(pattern *regexp.Regexp) Builder {
	return Builder{pattern: pattern}
}

// Build composes the record of one extracted test. It fails only for a
// malformed test node (missing name or status); every other absence (no
// documentation sections, no source path, no prefix match) is a normal,
// empty value.
func (b Builder) Build(test *robotoutput.Test, index int) (Record, error) {
	if test.Name == "" {
		return Record{}, &MalformedRecordError{TestID: test.ID, Missing: "name"}
	}
	if test.Status == nil || test.Status.Value == "" {
		return Record{}, &MalformedRecordError{TestName: test.Name, TestID: test.ID, Missing: "status"}
	}

	source := ""
	if suite := test.Suite(); suite != nil {
		source = suite.Source
	}

	steps, requirements := ParseDocumentation(test.Doc)

	record := Record{
		Index:         index,
		TestName:      test.Name,
		TestID:        test.ID,
		Status:        test.Status.Value,
		Documentation: test.Doc,
		Steps:         steps,
		Requirements:  requirements,
		Source:        source,
		Checksum:      Checksum(test.Name, test.Doc, source),
	}

	if b.pattern != nil {
		if prefix, found := ResolvePrefix(test, b.pattern); found {
			record.Interface = prefix
		}
	}

	return record, nil
}
