package robotoutput

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// Keyword types used by Robot Framework for suite fixtures.
const (
	KeywordTypeSetup    = "SETUP"
	KeywordTypeTeardown = "TEARDOWN"
)

// Document is the root <robot> element of a Robot Framework output file.
type Document struct {
	XMLName       xml.Name   `xml:"robot"`
	Generator     string     `xml:"generator,attr,omitempty"`
	Generated     string     `xml:"generated,attr,omitempty"`
	RPA           string     `xml:"rpa,attr,omitempty"`
	SchemaVersion string     `xml:"schemaversion,attr,omitempty"`
	Attrs         []xml.Attr `xml:",any,attr"`
	Suite         *Suite     `xml:"suite"`
}

// Suite is a <suite> element. Child suites and tests keep a non-owning
// reference to their parent so the tree can be walked upwards.
type Suite struct {
	Name   string     `xml:"name,attr"`
	ID     string     `xml:"id,attr,omitempty"`
	Source string     `xml:"source,attr,omitempty"`
	Attrs  []xml.Attr `xml:",any,attr"`

	Doc      string     `xml:"doc"`
	Suites   []*Suite   `xml:"suite"`
	Tests    []*Test    `xml:"test"`
	Keywords []*Keyword `xml:"kw"`

	parent *Suite
}

// Test is a <test> element. Inner holds the element's verbatim inner XML so
// the test can be written back into a standalone document without loss.
type Test struct {
	Name  string     `xml:"name,attr"`
	ID    string     `xml:"id,attr,omitempty"`
	Attrs []xml.Attr `xml:",any,attr"`

	Doc      string     `xml:"doc"`
	Tags     []string   `xml:"tag"`
	Keywords []*Keyword `xml:"kw"`
	Status   *Status    `xml:"status"`
	Inner    string     `xml:",innerxml"`

	suite *Suite
}

// Keyword is a <kw> element, either a test step or a suite SETUP/TEARDOWN
// fixture. Nested keywords and logged messages are both kept.
type Keyword struct {
	Name  string     `xml:"name,attr,omitempty"`
	Type  string     `xml:"type,attr,omitempty"`
	Attrs []xml.Attr `xml:",any,attr"`

	Messages []Message  `xml:"msg"`
	Keywords []*Keyword `xml:"kw"`
	Inner    string     `xml:",innerxml"`
}

// Message is a <msg> element logged by a keyword.
type Message struct {
	Timestamp string `xml:"timestamp,attr,omitempty"`
	Level     string `xml:"level,attr,omitempty"`
	Text      string `xml:",chardata"`
}

// Status is a <status> element.
type Status struct {
	Value string `xml:"status,attr"`
}

// Parse decodes a Robot Framework output XML document and wires up the
// parent references needed for upward traversal.
func Parse(reader io.Reader) (*Document, error) {
	var document Document
	if err := xml.NewDecoder(reader).Decode(&document); err != nil {
		return nil, fmt.Errorf("failed to parse output XML: %s", err)
	}
	if document.Suite == nil {
		return nil, errors.New("no suite element found in XML")
	}
	wireParents(document.Suite, nil)
	return &document, nil
}

func wireParents(suite *Suite, parent *Suite) {
	suite.parent = parent
	for _, test := range suite.Tests {
		test.suite = suite
	}
	for _, child := range suite.Suites {
		wireParents(child, suite)
	}
}

// Parent returns the suite's parent suite, or nil for the top level suite.
func (s *Suite) Parent() *Suite {
	return s.parent
}

// SetupKeywords returns the suite's own SETUP fixture keywords.
func (s *Suite) SetupKeywords() []*Keyword {
	return s.keywordsOfType(KeywordTypeSetup)
}

// TeardownKeywords returns the suite's own TEARDOWN fixture keywords.
func (s *Suite) TeardownKeywords() []*Keyword {
	return s.keywordsOfType(KeywordTypeTeardown)
}

func (s *Suite) keywordsOfType(keywordType string) []*Keyword {
	var keywords []*Keyword
	for _, keyword := range s.Keywords {
		if keyword.Type == keywordType {
			keywords = append(keywords, keyword)
		}
	}
	return keywords
}

// Suite returns the suite that owns the test.
func (t *Test) Suite() *Suite {
	return t.suite
}

// EachMessage visits the messages of the test's keywords, including nested
// keywords. It returns false when the visitor stopped the walk.
func (t *Test) EachMessage(visit func(text string) bool) bool {
	for _, keyword := range t.Keywords {
		if !keyword.EachMessage(visit) {
			return false
		}
	}
	return true
}

// EachMessage visits the keyword's own messages and then the messages of its
// nested keywords, depth first. The visitor returns false to stop the walk;
// EachMessage returns false when it was stopped.
func (k *Keyword) EachMessage(visit func(text string) bool) bool {
	for _, message := range k.Messages {
		if !visit(message.Text) {
			return false
		}
	}
	for _, nested := range k.Keywords {
		if !nested.EachMessage(visit) {
			return false
		}
	}
	return true
}

// EachTest visits every test of the document: suites in document order, each
// suite's own tests before the tests of its child suites.
func (d *Document) EachTest(visit func(suite *Suite, test *Test)) {
	if d.Suite == nil {
		return
	}
	d.Suite.eachTest(visit)
}

func (s *Suite) eachTest(visit func(suite *Suite, test *Test)) {
	for _, test := range s.Tests {
		visit(s, test)
	}
	for _, child := range s.Suites {
		child.eachTest(visit)
	}
}

// TestCount returns the number of tests in the document.
func (d *Document) TestCount() int {
	count := 0
	d.EachTest(func(*Suite, *Test) {
		count++
	})
	return count
}
