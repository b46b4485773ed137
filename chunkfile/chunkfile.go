package chunkfile

import (
	"encoding/xml"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bitrise-io/go-utils/v2/fileutil"

	"github.com/ajadach/robotframework-LogXML2Chunks/chunk"
	"github.com/ajadach/robotframework-LogXML2Chunks/robotoutput"
)

// Writer assembles and writes the standalone XML document of one extracted
// test case. The document holds the test verbatim, together with its
// suite's attributes, SETUP/TEARDOWN fixtures and documentation, plus the
// statistics rebot needs to render a report.
type Writer interface {
	Write(outputDir string, source *robotoutput.Document, suite *robotoutput.Suite, test *robotoutput.Test, index int, prefix string) (string, error)
}

type writer struct {
	fileManager fileutil.FileManager
}

// NewWriter ...
func NewWriter(fileManager fileutil.FileManager) Writer {
	return writer{fileManager: fileManager}
}

func (w writer) Write(outputDir string, source *robotoutput.Document, suite *robotoutput.Suite, test *robotoutput.Test, index int, prefix string) (string, error) {
	document := buildDocument(source, suite, test)

	content, err := xml.MarshalIndent(document, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to render chunk XML: %s", err)
	}
	content = append([]byte(xml.Header), content...)

	xmlPath := filepath.Join(outputDir, Filename(index, prefix, test.Name, test.ID))
	if err := w.fileManager.WriteBytes(xmlPath, content); err != nil {
		return "", fmt.Errorf("failed to write chunk XML (%s): %s", xmlPath, err)
	}
	return xmlPath, nil
}

// Filename returns the chunk XML filename of one extracted test:
// {index}_[{PREFIX}_]{test_name}_{test_id}.xml, with spaces and slashes in
// the test name replaced by underscores.
func Filename(index int, prefix, testName, testID string) string {
	safeName := strings.NewReplacer(" ", "_", "/", "_", `\`, "_").Replace(testName)
	if prefix != "" {
		return fmt.Sprintf("%d_%s_%s_%s.xml", index, prefix, safeName, testID)
	}
	return fmt.Sprintf("%d_%s_%s.xml", index, safeName, testID)
}

// LogFilename returns the HTML log filename belonging to a chunk filename.
func LogFilename(index int, prefix, testName, testID string) string {
	return chunk.LogFilePath(Filename(index, prefix, testName, testID))
}

// Marshal-only document model. Raw elements carry the verbatim inner XML
// captured at parse time, so the test and fixture subtrees survive the
// round trip untouched.

type chunkDocument struct {
	XMLName       xml.Name   `xml:"robot"`
	Generator     string     `xml:"generator,attr,omitempty"`
	Generated     string     `xml:"generated,attr,omitempty"`
	RPA           string     `xml:"rpa,attr,omitempty"`
	SchemaVersion string     `xml:"schemaversion,attr,omitempty"`
	Attrs         []xml.Attr `xml:",any,attr"`
	Suite         chunkSuite `xml:"suite"`
	Statistics    statistics `xml:"statistics"`
	Errors        struct{}   `xml:"errors"`
}

// Fixtures holds the suite SETUP and TEARDOWN keywords; rebot assigns their
// role from the type attribute, not from element order. The suite status is
// omitted on purpose; rebot recalculates it from the test status.
type chunkSuite struct {
	Name  string     `xml:"name,attr"`
	ID    string     `xml:"id,attr,omitempty"`
	Attrs []xml.Attr `xml:",any,attr"`

	Fixtures []rawElement `xml:"kw"`
	Test     rawElement   `xml:"test"`
	Doc      string       `xml:"doc,omitempty"`
}

type rawElement struct {
	Attrs []xml.Attr `xml:",any,attr"`
	Inner string     `xml:",innerxml"`
}

type statistics struct {
	Total statGroup `xml:"total"`
	Tags  statGroup `xml:"tag"`
	Suite statGroup `xml:"suite"`
}

type statGroup struct {
	Stats []stat `xml:"stat"`
}

type stat struct {
	Name  string `xml:"name,attr,omitempty"`
	ID    string `xml:"id,attr,omitempty"`
	Pass  int    `xml:"pass,attr"`
	Fail  int    `xml:"fail,attr"`
	Skip  int    `xml:"skip,attr"`
	Label string `xml:",chardata"`
}

func buildDocument(source *robotoutput.Document, suite *robotoutput.Suite, test *robotoutput.Test) chunkDocument {
	document := chunkDocument{
		Suite: chunkSuite{
			Name:  suite.Name,
			ID:    suite.ID,
			Attrs: suiteAttrs(suite),
			Test:  testElement(test),
			Doc:   suite.Doc,
		},
		Statistics: buildStatistics(suite, test),
	}
	if source != nil {
		document.Generator = source.Generator
		document.Generated = source.Generated
		document.RPA = source.RPA
		document.SchemaVersion = source.SchemaVersion
		document.Attrs = source.Attrs
	}

	for _, setup := range suite.SetupKeywords() {
		document.Suite.Fixtures = append(document.Suite.Fixtures, keywordElement(setup))
	}
	for _, teardown := range suite.TeardownKeywords() {
		document.Suite.Fixtures = append(document.Suite.Fixtures, keywordElement(teardown))
	}

	return document
}

func suiteAttrs(suite *robotoutput.Suite) []xml.Attr {
	var attrs []xml.Attr
	if suite.Source != "" {
		attrs = append(attrs, attr("source", suite.Source))
	}
	return append(attrs, suite.Attrs...)
}

func testElement(test *robotoutput.Test) rawElement {
	attrs := []xml.Attr{attr("name", test.Name)}
	if test.ID != "" {
		attrs = append(attrs, attr("id", test.ID))
	}
	return rawElement{Attrs: append(attrs, test.Attrs...), Inner: test.Inner}
}

func keywordElement(keyword *robotoutput.Keyword) rawElement {
	var attrs []xml.Attr
	if keyword.Name != "" {
		attrs = append(attrs, attr("name", keyword.Name))
	}
	if keyword.Type != "" {
		attrs = append(attrs, attr("type", keyword.Type))
	}
	return rawElement{Attrs: append(attrs, keyword.Attrs...), Inner: keyword.Inner}
}

func buildStatistics(suite *robotoutput.Suite, test *robotoutput.Test) statistics {
	passed, failed, skipped := 0, 0, 0
	if test.Status != nil {
		switch test.Status.Value {
		case chunk.StatusPass:
			passed = 1
		case chunk.StatusFail:
			failed = 1
		case chunk.StatusSkip:
			skipped = 1
		}
	}

	stats := statistics{
		Total: statGroup{Stats: []stat{
			{Pass: passed, Fail: failed, Skip: skipped, Label: "All Tests"},
		}},
		Suite: statGroup{Stats: []stat{
			{Name: suite.Name, ID: suite.ID, Pass: passed, Fail: failed, Skip: skipped},
		}},
	}
	for _, tag := range test.Tags {
		stats.Tags.Stats = append(stats.Tags.Stats, stat{Pass: passed, Fail: failed, Skip: skipped, Label: tag})
	}
	return stats
}

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}
