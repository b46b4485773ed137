package chunk

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"golang.org/x/sync/errgroup"

	"github.com/ajadach/robotframework-LogXML2Chunks/robotoutput"
)

// Suffix of the HTML log generated next to a chunk XML file.
const logFileSuffix = "_log.html"

// How many chunk files are parsed concurrently by FromDir. Records are
// independent, so read-back parallelizes freely; the limit only bounds open
// file handles.
const maxParallelReads = 4

// Chunk filenames start with the 1-based extraction index.
var chunkIndexPattern = regexp.MustCompile(`^(\d+)_`)

// Reader re-derives records from already written chunk XML files.
type Reader interface {
	FromFile(xmlPath string, pattern *regexp.Regexp) Record
	FromDir(folder string, pattern *regexp.Regexp) ([]Record, error)
}

type reader struct {
	logger      log.Logger
	pathChecker pathutil.PathChecker
	fileManager fileutil.FileManager
}

// NewReader ...
func NewReader(logger log.Logger, pathChecker pathutil.PathChecker, fileManager fileutil.FileManager) Reader {
	return reader{
		logger:      logger,
		pathChecker: pathChecker,
		fileManager: fileManager,
	}
}

// FromFile parses one chunk XML file back into a record. Failures never
// surface as errors: a file that cannot be read or lacks a suite or test
// element yields a record with Success=false and the reason in Error.
func (r reader) FromFile(xmlPath string, pattern *regexp.Regexp) Record {
	failure := func(format string, args ...interface{}) Record {
		return Record{XMLFile: xmlPath, Success: false, Error: fmt.Sprintf(format, args...)}
	}

	file, err := r.fileManager.Open(xmlPath)
	if err != nil {
		return failure("failed to open chunk: %s", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			r.logger.Warnf("Failed to close %s: %s", xmlPath, err)
		}
	}()

	document, err := robotoutput.Parse(file)
	if err != nil {
		return failure("%s", err)
	}

	test := firstTest(document.Suite)
	if test == nil {
		return failure("no test element found in XML")
	}

	record, err := NewBuilder(pattern).Build(test, indexFromFilename(xmlPath))
	if err != nil {
		return failure("%s", err)
	}

	record.XMLFile = xmlPath
	record.Success = true

	logPath := LogFilePath(xmlPath)
	if exists, err := r.pathChecker.IsPathExists(logPath); err != nil {
		r.logger.Warnf("Failed to check log file (%s): %s", logPath, err)
	} else if exists {
		record.LogFile = logPath
	}

	return record
}

// FromDir collects the records of every chunk XML file in a folder, in
// filename order. Chunks are parsed in parallel; a missing folder or one
// without chunk files yields an empty result, not an error.
func (r reader) FromDir(folder string, pattern *regexp.Regexp) ([]Record, error) {
	if exists, err := r.pathChecker.IsPathExists(folder); err != nil {
		return nil, fmt.Errorf("failed to check folder (%s): %s", folder, err)
	} else if !exists {
		r.logger.Warnf("Folder does not exist: %s", folder)
		return nil, nil
	}

	paths, err := filepath.Glob(filepath.Join(folder, "*.xml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list chunk files in %s: %s", folder, err)
	}
	sort.Strings(paths)

	if len(paths) == 0 {
		r.logger.Warnf("No chunk XML files found in %s", folder)
		return nil, nil
	}
	r.logger.Debugf("Found %d chunk XML files in %s", len(paths), folder)

	records := make([]Record, len(paths))
	var group errgroup.Group
	group.SetLimit(maxParallelReads)
	for i, path := range paths {
		i, path := i, path
		group.Go(func() error {
			records[i] = r.FromFile(path, pattern)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

// LogFilePath returns the path of the HTML log belonging to a chunk XML
// file: the same stem with a "_log.html" suffix.
func LogFilePath(xmlPath string) string {
	return strings.TrimSuffix(xmlPath, filepath.Ext(xmlPath)) + logFileSuffix
}

func firstTest(suite *robotoutput.Suite) *robotoutput.Test {
	if suite == nil {
		return nil
	}
	if len(suite.Tests) > 0 {
		return suite.Tests[0]
	}
	for _, child := range suite.Suites {
		if test := firstTest(child); test != nil {
			return test
		}
	}
	return nil
}

func indexFromFilename(xmlPath string) int {
	match := chunkIndexPattern.FindStringSubmatch(filepath.Base(xmlPath))
	if match == nil {
		return 0
	}
	index, err := strconv.Atoi(match[1])
	if err != nil {
		return 0
	}
	return index
}
