package step

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	shellquote "github.com/kballard/go-shellquote"

	"github.com/ajadach/robotframework-LogXML2Chunks/chunk"
	"github.com/ajadach/robotframework-LogXML2Chunks/chunkfile"
	"github.com/ajadach/robotframework-LogXML2Chunks/output"
	"github.com/ajadach/robotframework-LogXML2Chunks/rebot"
	"github.com/ajadach/robotframework-LogXML2Chunks/robotoutput"
)

const defaultOutputDir = "chunked_results"

// Input ...
type Input struct {
	OutputXMLPath         string `env:"output_xml_path,required"`
	OutputDir             string `env:"output_dir"`
	FilenamePrefixPattern string `env:"filename_prefix_pattern"`
	RebotOptions          string `env:"rebot_options"`
	GenerateReports       bool   `env:"generate_reports,opt[yes,no]"`
	CollectData           bool   `env:"collect_data,opt[yes,no]"`
	Verbose               bool   `env:"verbose,opt[yes,no]"`
}

// Config ...
type Config struct {
	OutputXMLPath string
	OutputDir     string
	PrefixPattern *regexp.Regexp
	RebotArgs     []string

	GenerateReports bool
	CollectData     bool
}

// Result ...
type Result struct {
	OutputDir string
	Records   []chunk.Record
}

// ChunkSplitter extracts the test cases of a Robot Framework output.xml
// into standalone chunk files with HTML logs and per-test metadata records.
type ChunkSplitter struct {
	inputParser  stepconf.InputParser
	logger       log.Logger
	pathModifier pathutil.PathModifier
	pathChecker  pathutil.PathChecker
	fileManager  fileutil.FileManager
	chunkWriter  chunkfile.Writer
	chunkReader  chunk.Reader
	rebotRunner  rebot.Runner
	exporter     output.Exporter
}

// NewChunkSplitter ...
func NewChunkSplitter(inputParser stepconf.InputParser, logger log.Logger, pathModifier pathutil.PathModifier, pathChecker pathutil.PathChecker, fileManager fileutil.FileManager, chunkWriter chunkfile.Writer, chunkReader chunk.Reader, rebotRunner rebot.Runner, exporter output.Exporter) ChunkSplitter {
	return ChunkSplitter{
		inputParser:  inputParser,
		logger:       logger,
		pathModifier: pathModifier,
		pathChecker:  pathChecker,
		fileManager:  fileManager,
		chunkWriter:  chunkWriter,
		chunkReader:  chunkReader,
		rebotRunner:  rebotRunner,
		exporter:     exporter,
	}
}

// ProcessConfig validates the step inputs. A broken prefix pattern or a
// missing source XML fails here, before any test is processed.
func (s ChunkSplitter) ProcessConfig() (Config, error) {
	var input Input
	if err := s.inputParser.Parse(&input); err != nil {
		return Config{}, err
	}

	stepconf.Print(input)
	s.logger.Println()
	s.logger.EnableDebugLog(input.Verbose)

	outputXMLPath, err := s.pathModifier.AbsPath(input.OutputXMLPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to get absolute path of output XML (%s): %s", input.OutputXMLPath, err)
	}
	if exists, err := s.pathChecker.IsPathExists(outputXMLPath); err != nil {
		return Config{}, fmt.Errorf("failed to check output XML (%s): %s", outputXMLPath, err)
	} else if !exists {
		return Config{}, fmt.Errorf("output XML not found at: %s", outputXMLPath)
	}

	outputDir := input.OutputDir
	if outputDir == "" {
		outputDir = defaultOutputDir
	}
	outputDir, err = s.pathModifier.AbsPath(outputDir)
	if err != nil {
		return Config{}, fmt.Errorf("failed to get absolute path of output dir (%s): %s", input.OutputDir, err)
	}

	var prefixPattern *regexp.Regexp
	if input.FilenamePrefixPattern != "" {
		prefixPattern, err = chunk.CompilePrefixPattern(input.FilenamePrefixPattern)
		if err != nil {
			return Config{}, err
		}
	}

	var rebotArgs []string
	if input.RebotOptions != "" {
		rebotArgs, err = shellquote.Split(input.RebotOptions)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse rebot options (%s): %s", input.RebotOptions, err)
		}
	}

	return Config{
		OutputXMLPath:   outputXMLPath,
		OutputDir:       outputDir,
		PrefixPattern:   prefixPattern,
		RebotArgs:       rebotArgs,
		GenerateReports: input.GenerateReports,
		CollectData:     input.CollectData,
	}, nil
}

// InstallDeps checks the rebot tool and reports whether HTML log generation
// can stay enabled. A missing rebot downgrades the run to XML-only chunks
// instead of failing it.
func (s ChunkSplitter) InstallDeps(generateReports bool) bool {
	if !generateReports {
		return false
	}

	rebotVersion, err := s.rebotRunner.CheckInstall()
	if err != nil {
		s.logger.Warnf("rebot is not available: %s", err)
		s.logger.Warnf("HTML log generation disabled, only chunk XML files will be created")
		return false
	}

	s.logger.Printf("- rebot version: %s", rebotVersion)
	s.logger.Println()
	return true
}

// Run splits the output XML into per-test chunk files and builds the record
// of every extracted test. A malformed test is captured in its record and
// does not abort the other tests.
func (s ChunkSplitter) Run(cfg Config) (Result, error) {
	result := Result{OutputDir: cfg.OutputDir}

	file, err := s.fileManager.Open(cfg.OutputXMLPath)
	if err != nil {
		return result, fmt.Errorf("failed to open output XML (%s): %s", cfg.OutputXMLPath, err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.logger.Warnf("Failed to close %s: %s", cfg.OutputXMLPath, err)
		}
	}()

	document, err := robotoutput.Parse(file)
	if err != nil {
		return result, err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return result, fmt.Errorf("failed to create output dir (%s): %s", cfg.OutputDir, err)
	}
	s.removeStaleChunks(cfg.OutputDir)

	total := document.TestCount()
	s.logger.Infof("Found %d test cases", total)

	builder := chunk.NewBuilder(cfg.PrefixPattern)

	index := 0
	document.EachTest(func(suite *robotoutput.Suite, test *robotoutput.Test) {
		index++
		result.Records = append(result.Records, s.processTest(cfg, builder, document, suite, test, index, total))
	})

	if cfg.CollectData {
		s.logger.Println()
		s.logger.Infof("Collecting data from chunk files")

		records, err := s.chunkReader.FromDir(cfg.OutputDir, cfg.PrefixPattern)
		if err != nil {
			return result, fmt.Errorf("failed to collect chunk data: %s", err)
		}
		result.Records = records
	}

	return result, nil
}

// Chunk files left behind by a previous run would leak into data collection,
// so the output dir is cleared of them before splitting.
func (s ChunkSplitter) removeStaleChunks(outputDir string) {
	for _, pattern := range []string{"*.xml", "*_log.html"} {
		paths, err := filepath.Glob(filepath.Join(outputDir, pattern))
		if err != nil {
			continue
		}
		for _, path := range paths {
			s.logger.Debugf("Removing stale chunk file: %s", path)
			if err := s.fileManager.Remove(path); err != nil {
				s.logger.Warnf("Failed to remove stale chunk file (%s): %s", path, err)
			}
		}
	}
}

func (s ChunkSplitter) processTest(cfg Config, builder chunk.Builder, document *robotoutput.Document, suite *robotoutput.Suite, test *robotoutput.Test, index, total int) chunk.Record {
	record, err := builder.Build(test, index)
	if err != nil {
		s.logger.Errorf("[%d/%d] %s", index, total, err)
		return chunk.Record{
			Index:    index,
			TestName: test.Name,
			TestID:   test.ID,
			Success:  false,
			Error:    err.Error(),
		}
	}

	if record.Interface != "" {
		s.logger.Printf("[%d/%d] Processing: %s (prefix: %s)", index, total, test.Name, record.Interface)
	} else {
		s.logger.Printf("[%d/%d] Processing: %s", index, total, test.Name)
	}

	xmlPath, err := s.chunkWriter.Write(cfg.OutputDir, document, suite, test, index, record.Interface)
	if err != nil {
		s.logger.Errorf("Failed to write chunk: %s", err)
		record.Success = false
		record.Error = err.Error()
		return record
	}
	record.XMLFile = xmlPath
	record.Success = true
	s.logger.Donef("Created XML: %s", xmlPath)

	if cfg.GenerateReports {
		logPath := chunk.LogFilePath(xmlPath)
		if err := s.rebotRunner.WriteLog(xmlPath, logPath, test.Name, cfg.RebotArgs); err != nil {
			// The XML chunk is still usable without its HTML log.
			s.logger.Warnf("Failed to generate log for %s: %s", test.Name, err)
		} else {
			record.LogFile = logPath
			s.logger.Donef("Generated log: %s", logPath)
		}
	}

	return record
}

// Export writes the summary of the run and exposes the step outputs.
func (s ChunkSplitter) Export(result Result, failed bool) error {
	s.exporter.ExportRunResult(failed)

	if result.OutputDir == "" {
		return nil
	}
	s.exporter.ExportChunksDir(result.OutputDir)

	summaryPath, err := s.exporter.ExportSummary(result.OutputDir, result.Records)
	if err != nil {
		return err
	}

	succeeded := 0
	for _, record := range result.Records {
		if record.Success {
			succeeded++
		}
	}
	s.logger.Println()
	s.logger.Donef("Exported %d records (%d successful) to %s", len(result.Records), succeeded, summaryPath)
	return nil
}
