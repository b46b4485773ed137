package output

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"

	"github.com/ajadach/robotframework-LogXML2Chunks/chunk"
)

// Step output keys exposed for subsequent steps.
const (
	chunksDirEnvVarKey     = "ROBOT_CHUNKS_DIR"
	chunksCountEnvVarKey   = "ROBOT_CHUNKS_COUNT"
	chunksSummaryEnvVarKey = "ROBOT_CHUNKS_SUMMARY_PATH"
	runResultEnvVarKey     = "ROBOT_CHUNKS_RESULT"
)

// Name of the summary JSON written next to the chunk files.
const summaryFileName = "chunks_summary.json"

// Exporter exposes the results of a chunking run.
type Exporter interface {
	ExportRunResult(failed bool)
	ExportChunksDir(outputDir string)
	ExportSummary(outputDir string, records []chunk.Record) (string, error)
}

type exporter struct {
	envRepository env.Repository
	logger        log.Logger
	fileManager   fileutil.FileManager
}

// NewExporter ...
func NewExporter(envRepository env.Repository, logger log.Logger, fileManager fileutil.FileManager) Exporter {
	return &exporter{
		envRepository: envRepository,
		logger:        logger,
		fileManager:   fileManager,
	}
}

func (e exporter) ExportRunResult(failed bool) {
	status := "succeeded"
	if failed {
		status = "failed"
	}
	if err := e.envRepository.Set(runResultEnvVarKey, status); err != nil {
		e.logger.Warnf("Failed to export: %s: %s", runResultEnvVarKey, err)
	}
}

func (e exporter) ExportChunksDir(outputDir string) {
	if err := e.envRepository.Set(chunksDirEnvVarKey, outputDir); err != nil {
		e.logger.Warnf("Failed to export: %s: %s", chunksDirEnvVarKey, err)
	}
}

// ExportSummary writes the records of the run into a summary JSON file in
// the output directory and exports its path and the record count.
func (e exporter) ExportSummary(outputDir string, records []chunk.Record) (string, error) {
	if records == nil {
		records = []chunk.Record{}
	}
	content, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to render chunks summary: %s", err)
	}

	summaryPath := filepath.Join(outputDir, summaryFileName)
	if err := e.fileManager.WriteBytes(summaryPath, content); err != nil {
		return "", fmt.Errorf("failed to write chunks summary (%s): %s", summaryPath, err)
	}

	if err := e.envRepository.Set(chunksSummaryEnvVarKey, summaryPath); err != nil {
		e.logger.Warnf("Failed to export: %s: %s", chunksSummaryEnvVarKey, err)
	}
	if err := e.envRepository.Set(chunksCountEnvVarKey, strconv.Itoa(len(records))); err != nil {
		e.logger.Warnf("Failed to export: %s: %s", chunksCountEnvVarKey, err)
	}

	return summaryPath, nil
}
