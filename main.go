package main

import (
	"os"

	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-steputils/v2/stepenv"
	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/joho/godotenv"

	"github.com/ajadach/robotframework-LogXML2Chunks/chunk"
	"github.com/ajadach/robotframework-LogXML2Chunks/chunkfile"
	"github.com/ajadach/robotframework-LogXML2Chunks/output"
	"github.com/ajadach/robotframework-LogXML2Chunks/rebot"
	"github.com/ajadach/robotframework-LogXML2Chunks/step"
)

func main() {
	os.Exit(run())
}

func run() int {
	logger := log.NewLogger()

	// Inputs come from the environment; a .env file covers local runs.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warnf("Failed to load .env file: %s", err)
	}

	splitter := createSplitter(logger)

	config, err := splitter.ProcessConfig()
	if err != nil {
		logger.Errorf("Process config: %s", err)
		return 1
	}

	config.GenerateReports = splitter.InstallDeps(config.GenerateReports)

	result, runErr := splitter.Run(config)
	if runErr != nil {
		logger.Errorf("Run: %s", runErr)
	}

	if err := splitter.Export(result, runErr != nil); err != nil {
		logger.Errorf("Export outputs: %s", err)
		return 1
	}

	if runErr != nil {
		return 1
	}
	return 0
}

func createSplitter(logger log.Logger) step.ChunkSplitter {
	envRepository := stepenv.NewRepository(env.NewRepository())
	inputParser := stepconf.NewInputParser(envRepository)
	commandFactory := command.NewFactory(envRepository)
	pathModifier := pathutil.NewPathModifier()
	pathChecker := pathutil.NewPathChecker()
	fileManager := fileutil.NewFileManager()

	chunkWriter := chunkfile.NewWriter(fileManager)
	chunkReader := chunk.NewReader(logger, pathChecker, fileManager)
	rebotRunner := rebot.NewRunner(logger, commandFactory)
	exporter := output.NewExporter(envRepository, logger, fileManager)

	return step.NewChunkSplitter(inputParser, logger, pathModifier, pathChecker, fileManager, chunkWriter, chunkReader, rebotRunner, exporter)
}
