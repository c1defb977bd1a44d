package main

import (
	"flag"
	"github.com/zhouchenh/lrucache/internal/common"
	"github.com/zhouchenh/lrucache/internal/config"
	"github.com/zhouchenh/lrucache/internal/core"
	"github.com/zhouchenh/lrucache/internal/logger"
	"github.com/zhouchenh/lrucache/internal/replay"
	"os"
)

var (
	configFilePath = flag.String("config", "", "Specify a config file")
	version        = flag.Bool("version", false, "Print version information and exit")
	test           = flag.Bool("test", false, "Test the config file and exit")
)

func printVersion() {
	version := core.VersionStatement()
	for _, s := range version {
		common.Output(s)
	}
}

func getConfigFilePath() string {
	return *configFilePath
}

func main() {
	flag.Parse()
	printVersion()
	if *version {
		return
	}
	file, err := core.OpenConfig(getConfigFilePath())
	if err != nil {
		common.ErrOutput(common.Concatenate("config: Failed to open file: ", err))
		os.Exit(1)
	}
	cfg, err := config.LoadConfig(file)
	_ = file.Close()
	if err != nil {
		common.ErrOutput(common.Concatenate("config: Failed to load config: ", err))
		os.Exit(1)
	}
	if *test {
		common.Output("config: Syntax is OK")
		os.Exit(0)
	}
	cfg.LogOptions().Apply()

	runner, err := replay.NewRunner(cfg.Capacity)
	if err != nil {
		logger.Err(err).Msg("replay: Failed to create cache")
		os.Exit(1)
	}
	if len(cfg.Operations) < 1 {
		logger.Warning().Msg("replay: No operations configured")
	}
	logger.Info().Int("capacity", cfg.Capacity).Int("operations", len(cfg.Operations)).Msg("replay: Starting")
	results, err := runner.Run(cfg.Operations)
	for _, result := range results {
		common.Output(result.Index, result)
	}
	common.Output(common.Concatenate("size=", runner.Len(), "/", runner.Cap(), " evictions=", runner.Evictions(), " keys=", common.QuoteKeys(runner.Keys())))
	if err != nil {
		logger.Err(err).Msg("replay: Stopped")
		os.Exit(1)
	}
}
