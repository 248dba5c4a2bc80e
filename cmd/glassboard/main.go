package main

import (
	"flag"
	"os"

	"glassboard/internal/agent"
	"glassboard/internal/config"
	"glassboard/internal/logger"
)

func main() {
	dump := flag.Bool("dump", false, "print the resolved board as JSON and exit")
	resetCache := flag.Bool("reset-cache", false, "drop the locally cached board and exit")
	boardID := flag.String("board", "", "board id (overrides BOARD_ID)")
	flag.Parse()

	cfg := config.Load()
	logger.Initialize(cfg.LogLevel, cfg.LogJSON)
	if *boardID != "" {
		cfg.BoardID = *boardID
	}

	a, err := agent.Init(cfg)
	if err != nil {
		logger.Log.Error("❌ Agent initialization failed", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	switch {
	case *resetCache:
		err = a.ResetCache()
	case *dump:
		err = a.DumpBoard(os.Stdout)
	default:
		a.Run()
	}

	if err != nil {
		logger.Log.Error("❌ " + err.Error())
		os.Exit(1)
	}
}
