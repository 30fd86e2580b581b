package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kmacinski/demonos/internal/app"
	"github.com/kmacinski/demonos/internal/config"
	"github.com/kmacinski/demonos/internal/logging"
	"go.uber.org/zap"
)

var (
	version = "dev"
)

func main() {
	// Parse flags
	var (
		showVersion bool
		showHelp    bool
		skipBoot    bool
		configPath  string
		logLevel    string
	)

	flag.BoolVar(&showVersion, "v", false, "Show version")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showHelp, "h", false, "Show help")
	flag.BoolVar(&showHelp, "help", false, "Show help")
	flag.StringVar(&configPath, "c", "", "Config file")
	flag.StringVar(&configPath, "config", "", "Config file")
	flag.BoolVar(&skipBoot, "skip-boot", false, "Skip the boot log")
	flag.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flag.Parse()

	if showVersion {
		fmt.Printf("demonos %s\n", version)
		os.Exit(0)
	}

	if showHelp {
		printHelp()
		os.Exit(0)
	}

	if configPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		configPath = p
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Log.Level
	logCfg.Development = cfg.Log.Development
	if cfg.Log.File != "" {
		logCfg.OutputPaths = []string{cfg.Log.File}
	}
	logger, err := logging.New(logCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		logger = logging.NewNop()
	}
	defer logger.Sync()

	logger.Info("starting demonos",
		zap.String("version", version),
		zap.String("config", configPath),
		zap.String("theme", cfg.Appearance.Theme),
	)

	application := app.New(app.Options{
		Config:     cfg,
		ConfigPath: configPath,
		Log:        logger.Logger,
		SkipBoot:   skipBoot,
	})

	p := tea.NewProgram(
		application,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	application.SetProgram(p)
	defer application.Cleanup()

	if _, err := p.Run(); err != nil {
		logger.Error("program failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println(`demonos - a desktop in your terminal

Windows, a taskbar, a start menu and a handful of apps, driven by mouse
and keyboard.

Usage:
  demonos [flags]

Flags:
  -c, --config      Config file (default: $XDG_CONFIG_HOME/demonos/config.yaml)
      --skip-boot   Skip the boot log
      --log-level   Log level: debug, info, warn, error
  -h, --help        Show help
  -v, --version     Show version

Keybindings:
  F1                Toggle help
  F2                Start menu
  Alt+Tab / F3      Next window
  F4                Previous window
  Alt+W             Close window
  Alt+N             Minimize
  Alt+M             Maximize / restore
  Alt+1..6          Open proxy, browser, settings, terminal, games, about
  Ctrl+Y            Copy URL or last terminal line
  Ctrl+C            Quit

Mouse:
  Drag a title bar to move a window, drag the ◢ corner to resize it,
  and click taskbar entries to focus or minimize.`)
}
