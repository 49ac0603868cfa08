// Copyright 2025 The wordcheck Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the wordcheck spell checking server and CLI.

wordcheck loads a Hunspell-style dictionary (a .aff affix grammar and a .dic
root word list), expands every root through its affix rules and answers
check, suggest and completion queries. It can run as a MessagePack IPC
server for editors or as an interactive CLI.

# Usage

Start the server with the dictionary from the config file:

	wordcheck

Pick a dictionary directory and locale, with debug logs on stderr:

	wordcheck -data /usr/share/hunspell -locale en_US -d

Check text interactively:

	wordcheck -c -limit 8

List the dictionaries found in the data directory:

	wordcheck -list

# Configuration

Settings live in config.toml in the user config directory, created with
defaults on first run. Flags override the file:

	[dict]
	dir = "data"
	locale = "en_US"
	flag = ""

	[suggest]
	default_limit = 5
	max_limit = 64

See pkg/server for the IPC protocol.

# Command Line Flags

	-data string
	    Directory containing <locale>.aff and <locale>.dic
	-locale string
	    Dictionary to load
	-flag string
	    FLAG encoding to assume when the affix file declares none
	-config string
	    Path to a config file
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-limit int
	    Number of suggestions to return
	-list
	    List available dictionaries and exit
	-version
	    Show current version
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordcheck/internal/cli"
	"github.com/bastiangx/wordcheck/internal/logger"
	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/bastiangx/wordcheck/pkg/affix"
	"github.com/bastiangx/wordcheck/pkg/config"
	"github.com/bastiangx/wordcheck/pkg/dictionary"
	"github.com/bastiangx/wordcheck/pkg/server"
	"github.com/bastiangx/wordcheck/pkg/spell"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.1.0-beta"
	AppName = "wordcheck"
	gh      = "https://github.com/bastiangx/wordcheck"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, dictionary loading and the chosen front end.
// It does not implement logic for them and only manages the flow.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	dataDir := flag.String("data", "", "Directory containing <locale>.aff and <locale>.dic (default from config)")
	locale := flag.String("locale", "", "Dictionary to load, e.g. en_US (default from config)")
	flagEncoding := flag.String("flag", "", "FLAG encoding to assume when the affix file declares none: long, num, UTF-8")
	configPath := flag.String("config", "", "Path to a config file")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- check text interactively")
	limit := flag.Int("limit", 0, "Number of suggestions to return (default from config)")
	listOnly := flag.Bool("list", false, "List available dictionaries and exit")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger.SetupGlobal(*debugMode)

	appConfig, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activePath))

	if *dataDir != "" {
		appConfig.Dict.Dir = *dataDir
	}
	if *locale != "" {
		appConfig.Dict.Locale = *locale
	}
	if *flagEncoding != "" {
		appConfig.Dict.Flag = *flagEncoding
	}

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}
	resolvedDataDir := pathResolver.GetDataDir(appConfig.Dict.Dir)
	log.Debugf("Using data dir at: %s", resolvedDataDir)

	if *listOnly {
		listLocales(resolvedDataDir)
		return
	}

	engine, err := loadEngine(resolvedDataDir, appConfig)
	if err != nil {
		log.Error("Failed to load dictionary", "dir", resolvedDataDir, "locale", appConfig.Dict.Locale, "err", err)
		log.Print("Use -list to see the dictionaries found in the data directory")
		os.Exit(1)
	}

	if *cliMode {
		cliLimit := appConfig.CLI.DefaultLimit
		if *limit > 0 {
			cliLimit = *limit
		}
		log.Debug("Input info:", "limit", cliLimit, "color", appConfig.CLI.Color)

		inputHandler := cli.NewInputHandler(engine, cliLimit, appConfig.Server.MaxWordLength, appConfig.CLI.Color)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	if *limit > 0 {
		appConfig.Suggest.DefaultLimit = *limit
	}
	showStartupInfo(engine, resolvedDataDir)

	srv := server.NewServer(engine, appConfig)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

// loadEngine reads the configured dictionary and builds it.
func loadEngine(dir string, cfg *config.Config) (*spell.Engine, error) {
	src, err := dictionary.LoadSource(dir, cfg.Dict.Locale)
	if err != nil {
		return nil, err
	}

	var opts []spell.Option
	opts = append(opts, spell.WithLogger(logger.New("spell")))
	if cfg.Dict.Flag != "" {
		opts = append(opts, spell.WithFlags(affix.FlagTable{affix.FlagEncoding: cfg.Dict.Flag}))
	}
	return spell.New(src.Locale, src.Affix, src.Words, opts...)
}

func listLocales(dir string) {
	locales, err := dictionary.AvailableLocales(dir)
	if err != nil {
		log.Fatalf("Failed to scan %s: %v", dir, err)
	}
	if len(locales) == 0 {
		log.Warnf("No dictionaries found in %s", dir)
		return
	}
	for _, l := range locales {
		fmt.Printf("%-10s %8d words  %s\n", l.Locale, l.WordCount, l.WordsPath)
	}
}

func printVersion() {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	l.SetStyles(styles)

	l.Print("")
	l.Print("[ wordcheck ] Hunspell dictionaries, checked and corrected")
	l.Print("", "version", Version)
	l.Print("")
	l.Print("use -h or --help to see available options")
	l.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process on stderr.
func showStartupInfo(engine *spell.Engine, dataDir string) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	stats := engine.Stats()
	fmt.Fprintln(os.Stderr, "===========")
	fmt.Fprintln(os.Stderr, " wordcheck ")
	fmt.Fprintln(os.Stderr, "===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("locale: %s (%d words, %d rules)", engine.Locale(), stats["totalWords"], stats["rules"])
	log.Infof("data dir: ( %s )", dataDir)
	log.Info("status: ready")
	fmt.Fprintln(os.Stderr, "===========")

	log.SetLevel(currentLevel)
}
