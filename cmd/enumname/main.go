package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/op/go-logging"
	"golang.org/x/sys/unix"

	"github.com/sublee/enumname/internal/config"
	enumnameinternal "github.com/sublee/enumname/internal/enumname"
	"github.com/sublee/enumname/internal/logger"
)

var Version = "dev"

var (
	bFlag      = flag.String("b", "", "comma-separated build tags")
	tFlag      = flag.Bool("t", false, "include tests")
	oFlag      = flag.String("o", "enumname_gen.go", "output file name")
	cFlag      = flag.String("c", "auto", "colorize (auto|always|never)")
	vFlag      = flag.Bool("v", false, "verbose logging")
	configFlag = flag.String("config", config.DefaultPath, "config file")
)

func init() {
	enumnameinternal.Version = Version
}

func main() {
	flag.Parse()

	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	level, _ := cfg.Level()
	logger.Init(level)

	color := false
	switch cfg.Color {
	case "auto":
		color = isatty()
	case "always":
		color = true
	}

	patterns := flag.Args()
	if len(patterns) == 0 {
		patterns = cfg.Patterns
	}

	outs, err := enumnameinternal.Main(context.Background(), wd, os.Environ(), cfg.Tags, cfg.Tests, cfg.Output, patterns)
	if err != nil {
		message := err.Error()
		if color {
			message = colorize(message)
		}
		fmt.Fprintln(os.Stderr, message)
		os.Exit(1)
	}

	for out, code := range outs {
		if err := os.WriteFile(out, code, 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if relOut, err := filepath.Rel(wd, out); err == nil {
			out = relOut
		}
		fmt.Println("Generated:", out)
	}
}

// loadConfig loads the config file and the environment variables. Flags set on
// the command line override them.
func loadConfig() (config.Config, error) {
	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	cfg, err := config.Load(*configFlag, explicit["config"])
	if err != nil {
		return cfg, err
	}

	if explicit["b"] {
		cfg.Tags = *bFlag
	}
	if explicit["t"] {
		cfg.Tests = *tFlag
	}
	if explicit["o"] {
		cfg.Output = *oFlag
	}
	if explicit["c"] {
		cfg.Color = *cFlag
	}
	if *vFlag {
		cfg.LogLevel = logging.DEBUG.String()
	}
	return cfg, cfg.Validate()
}

// isatty reports whether the program is running in a terminal. If it is true,
// we can use ANSI color codes.
func isatty() bool {
	_, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	return err == nil
}

var (
	reTab  = regexp.MustCompile(`(?m)^\t.+`)
	reFail = regexp.MustCompile(`^\tFAIL:.+`)
)

// colorize adds ANSI color codes to the message.
func colorize(message string) string {
	const (
		red   = "\033[31m"
		dim   = "\033[2m"
		reset = "\033[0m"
	)
	m := []byte(message)
	m = reTab.ReplaceAllFunc(m, func(b []byte) []byte {
		if reFail.Match(b) {
			return []byte(red + string(b) + reset)
		}
		return []byte(dim + string(b) + reset)
	})
	return string(m)
}
