package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/mcncl/toonvert/internal/config"
	"github.com/mcncl/toonvert/internal/encoder"
	"github.com/mcncl/toonvert/internal/errors"
	"github.com/mcncl/toonvert/internal/logger"
	"github.com/mcncl/toonvert/internal/models"
	"github.com/mcncl/toonvert/internal/parser"
	"github.com/mcncl/toonvert/internal/render"
	"github.com/mcncl/toonvert/internal/server"
	"github.com/mcncl/toonvert/internal/tokens"
)

// CLI defines the command-line interface
var CLI struct {
	Input       string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output      string `help:"Path to output TOON file. If not specified, writes to stdout." short:"o" type:"path"`
	Indent      int    `help:"Spaces per indentation level." default:"2"`
	Stats       bool   `help:"Print a token comparison of JSON, YAML, and TOON to stderr." short:"s"`
	Serve       bool   `help:"Run the playground HTTP server instead of converting."`
	Addr        string `help:"Address for the playground server." default:""`
	Config      string `help:"Path to a config file. Defaults to .toonvert.yaml discovery." short:"c" type:"path"`
	Debug       bool   `help:"Enable debug logging." short:"d"`
	Version     bool   `help:"Show version information." short:"v"`
	Interactive bool   `help:"Run in interactive mode, allowing direct JSON input with Ctrl+D to process." short:"I"`
}

// Version information
const (
	Version = server.Version
)

func main() {
	cliParser := kong.Must(&CLI,
		kong.Name("toonvert"),
		kong.Description("A tool to convert JSON to TOON (Token-Oriented Object Notation)"),
		kong.UsageOnError(),
	)

	// No arguments and a terminal on stdin means interactive mode.
	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	if _, err := cliParser.Parse(os.Args[1:]); err != nil {
		// Usage is already shown by kong.UsageOnError().
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("toonvert version %s\n", Version)
		return
	}

	logger.Initialize(CLI.Debug)

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: toonvert --help\n")
		os.Exit(1)
	}
}

// run executes the main program logic
func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return errors.NewInputError("failed to load configuration", err)
	}
	if CLI.Indent != encoder.DefaultIndent {
		cfg.Encoder.Indent = CLI.Indent
	}
	if CLI.Addr != "" {
		cfg.Server.Addr = CLI.Addr
	}

	if CLI.Serve {
		return serve(cfg)
	}

	// 1. Parse JSON input
	root, err := parseInput()
	if err != nil {
		return err
	}

	// 2. Encode to TOON
	enc := encoder.New(
		encoder.WithIndent(cfg.Encoder.Indent),
		encoder.WithMaxDepth(cfg.Encoder.MaxDepth),
	)
	out, err := enc.Encode(root)
	if err != nil {
		return err
	}

	// 3. Optionally report token savings
	if CLI.Stats {
		printStats(root, out)
	}

	// 4. Output the result
	return writeOutput(out)
}

func loadConfig() (*config.Config, error) {
	if CLI.Config != "" {
		return config.LoadConfig(CLI.Config)
	}
	return config.LoadOrDefault()
}

// serve runs the playground server until interrupted.
func serve(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.New(cfg).Serve(ctx, cfg.Server.Addr)
}

// printStats writes a token comparison of the three formats to stderr.
// Counts may be estimates when the tokenizer data is unavailable.
func printStats(root *models.Value, toonOut string) {
	counter := tokens.NewCounter()

	jsonOut, err := render.JSON(root)
	if err != nil {
		logger.Warnf("skipping stats: %v", err)
		return
	}
	yamlOut, err := render.YAML(root)
	if err != nil {
		logger.Warnf("skipping stats: %v", err)
		return
	}

	jsonTokens, estimated := counter.Count(jsonOut)
	yamlTokens, _ := counter.Count(yamlOut)
	toonTokens, _ := counter.Count(toonOut)

	suffix := ""
	if estimated {
		suffix = " (estimated)"
	}
	fmt.Fprintf(os.Stderr, "JSON: %d tokens%s\n", jsonTokens, suffix)
	fmt.Fprintf(os.Stderr, "YAML: %d tokens%s\n", yamlTokens, suffix)
	fmt.Fprintf(os.Stderr, "TOON: %d tokens%s\n", toonTokens, suffix)

	vsJSON := tokens.Stats{Before: jsonTokens, After: toonTokens}
	vsYAML := tokens.Stats{Before: yamlTokens, After: toonTokens}
	fmt.Fprintf(os.Stderr, "TOON saves %.1f%% vs JSON, %.1f%% vs YAML\n",
		vsJSON.PercentReduction(), vsYAML.PercentReduction())
}

// parseInput reads JSON from file or stdin
func parseInput() (*models.Value, error) {
	if CLI.Input != "" {
		return parser.ParseFile(CLI.Input)
	}

	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return nil, errors.NewInputError("failed to access stdin", err)
	}

	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive (not piped)
		if CLI.Interactive {
			return readInteractiveInput()
		}
		return nil, errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	// Read from stdin (piped input)
	jsonData, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, errors.NewInputError("failed to read from stdin", err)
	}
	if len(jsonData) == 0 {
		return nil, errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}

	return parser.ParseString(string(jsonData))
}

// writeOutput writes the encoded document to file or stdout
func writeOutput(out string) error {
	if CLI.Output != "" {
		if err := os.WriteFile(CLI.Output, []byte(out+"\n"), 0644); err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		fmt.Fprintf(os.Stderr, "TOON output written to %s\n", CLI.Output)
		return nil
	}

	if _, err := fmt.Println(out); err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInteractiveInput provides an interactive mode for users to paste JSON
// and signal completion with Ctrl+D (EOF)
func readInteractiveInput() (*models.Value, error) {
	fmt.Fprintln(os.Stderr, "toonvert Interactive Mode")
	fmt.Fprintln(os.Stderr, "Paste your JSON below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	reader := bufio.NewReader(os.Stdin)
	var jsonBuilder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			jsonBuilder.WriteString(line)
			break
		}
		if err != nil {
			return nil, errors.NewInputError("error reading input", err)
		}
		jsonBuilder.WriteString(line)
	}

	jsonData := jsonBuilder.String()
	if len(jsonData) == 0 {
		return nil, errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	fmt.Fprintln(os.Stderr, "\nProcessing JSON...")
	return parser.ParseString(jsonData)
}
