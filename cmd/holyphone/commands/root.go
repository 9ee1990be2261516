package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"holyland_phone/internal/classifier"
	"holyland_phone/platform/config"
	"holyland_phone/platform/logger"
)

var (
	clean    bool
	output   string
	verbose  bool
	maxBatch int

	svc *classifier.Service
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree. Flags are bound to package state, so
// each call resets them.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "holyphone",
		Short:         "Classify and convert Israeli/Palestinian phone numbers",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch output {
			case formatText, formatJSON, formatYAML:
			default:
				return fmt.Errorf("unknown output format %q (want text, json or yaml)", output)
			}

			log := logger.Discard()
			if verbose {
				log = logger.NewWithWriter("development", cmd.ErrOrStderr())
			}
			svc = classifier.NewService(&config.Config{MaxBatchSize: maxBatch}, log)
			return nil
		},
	}

	root.PersistentFlags().BoolVar(&clean, "clean", false, "strip separators and +/00 prefixes before classifying")
	root.PersistentFlags().StringVarP(&output, "output", "o", formatText, "output format: text, json or yaml")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
	root.PersistentFlags().IntVar(&maxBatch, "max-batch", 500, "maximum numbers per invocation")

	root.AddCommand(classifyCmd(), internationalCmd(), validateCmd())
	return root
}

// numbersFrom returns args, or one number per non-empty stdin line when no
// args were given.
func numbersFrom(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	return readLines(cmd.InOrStdin())
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return lines, nil
}
