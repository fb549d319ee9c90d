// Command textkit is a word-oriented text manipulation CLI.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"textkit/internal/config"
	"textkit/textutil"
)

var cfg *config.Config

func main() {
	var err error
	cfg, err = config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:   "textkit",
		Short: "Word-oriented text manipulation",
		Long: `Textkit wraps, abbreviates, and re-cases text taken from the command
line or stdin. Per-command defaults can be set in ~/.textkit/config.yaml
or ~/.config/textkit/config.yaml.`,
	}

	rootCmd.AddCommand(
		wrapCmd(),
		abbreviateCmd(),
		initialsCmd(),
		swapcaseCmd(),
		capitalizeCmd(),
		uncapitalizeCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// readInput returns the text to operate on: the joined positional arguments,
// or stdin read to EOF when no arguments were given.
func readInput(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

// delimiterRunes converts a delimiter flag value to the variadic form the
// textutil functions expect. An empty value means the whitespace default.
func delimiterRunes(s string) []rune {
	if s == "" {
		return nil
	}
	return []rune(s)
}

func wrapCmd() *cobra.Command {
	var (
		length         int
		newline        string
		breakLongWords bool
		breakOn        string
	)

	cmd := &cobra.Command{
		Use:   "wrap [text]",
		Short: "Wrap text at a column limit",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args)
			if err != nil {
				return err
			}

			fmt.Println(textutil.WrapCustom(text, length, newline, breakLongWords, breakOn))
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", cfg.Wrap.Length, "Maximum line width")
	cmd.Flags().StringVar(&newline, "newline", cfg.Wrap.Newline, "Line break string (empty: platform default)")
	cmd.Flags().BoolVarP(&breakLongWords, "break-long-words", "b", cfg.Wrap.BreakLongWords, "Split words longer than the limit")
	cmd.Flags().StringVar(&breakOn, "break-on", cfg.Wrap.BreakOn, "Break-point regular expression (empty: space)")

	return cmd
}

func abbreviateCmd() *cobra.Command {
	var (
		lower  int
		upper  int
		suffix string
	)

	cmd := &cobra.Command{
		Use:   "abbreviate [text]",
		Short: "Shorten text at a word break",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args)
			if err != nil {
				return err
			}

			out, err := textutil.Abbreviate(text, lower, upper, suffix)
			if err != nil {
				return fmt.Errorf("invalid bounds: %w", err)
			}

			fmt.Println(out)
			return nil
		},
	}

	cmd.Flags().IntVar(&lower, "lower", cfg.Abbreviate.Lower, "Position from which to look for a word break")
	cmd.Flags().IntVar(&upper, "upper", cfg.Abbreviate.Upper, "Maximum result length (-1: no maximum)")
	cmd.Flags().StringVar(&suffix, "suffix", cfg.Abbreviate.Suffix, "String appended when text was shortened")

	return cmd
}

func initialsCmd() *cobra.Command {
	var delimiters string

	cmd := &cobra.Command{
		Use:   "initials [text]",
		Short: "Extract the first letter of each word",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args)
			if err != nil {
				return err
			}

			fmt.Println(textutil.Initials(text, delimiterRunes(delimiters)...))
			return nil
		},
	}

	cmd.Flags().StringVarP(&delimiters, "delimiters", "d", cfg.Initials.Delimiters, "Word-separating characters (empty: whitespace)")

	return cmd
}

func swapcaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "swapcase [text]",
		Short: "Invert letter case, capitalizing word starts",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args)
			if err != nil {
				return err
			}

			fmt.Println(textutil.SwapCase(text))
			return nil
		},
	}
}

func capitalizeCmd() *cobra.Command {
	var (
		delimiters string
		full       bool
	)

	cmd := &cobra.Command{
		Use:   "capitalize [text]",
		Short: "Capitalize the first letter of each word",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args)
			if err != nil {
				return err
			}

			if full {
				fmt.Println(textutil.CapitalizeFully(text, delimiterRunes(delimiters)...))
			} else {
				fmt.Println(textutil.Capitalize(text, delimiterRunes(delimiters)...))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&delimiters, "delimiters", "d", cfg.Initials.Delimiters, "Word-separating characters (empty: whitespace)")
	cmd.Flags().BoolVar(&full, "full", false, "Lowercase the rest of each word as well")

	return cmd
}

func uncapitalizeCmd() *cobra.Command {
	var delimiters string

	cmd := &cobra.Command{
		Use:   "uncapitalize [text]",
		Short: "Lowercase the first letter of each word",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args)
			if err != nil {
				return err
			}

			fmt.Println(textutil.Uncapitalize(text, delimiterRunes(delimiters)...))
			return nil
		},
	}

	cmd.Flags().StringVarP(&delimiters, "delimiters", "d", cfg.Initials.Delimiters, "Word-separating characters (empty: whitespace)")

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("textkit version %s\n", config.Version)
		},
	}
}
