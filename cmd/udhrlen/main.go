// Command udhrlen renders a size comparison table over the UDHR translation
// corpus. It takes the corpus directory (containing index.xml and the
// udhr_<code>.xml documents) and writes the report to stdout or a file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hsivonen/udhrlen"
)

var (
	format string
	out    string
	stages []string
)

var rootCmd = &cobra.Command{
	Use:   "udhrlen <corpus-dir>",
	Short: "Compare UDHR translation sizes across Unicode encodings",
	Long: `udhrlen measures the body text of every reviewed Universal Declaration of
Human Rights translation under five size metrics (UTF-8, UTF-16 and UTF-32
code units, extended grapheme clusters, display columns) and renders a
comparison table with per-metric medians, means and extremes.

The corpus directory must contain the unicode.org UDHR index.xml plus the
udhr_<code>.xml translation documents it references.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&format, "format", "html", `output format: "html" or "text"`)
	rootCmd.Flags().StringVarP(&out, "out", "o", "", "write the report to a file instead of stdout")
	rootCmd.Flags().StringSliceVar(&stages, "stage", nil, `review stages to include (default "4","5")`)
}

func run(cmd *cobra.Command, args []string) error {
	w := os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	r := udhrlen.Open(args[0])
	if len(stages) > 0 {
		r = r.Stages(stages...)
	}

	var warnings []udhrlen.Warning
	var err error
	switch format {
	case "html":
		warnings, err = r.HTML(w)
	case "text":
		warnings, err = r.Text(w)
	default:
		return fmt.Errorf("unknown format %q (want html or text)", format)
	}

	for _, warning := range warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s: %s\n", warning.Code, warning.Message)
	}
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "udhrlen:", err)
		os.Exit(1)
	}
}
