package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/userkit/internal/core/domain"
	"github.com/custodia-labs/userkit/internal/logger"
)

var fetchPretty bool

var fetchCmd = &cobra.Command{
	Use:   "fetch [url]",
	Short: "GET a URL and print its decoded body",
	Long: `Performs a single GET request and prints the decoded response body.

Bodies that parse as JSON are re-encoded as JSON; other bodies are printed as text.
On any failure the error is logged and "no data" is printed. The command
still exits successfully.`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().BoolVar(&fetchPretty, "pretty", false, "indent JSON output even when not writing to a terminal")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	if fetcher == nil {
		return errors.New("fetch service not configured")
	}

	logger.Section("Fetch")
	data, ok := fetcher.FetchData(cmd.Context(), args[0])
	out := cmd.OutOrStdout()
	if !ok {
		fmt.Fprintln(out, "no data")
		return nil
	}

	return writeBody(out, data, fetchPretty || isTerminal(out))
}

// writeBody prints text bodies verbatim and everything else as JSON,
// including JSON bodies whose top-level value is a string.
func writeBody(w io.Writer, data any, indent bool) error {
	if text, ok := data.(domain.Text); ok {
		fmt.Fprintln(w, string(text))
		return nil
	}

	var (
		encoded []byte
		err     error
	)
	if indent {
		encoded, err = json.MarshalIndent(data, "", "  ")
	} else {
		encoded, err = json.Marshal(data)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal body: %w", err)
	}
	fmt.Fprintln(w, string(encoded))
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
