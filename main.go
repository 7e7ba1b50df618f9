package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aquabill/statement-reconciler/internal/api"
	"github.com/aquabill/statement-reconciler/internal/compare"
	"github.com/aquabill/statement-reconciler/internal/logging"
	"github.com/aquabill/statement-reconciler/internal/models"
	"github.com/aquabill/statement-reconciler/internal/parser"
	"github.com/aquabill/statement-reconciler/internal/reader"
)

var verbose bool

func main() {
	root := &cobra.Command{
		Use:   "statement-reconciler",
		Short: "Extract customer codes from bank statements and reconcile code lists",
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable diagnostic logging")

	root.AddCommand(serveCmd(), extractCmd(), compareCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() logging.Logger {
	if verbose {
		return logging.NewLogrus(logrus.DebugLevel)
	}
	return logging.NewLogrus(logrus.InfoLevel)
}

func serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the extraction HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := api.NewApp(newLogger())
			fmt.Fprintf(cmd.OutOrStdout(), "listening on %s\n", addr)
			return app.Listen(addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}

func extractCmd() *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "extract <file>...",
		Short: "Extract customer codes from statement documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			for _, path := range args {
				results, err := extractFile(cmd, path, password, log)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
					continue
				}
				printResults(cmd, results)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "document password")
	return cmd
}

// extractFile processes one document and re-prompts for a password on locked
// documents. An empty prompt answer abandons the document and moves on.
func extractFile(cmd *cobra.Command, path, password string, log logging.Logger) ([]models.SheetResult, error) {
	for {
		results, err := extractOnce(path, password, log)
		if err == nil {
			return results, nil
		}
		if !errors.Is(err, reader.ErrPasswordRequired) {
			return nil, err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is password protected. Password (empty to skip): ", filepath.Base(path))
		line, readErr := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		password = strings.TrimSpace(line)
		if password == "" || readErr != nil {
			return nil, fmt.Errorf("skipped: password required")
		}
	}
}

func extractOnce(path, password string, log logging.Logger) ([]models.SheetResult, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		text, err := reader.ReadPDFText(path, password)
		if err != nil {
			return nil, err
		}
		return []models.SheetResult{parser.ExtractTextStatement(text, filepath.Base(path), log)}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets, err := reader.ReadWorkbook(f, password)
	if err != nil {
		return nil, err
	}
	return parser.ProcessSheets(sheets, filepath.Base(path), log), nil
}

func printResults(cmd *cobra.Command, results []models.SheetResult) {
	out := cmd.OutOrStdout()
	for _, res := range results {
		header := fmt.Sprintf("%s / %s", res.FileName, res.SheetName)
		if res.Institution != "" {
			header += " (" + res.Institution
			if res.StatementDate != "" {
				header += ", " + res.StatementDate
			}
			header += ")"
		}
		if res.Err != "" {
			fmt.Fprintf(out, "%s: %s\n", header, res.Err)
			continue
		}
		fmt.Fprintf(out, "%s: %d codes\n", header, len(res.Codes))
		for _, code := range res.Codes {
			fmt.Fprintf(out, "  %s\n", code)
		}
	}
}

func compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <fileA> <fileB>",
		Short: "Reconcile two newline-separated code lists",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			b, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}
			res := compare.Compare(string(a), string(b))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "A: %d lines, B: %d lines, in both: %d\n",
				res.TotalA, res.TotalB, len(res.Intersection))
			printSide(out, "only in A", res.InAOnly)
			printSide(out, "only in B", res.InBOnly)
			return nil
		},
	}
}

func printSide(out io.Writer, label string, codes []string) {
	fmt.Fprintf(out, "%s (%d):\n", label, len(codes))
	for _, code := range codes {
		fmt.Fprintf(out, "  %s\n", code)
	}
}
