package main

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/oxhq/codescope/capsules"
	"github.com/oxhq/codescope/capsules/catalog"
	"github.com/oxhq/codescope/core"
	"github.com/oxhq/codescope/internal/config"
	"github.com/oxhq/codescope/metrics"
)

// analysisResult pairs a file with its metrics report.
type analysisResult struct {
	Path     string          `json:"path"`
	Language core.LanguageID `json:"language"`
	Report   metrics.Report  `json:"report"`
}

func newAnalyzeCmd() *cobra.Command {
	var langHint string

	cmd := &cobra.Command{
		Use:   "analyze <path>",
		Short: "Compute complexity and maintainability metrics for a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			path := args[0]

			reg, err := catalog.DefaultRegistry()
			if err != nil {
				return err
			}

			info, err := os.Stat(path)
			if err != nil {
				return &core.IOError{Path: path, Err: err}
			}
			if cfg.MaxFileSize > 0 && info.Size() > cfg.MaxFileSize {
				return &core.FileTooLargeError{Path: path, Size: info.Size(), Max: cfg.MaxFileSize}
			}

			desc := core.NewSourceDescriptor(path)
			desc.Language = langHint
			desc.SizeBytes = info.Size()

			capsule, err := reg.DetectLanguage(&desc)
			if err != nil {
				return err
			}
			provider, ok := capsule.(capsules.MetricsProvider)
			if !ok {
				return fmt.Errorf("language %s has no metrics profile", capsule.Info().ID)
			}

			content, err := os.ReadFile(path)
			if err != nil {
				return &core.IOError{Path: path, Err: err}
			}
			if !utf8.Valid(content) {
				return &core.CapsuleError{
					Language: capsule.Info().ID,
					Kind:     core.FailureUTF8,
					Message:  "source is not valid utf-8: " + path,
				}
			}

			return writeJSON(cmd.OutOrStdout(), analysisResult{
				Path:     path,
				Language: capsule.Info().ID,
				Report:   metrics.Analyze(string(content), provider.Profile()),
			})
		},
	}

	cmd.Flags().StringVarP(&langHint, "lang", "l", "", "Language hint (id or alias). Inferred from the extension if omitted.")
	return cmd
}
