package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/oxhq/codescope/capsules/catalog"
	"github.com/oxhq/codescope/core"
	"github.com/oxhq/codescope/internal/config"
	"github.com/oxhq/codescope/parser"
)

func newParseCmd() *cobra.Command {
	var (
		langHint string
		noSyms   bool
		noDocs   bool
	)

	cmd := &cobra.Command{
		Use:   "parse <path>",
		Short: "Parse a file or directory tree into documents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			path := args[0]

			reg, err := catalog.DefaultRegistry()
			if err != nil {
				return err
			}
			p := parser.New(reg, parser.WithMaxFileSize(cfg.MaxFileSize))

			pctx := &core.ParseContext{
				Root:          path,
				WorkspaceName: filepath.Base(path),
			}
			opts := core.ParseOptions{
				CollectSymbols:  !noSyms,
				CollectComments: !noDocs,
			}

			info, err := os.Stat(path)
			if err != nil {
				return &core.IOError{Path: path, Err: err}
			}

			if !info.IsDir() {
				doc, err := p.ParseFile(pctx, path, langHint, opts)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), doc)
			}

			discovery := core.DefaultDiscoveryOptions()
			discovery.MaxFileSize = cfg.MaxFileSize
			discovery.FollowSymlinks = cfg.FollowSymlinks
			discovery.IncludeHidden = cfg.IncludeHidden

			docs, err := p.ParseTree(cmd.Context(), pctx, path, discovery, opts)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), docs)
		},
	}

	cmd.Flags().StringVarP(&langHint, "lang", "l", "", "Language hint (id or alias). Inferred from the extension if omitted.")
	cmd.Flags().BoolVar(&noSyms, "no-symbols", false, "Skip symbol collection")
	cmd.Flags().BoolVar(&noDocs, "no-comments", false, "Skip comment collection")
	return cmd
}
