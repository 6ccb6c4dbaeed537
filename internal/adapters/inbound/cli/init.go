package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/abdidvp/bundleverify/internal/adapters/outbound/config"
	"github.com/abdidvp/bundleverify/internal/domain"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var (
		mainFile string
		locales  []string
		encoding string
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Generate a " + config.FileName + " configuration file",
		Long: "Create a " + config.FileName + " for the given main locale file. Without --locale, " +
			"locale files named <main>_<locale>.<ext> next to the main file are discovered.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			if mainFile == "" {
				return &domain.ConfigError{Reason: "--main is required"}
			}

			if len(locales) == 0 {
				locales, err = discoverLocales(mainFile)
				if err != nil {
					return err
				}
			}

			cfg := domain.RunConfig{
				ReferenceFile:   relativeTo(absPath, mainFile),
				ComparisonFiles: make([]string, 0, len(locales)),
				Encoding:        domain.Encoding(encoding),
			}
			for _, l := range locales {
				cfg.ComparisonFiles = append(cfg.ComparisonFiles, relativeTo(absPath, l))
			}
			if cfg.Encoding == "" {
				cfg.Encoding = domain.EncodingUTF8
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			if err := config.New().Save(dest, cfg); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s with %d locale file(s)\n", config.FileName, len(cfg.ComparisonFiles))
			return nil
		},
	}

	cmd.Flags().StringVarP(&mainFile, "main", "m", "", "Main locale file")
	cmd.Flags().StringArrayVarP(&locales, "locale", "l", nil, "Locale file to check (repeatable; default: discover)")
	cmd.Flags().StringVar(&encoding, "encoding", "", "Resource file encoding (utf-8, iso-8859-1)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing "+config.FileName)

	return cmd
}

// discoverLocales returns the files next to mainFile named <stem>_*<ext>, sorted.
func discoverLocales(mainFile string) ([]string, error) {
	dir := filepath.Dir(mainFile)
	ext := filepath.Ext(mainFile)
	prefix := strings.TrimSuffix(filepath.Base(mainFile), ext) + "_"

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("discovering locale files: %w", err)
	}

	var matches []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ext) {
			continue
		}
		if len(name) < len(prefix)+len(ext) {
			continue
		}
		matches = append(matches, filepath.Join(dir, name))
	}
	if len(matches) == 0 {
		return nil, &domain.ConfigError{
			Reason: fmt.Sprintf("no locale files found next to %s (expected %s<locale>%s)",
				mainFile, prefix, ext),
		}
	}
	sort.Strings(matches)
	return matches, nil
}

func relativeTo(base, p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	rel, err := filepath.Rel(base, abs)
	if err != nil {
		return abs
	}
	return filepath.ToSlash(rel)
}
