package cli

import (
	"github.com/abdidvp/bundleverify/internal/adapters/outbound/config"
	"github.com/abdidvp/bundleverify/internal/adapters/outbound/loader"
	"github.com/abdidvp/bundleverify/internal/adapters/outbound/tui"
	"github.com/abdidvp/bundleverify/internal/application"
	"github.com/abdidvp/bundleverify/internal/domain"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var (
		mainFile   string
		locales    []string
		configPath string
		dir        string
		encoding   string
	)

	cmd := &cobra.Command{
		Use:   "check [locale-file...]",
		Short: "Check locale files against the main locale file",
		Long: "Report keys of the main locale file that are missing or empty in each locale file, " +
			"and warn about values identical to the main file. Settings come from " + config.FileName +
			" unless overridden by flags; extra arguments are checked as locale files.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadRunConfig(configPath, dir)
			if err != nil {
				return err
			}

			cfg = cfg.WithOverrides(domain.RunConfig{
				ReferenceFile:   mainFile,
				ComparisonFiles: append(append([]string(nil), locales...), args...),
				Encoding:        domain.Encoding(encoding),
			})

			rep := tui.NewLineReporter(cmd.OutOrStdout())
			ldr := loader.New(cfg.NormalizedEncoding()).WithReporter(rep)
			svc := application.NewVerifyService(ldr)

			_, err = svc.Verify(cfg, rep)
			return err
		},
	}

	cmd.Flags().StringVarP(&mainFile, "main", "m", "", "Main locale file every other file is checked against")
	cmd.Flags().StringArrayVarP(&locales, "locale", "l", nil, "Locale file to check (repeatable)")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to a config file (default: "+config.FileName+" in --dir)")
	cmd.Flags().StringVar(&dir, "dir", ".", "Directory to look up "+config.FileName+" in")
	cmd.Flags().StringVar(&encoding, "encoding", "", "Resource file encoding (utf-8, iso-8859-1)")

	return cmd
}

func loadRunConfig(configPath, dir string) (domain.RunConfig, error) {
	ldr := config.New()
	if configPath == "" {
		return ldr.Load(dir)
	}
	return ldr.LoadFile(configPath)
}
