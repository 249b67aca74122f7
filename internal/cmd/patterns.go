package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daikumatan/anonymization/internal/config"
	"github.com/daikumatan/anonymization/internal/recognizer"
)

var (
	patternsFormat string
	patternsFile   string
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Show the active recognizers and their replacement policy",
	RunE:  showPatterns,
}

func init() {
	patternsCmd.Flags().StringVar(&patternsFormat, "format", "text", "output format: text or json")
	patternsCmd.Flags().StringVar(&patternsFile, "patterns", "", "recognizer override YAML file")

	rootCmd.AddCommand(patternsCmd)
}

func showPatterns(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if patternsFile != "" {
		cfg.PatternsFile = patternsFile
	}

	configs, err := loadRecognizerConfigs(cfg)
	if err != nil {
		return err
	}

	// Compile up front so a malformed override file is reported here
	// instead of at run time.
	if _, err := recognizer.Compile(configs, cfg.LangCode); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if patternsFormat == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(configs)
	}

	fmt.Fprintf(out, "Working language: %s\n", cfg.LangCode)
	fmt.Fprintf(out, "Model recognizer: %s → %s (engine %s, model %s)\n\n",
		recognizer.LabelPerson, personReplacement, cfg.EngineName, cfg.ModelName)
	for _, rc := range configs {
		fmt.Fprintf(out, "%s (%s → %s)\n", rc.Name, rc.SupportedEntity, rc.Replacement)
		for _, p := range rc.Patterns {
			fmt.Fprintf(out, "  %-12s %s  (score %.2f)\n", p.Name, p.Regex, p.Score)
		}
	}
	return nil
}
