package cmd

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/daikumatan/anonymization/internal/analyzer"
	"github.com/daikumatan/anonymization/internal/anonymizer"
	"github.com/daikumatan/anonymization/internal/config"
	"github.com/daikumatan/anonymization/internal/nlp"
	"github.com/daikumatan/anonymization/internal/processor"
	"github.com/daikumatan/anonymization/internal/recognizer"
	"github.com/daikumatan/anonymization/patterns"
)

// personReplacement is the literal substituted for model-detected person
// names. Pattern recognizers carry their literals in the recognizer YAML;
// the model-backed recognizer is built in code, so its literal lives here.
const personReplacement = "<PERSON>"

var (
	runEntities        []string
	runExcludeEntities []string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Anonymize a CSV file",
	Long: `Run reads the input CSV record by record, anonymizes every cell, and
streams the result to the output file. Row 0 is treated like any other
row; empty cells pass through unchanged. On a mid-run I/O error the run
stops and whatever was already written remains as the partial result.`,
	RunE: runAnonymize,
}

func init() {
	runCmd.Flags().String("engine", config.DefaultEngineName, "segmentation engine")
	runCmd.Flags().String("lang", config.DefaultLangCode, "working-language tag")
	runCmd.Flags().String("model", config.DefaultModelName, "segmentation model (ipa, uni)")
	runCmd.Flags().String("input", config.DefaultInputPath, "input CSV file")
	runCmd.Flags().String("output", config.DefaultOutputPath, "output CSV file")
	runCmd.Flags().String("patterns", "", "recognizer override YAML file")
	runCmd.Flags().Int("progress-every", config.DefaultProgressInterval, "records between progress log events")
	runCmd.Flags().StringSliceVar(&runEntities, "entities", nil, "only detect these entity labels (whitelist)")
	runCmd.Flags().StringSliceVar(&runExcludeEntities, "exclude-entities", nil, "skip these entity labels (blacklist)")

	_ = viper.BindPFlag(config.KeyEngineName, runCmd.Flags().Lookup("engine"))
	_ = viper.BindPFlag(config.KeyLangCode, runCmd.Flags().Lookup("lang"))
	_ = viper.BindPFlag(config.KeyModelName, runCmd.Flags().Lookup("model"))
	_ = viper.BindPFlag(config.KeyInputPath, runCmd.Flags().Lookup("input"))
	_ = viper.BindPFlag(config.KeyOutputPath, runCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag(config.KeyPatternsFile, runCmd.Flags().Lookup("patterns"))
	_ = viper.BindPFlag(config.KeyProgressInterval, runCmd.Flags().Lookup("progress-every"))

	rootCmd.AddCommand(runCmd)
}

func runAnonymize(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	configs, err := loadRecognizerConfigs(cfg)
	if err != nil {
		return err
	}

	registry, policy, err := buildRegistry(cfg, configs)
	if err != nil {
		return err
	}

	log.Debug().
		Str("engine", cfg.EngineName).
		Str("lang", cfg.LangCode).
		Str("model", cfg.ModelName).
		Int("recognizers", registry.Len()).
		Msg("pipeline configured")

	row := processor.NewRow(analyzer.New(registry), anonymizer.New(), policy, cfg.LangCode)
	driver := processor.NewCSV(row, cfg.ProgressInterval)

	start := time.Now()
	if err := driver.Run(cfg.InputPath, cfg.OutputPath); err != nil {
		return err
	}
	log.Info().Dur("elapsed", time.Since(start)).Msg("done")
	return nil
}

// loadRecognizerConfigs layers the embedded defaults under the optional
// operator override file and applies entity filters.
func loadRecognizerConfigs(cfg *config.Config) ([]recognizer.RecognizerConfig, error) {
	defaults, err := recognizer.ParseRecognizerFile(patterns.PIIJAYAML())
	if err != nil {
		return nil, fmt.Errorf("parsing embedded recognizers: %w", err)
	}

	var override []recognizer.RecognizerConfig
	if cfg.PatternsFile != "" {
		rf, err := recognizer.LoadRecognizerFile(cfg.PatternsFile)
		if err != nil {
			return nil, fmt.Errorf("loading recognizer override file: %w", err)
		}
		if rf != nil {
			override = rf.Recognizers
		}
	}

	merged := recognizer.MergeRecognizers(defaults.Recognizers, override)
	return recognizer.FilterByEntities(merged, runEntities, runExcludeEntities), nil
}

// buildRegistry compiles the pattern recognizers, loads the segmentation
// engine for the model-backed one, and assembles the replacement policy.
// Policy totality over every emittable label is checked here, at startup,
// so a missing replacement never surfaces mid-file.
func buildRegistry(cfg *config.Config, configs []recognizer.RecognizerConfig) (*recognizer.Registry, anonymizer.Policy, error) {
	engine, err := nlp.Load(cfg.EngineName, cfg.ModelName)
	if err != nil {
		return nil, anonymizer.Policy{}, fmt.Errorf("loading segmentation engine: %w", err)
	}

	compiled, err := recognizer.Compile(configs, cfg.LangCode)
	if err != nil {
		return nil, anonymizer.Policy{}, err
	}

	registry := recognizer.NewRegistry(cfg.LangCode)
	registry.Add(recognizer.NewModel(engine, nlp.CategoryPerson))
	for _, rec := range compiled {
		registry.Add(rec)
	}

	replacements := recognizer.Replacements(configs)
	if _, ok := replacements[recognizer.LabelPerson]; !ok {
		replacements[recognizer.LabelPerson] = personReplacement
	}
	policy := anonymizer.NewPolicy(replacements)
	if err := policy.Validate(registry.Labels()); err != nil {
		return nil, anonymizer.Policy{}, fmt.Errorf("incomplete replacement policy: %w", err)
	}

	return registry, policy, nil
}
