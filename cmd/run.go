package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/futurehub/horizon/internal/ai/gemini"
	"github.com/futurehub/horizon/internal/career"
	"github.com/futurehub/horizon/internal/horizon"
	"github.com/futurehub/horizon/internal/logger"
	"github.com/futurehub/horizon/internal/pipeline"
	"github.com/futurehub/horizon/internal/profile"
	"github.com/futurehub/horizon/internal/secrets"
	"github.com/futurehub/horizon/internal/skillgraph"
	"github.com/futurehub/horizon/internal/skills"
	"github.com/futurehub/horizon/internal/synthesis"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const defaultAdvisorTimeout = 30 * time.Second

var eventPrompt = promptui.Select{
	Label: "Choose an event to process",
	Items: []string{
		string(horizon.EventOnboardingCompleted),
		string(horizon.EventSkillUpdated),
		string(horizon.EventDirectionChanged),
		string(horizon.EventCheckIn),
	},
}

// inputFile is the YAML document the run command consumes: the raw profile
// plus the optional skill snapshot.
type inputFile struct {
	Profile horizon.UserProfile    `yaml:"profile"`
	Skills  *horizon.SkillSnapshot `yaml:"skills"`
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the horizon pipeline for one event and print the report",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("input", "i", "", "YAML file with the user profile and skill snapshot")
	runCmd.Flags().StringP("event", "e", "", "event type to process (prompted when unset)")

	runCmd.MarkFlagRequired("input")
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting horizon", zap.String("version", version))

	input, err := readInput(cmd.Flag("input").Value.String())
	if err != nil {
		logger.Fatal("reading input file", zap.Error(err))
	}
	if input.Profile.UserID == "" {
		logger.Fatal("input profile requires a user id")
	}

	eventType := cmd.Flag("event").Value.String()
	if eventType == "" {
		_, eventType, err = eventPrompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}
	}

	store, cleanup, err := buildStore(config)
	if err != nil {
		logger.Fatal("opening result store", zap.Error(err))
	}
	defer cleanup()

	pipe, err := buildPipeline(ctx, config, store, logger)
	if err != nil {
		logger.Fatal("building pipeline", zap.Error(err))
	}

	event := horizon.NewEvent(horizon.EventType(eventType))
	logger.Info("processing event",
		zap.String("event_type", eventType),
		zap.String("user_id", input.Profile.UserID),
	)

	output, err := pipe.Process(ctx, event, input.Profile, input.Skills)
	if err != nil {
		logger.Fatal("processing event", zap.Error(err))
	}

	pretty, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		logger.Fatal("encoding output", zap.Error(err))
	}
	fmt.Println(string(pretty))
}

func readInput(path string) (*inputFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var input inputFile
	if err := yaml.Unmarshal(raw, &input); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return &input, nil
}

func buildStore(config *Config) (pipeline.Store, func(), error) {
	if config == nil || config.Store == nil || config.Store.Path == "" {
		return pipeline.NewMemoryStore(), func() {}, nil
	}
	store, err := pipeline.OpenSQLite(config.Store.Path)
	if err != nil {
		return nil, nil, err
	}
	return store, func() { store.Close() }, nil
}

// buildPipeline wires the stages. With AI enabled the profile and career
// stages run Gemini first and fall back to the deterministic rules; otherwise
// the rules run alone.
func buildPipeline(ctx context.Context, config *Config, store pipeline.Store, logger *zap.Logger) (*pipeline.Pipeline, error) {
	graph := skillgraph.Default()
	catalog := career.DefaultCatalog()

	var profileStage pipeline.ProfileStage = profile.NewRuleBased()
	var careerStage pipeline.CareerStage = career.NewMatcher(catalog)

	if config != nil && config.AI != nil && config.AI.Enabled {
		generator, maxLogLength, err := newGenerator(ctx, config.AI, logger)
		if err != nil {
			return nil, err
		}
		profileStage = profile.NewAssisted(gemini.NewProfileAdvisor(generator, logger, maxLogLength), logger)
		careerStage = career.NewAssisted(gemini.NewCareerAdvisor(generator, logger, maxLogLength), catalog, logger)
	}

	return pipeline.New(
		store,
		profileStage,
		skills.NewAnalyzer(graph),
		careerStage,
		synthesis.New(graph),
		logger,
	), nil
}

func newGenerator(ctx context.Context, cfg *AIConfig, log *zap.Logger) (*gemini.Generator, int, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, 0, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}
	if cfg.Gemini == nil {
		return nil, 0, fmt.Errorf("gemini configuration is required when ai is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	genLogger := logger.WithCommonFields(log, "gemini", cfg.Gemini.Model)

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, defaultAdvisorTimeout)
	if err != nil {
		return nil, 0, err
	}
	genLogger.Debug("gemini generator ready", zap.String("model", generator.Model()))

	return generator, cfg.Gemini.MaxLogLength, nil
}
