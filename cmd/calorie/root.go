package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-prompter/internal/calorie"
	"github.com/goliatone/go-prompter/pkg/config"
	"github.com/goliatone/go-prompter/pkg/console"
	"github.com/goliatone/go-prompter/pkg/declfile"
	"github.com/goliatone/go-prompter/pkg/model"
	"github.com/goliatone/go-prompter/pkg/prompt"
	"github.com/goliatone/go-prompter/pkg/validation"
)

type rootOptions struct {
	configPath  string
	trailer     string
	noTrailer   bool
	color       bool
	interactive bool
	declPath    string
	lang        string
	verbose     bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "calorie",
		Short: "Estimate a daily calorie norm from prompted body data",
		Long: `Prompts for age, height, weight, activity level and sex, re-asking
each question until the answer is acceptable, then prints the daily
calorie norm (Mifflin-St Jeor).

Settings come from defaults, an optional JSON file (--config) and
PROMPTER_* environment variables; flags override them.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSession(cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to a JSON settings file")
	flags.StringVar(&opts.declPath, "decl", "", "declaration overlay file (YAML or JSON)")
	flags.StringVar(&opts.lang, "lang", calorie.DefaultLanguage, "prompt language")
	flags.BoolVar(&opts.verbose, "verbose", false, "log debug diagnostics to stderr")

	cmd.Flags().StringVar(&opts.trailer, "trailer", "", "text appended after every error message")
	cmd.Flags().BoolVar(&opts.noTrailer, "no-trailer", false, "do not append a trailer to error messages")
	cmd.Flags().BoolVar(&opts.color, "color", false, "color error messages")
	cmd.Flags().BoolVar(&opts.interactive, "interactive", false, "use the interactive terminal prompt")

	cmd.AddCommand(newLintCmd(opts))
	return cmd
}

func runSession(cmd *cobra.Command, opts *rootOptions) error {
	settings, err := loadSettings(cmd, opts)
	if err != nil {
		return err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), opts.verbose, settings.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	entity, err := buildEntity(opts.lang, declarationPath(opts, settings))
	if err != nil {
		return err
	}

	sink := console.NewWriterSink(cmd.OutOrStdout(), console.WithColor(settings.Color))
	p := prompt.New[calorie.User](
		prompt.WithInput(cmd.InOrStdin()),
		prompt.WithOutput(cmd.OutOrStdout()),
		prompt.WithSettings(settings),
		prompt.WithSink(sink),
		prompt.WithLogger(logger),
	)
	if err := p.Configure(entity); err != nil {
		return fmt.Errorf("configure prompts: %w", err)
	}

	user, err := p.Prompt(cmd.Context())
	switch {
	case errors.Is(err, prompt.ErrEndOfInput):
		return fmt.Errorf("input ended before every answer was given: %w", err)
	case errors.Is(err, console.ErrAborted):
		return errors.New("aborted")
	case err != nil:
		return err
	}

	logger.Debug("user collected", zap.Any("user", user))
	return sink.Info(calorie.Summary(opts.lang, calorie.Calculate(*user)))
}

func loadSettings(cmd *cobra.Command, opts *rootOptions) (config.Settings, error) {
	settings, err := config.Load(opts.configPath)
	if err != nil {
		return config.Settings{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("trailer") {
		settings.MessageTrailer = opts.trailer
		settings.DisableTrailer = false
	}
	if flags.Changed("no-trailer") {
		settings.DisableTrailer = opts.noTrailer
	}
	if flags.Changed("color") {
		settings.Color = opts.color
	}
	if flags.Changed("interactive") {
		settings.Interactive = opts.interactive
	}
	return settings, nil
}

func declarationPath(opts *rootOptions, settings config.Settings) string {
	if opts.declPath != "" {
		return opts.declPath
	}
	return settings.DeclarationFile
}

// buildEntity declares the user entity, then overlays the language and the
// optional declaration file in that order.
func buildEntity(lang, declPath string) (*model.Entity[calorie.User], error) {
	entity := calorie.Entity()

	locale, err := calorie.Locale(lang)
	if err != nil {
		return nil, err
	}
	if err := declfile.Apply(locale, entity); err != nil {
		return nil, err
	}

	if declPath == "" {
		return entity, nil
	}
	store, err := declfile.LoadFile(declPath)
	if err != nil {
		return nil, err
	}
	if err := declfile.Apply(store, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// newLogger writes diagnostics to w at the configured level; verbose lowers
// it to debug.
func newLogger(w io.Writer, verbose bool, level string) (*zap.Logger, error) {
	lvl := zapcore.InfoLevel
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("log level %q: %w", level, err)
		}
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		lvl,
	)
	return zap.New(core), nil
}

// lintEntity reports every per-field verdict for the entity built with the
// given overlays.
func lintEntity(lang, declPath string) (validation.SchemaValidationResult, error) {
	entity, err := buildEntity(lang, declPath)
	if err != nil {
		return validation.SchemaValidationResult{}, err
	}
	return validation.ValidateAll(entity.Descriptors()), nil
}
