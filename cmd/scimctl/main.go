package main

import (
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/scimkit/scimkit/codec"
	"github.com/scimkit/scimkit/model"
	"github.com/scimkit/scimkit/pkg/config"
	"github.com/scimkit/scimkit/pkg/version"
	"github.com/scimkit/scimkit/schema"
	"github.com/scimkit/scimkit/validate"
)

var (
	flagConfigPath string
	flagKind       string
)

var rootCmd = &cobra.Command{
	Use:           "scimctl [flags]",
	Short:         "Validate and normalize SCIM 2.0 documents",
	SilenceErrors: true,
	SilenceUsage:  true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and exit",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("scimctl %s\n", version.GetInfo().Version)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [file|-]",
	Short: "Check a SCIM document against the structural rules of RFC 7643",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(args)
	},
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize [file|-]",
	Short: "Re-emit a SCIM document in canonical wire form",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNormalize(cmd, args)
	},
}

var discoveryCmd = &cobra.Command{
	Use:   "discovery [resource-types|schemas|service-provider-config]",
	Short: "Emit the built-in discovery documents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDiscovery(cmd, args[0])
	},
}

// nolint: gochecknoinits
func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfigPath, "config", "c", "", "config path")
	validateCmd.Flags().StringVarP(&flagKind, "kind", "k", "", "resource kind (User, Group, ResourceType, Schema, ServiceProviderConfig)")
	rootCmd.AddCommand(validateCmd, normalizeCmd, discoveryCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err.Error())
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(cfg.Logging.LogLevelParsed).
		With().Timestamp().Logger()
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)

		return data, errors.Wrap(err, "failed to read stdin")
	}

	data, err := os.ReadFile(args[0])

	return data, errors.Wrapf(err, "failed to read '%s'", args[0])
}

func runValidate(args []string) error {
	cfg, err := config.NewConfig(flagConfigPath)
	if err != nil {
		return err
	}

	logger := newLogger(cfg).With().Str("command", "validate").Logger()

	data, err := readInput(args)
	if err != nil {
		return err
	}

	kind := flagKind
	if kind == "" {
		kind = cfg.Validate.Kind
	}
	if kind == "" {
		if kind, err = codec.Kind(data); err != nil {
			return err
		}
	}

	violations, err := validateDocument(data, kind)
	if err != nil {
		return err
	}

	for _, v := range violations {
		logger.Warn().
			Str("path", v.Path).
			Str("rule", v.Rule).
			Strs("allowed", v.Allowed).
			Msg(v.String())
	}

	if !violations.Valid() {
		return errors.Errorf("document is invalid: %d violation(s)", len(violations))
	}

	logger.Info().Str("kind", kind).Msg("document is valid")

	return nil
}

func validateDocument(data []byte, kind string) (validate.Violations, error) {
	switch kind {
	case model.UserResource:
		u, err := codec.UnmarshalUser(data)
		if err != nil {
			return nil, err
		}

		return validate.User(u), nil
	case model.GroupResource:
		g, err := codec.UnmarshalGroup(data)
		if err != nil {
			return nil, err
		}

		return validate.Group(g), nil
	case model.ResourceTypeResource:
		rt, err := codec.UnmarshalResourceType(data)
		if err != nil {
			return nil, err
		}

		return validate.ResourceType(rt), nil
	case model.SchemaResource:
		s, err := codec.UnmarshalSchema(data)
		if err != nil {
			return nil, err
		}

		return validate.Schema(s), nil
	case model.ServiceProviderConfigResource:
		spc, err := codec.UnmarshalServiceProviderConfig(data)
		if err != nil {
			return nil, err
		}

		return validate.ServiceProviderConfig(spc), nil
	default:
		return nil, errors.Errorf("unknown resource kind %q", kind)
	}
}

func runNormalize(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewConfig(flagConfigPath)
	if err != nil {
		return err
	}

	data, err := readInput(args)
	if err != nil {
		return err
	}

	kind, err := codec.Kind(data)
	if err != nil {
		return err
	}

	var resource any

	switch kind {
	case model.UserResource:
		resource, err = codec.UnmarshalUser(data)
	case model.GroupResource:
		resource, err = codec.UnmarshalGroup(data)
	case model.ResourceTypeResource:
		resource, err = codec.UnmarshalResourceType(data)
	case model.SchemaResource:
		resource, err = codec.UnmarshalSchema(data)
	case model.ServiceProviderConfigResource:
		resource, err = codec.UnmarshalServiceProviderConfig(data)
	default:
		return errors.Errorf("unknown resource kind %q", kind)
	}

	if err != nil {
		return err
	}

	return emit(cmd, cfg, resource)
}

func runDiscovery(cmd *cobra.Command, target string) error {
	cfg, err := config.NewConfig(flagConfigPath)
	if err != nil {
		return err
	}

	switch target {
	case "resource-types":
		return emit(cmd, cfg, model.NewListResponse(
			model.UserResourceType(true),
			model.GroupResourceType(),
		))
	case "schemas":
		docs := make([]any, 0)
		for _, s := range schema.All() {
			docs = append(docs, s)
		}

		return emit(cmd, cfg, model.NewListResponse(docs...))
	case "service-provider-config":
		return emit(cmd, cfg, model.NewServiceProviderConfig())
	default:
		return errors.Errorf("unknown discovery document %q", target)
	}
}

func emit(cmd *cobra.Command, cfg *config.Config, resource any) error {
	var (
		data []byte
		err  error
	)

	if cfg.Output.Indent {
		data, err = codec.MarshalIndent(resource, "", "  ")
	} else {
		data, err = codec.Marshal(resource)
	}

	if err != nil {
		return err
	}

	cmd.Println(string(data))

	return nil
}
