package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/KilimcininKorOglu/obaext/internal/config"
	"github.com/KilimcininKorOglu/obaext/internal/extension"
	"github.com/KilimcininKorOglu/obaext/internal/extop"
	"github.com/KilimcininKorOglu/obaext/internal/logging"
	"github.com/KilimcininKorOglu/obaext/internal/metrics"
)

// globalFlags holds the persistent flags shared by every command.
type globalFlags struct {
	configFile string
	envFile    string
	logLevel   string
	logFormat  string
	output     string
	metrics    bool
}

// app is the state prepared once per invocation before a command runs.
type app struct {
	flags      globalFlags
	cfg        *config.Config
	logger     logging.Logger
	registry   *extop.Registry
	dispatcher *extop.Dispatcher
	promReg    *prometheus.Registry
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "extop",
		Short:         "Build and decode LDAP extended operations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown(cmd.OutOrStdout())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configFile, "config", "", "Path to a YAML or TOML configuration file")
	pf.StringVar(&a.flags.envFile, "env-file", "", "Path to a .env file loaded before reading EXTOP_* variables")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	pf.StringVar(&a.flags.logFormat, "log-format", "", "Log format: text, json (overrides config)")
	pf.StringVarP(&a.flags.output, "output", "o", "", "Output format: text, json, yaml (overrides config)")
	pf.BoolVar(&a.flags.metrics, "metrics", false, "Print build and dispatch counters after the command")

	root.AddCommand(
		newBuildCmd(a),
		newDecodeCmd(a),
		newOIDsCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return root
}

// load builds the effective configuration without validating it.
// Precedence is defaults, config file, environment, flags.
func (a *app) load() error {
	if a.flags.envFile != "" {
		if err := config.LoadEnvFile(a.flags.envFile); err != nil {
			return fmt.Errorf("failed to load env file: %w", err)
		}
	}

	cfg := config.DefaultConfig()
	if a.flags.configFile != "" {
		loaded, err := config.LoadFile(a.flags.configFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()

	if a.flags.logLevel != "" {
		cfg.Logging.Level = a.flags.logLevel
	}
	if a.flags.logFormat != "" {
		cfg.Logging.Format = a.flags.logFormat
	}
	if a.flags.output != "" {
		cfg.Output.Format = a.flags.output
	}
	a.cfg = cfg
	return nil
}

// setup loads and validates configuration, then wires the logger, registry,
// dispatcher and metrics.
func (a *app) setup() error {
	if err := a.load(); err != nil {
		return err
	}
	cfg := a.cfg
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration:\n%w", err)
	}

	a.logger = logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}).WithRequestID(logging.GenerateRequestID())

	policy, err := extop.ParseDuplicatePolicy(cfg.Registry.DuplicatePolicy)
	if err != nil {
		return err
	}
	a.registry = extop.NewRegistry(
		extop.WithDuplicatePolicy(policy),
		extop.WithRegistryLogger(a.logger),
	)
	if err := extension.RegisterAll(a.registry); err != nil {
		return err
	}

	opts := []extop.DispatcherOption{extop.WithLogger(a.logger)}
	if a.flags.metrics {
		a.promReg = prometheus.NewRegistry()
		collector, err := metrics.New(a.promReg)
		if err != nil {
			return err
		}
		if err := collector.WatchRegistry(a.registry); err != nil {
			return err
		}
		extop.SetRecorder(collector)
		opts = append(opts, extop.WithRecorder(collector))
	}
	a.dispatcher = extop.NewDispatcher(a.registry, opts...)

	a.logger.Debug("configuration loaded",
		"config", a.flags.configFile,
		"duplicate_policy", policy.String(),
		"output", cfg.Output.Format,
	)
	return nil
}

// teardown prints gathered metrics when --metrics is set.
func (a *app) teardown(w io.Writer) error {
	if a.promReg == nil {
		return nil
	}
	extop.SetRecorder(nil)

	families, err := a.promReg.Gather()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "# metrics")
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			sort.Strings(labels)

			value := m.GetCounter().GetValue()
			if m.GetGauge() != nil {
				value = m.GetGauge().GetValue()
			}
			if len(labels) == 0 {
				fmt.Fprintf(w, "%s %g\n", mf.GetName(), value)
			} else {
				fmt.Fprintf(w, "%s{%s} %g\n", mf.GetName(), strings.Join(labels, ","), value)
			}
		}
	}
	return nil
}
