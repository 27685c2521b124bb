package main

import (
	"log/slog"
	"os"
	"runtime/pprof"
	"time"

	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/liserjrqlxue/dnaUtil/pkg/config"
)

// app holds state shared by the subcommands of one run
type app struct {
	cfgFile    string
	cpuProfile string
	verbose    bool

	v      *viper.Viper
	cfg    *config.Config
	cpuOut *os.File
	name   string
	t0     time.Time
}

// newRootCmd represents the base command when called without any subcommands
func newRootCmd() (*app, *cobra.Command) {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "dna",
		Short: "DNA sequence utilities: GC content, transcription and ORF finding",
		Long: `DNA sequence utilities: GC content, transcription and ORF finding.

Input is one sequence per line ("-" for stdin), or a literal sequence by --seq.
Settings are read from --config (yaml/toml/json), DNA_* environment
variables (e.g. DNA_ORF_MIN_LENGTH) and flags, flags first.`,
		Version:           "0.1.0",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file, yaml/toml/json")
	rootCmd.PersistentFlags().StringVar(&a.cpuProfile, "cpu", "", "write cpu profile to file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug log")

	rootCmd.AddCommand(
		newGCCmd(a),
		newTranscribeCmd(a),
		newORFCmd(a),
		newDemoCmd(a),
	)
	return a, rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) (err error) {
	a.t0 = time.Now()
	a.name = cmd.Name()
	var level = slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	if a.cpuProfile != "" {
		a.cpuOut = osUtil.Create(a.cpuProfile)
		if err = pprof.StartCPUProfile(a.cpuOut); err != nil {
			return err
		}
	}

	a.v, err = config.New(a.cfgFile)
	if err != nil {
		return err
	}
	slog.Debug("config", "file", a.v.ConfigFileUsed(), "command", cmd.Name())
	return nil
}

// bind flags to viper keys, then decode config
func (a *app) bind(cmd *cobra.Command, keys map[string]string) error {
	for key, name := range keys {
		if err := a.v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return err
		}
	}
	cfg, err := config.NewConfig(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	slog.Debug("settings", "settings", a.v.AllSettings())
	return nil
}

// teardown stop cpu profile, run on every exit path after setup
func (a *app) teardown() {
	if a.cpuOut != nil {
		pprof.StopCPUProfile()
		if err := a.cpuOut.Close(); err != nil {
			slog.Error("close cpu profile", "err", err)
		}
		a.cpuOut = nil
	}
	if !a.t0.IsZero() {
		slog.Info("Done", "command", a.name, "elapsed", time.Since(a.t0))
	}
}

// execute rootCmd, then teardown whether it failed or not
func (a *app) execute(rootCmd *cobra.Command) error {
	defer a.teardown()
	return rootCmd.Execute()
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	a, rootCmd := newRootCmd()
	if err := a.execute(rootCmd); err != nil {
		slog.Error("dna", "err", err)
		os.Exit(1)
	}
}
