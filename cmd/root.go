// Package cmd provides the root command and CLI setup for incfix.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"incfix.dev/pkg/incfix/internal/adapter"
	"incfix.dev/pkg/incfix/internal/controller"
	"incfix.dev/pkg/incfix/internal/domain"
	m "incfix.dev/pkg/incfix/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var ui controller.UI
var workflow domain.Workflow

// extTokens is a root-level flag that extends the scanned extension set.
var extTokens []string

// excludeDirs is a root-level flag that skips directories and their descendants.
var excludeDirs []string

// verboseFlag enables debug-level log lines when set.
var verboseFlag bool

var dryRunFlag bool
var noBackupFlag bool
var forceFlag bool
var checkOnlyFlag bool
var showDiffFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	ui = controller.NewUI(rootCmd)
	workflow = domain.NewWorkflow(fsAdapter, ui)
}

const rootArgHelp = `The root argument is the project root directory the "@/" prefix resolves
against; it defaults to the current directory.`

const rootLongDescription = `Incfix rewrites the root-relative include convention

  #include "@/path/under/root.h"

found in C/C++ source trees into standard relative includes computed from each
file's directory, so the tree builds with any compiler.

` + rootArgHelp

const listLongDescription = `List candidate source files and how many root-relative includes each one
carries, without modifying anything.

` + rootArgHelp

// rootCmd represents the base command: a fix run over the given root.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "incfix [root]",
		Short: "Rewrite root-relative C/C++ includes",
		Long:  rootLongDescription,
		Args:  cobra.MaximumNArgs(1),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger("", viper.GetBool(verboseFlagName))
		},
		RunE: func(_ *cobra.Command, args []string) error {
			_, err := workflow.Fix(domain.FixArgs{
				Root:       parseRoot(args),
				Extensions: viper.GetStringSlice(extConfigKey),
				Exclude:    viper.GetStringSlice(excludeConfigKey),
				Options: m.ProcessOptions{
					DryRun:     viper.GetBool(dryRunFlagName),
					Force:      viper.GetBool(forceFlagName),
					MakeBackup: !viper.GetBool(noBackupFlagName),
					Verbose:    viper.GetBool(verboseFlagName),
					CheckOnly:  viper.GetBool(checkOnlyFlagName),
					ShowDiff:   viper.GetBool(showDiffFlagName),
				},
			})

			return err
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringArrayVarP(&extTokens, extFlagName, "e", viper.GetStringSlice(extConfigKey), "additional file extensions to scan (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(extFlagName), extConfigKey)

	cmd.PersistentFlags().StringArrayVarP(&excludeDirs, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "directories to skip, with their descendants (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(verboseFlagName), "emit debug-level log lines")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), verboseFlagName)

	cmd.Flags().BoolVar(&dryRunFlag, dryRunFlagName, viper.GetBool(dryRunFlagName), "preview changes without writing files")
	bindFlagToConfig(cmd.Flags().Lookup(dryRunFlagName), dryRunFlagName)

	cmd.Flags().BoolVar(&noBackupFlag, noBackupFlagName, viper.GetBool(noBackupFlagName), "do not create .bakN backup files before writes")
	bindFlagToConfig(cmd.Flags().Lookup(noBackupFlagName), noBackupFlagName)

	cmd.Flags().BoolVar(&forceFlag, forceFlagName, viper.GetBool(forceFlagName), "rewrite files even if no include was changed")
	bindFlagToConfig(cmd.Flags().Lookup(forceFlagName), forceFlagName)

	cmd.Flags().BoolVar(&checkOnlyFlag, checkOnlyFlagName, viper.GetBool(checkOnlyFlagName), "classify files as changed/unchanged without writing")
	bindFlagToConfig(cmd.Flags().Lookup(checkOnlyFlagName), checkOnlyFlagName)

	cmd.Flags().BoolVar(&showDiffFlag, showDiffFlagName, viper.GetBool(showDiffFlagName), "print a unified diff for every file that would be changed")
	bindFlagToConfig(cmd.Flags().Lookup(showDiffFlagName), showDiffFlagName)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parseRoot(args []string) m.Path {
	if len(args) == 0 {
		return m.Path(".")
	}

	return m.Path(args[0])
}
