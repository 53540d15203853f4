package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/zoro11031/homelab-coreos-minipc/file-create/internal/cli"
	"github.com/zoro11031/homelab-coreos-minipc/file-create/internal/config"
	"github.com/zoro11031/homelab-coreos-minipc/file-create/internal/logging"
	"github.com/zoro11031/homelab-coreos-minipc/file-create/pkg/version"
)

var (
	targetPath  string
	content     string
	contentFile string
	checkMode   bool
	argsFile    string
	output      string
	interactive bool
	quiet       bool
	debug       bool
)

var rootCmd = &cobra.Command{
	Use:   "file-create [args-file]",
	Short: "Ensure a file contains exactly the given content",
	Long: `Ensure a file contains exactly the given content.

The file is created when missing and rewritten when its content differs.
When it already matches, nothing is written and changed is reported as false.

Arguments can be passed as flags or in an args file (JSON, YAML or key=value),
as written by automation engines. Flags override the args file. The result is
printed to stdout as JSON (or YAML with --output yaml); progress goes to stderr.`,
	Example: `  file-create --path /tmp/test.txt --content $'Hello there\n'
  file-create --path /etc/motd --content-file motd.txt --check
  file-create /tmp/ansible-args.json`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true, // We handle errors manually, but silence usage on error
	SilenceErrors: true, // We format errors ourselves for consistent output
	RunE:          runModule,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

func init() {
	rootCmd.Flags().StringVarP(&targetPath, "path", "p", "", "Path of the file to manage")
	rootCmd.Flags().StringVarP(&content, "content", "c", "", "Exact content the file must contain")
	rootCmd.Flags().StringVar(&contentFile, "content-file", "", "Read the desired content from a file ('-' for stdin)")
	rootCmd.Flags().BoolVar(&checkMode, "check", false, "Check mode: report without touching the filesystem")
	rootCmd.Flags().StringVar(&argsFile, "args-file", "", "Read module arguments from a file")
	rootCmd.Flags().StringVarP(&output, "output", "o", "json", "Result format (json, yaml)")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Prompt for missing arguments (typed content gets a trailing newline)")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print errors to stderr")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.MarkFlagsMutuallyExclusive("content", "content-file")
	rootCmd.MarkFlagsMutuallyExclusive("interactive", "quiet")

	rootCmd.AddCommand(versionCmd)
}

func runModule(cmd *cobra.Command, args []string) error {
	logging.Init(os.Stderr, debug)

	moduleArgs, err := collectModuleArgs(cmd, args)
	if err != nil {
		return err
	}

	ctx, err := cli.NewModuleContext(cli.Options{
		Output:      output,
		Interactive: interactive,
		Quiet:       quiet,
		Stdout:      cmd.OutOrStdout(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize module context: %w", err)
	}

	res, runErr := cli.Run(ctx, moduleArgs)
	if err := ctx.WriteResult(res); err != nil {
		return err
	}
	return runErr
}

// collectModuleArgs merges the args file with flags; flags win
func collectModuleArgs(cmd *cobra.Command, args []string) (map[string]any, error) {
	file := argsFile
	if len(args) == 1 {
		if file != "" && file != args[0] {
			return nil, fmt.Errorf("args file given twice: %s and %s", file, args[0])
		}
		file = args[0]
	}

	moduleArgs := map[string]any{}
	if file != "" {
		loaded, err := config.LoadArgsFile(file)
		if err != nil {
			return nil, err
		}
		moduleArgs = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("path") {
		moduleArgs[config.KeyPath] = targetPath
	}
	if flags.Changed("content") {
		moduleArgs[config.KeyContent] = content
	}
	if flags.Changed("content-file") {
		data, err := readContentFile(contentFile, cmd.InOrStdin())
		if err != nil {
			return nil, err
		}
		moduleArgs[config.KeyContent] = data
	}
	if flags.Changed("check") {
		moduleArgs[config.KeyCheckMode] = checkMode
	}

	return moduleArgs, nil
}

func readContentFile(name string, stdin io.Reader) (string, error) {
	var data []byte
	var err error
	if name == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read content file: %w", err)
	}
	return string(data), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
