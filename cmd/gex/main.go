package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/CptPotato/gex/internal/app"
	"github.com/CptPotato/gex/internal/common"
	"github.com/CptPotato/gex/internal/config"
	"github.com/CptPotato/gex/internal/git"
	"github.com/CptPotato/gex/internal/log"
	"github.com/CptPotato/gex/internal/preview"
	"github.com/CptPotato/gex/internal/ui"
	"github.com/CptPotato/gex/internal/ui/views"
	"github.com/CptPotato/gex/internal/watcher"
)

// Build-time variables injected via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := buildRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gex:", err)
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gex",
		Short: "An interactive terminal viewer for git working trees",
		Long: `gex shows the untracked, changed and staged files of a repository
in a single scrollable list, with inline file previews and one-key
staging. It drives the ordinary git CLI underneath, so whatever git
says is what you see.`,
		RunE:          runApp,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"gex %s\n  commit:  %s\n  built:   %s\n  go:      %s\n  os/arch: %s/%s\n",
		version, commit, date, runtime.Version(), runtime.GOOS, runtime.GOARCH,
	))

	rootCmd.AddCommand(buildVersionCmd())
	rootCmd.AddCommand(buildCompletionCmd())

	rootCmd.Flags().StringP("path", "p", ".", "Path to the git repository")

	return rootCmd
}

// buildVersionCmd creates the `gex version` subcommand supporting --json.
func buildVersionCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(_ *cobra.Command, _ []string) error {
			info := map[string]string{
				"version": version,
				"commit":  commit,
				"date":    date,
				"go":      runtime.Version(),
				"os":      runtime.GOOS,
				"arch":    runtime.GOARCH,
			}
			if jsonOutput {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}
			fmt.Printf("gex %s\n", version)
			fmt.Printf("  commit:  %s\n", commit)
			fmt.Printf("  built:   %s\n", date)
			fmt.Printf("  go:      %s\n", runtime.Version())
			fmt.Printf("  os/arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output version info as JSON")

	return cmd
}

// buildCompletionCmd creates the `gex completion` subcommand for shell completions.
func buildCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for gex.

Examples:
  # Bash (add to ~/.bashrc)
  gex completion bash > /etc/bash_completion.d/gex

  # Zsh (add to ~/.zshrc before compinit)
  gex completion zsh > "${fpath[1]}/_gex"

  # Fish
  gex completion fish > ~/.config/fish/completions/gex.fish`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	}

	return cmd
}

func runApp(cmd *cobra.Command, _ []string) error {
	repoPath, _ := cmd.Flags().GetString("path")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if cfg.DebugLog != "" {
		if err := log.SetFile(cfg.DebugLog); err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer log.Close()
	}

	cliSvc, err := git.NewCLIService(repoPath)
	if err != nil {
		return fmt.Errorf("opening repository: %w", err)
	}

	// A short TTL coalesces the burst of reads a single refresh
	// cycle triggers.
	gitSvc := git.NewCachedService(cliSvc, 2*time.Second)

	theme := ui.ThemeByName(cfg.Theme)
	styles := ui.NewStyles(theme)

	loader := &preview.Loader{MaxLines: cfg.PreviewMaxLines, Style: theme.ChromaStyle}
	previewFn := func(rel string) []string {
		return loader.Lines(cliSvc.RepoRoot(), rel)
	}

	statusView := views.NewStatusView(gitSvc, styles, cfg.ShowIcons, previewFn)
	branchView := views.NewBranchView(gitSvc, styles)

	model := app.New(gitSvc, cfg, statusView, branchView)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	// The watcher follows .git internals only, so external commits or
	// checkouts refresh the screen without a keypress.
	if cfg.WatchGitDir {
		if watchCh, stop, watchErr := watcher.Watch(cliSvc.GitDir(), 500*time.Millisecond); watchErr == nil {
			defer stop()
			go func() {
				for range watchCh {
					p.Send(common.RefreshMsg{})
				}
			}()
		} else {
			log.Printf("watcher disabled: %v", watchErr)
		}
	}

	log.Printf("opened %s", cliSvc.RepoRoot())
	_, err = p.Run()
	return err
}
