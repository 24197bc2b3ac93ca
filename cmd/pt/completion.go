package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jacksmith/pt/internal/model"
	"github.com/jacksmith/pt/internal/storage"
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion bash|zsh|fish",
	Short: "Generate shell completion scripts",
	Long: `Print a completion script for the given shell.

Product and client IDs complete from the data file in the current
directory.

  $ source <(pt completion bash)
  $ pt completion zsh > "${fpath[1]}/_pt"
  $ pt completion fish > ~/.config/fish/completions/pt.fish`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"bash", "zsh", "fish"},
	RunE:      runCompletion,
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

func runCompletion(cmd *cobra.Command, args []string) error {
	switch args[0] {
	case "bash":
		return rootCmd.GenBashCompletionV2(os.Stdout, true)
	case "zsh":
		return rootCmd.GenZshCompletion(os.Stdout)
	case "fish":
		return rootCmd.GenFishCompletion(os.Stdout, true)
	}
	return fmt.Errorf("unsupported shell %q (expected bash, zsh or fish)", args[0])
}

// loadForCompletion reads the data file quietly. Completion must never
// print warnings or fail.
func loadForCompletion() *model.Store {
	s, err := storage.Open(".")
	if err != nil {
		return nil
	}
	store, _, err := s.Load()
	if err != nil {
		return nil
	}
	return store
}

// completeProductIDs completes product IDs, described by name and stock.
func completeProductIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	store := loadForCompletion()
	if store == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	for _, p := range store.Products() {
		id := strconv.Itoa(p.ID)
		if strings.HasPrefix(id, toComplete) {
			completions = append(completions, fmt.Sprintf("%s\t%s, %d in stock", id, p.Name, p.Stock))
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// completeClientIDs completes client IDs, described by name.
func completeClientIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	store := loadForCompletion()
	if store == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	for _, c := range store.Clients() {
		id := strconv.Itoa(c.ID)
		if strings.HasPrefix(id, toComplete) {
			completions = append(completions, id+"\t"+c.Name)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

func completeProductNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var completions []string
	for _, name := range model.ProductNames {
		if strings.HasPrefix(name, strings.ToLower(toComplete)) {
			completions = append(completions, name)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// completeProductAddArgs completes the name argument of product add.
func completeProductAddArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 1 {
		return completeProductNames(cmd, args, toComplete)
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

// completeOrderArgs completes the client then the product of order place.
func completeOrderArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return completeClientIDs(cmd, args, toComplete)
	case 1:
		return completeProductIDs(cmd, args, toComplete)
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}
