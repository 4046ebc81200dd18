package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/merce-fra/snifftraffic/cmd"
	"github.com/merce-fra/snifftraffic/constants"
	"github.com/merce-fra/snifftraffic/entity"
)

var rootCmd = &cobra.Command{
	Use:           "snifftraffic",
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       constants.Version,
	Short:         "📡 Sniff GitHub repository traffic and ship the numbers.",
	Long:          "Collect clone/view/referrer statistics for a GitHub repository,\naccumulate them in a CSV, render an HTML dashboard and deploy the result.",
}

/* contextualize converts a HandlerFunction to a cobra function
 */
func contextualize(fn entity.HandlerFunction, panicFn entity.PanicFunction) entity.CobraFunction {
	return func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		defer func() {
			if r := recover(); r != nil {
				panicFn(ctx, r)
			}
		}()

		req := &entity.CommandRequest{
			Cmd:  cmd,
			Args: args,
		}
		err := fn(ctx, req)
		if err != nil {
			fmt.Println(err.Error())
		}
		return nil
	}
}

func init() {
	// Initializes all commands
	handler := cmd.New()

	rootCmd.AddCommand(&cobra.Command{
		Use:   "login",
		Short: "Save a GitHub personal access token",
		RunE:  contextualize(handler.Login, handler.Panic),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "logout",
		Short: "Forget the saved GitHub token",
		RunE:  contextualize(handler.Logout, handler.Panic),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "fetch [owner] [repo]",
		Short: "Fetch traffic stats and update " + constants.CSVFile,
		RunE:  contextualize(handler.Fetch, handler.Panic),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "dashboard [owner] [repo]",
		Short: "Render the HTML traffic dashboard",
		RunE:  contextualize(handler.Dashboard, handler.Panic),
	})

	deployCmd := &cobra.Command{
		Use:   "deploy",
		Short: "Sniff traffic, then commit and push the results",
		RunE:  contextualize(handler.Deploy, handler.Panic),
	}
	deployCmd.Flags().Bool("dry-run", false, "print the deploy steps without running them")
	rootCmd.AddCommand(deployCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show token, defaults and checkout state",
		RunE:  contextualize(handler.Status, handler.Panic),
	})

	openCmd := &cobra.Command{
		Use:   "open",
		Short: "Open the rendered dashboard in the browser",
		RunE:  contextualize(handler.Open, handler.Panic),
	}
	openCmd.Flags().Bool("remote", false, "open the GitHub traffic graph instead")
	rootCmd.AddCommand(openCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Get version of the snifftraffic CLI",
		RunE:  contextualize(handler.Version, handler.Panic),
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if strings.Contains(err.Error(), "unknown command") {
			suggStr := "\nS"

			suggestions := rootCmd.SuggestionsFor(os.Args[1])
			if len(suggestions) > 0 {
				suggStr = fmt.Sprintf(" Did you mean \"%s\"?\nIf not, s", suggestions[0])
			}

			fmt.Println(fmt.Sprintf("Unknown command \"%s\" for \"%s\".%s"+
				"ee \"snifftraffic --help\" for available commands.",
				os.Args[1], rootCmd.CommandPath(), suggStr))
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
