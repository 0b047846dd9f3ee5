// Package cmd implements the command-line interface for streamio.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/streamio-cli/streamio/color"
	"github.com/streamio-cli/streamio/constant"
	"github.com/streamio-cli/streamio/icon"
	"github.com/streamio-cli/streamio/key"
	"github.com/streamio-cli/streamio/log"
	"github.com/streamio-cli/streamio/query"
	"github.com/streamio-cli/streamio/streamio"
	"github.com/streamio-cli/streamio/style"
	"github.com/streamio-cli/streamio/tui"
	"github.com/streamio-cli/streamio/version"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("tags", "t", "", "Only list videos carrying these comma separated tags")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("tags", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.APITags, rootCmd.PersistentFlags().Lookup("tags")))

	rootCmd.PersistentFlags().StringP("sort", "s", "", "Catalog sort order")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("sort", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(streamio.SortOrders(), func(s streamio.SortOrder, _ int) string {
			return s.String()
		}), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.GallerySortOrder, rootCmd.PersistentFlags().Lookup("sort")))

	rootCmd.PersistentFlags().IntP("total", "n", 0, "Number of videos to request in total")
	lo.Must0(viper.BindPFlag(key.GalleryTotal, rootCmd.PersistentFlags().Lookup("total")))

	rootCmd.PersistentFlags().IntP("batch", "b", 0, "Number of videos to request per load")
	lo.Must0(viper.BindPFlag(key.GalleryBatch, rootCmd.PersistentFlags().Lookup("batch")))

	rootCmd.PersistentFlags().StringP("username", "u", "", "Streamio API username")
	lo.Must0(viper.BindPFlag(key.APIUsername, rootCmd.PersistentFlags().Lookup("username")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

// rootCmd opens the interactive gallery.
var rootCmd = &cobra.Command{
	Use:   constant.Streamio,
	Short: "Browse and play your Streamio video catalog from the terminal",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Browse and play your Streamio video catalog from the terminal"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		CheckPlayer()

		g, err := newGallery()
		handleErr(err)

		handleErr(tui.Run(cmd.Context(), &tui.Options{Gallery: g}))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		stop()
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
