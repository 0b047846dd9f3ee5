package cmd

import (
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/streamio-cli/streamio/color"
	"github.com/streamio-cli/streamio/style"
	"github.com/streamio-cli/streamio/where"
)

// location is a path `streamio where` can print.
type location struct {
	title string
	flag  string
	short string
	path  func() string
	// listed locations show up when no flag is given.
	listed bool
}

var locations = []location{
	{"Config", "config", "c", where.Config, true},
	{"Logs", "logs", "l", where.Logs, true},
	{"Cache", "cache", "", where.Cache, false},
	{"Tag history", "tags", "", where.Tags, false},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, l := range locations {
		whereCmd.Flags().BoolP(l.flag, l.short, false, l.title+" path")
		if !l.listed {
			lo.Must0(whereCmd.Flags().MarkHidden(l.flag))
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(locations, func(l location, _ int) string {
		return l.flag
	})...)

	whereCmd.SetOut(os.Stdout)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Print the paths streamio reads and writes",
	Run: func(cmd *cobra.Command, args []string) {
		for _, l := range locations {
			if lo.Must(cmd.Flags().GetBool(l.flag)) {
				cmd.Println(l.path())
				return
			}
		}

		header := style.New().Bold(true).Foreground(color.HiPurple).Render
		listed := lo.Filter(locations, func(l location, _ int) bool {
			return l.listed
		})

		for i, l := range listed {
			cmd.Printf("%s %s\n", header(l.title+"?"), style.Fg(color.Yellow)("--"+l.flag))
			cmd.Println(l.path())

			if i < len(listed)-1 {
				cmd.Println()
			}
		}
	},
}
