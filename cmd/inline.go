package cmd

import (
	"encoding/json"
	"io"
	"os"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/streamio-cli/streamio/filesystem"
	"github.com/streamio-cli/streamio/inline"
	"github.com/streamio-cli/streamio/util"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.Flags().BoolP("all", "a", false, "Keep loading batches until the total is reached or the catalog ends")
	inlineCmd.Flags().BoolP("streams", "S", false, "Print only the selected stream URL of each video")
	inlineCmd.Flags().BoolP("describe", "d", false, "Print each video's description below it")
	inlineCmd.Flags().StringP("video", "V", "", "Criteria for selecting a single video from the gallery")
	inlineCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")

	inlineCmd.MarkFlagsMutuallyExclusive("json", "streams")
	inlineCmd.MarkFlagsMutuallyExclusive("json", "describe")
}

// inlineCmd executes the application in non-interactive, scriptable inline mode.
var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Execute the application in non-interactive, scriptable inline mode",
	Long: `Load the gallery once and print the ready videos instead of opening the interactive browser.

Video selectors:
  first - first video in the gallery
  last - last video in the gallery
  [number] - select video by index (starting from 0)
  id:[id] - select video by its Streamio id
  title:[substring] - select the first video whose title contains the substring

Without a selector every ready video is printed`,
	Example: "  streamio inline --tags intro,demo --json\n  streamio inline -n 50 --all --streams",
	Run: func(cmd *cobra.Command, args []string) {
		g, err := newGallery()
		handleErr(err)

		var writer io.Writer = os.Stdout
		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			defer util.Ignore(file.Close)
			writer = file
		}

		picker := mo.None[inline.VideoPicker]()
		if selector := lo.Must(cmd.Flags().GetString("video")); selector != "" {
			fn, err := inline.ParseSelector(selector)
			handleErr(err)
			picker = mo.Some(fn)
		}

		width := 80
		if w, _, err := util.TerminalSize(); err == nil && w > 0 {
			width = w
		}

		options := &inline.Options{
			Out:         writer,
			Err:         os.Stderr,
			Gallery:     g,
			Json:        lo.Must(cmd.Flags().GetBool("json")),
			All:         lo.Must(cmd.Flags().GetBool("all")),
			Streams:     lo.Must(cmd.Flags().GetBool("streams")),
			Describe:    lo.Must(cmd.Flags().GetBool("describe")),
			Width:       width,
			VideoPicker: picker,
		}

		handleErr(inline.Run(cmd.Context(), options))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

// inlineSchemaCmd prints the JSON schema of the inline output.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema of the structured inline mode output",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(json.NewEncoder(os.Stdout).Encode(inline.Schema()))
	},
}
