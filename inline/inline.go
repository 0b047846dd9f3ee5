// Package inline prints the gallery for scripts: as plain lines or as a JSON document.
package inline

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/streamio-cli/streamio/gallery"
	"github.com/streamio-cli/streamio/key"
	"github.com/streamio-cli/streamio/log"
	"github.com/streamio-cli/streamio/streamio"
)

const descriptionIndent = 4

// Run loads the gallery and writes it to options.Out.
func Run(ctx context.Context, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}
	if options.Err == nil {
		options.Err = os.Stderr
	}

	g := options.Gallery
	state, err := g.Load(ctx, g.Reload())
	if err != nil {
		return err
	}

	for options.All && state.CanLoadMore {
		req, ok := g.More()
		if !ok {
			break
		}
		if state, err = g.Load(ctx, req); err != nil {
			return err
		}
	}

	if state.Unconfigured {
		log.Warn("inline run without credentials")
		fmt.Fprintf(options.Err, "streamio credentials not configured: set %s and run `streamio auth login`\n", key.APIUsername)
	}

	videos := state.Videos
	if picker, ok := options.VideoPicker.Get(); ok {
		videos = nil
		if v := picker(state.Videos); v != nil {
			videos = []*streamio.Video{v}
		}
	}

	log.Infof("inline: %d videos selected of %d ready", len(videos), len(state.Videos))

	if options.Json {
		return writeJson(options.Out, state, videos)
	}

	return writePlain(options, videos)
}

func writeJson(out io.Writer, s gallery.State, videos []*streamio.Video) error {
	data, err := asJson(s, videos)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

func writePlain(options *Options, videos []*streamio.Video) error {
	for _, v := range videos {
		stream := newVideo(v)

		if options.Streams {
			if stream.StreamURL == "" {
				log.Warnf("no playable stream for %s", v.ID)
				continue
			}
			if _, err := fmt.Fprintln(options.Out, stream.StreamURL); err != nil {
				return err
			}
			continue
		}

		line := []string{v.ID, v.DisplayTitle(), fmt.Sprintf("%dmin", v.Minutes())}
		if stream.StreamURL != "" {
			line = append(line, stream.Tier, stream.StreamURL)
		}
		if _, err := fmt.Fprintln(options.Out, strings.Join(line, "\t")); err != nil {
			return err
		}

		if options.Describe && strings.TrimSpace(v.Description) != "" {
			if _, err := fmt.Fprintln(options.Out, describe(v.Description, options.Width)); err != nil {
				return err
			}
		}
	}

	return nil
}

// describe wraps text to width and indents it under its video line.
func describe(text string, width int) string {
	text = strings.TrimSpace(text)
	if width > descriptionIndent {
		text = wordwrap.String(text, width-descriptionIndent)
	}
	return indent.String(text, descriptionIndent)
}
