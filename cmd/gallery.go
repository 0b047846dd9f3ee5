package cmd

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/streamio-cli/streamio/auth"
	"github.com/streamio-cli/streamio/gallery"
	"github.com/streamio-cli/streamio/key"
	"github.com/streamio-cli/streamio/log"
	"github.com/streamio-cli/streamio/network"
	"github.com/streamio-cli/streamio/query"
	"github.com/streamio-cli/streamio/streamio"
)

// newClient returns an API client configured from viper.
func newClient() *streamio.Client {
	return streamio.NewClient(
		viper.GetString(key.APIEndpoint),
		streamio.WithHTTPClient(network.Client),
		streamio.WithRateLimit(viper.GetInt(key.NetworkRequestsPerSecond)),
	)
}

// galleryOptions reads the gallery parameters from viper and the keyring.
func galleryOptions() (gallery.Options, error) {
	creds, err := auth.Credentials()
	if err != nil {
		return gallery.Options{}, err
	}

	sort, err := streamio.ParseSortOrder(viper.GetString(key.GallerySortOrder))
	if err != nil {
		return gallery.Options{}, fmt.Errorf("%s: %w", key.GallerySortOrder, err)
	}

	total := viper.GetInt(key.GalleryTotal)
	if total < 0 {
		return gallery.Options{}, fmt.Errorf("%s must not be negative, got %d", key.GalleryTotal, total)
	}

	return gallery.Options{
		Credentials: creds,
		Total:       total,
		Batch:       viper.GetInt(key.GalleryBatch),
		Tags:        streamio.ParseTags(viper.GetString(key.APITags)),
		Sort:        sort,
	}, nil
}

func newGallery() (*gallery.Gallery, error) {
	options, err := galleryOptions()
	if err != nil {
		return nil, err
	}

	if tags := viper.GetString(key.APITags); tags != "" {
		if err := query.Remember(tags, 1); err != nil {
			log.Warnf("could not remember tags %q: %v", tags, err)
		}
	}

	return gallery.New(streamio.NewAggregator(newClient()), options), nil
}
