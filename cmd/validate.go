package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/streamio-cli/streamio/icon"
	"github.com/streamio-cli/streamio/key"
	"github.com/streamio-cli/streamio/streamio"
)

// validateValue rejects values the rest of the program would fail on later.
func validateValue(k string, v any) error {
	switch k {
	case key.GallerySortOrder:
		_, err := streamio.ParseSortOrder(v.(string))
		return err
	case key.IconsVariant:
		if !lo.Contains(icon.AvailableVariants(), v.(string)) {
			return fmt.Errorf("unknown icons variant %q, available: %v", v, icon.AvailableVariants())
		}
	case key.LogsLevel:
		_, err := logrus.ParseLevel(v.(string))
		return err
	case key.GalleryTotal, key.GalleryBatch, key.NetworkTimeout, key.NetworkRequestsPerSecond, key.TUIItemSpacing:
		if n := v.(int); n < 0 {
			return fmt.Errorf("%s must not be negative, got %d", k, n)
		}
	}

	return nil
}
