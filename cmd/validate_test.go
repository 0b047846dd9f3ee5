package cmd

import (
	"testing"

	"github.com/streamio-cli/streamio/key"

	. "github.com/smartystreets/goconvey/convey"
)

func TestValidateValue(t *testing.T) {
	Convey("Given config values", t, func() {
		Convey("Known sort orders should be accepted", func() {
			So(validateValue(key.GallerySortOrder, "title.asc"), ShouldBeNil)
			So(validateValue(key.GallerySortOrder, "Created_At.Desc"), ShouldBeNil)
		})

		Convey("Unknown sort orders should be rejected", func() {
			So(validateValue(key.GallerySortOrder, "plays.desc"), ShouldNotBeNil)
		})

		Convey("Icon variants should be checked against the registry", func() {
			So(validateValue(key.IconsVariant, "nerd"), ShouldBeNil)
			So(validateValue(key.IconsVariant, "sparkles"), ShouldNotBeNil)
		})

		Convey("Log levels should be parsed", func() {
			So(validateValue(key.LogsLevel, "debug"), ShouldBeNil)
			So(validateValue(key.LogsLevel, "loud"), ShouldNotBeNil)
		})

		Convey("Counts should not be negative", func() {
			So(validateValue(key.GalleryTotal, 0), ShouldBeNil)
			So(validateValue(key.GalleryTotal, 250), ShouldBeNil)
			So(validateValue(key.GalleryBatch, -1), ShouldNotBeNil)
			So(validateValue(key.NetworkRequestsPerSecond, -3), ShouldNotBeNil)
		})

		Convey("Other keys should pass through", func() {
			So(validateValue(key.APITags, "anything, at all"), ShouldBeNil)
			So(validateValue(key.TUIShowURLs, true), ShouldBeNil)
		})
	})
}
