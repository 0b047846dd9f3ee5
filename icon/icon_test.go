package icon

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/streamio-cli/streamio/key"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGet(t *testing.T) {
	Convey("Every registered icon renders in every variant", t, func() {
		for i := range icons {
			for _, variant := range AvailableVariants() {
				viper.Set(key.IconsVariant, variant)
				So(Get(i), ShouldNotBeEmpty)
			}
		}
	})

	Convey("Given a registered icon", t, func() {
		target := Play

		Convey("It returns empty for an unknown variant", func() {
			viper.Set(key.IconsVariant, "")
			So(Get(target), ShouldBeEmpty)
		})

		Convey("Plain is ASCII friendly", func() {
			viper.Set(key.IconsVariant, "plain")
			So(Get(target), ShouldEqual, ">")
		})
	})

	Convey("Unknown icons render as nothing", t, func() {
		viper.Set(key.IconsVariant, "emoji")
		So(Get(Icon(-1)), ShouldBeEmpty)
	})
}
