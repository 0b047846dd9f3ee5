package auth

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/streamio-cli/streamio/key"
	"github.com/zalando/go-keyring"

	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	keyring.MockInit()
}

func TestCredentials(t *testing.T) {
	Convey("Given a configured username", t, func() {
		viper.Set(key.APIUsername, "editor")
		viper.Set(key.APIPassword, "")
		defer viper.Set(key.APIUsername, "")

		Convey("Without a stored password the pair is incomplete", func() {
			creds, err := Credentials()
			So(err, ShouldBeNil)
			So(creds.Present(), ShouldBeFalse)
		})

		Convey("A stored password completes it", func() {
			So(SetPassword("editor", "hunter2"), ShouldBeNil)
			defer DeletePassword("editor")

			creds, err := Credentials()
			So(err, ShouldBeNil)
			So(creds.Username, ShouldEqual, "editor")
			So(creds.Password, ShouldEqual, "hunter2")

			Convey("but a configured password wins", func() {
				viper.Set(key.APIPassword, "from-env")
				defer viper.Set(key.APIPassword, "")

				creds, err := Credentials()
				So(err, ShouldBeNil)
				So(creds.Password, ShouldEqual, "from-env")
			})
		})

		Convey("A deleted password is gone", func() {
			So(SetPassword("editor", "hunter2"), ShouldBeNil)
			So(DeletePassword("editor"), ShouldBeNil)

			_, err := GetPassword("editor")
			So(err, ShouldEqual, keyring.ErrNotFound)
		})
	})

	Convey("Keyring operations need a username", t, func() {
		So(SetPassword("", "x"), ShouldEqual, ErrNoUsername)
		_, err := GetPassword("")
		So(err, ShouldEqual, ErrNoUsername)
		So(DeletePassword(""), ShouldEqual, ErrNoUsername)
	})
}
