package network

import (
	"net/http"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/streamio-cli/streamio/key"

	. "github.com/smartystreets/goconvey/convey"
)

func TestClient(t *testing.T) {
	Convey("Given the shared client", t, func() {
		Convey("The transport negotiates HTTP/2", func() {
			transport, ok := Client.Transport.(*http.Transport)
			So(ok, ShouldBeTrue)
			So(transport.TLSNextProto, ShouldContainKey, "h2")
		})

		Convey("Setup applies the configured timeout", func() {
			viper.Set(key.NetworkTimeout, 5)
			Setup()
			So(Client.Timeout, ShouldEqual, 5*time.Second)
		})

		Convey("A zero timeout leaves the client untouched", func() {
			Client.Timeout = time.Minute
			viper.Set(key.NetworkTimeout, 0)
			Setup()
			So(Client.Timeout, ShouldEqual, time.Minute)
		})
	})
}
