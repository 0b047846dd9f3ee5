package version

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/streamio-cli/streamio/filesystem"

	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestCompare(t *testing.T) {
	Convey("Versions compare component by component", t, func() {
		cases := []struct {
			a, b string
			want int
		}{
			{"0.2.0", "0.1.9", 1},
			{"v1.0.0", "1.0.0", 0},
			{"1.2.3", "1.10.0", -1},
			{"2.0.0", "10.0.0", -1},
			{"1.2", "1.2.0", 0},
			{"1.3.0-rc.1", "1.2.9", 1},
			{"0.1.0+build.7", "v0.1.0", 0},
		}

		for _, c := range cases {
			got, err := Compare(c.a, c.b)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, c.want)
		}
	})

	Convey("Garbage does not compare", t, func() {
		_, err := Compare("latest", "1.0.0")
		So(err, ShouldNotBeNil)

		_, err = Compare("1.0.0", "1.2.3.4")
		So(err, ShouldNotBeNil)
	})
}

func TestLatest(t *testing.T) {
	Convey("Given a release feed", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"tag_name": "v0.4.2"}`))
		}))
		defer server.Close()

		previous := releasesURL
		releasesURL = server.URL
		defer func() { releasesURL = previous }()

		Convey("The newest tag is returned without its prefix", func() {
			version, err := Latest()
			So(err, ShouldBeNil)
			So(version, ShouldEqual, "0.4.2")
		})
	})
}
