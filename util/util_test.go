package util

import (
	"testing"

	"github.com/streamio-cli/streamio/filesystem"

	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "file", "files"), ShouldEqual, "1 file")
		So(Quantify(2, "file", "files"), ShouldEqual, "2 files")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
		So(Capitalize("tags history"), ShouldEqual, "Tags history")
	})
}

func TestMin(t *testing.T) {
	Convey("Min picks the smallest argument", t, func() {
		So(Min(1, 5, 2), ShouldEqual, 1)
		So(Min[int](), ShouldEqual, 0)
	})
}

func TestStack(t *testing.T) {
	Convey("Given an empty stack", t, func() {
		var s Stack[int]

		Convey("Pop should report absence", func() {
			So(s.Pop().IsAbsent(), ShouldBeTrue)
		})

		Convey("Items should come back in reverse order", func() {
			s.Push(1)
			s.Push(2)
			So(s.Len(), ShouldEqual, 2)
			So(s.Pop().MustGet(), ShouldEqual, 2)
			So(s.Pop().MustGet(), ShouldEqual, 1)
			So(s.Len(), ShouldEqual, 0)
		})
	})
}

func TestDelete(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()

		Convey("Directories should be removed recursively", func() {
			So(filesystem.API().MkdirAll("/cache/nested", 0o755), ShouldBeNil)
			So(filesystem.API().WriteFile("/cache/nested/version.json", []byte("{}"), 0o644), ShouldBeNil)

			So(Delete("/cache"), ShouldBeNil)

			exists, err := filesystem.API().Exists("/cache")
			So(err, ShouldBeNil)
			So(exists, ShouldBeFalse)
		})

		Convey("Missing paths should return an error", func() {
			So(Delete("/missing"), ShouldNotBeNil)
		})
	})
}
