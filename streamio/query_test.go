package streamio

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSortOrder(t *testing.T) {
	Convey("Parsing accepts every supported order", t, func() {
		for _, order := range SortOrders() {
			parsed, err := ParseSortOrder(order.String())
			So(err, ShouldBeNil)
			So(parsed, ShouldEqual, order)
		}

		parsed, err := ParseSortOrder("  Title.ASC ")
		So(err, ShouldBeNil)
		So(parsed, ShouldEqual, TitleAsc)
	})

	Convey("Parsing rejects anything else", t, func() {
		_, err := ParseSortOrder("plays.desc")
		So(errors.Is(err, ErrSortOrder), ShouldBeTrue)
	})

	Convey("Next cycles through every order", t, func() {
		order := CreatedAtDesc
		seen := map[SortOrder]bool{}
		for range SortOrders() {
			seen[order] = true
			order = order.Next()
		}
		So(order, ShouldEqual, CreatedAtDesc)
		So(seen, ShouldHaveLength, 4)
		So(SortOrder("").Next(), ShouldEqual, CreatedAtDesc)
	})
}

func TestParseTags(t *testing.T) {
	Convey("Tags are trimmed and blanks dropped", t, func() {
		So(ParseTags(" news, sports ,,music "), ShouldResemble, []string{"news", "sports", "music"})
		So(ParseTags(""), ShouldBeEmpty)
		So(ParseTags(" , "), ShouldBeEmpty)
	})

	Convey("Joining normalizes the list", t, func() {
		So(joinTags([]string{" a", "", "b ,c"}), ShouldEqual, "a,b,c")
		So(joinTags(nil), ShouldEqual, "")
	})

	Convey("Credentials need both halves", t, func() {
		So(Credentials{Username: "u", Password: "p"}.Present(), ShouldBeTrue)
		So(Credentials{Username: "u"}.Present(), ShouldBeFalse)
		So(Credentials{}.Present(), ShouldBeFalse)
	})
}

func TestVideoHelpers(t *testing.T) {
	Convey("FullURL", t, func() {
		So(FullURL(""), ShouldEqual, "")
		So(FullURL("//cdn.streamio.com/a.mp4"), ShouldEqual, "https://cdn.streamio.com/a.mp4")
		So(FullURL("cdn.streamio.com/a.mp4"), ShouldEqual, "https://cdn.streamio.com/a.mp4")
		So(FullURL("http://cdn/a.mp4"), ShouldEqual, "http://cdn/a.mp4")
		So(FullURL("https://cdn/a.mp4"), ShouldEqual, "https://cdn/a.mp4")
	})

	Convey("Minutes round the duration", t, func() {
		So((&Video{Duration: 89}).Minutes(), ShouldEqual, 1)
		So((&Video{Duration: 90}).Minutes(), ShouldEqual, 2)
		So((&Video{}).Minutes(), ShouldEqual, 0)
	})

	Convey("DisplayTitle falls back to the filename", t, func() {
		So((&Video{Title: "Intro", Filename: "intro.mp4"}).DisplayTitle(), ShouldEqual, "Intro")
		So((&Video{Title: "  ", Filename: "intro.mp4"}).DisplayTitle(), ShouldEqual, "intro.mp4")
	})

	Convey("A rendition's URL prefers the progressive URI", t, func() {
		So((&Transcoding{HTTPURI: "a.mp4", HLSURI: "a.m3u8"}).URL(), ShouldEqual, "a.mp4")
		So((&Transcoding{HLSURI: "a.m3u8"}).URL(), ShouldEqual, "a.m3u8")
		So((*Transcoding)(nil).Ready(), ShouldBeFalse)
	})
}
