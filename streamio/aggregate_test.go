package streamio

import (
	"context"
	"errors"
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// fakeFetcher serves pages from a script, one entry per call. When the script runs out it
// serves full pages.
type fakeFetcher struct {
	sizes    []int
	failAt   int
	err      error
	requests []PageRequest
}

func (f *fakeFetcher) FetchPage(_ context.Context, _ Credentials, page PageRequest) ([]*Video, error) {
	f.requests = append(f.requests, page)
	call := len(f.requests)

	if f.err != nil && call == f.failAt {
		return nil, f.err
	}

	size := page.Limit
	if call <= len(f.sizes) {
		size = f.sizes[call-1]
	}

	videos := make([]*Video, size)
	for i := range videos {
		videos[i] = &Video{ID: fmt.Sprintf("v%d", page.Offset+i)}
	}
	return videos, nil
}

func (f *fakeFetcher) limits() []int {
	limits := make([]int, len(f.requests))
	for i, r := range f.requests {
		limits[i] = r.Limit
	}
	return limits
}

func (f *fakeFetcher) offsets() []int {
	offsets := make([]int, len(f.requests))
	for i, r := range f.requests {
		offsets[i] = r.Offset
	}
	return offsets
}

var creds = Credentials{Username: "user", Password: "secret"}

func TestFetchUpTo(t *testing.T) {
	ctx := context.Background()

	Convey("Given full pages are always available", t, func() {
		fetcher := &fakeFetcher{}
		agg := NewAggregator(fetcher)

		Convey("250 records take three calls of 100, 100 and 50", func() {
			res, err := agg.FetchUpTo(ctx, creds, Query{Total: 250, Sort: TitleAsc, Tags: []string{"news"}})
			So(err, ShouldBeNil)
			So(fetcher.limits(), ShouldResemble, []int{100, 100, 50})
			So(fetcher.offsets(), ShouldResemble, []int{0, 100, 200})
			So(res.Videos, ShouldHaveLength, 250)
			So(res.Offset, ShouldEqual, 250)
			So(res.Pages, ShouldEqual, 3)
			So(res.Exhausted, ShouldBeFalse)
			So(res.HasMore(), ShouldBeTrue)

			Convey("Every request carries the sort order and tags", func() {
				for _, r := range fetcher.requests {
					So(r.Sort, ShouldEqual, TitleAsc)
					So(r.Tags, ShouldResemble, []string{"news"})
				}
			})

			Convey("Upstream order is preserved", func() {
				So(res.Videos[0].ID, ShouldEqual, "v0")
				So(res.Videos[249].ID, ShouldEqual, "v249")
			})
		})

		Convey("A start offset shifts every page", func() {
			res, err := agg.FetchUpTo(ctx, creds, Query{Total: 120, Offset: 40})
			So(err, ShouldBeNil)
			So(fetcher.offsets(), ShouldResemble, []int{40, 140})
			So(fetcher.limits(), ShouldResemble, []int{100, 20})
			So(res.Offset, ShouldEqual, 160)
		})

		Convey("A zero total makes no calls", func() {
			res, err := agg.FetchUpTo(ctx, creds, Query{Total: 0})
			So(err, ShouldBeNil)
			So(fetcher.requests, ShouldBeEmpty)
			So(res.Videos, ShouldBeEmpty)
		})
	})

	Convey("Given the second of three pages comes back short", t, func() {
		fetcher := &fakeFetcher{sizes: []int{100, 60}}
		res, err := NewAggregator(fetcher).FetchUpTo(ctx, creds, Query{Total: 250})

		Convey("Aggregation stops without a third call", func() {
			So(err, ShouldBeNil)
			So(fetcher.requests, ShouldHaveLength, 2)
			So(res.Videos, ShouldHaveLength, 160)
			So(res.Offset, ShouldEqual, 160)
			So(res.Exhausted, ShouldBeTrue)
			So(res.HasMore(), ShouldBeFalse)
		})
	})

	Convey("Given a page of 37 when 100 were requested", t, func() {
		fetcher := &fakeFetcher{sizes: []int{37}}
		res, err := NewAggregator(fetcher).FetchUpTo(ctx, creds, Query{Total: 100})

		Convey("The offset advances by 37", func() {
			So(err, ShouldBeNil)
			So(res.Offset, ShouldEqual, 37)
			So(res.Videos, ShouldHaveLength, 37)
		})
	})

	Convey("Given the first page is empty", t, func() {
		fetcher := &fakeFetcher{sizes: []int{0}}
		res, err := NewAggregator(fetcher).FetchUpTo(ctx, creds, Query{Total: 50, Offset: 10})

		Convey("The run ends as exhausted at the start offset", func() {
			So(err, ShouldBeNil)
			So(res.Videos, ShouldBeEmpty)
			So(res.Offset, ShouldEqual, 10)
			So(res.Exhausted, ShouldBeTrue)
		})
	})

	Convey("Given upstream returns more than requested", t, func() {
		fetcher := &fakeFetcher{sizes: []int{30}}
		res, err := NewAggregator(fetcher).FetchUpTo(ctx, creds, Query{Total: 20})

		Convey("The result never exceeds the total", func() {
			So(err, ShouldBeNil)
			So(res.Videos, ShouldHaveLength, 20)
			So(res.Offset, ShouldEqual, 20)
		})
	})

	Convey("Given missing credentials", t, func() {
		fetcher := &fakeFetcher{}
		agg := NewAggregator(fetcher)

		cases := []struct {
			name  string
			creds Credentials
		}{
			{"no username", Credentials{Password: "secret"}},
			{"no password", Credentials{Username: "user"}},
			{"nothing", Credentials{}},
		}

		for _, c := range cases {
			Convey("With "+c.name+" nothing is fetched", func() {
				res, err := agg.FetchUpTo(ctx, c.creds, Query{Total: 30})
				So(err, ShouldBeNil)
				So(fetcher.requests, ShouldBeEmpty)
				So(res.Videos, ShouldBeEmpty)
				So(res.Unconfigured, ShouldBeTrue)
				So(res.HasMore(), ShouldBeFalse)
			})
		}
	})

	Convey("Given the second page fails", t, func() {
		boom := &UpstreamError{StatusCode: 500, Message: "Internal Server Error"}
		fetcher := &fakeFetcher{failAt: 2, err: boom}
		res, err := NewAggregator(fetcher).FetchUpTo(ctx, creds, Query{Total: 300})

		Convey("The error propagates unchanged with no partial result", func() {
			So(res, ShouldBeNil)
			So(err, ShouldEqual, boom)
			So(fetcher.requests, ShouldHaveLength, 2)

			var upstream *UpstreamError
			So(errors.As(err, &upstream), ShouldBeTrue)
		})
	})
}
