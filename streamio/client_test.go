package streamio

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/streamio-cli/streamio/constant"

	. "github.com/smartystreets/goconvey/convey"
)

const pageBody = `[
  {"id": "a", "state": "ready", "title": "First", "duration": 125,
   "screenshot": {"normal": "//cdn.streamio.com/a.jpg"},
   "transcodings": [{"id": "t1", "state": "ready", "title": "HD 720p", "http_uri": "//cdn.streamio.com/a.mp4"}]},
  {"id": "b", "state": "pending", "title": "", "filename": "b.mov", "transcodings": []}
]`

func TestClientFetchPage(t *testing.T) {
	ctx := context.Background()

	Convey("Given an upstream that records the request", t, func() {
		var got *http.Request
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(pageBody))
		}))
		defer server.Close()

		client := NewClient(server.URL+"/api/v1/videos.json", WithHTTPClient(server.Client()))

		Convey("When a page is fetched", func() {
			videos, err := client.FetchPage(ctx, creds, PageRequest{
				Limit:  50,
				Offset: 100,
				Sort:   TitleDesc,
				Tags:   []string{" cats ", "", "dogs & birds"},
			})

			Convey("It decodes records in upstream order", func() {
				So(err, ShouldBeNil)
				So(videos, ShouldHaveLength, 2)
				So(videos[0].ID, ShouldEqual, "a")
				So(videos[0].Transcodings[0].HTTPURI, ShouldEqual, "//cdn.streamio.com/a.mp4")
				So(videos[1].DisplayTitle(), ShouldEqual, "b.mov")
			})

			Convey("It sends a single authenticated GET", func() {
				So(got.Method, ShouldEqual, http.MethodGet)
				So(got.URL.Path, ShouldEqual, "/api/v1/videos.json")

				user, pass, ok := got.BasicAuth()
				So(ok, ShouldBeTrue)
				So(user, ShouldEqual, "user")
				So(pass, ShouldEqual, "secret")

				So(got.Header.Get("Accept"), ShouldEqual, "application/json")
				So(got.Header.Get("User-Agent"), ShouldEqual, constant.UserAgent)
			})

			Convey("It encodes paging, order and tags in the query", func() {
				q := got.URL.Query()
				So(q.Get("limit"), ShouldEqual, "50")
				So(q.Get("skip"), ShouldEqual, "100")
				So(q.Get("order"), ShouldEqual, "title.desc")
				So(q.Get("tags"), ShouldEqual, "cats,dogs & birds")
				So(got.URL.RawQuery, ShouldContainSubstring, "tags="+url.QueryEscape("cats,dogs & birds"))
			})
		})

		Convey("Without tags or order the parameters are omitted", func() {
			_, err := client.FetchPage(ctx, creds, PageRequest{Limit: 1})
			So(err, ShouldBeNil)
			So(got.URL.Query().Has("tags"), ShouldBeFalse)
			So(got.URL.Query().Has("order"), ShouldBeFalse)
			So(got.URL.Query().Get("skip"), ShouldEqual, "0")
		})

		Convey("Out of range limits are rejected before any request", func() {
			for _, limit := range []int{0, -5, MaxPageSize + 1} {
				_, err := client.FetchPage(ctx, creds, PageRequest{Limit: limit})
				So(errors.Is(err, ErrPageLimit), ShouldBeTrue)
			}
			So(got, ShouldBeNil)
		})

		Convey("A rate limited client still fetches", func() {
			limited := NewClient(server.URL, WithHTTPClient(server.Client()), WithRateLimit(50))
			So(limited.limiter, ShouldNotBeNil)

			videos, err := limited.FetchPage(ctx, creds, PageRequest{Limit: MaxPageSize})
			So(err, ShouldBeNil)
			So(videos, ShouldHaveLength, 2)
		})

		Convey("A zero rate leaves the client unthrottled", func() {
			So(NewClient(server.URL, WithRateLimit(0)).limiter, ShouldBeNil)
		})
	})

	Convey("Given an upstream rejecting the credentials with a message", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message": "Invalid username or password"}`))
		}))
		defer server.Close()

		_, err := NewClient(server.URL).FetchPage(ctx, creds, PageRequest{Limit: 10})

		Convey("It fails with an upstream error carrying the message", func() {
			var upstream *UpstreamError
			So(errors.As(err, &upstream), ShouldBeTrue)
			So(upstream.StatusCode, ShouldEqual, http.StatusUnauthorized)
			So(upstream.Message, ShouldEqual, "Invalid username or password")
		})
	})

	Convey("Given an upstream failing without a structured body", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("<html>oops</html>"))
		}))
		defer server.Close()

		_, err := NewClient(server.URL).FetchPage(ctx, creds, PageRequest{Limit: 10})

		Convey("The message falls back to the status text", func() {
			var upstream *UpstreamError
			So(errors.As(err, &upstream), ShouldBeTrue)
			So(upstream.StatusCode, ShouldEqual, http.StatusInternalServerError)
			So(upstream.Message, ShouldEqual, "Internal Server Error")
			So(err.Error(), ShouldContainSubstring, "500")
		})
	})

	Convey("Given a successful response that is not a video list", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"videos": "nope"}`))
		}))
		defer server.Close()

		_, err := NewClient(server.URL).FetchPage(ctx, creds, PageRequest{Limit: 10})

		Convey("It fails as a malformed page", func() {
			So(errors.Is(err, ErrMalformedPage), ShouldBeTrue)

			var typeErr *json.UnmarshalTypeError
			So(errors.As(err, &typeErr), ShouldBeTrue)

			var transportErr *TransportError
			So(errors.As(err, &transportErr), ShouldBeFalse)
		})
	})

	Convey("Given a body that stalls after the first bytes", t, func() {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[{"id":"a"},`))
			w.(http.Flusher).Flush()
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer server.Close()
		defer close(release)

		httpClient := server.Client()
		httpClient.Timeout = 100 * time.Millisecond

		_, err := NewClient(server.URL, WithHTTPClient(httpClient)).FetchPage(ctx, creds, PageRequest{Limit: 10})

		Convey("It fails as a transport error that keeps the timeout", func() {
			var transportErr *TransportError
			So(errors.As(err, &transportErr), ShouldBeTrue)
			So(transportErr.Op, ShouldEqual, "read")
			So(errors.Is(err, ErrMalformedPage), ShouldBeFalse)

			var netErr net.Error
			So(errors.As(err, &netErr) && netErr.Timeout() || errors.Is(err, context.DeadlineExceeded), ShouldBeTrue)
		})
	})

	Convey("Given a null body", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`null`))
		}))
		defer server.Close()

		videos, err := NewClient(server.URL).FetchPage(ctx, creds, PageRequest{Limit: 10})

		Convey("It is an empty page", func() {
			So(err, ShouldBeNil)
			So(videos, ShouldNotBeNil)
			So(videos, ShouldBeEmpty)
		})
	})

	Convey("Given an unreachable upstream", t, func() {
		server := httptest.NewServer(http.NotFoundHandler())
		endpoint := server.URL
		server.Close()

		_, err := NewClient(endpoint).FetchPage(ctx, creds, PageRequest{Limit: 10})

		Convey("It fails with a transport error", func() {
			var transport *TransportError
			So(errors.As(err, &transport), ShouldBeTrue)
			So(transport.URL, ShouldEqual, endpoint)

			var upstream *UpstreamError
			So(errors.As(err, &upstream), ShouldBeFalse)
		})
	})

	Convey("Given a cancelled context", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		}))
		defer server.Close()

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := NewClient(server.URL).FetchPage(cancelled, creds, PageRequest{Limit: 10})

		Convey("The cancellation surfaces as a transport error", func() {
			var transport *TransportError
			So(errors.As(err, &transport), ShouldBeTrue)
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})
	})
}
