package open

import (
	"runtime"
	"testing"

	"github.com/streamio-cli/streamio/constant"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCommandWith(t *testing.T) {
	if runtime.GOOS != constant.Linux {
		t.Skip("command layout checked on linux only")
	}

	Convey("A named player receives the stream as its argument", t, func() {
		cmd, ok := commandWith("https://cdn/a.m3u8?x=1&y=2", "mpv")
		So(ok, ShouldBeTrue)
		So(cmd.Args, ShouldResemble, []string{"mpv", "https://cdn/a.m3u8?x=1&y=2"})
	})

	Convey("The default handler is xdg-open", t, func() {
		cmd, ok := command("https://streamio.com")
		So(ok, ShouldBeTrue)
		So(cmd.Args[0], ShouldEqual, "xdg-open")
	})
}
