package ini

import (
	"errors"
	"strings"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

const formatIn = "[Grid]\nX1-grid   1  0.0 1024 u 1.0\nnx 64\n\n\n[TimeIntegrator]\nCFL 0.9\n  tstop    'ten  seconds'  \n"

func TestFormat(t *testing.T) {
	convey.Convey("keys are aligned on the longest key of each block", t, func() {
		res, err := Format(formatIn)
		convey.So(err, convey.ShouldBeNil)
		convey.So(res.Text, convey.ShouldEqual, "[Grid]\n"+
			"X1-grid 1 0.0 1024 u 1.0\n"+
			"nx      64\n"+
			"\n"+
			"[TimeIntegrator]\n"+
			"CFL   0.9\n"+
			"tstop 'ten  seconds'\n")
		convey.So(res.Unchanged, convey.ShouldBeFalse)
		convey.So(res.Warnings, convey.ShouldBeEmpty)
	})

	convey.Convey("formatting is idempotent and detects its fixed point", t, func() {
		first, err := Format(formatIn)
		convey.So(err, convey.ShouldBeNil)
		second, err := Format(first.Text)
		convey.So(err, convey.ShouldBeNil)
		convey.So(second.Text, convey.ShouldEqual, first.Text)
		convey.So(second.Unchanged, convey.ShouldBeTrue)
	})

	convey.Convey("top-level records come before sections", t, func() {
		res, err := Format("a 1\nlong_key   2\n[S]\nx   y\n")
		convey.So(err, convey.ShouldBeNil)
		convey.So(res.Text, convey.ShouldEqual, "a"+strings.Repeat(" ", 8)+"1\nlong_key 2\n\n[S]\nx y\n")
	})

	convey.Convey("value tokens keep their quoting", t, func() {
		res, err := Format(`k   "1e2"  'a b'   "it's"  true`)
		convey.So(err, convey.ShouldBeNil)
		convey.So(res.Text, convey.ShouldEqual, `k "1e2" 'a b' "it's" true`+"\n")
	})

	convey.Convey("a requested column size pads every block it fits", t, func() {
		res, err := Format(formatIn, WithNameColumnSize(10))
		convey.So(err, convey.ShouldBeNil)
		convey.So(res.Warnings, convey.ShouldBeEmpty)
		convey.So(res.Text, convey.ShouldEqual, "[Grid]\n"+
			"X1-grid"+strings.Repeat(" ", 4)+"1 0.0 1024 u 1.0\n"+
			"nx"+strings.Repeat(" ", 9)+"64\n"+
			"\n"+
			"[TimeIntegrator]\n"+
			"CFL"+strings.Repeat(" ", 8)+"0.9\n"+
			"tstop"+strings.Repeat(" ", 6)+"'ten  seconds'\n")

		again, err := Format(res.Text, WithNameColumnSize(10))
		convey.So(err, convey.ShouldBeNil)
		convey.So(again.Unchanged, convey.ShouldBeTrue)
	})

	convey.Convey("a column size smaller than a key warns and falls back", t, func() {
		res, err := Format(formatIn, WithNameColumnSize(6))
		convey.So(err, convey.ShouldBeNil)
		convey.So(len(res.Warnings), convey.ShouldEqual, 1)
		convey.So(res.Warnings[0].Section, convey.ShouldEqual, "Grid")
		convey.So(res.Warnings[0].Keys, convey.ShouldResemble, []string{"X1-grid"})
		convey.So(res.Warnings[0].String(), convey.ShouldContainSubstring, "X1-grid")
		convey.So(res.Text, convey.ShouldEqual, "[Grid]\n"+
			"X1-grid 1 0.0 1024 u 1.0\n"+
			"nx      64\n"+
			"\n"+
			"[TimeIntegrator]\n"+
			"CFL    0.9\n"+
			"tstop  'ten  seconds'\n")
	})

	convey.Convey("repeated and empty sections are kept as written", t, func() {
		res, err := Format("[A]\nx 1\n[B]\n[A]\ny 2\n")
		convey.So(err, convey.ShouldBeNil)
		convey.So(res.Text, convey.ShouldEqual, "[A]\nx 1\n\n[B]\n\n[A]\ny 2\n")
	})

	convey.Convey("formatting keeps the data", t, func() {
		res, err := Format(setupIni)
		convey.So(err, convey.ShouldBeNil)
		before, err := Loads(setupIni)
		convey.So(err, convey.ShouldBeNil)
		after, err := Loads(res.Text)
		convey.So(err, convey.ShouldBeNil)
		convey.So(after.Equal(before), convey.ShouldBeTrue)
	})

	convey.Convey("empty text formats to nothing", t, func() {
		res, err := Format("")
		convey.So(err, convey.ShouldBeNil)
		convey.So(res.Text, convey.ShouldEqual, "")
		convey.So(res.Unchanged, convey.ShouldBeTrue)
	})

	convey.Convey("invalid lines are reported like the loader does", t, func() {
		_, err := Format("a 1\nbroken\n", WithSource("setup.ini"))
		var fe *FormatError
		convey.So(errors.As(err, &fe), convey.ShouldBeTrue)
		convey.So(fe.Source, convey.ShouldEqual, "setup.ini")
		convey.So(fe.Line, convey.ShouldEqual, 2)
	})
}
