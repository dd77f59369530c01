package parse

import (
	"strings"
	"testing"

	"github.com/dzjyyds666/inifix/parse/ini"
	"github.com/goccy/go-yaml"
	"github.com/smartystreets/goconvey/convey"
)

const querySrc = `
title   'shock tube'
[Grid]
X1-grid 1 0.0 1024 u 1.0
[Hydro]
solver  hllc
gamma   1.4
`

func TestGet(t *testing.T) {
	convey.Convey("safe access", t, func() {
		root, err := ini.Loads(querySrc)
		convey.So(err, convey.ShouldBeNil)

		n, ok := Get(root, "title")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(MustString(n), convey.ShouldEqual, "shock tube")

		n, ok = Get(root, "Hydro", "gamma")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(MustFloat(n), convey.ShouldEqual, 1.4)

		n, ok = Get(root, "", "Hydro")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(n.Kind(), convey.ShouldEqual, ini.KindSection)

		_, ok = Get(root, "Hydro", "missing")
		convey.So(ok, convey.ShouldBeFalse)
		_, ok = Get(root, "title", "deeper")
		convey.So(ok, convey.ShouldBeFalse)
		_, ok = Get(root)
		convey.So(ok, convey.ShouldBeFalse)
	})

	convey.Convey("untyped values", t, func() {
		root, err := ini.Loads(querySrc)
		convey.So(err, convey.ShouldBeNil)

		grid, ok := GetUntyped(root, "Grid", "X1-grid")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(grid, convey.ShouldResemble, []any{int64(1), 0.0, int64(1024), "u", 1.0})

		hydro, ok := GetUntyped(root, "Hydro")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(hydro, convey.ShouldResemble, map[string]any{"solver": "hllc", "gamma": 1.4})
	})

	convey.Convey("yaml keeps key order", t, func() {
		root, err := ini.Loads(querySrc)
		convey.So(err, convey.ShouldBeNil)
		out, err := yaml.Marshal(ToMapSlice(root))
		convey.So(err, convey.ShouldBeNil)
		text := string(out)
		convey.So(strings.Index(text, "title"), convey.ShouldBeLessThan, strings.Index(text, "Grid"))
		convey.So(strings.Index(text, "solver"), convey.ShouldBeLessThan, strings.Index(text, "gamma"))
		convey.So(text, convey.ShouldContainSubstring, "title: shock tube")
	})
}
