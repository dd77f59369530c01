package ini

import (
	"errors"
	"math"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestNewSection(t *testing.T) {
	convey.Convey("valid data", t, func() {
		pairs := []Pair{
			{"dummy", []any{0.0001, true}},
			{"thisparameternameshouldprobablybeshorter", []int{45, 68}},
			{"thisoneisshorter", []int64{15, 68, 774, 6, 7, 5}},
			{"faultyTowers", 42},
		}
		s1, err := NewSection("", pairs...)
		convey.So(err, convey.ShouldBeNil)
		convey.So(s1.Name, convey.ShouldEqual, "")
		convey.So(s1.Keys(), convey.ShouldResemble, []string{
			"dummy", "thisparameternameshouldprobablybeshorter", "thisoneisshorter", "faultyTowers",
		})

		s2, err := NewSection("test", pairs...)
		convey.So(err, convey.ShouldBeNil)
		convey.So(s2.Name, convey.ShouldEqual, "test")
	})

	convey.Convey("non-string keys are rejected", t, func() {
		_, err := NewSection("", Pair{1, true})
		convey.So(err, convey.ShouldNotBeNil)
		var se *ShapeError
		convey.So(errors.As(err, &se), convey.ShouldBeTrue)
		convey.So(se.Field, convey.ShouldEqual, "key")
		convey.So(err.Error(), convey.ShouldContainSubstring, "expected string keys, received invalid key: 1")
	})

	convey.Convey("set-like and nested values are rejected", t, func() {
		set := map[int]struct{}{1: {}, 2: {}, 3: {}}
		_, err := NewSection("", Pair{"yes", set})
		convey.So(err, convey.ShouldNotBeNil)
		convey.So(err.Error(), convey.ShouldContainSubstring,
			"expected all values to be scalars or lists of scalars, received invalid value: map[1:{} 2:{} 3:{}]")

		for _, bad := range []any{
			[]any{},
			[]any{1, []any{2}},
			map[string]any{"a": 1},
			&Section{Name: "inner"},
			nil,
			&Value{Type: KindInt, V: "not an int"},
			uint64(math.MaxUint64),
		} {
			_, err := NewSection("", Pair{"k", bad})
			convey.So(err, convey.ShouldNotBeNil)
		}
	})

	convey.Convey("keys must fit on a line", t, func() {
		for _, key := range []string{"", "two words", "[bracket", "tab\tkey"} {
			_, err := NewSection("", Pair{key, 1})
			convey.So(err, convey.ShouldNotBeNil)
		}
	})

	convey.Convey("strings must be writable", t, func() {
		_, err := NewSection("", Pair{"k", "line\nbreak"})
		convey.So(err, convey.ShouldNotBeNil)
		_, err = NewSection("", Pair{"k", `x" y' z`})
		convey.So(err, convey.ShouldNotBeNil)
	})

	convey.Convey("overwriting keeps the position", t, func() {
		s, err := NewSection("S", Pair{"a", 1}, Pair{"b", 2})
		convey.So(err, convey.ShouldBeNil)
		convey.So(s.Set("a", "again"), convey.ShouldBeNil)
		convey.So(s.Keys(), convey.ShouldResemble, []string{"a", "b"})
		n, _ := s.Get("a")
		convey.So(n.Value(), convey.ShouldEqual, "again")

		s.Delete("a")
		convey.So(s.Keys(), convey.ShouldResemble, []string{"b"})
	})
}

func TestDocumentEqual(t *testing.T) {
	convey.Convey("equality", t, func() {
		grid, _ := NewSection("", Pair{"nx", 64})
		a, err := DocumentFrom(Pair{"x", math.NaN()}, Pair{"Grid", grid})
		convey.So(err, convey.ShouldBeNil)
		grid2, _ := NewSection("", Pair{"nx", 64})
		b, _ := DocumentFrom(Pair{"x", math.NaN()}, Pair{"Grid", grid2})
		convey.So(a.Equal(b), convey.ShouldBeTrue)

		sec, ok := a.Section("Grid")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(sec.Name, convey.ShouldEqual, "Grid")

		convey.So(b.Set("x", 1.5), convey.ShouldBeNil)
		convey.So(a.Equal(b), convey.ShouldBeFalse)
	})

	convey.Convey("int and float are different kinds", t, func() {
		a, _ := DocumentFrom(Pair{"v", 100})
		b, _ := DocumentFrom(Pair{"v", 100.0})
		convey.So(a.Equal(b), convey.ShouldBeFalse)
	})

	convey.Convey("key order matters inside sections", t, func() {
		s1, _ := NewSection("", Pair{"a", 1}, Pair{"b", 2})
		s2, _ := NewSection("", Pair{"b", 2}, Pair{"a", 1})
		a, _ := DocumentFrom(Pair{"S", s1})
		b, _ := DocumentFrom(Pair{"S", s2})
		convey.So(a.Equal(b), convey.ShouldBeFalse)
	})
}
