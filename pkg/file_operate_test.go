package pkg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestCheckFileExist(t *testing.T) {
	convey.Convey("existence", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "a.ini")

		exist, err := CheckFileExist(path)
		convey.So(err, convey.ShouldBeNil)
		convey.So(exist, convey.ShouldBeFalse)

		convey.So(os.WriteFile(path, []byte("a 1\n"), 0o644), convey.ShouldBeNil)
		exist, err = CheckFileExist(path)
		convey.So(err, convey.ShouldBeNil)
		convey.So(exist, convey.ShouldBeTrue)
	})
}

func TestWriteFileAtomic(t *testing.T) {
	convey.Convey("creates and replaces files, keeping permissions", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "a.ini")

		convey.So(WriteFileAtomic(path, []byte("a 1\n"), 0o600), convey.ShouldBeNil)
		body, _ := os.ReadFile(path)
		convey.So(string(body), convey.ShouldEqual, "a 1\n")

		convey.So(os.Chmod(path, 0o640), convey.ShouldBeNil)
		convey.So(WriteFileAtomic(path, []byte("a 2\n"), 0o600), convey.ShouldBeNil)
		body, _ = os.ReadFile(path)
		convey.So(string(body), convey.ShouldEqual, "a 2\n")
		info, err := os.Stat(path)
		convey.So(err, convey.ShouldBeNil)
		convey.So(info.Mode().Perm(), convey.ShouldEqual, os.FileMode(0o640))

		entries, err := os.ReadDir(dir)
		convey.So(err, convey.ShouldBeNil)
		convey.So(len(entries), convey.ShouldEqual, 1)
	})

	convey.Convey("directories are refused", t, func() {
		dir := t.TempDir()
		convey.So(WriteFileAtomic(dir, []byte("x"), 0o644), convey.ShouldNotBeNil)
	})

	convey.Convey("a read-only target is left untouched", t, func() {
		if os.Geteuid() == 0 {
			convey.SkipSo("root can write to read-only files")
			return
		}
		dir := t.TempDir()
		path := filepath.Join(dir, "ro.ini")
		convey.So(os.WriteFile(path, []byte("a 1\n"), 0o400), convey.ShouldBeNil)

		err := WriteFileAtomic(path, []byte("a 2\n"), 0o644)
		convey.So(err, convey.ShouldNotBeNil)
		convey.So(err.Error(), convey.ShouldContainSubstring, "could not write to "+path)
		body, _ := os.ReadFile(path)
		convey.So(string(body), convey.ShouldEqual, "a 1\n")
	})
}
