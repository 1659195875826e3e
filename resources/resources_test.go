package resources_test

import (
	"testing"

	"github.com/jetsetilly/test1942/resources"
	"github.com/jetsetilly/test1942/test"
)

func TestJoinPath(t *testing.T) {
	pth, err := resources.JoinPath("foo/bar", "baz")
	test.ExpectEquality(t, err, nil)
	test.ExpectEquality(t, pth, ".test1942/foo/bar/baz")

	pth, err = resources.JoinPath("foo", "bar", "baz")
	test.ExpectEquality(t, err, nil)
	test.ExpectEquality(t, pth, ".test1942/foo/bar/baz")

	pth, err = resources.JoinPath("foo/bar", "")
	test.ExpectEquality(t, err, nil)
	test.ExpectEquality(t, pth, ".test1942/foo/bar")

	pth, err = resources.JoinPath("", "baz")
	test.ExpectEquality(t, err, nil)
	test.ExpectEquality(t, pth, ".test1942/baz")

	pth, err = resources.JoinPath("", "")
	test.ExpectEquality(t, err, nil)
	test.ExpectEquality(t, pth, ".test1942")
}

func TestReadWrite(t *testing.T) {
	s, err := resources.Read("missing_resource")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "")

	test.DemandSuccess(t, resources.Write("window_test", "1 2 3 4"))
	s, err = resources.Read("window_test")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "1 2 3 4")
}
