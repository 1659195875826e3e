package test_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/test1942/test"
)

func TestExpectations(t *testing.T) {
	test.ExpectSuccess(t, true)
	test.ExpectSuccess(t, nil)
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("error"))
	test.ExpectEquality(t, 0xcf, 0xcf)
	test.ExpectInequality(t, "foo", "bar")
	test.DemandEquality(t, uint8(0xd7), 0xd7, "demand")
}
