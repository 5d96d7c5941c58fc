package must

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	f := func() (int, error) {
		return 1, errors.New("oops")
	}

	var r1 int

	assert.PanicsWithError(t, "oops", func() {
		r1 = Get(f())
	})

	assert.Equal(t, 0, r1)

	f2 := func() (int, error) {
		return 1, nil
	}

	r1 = Get(f2())

	assert.Equal(t, 1, r1)
}

func TestGet2(t *testing.T) {
	f := func() (int, string, error) {
		return 1, "str", errors.New("oops")
	}

	var r1 int
	var r2 string

	assert.PanicsWithError(t, "oops", func() {
		r1, r2 = Get2(f())
	})

	assert.Equal(t, 0, r1)
	assert.Equal(t, "", r2)

	r1, r2 = Get2(func() (int, string, error) {
		return 1, "str", nil
	}())

	assert.Equal(t, 1, r1)
	assert.Equal(t, "str", r2)

	assert.NotPanics(t, func() {
		Do(nil)
	})
}
