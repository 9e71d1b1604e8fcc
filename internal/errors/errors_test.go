package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"invalid input", New(ErrInvalidInput, "Input file is empty"), "Invalid input: Input file is empty"},
		{"io without cause", New(ErrIO, "read failed"), "I/O error: read failed"},
		{"io with cause", Wrap(fs.ErrNotExist, ErrIO, "read in.txt"), "I/O error: read in.txt: file does not exist"},
		{"formatted", Newf(ErrInvalidInput, "bad level %q", "x"), `Invalid input: bad level "x"`},
		{"unknown code", New("OTHER", "boom"), "[OTHER] boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrIO, "nothing"))
	assert.Nil(t, Wrapf(nil, ErrIO, "nothing %d", 1))
}

func TestIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("merge: %w", New(ErrInvalidInput, "Input file is empty"))

	assert.True(t, errors.Is(err, New(ErrInvalidInput, "")))
	assert.False(t, errors.Is(err, New(ErrIO, "")))
	assert.True(t, HasCode(err, ErrInvalidInput))
	assert.False(t, HasCode(err, ErrIO))
	assert.False(t, HasCode(nil, ErrIO))
}

func TestUnwrapKeepsCause(t *testing.T) {
	err := Wrapf(fs.ErrPermission, ErrIO, "create %s", "out.txt")

	assert.True(t, Is(err, fs.ErrPermission))

	var coded *Error
	assert.True(t, As(err, &coded))
	assert.Equal(t, ErrIO, coded.Code)
}
