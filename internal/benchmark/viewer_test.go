package benchmark

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewer(t *testing.T) {
	t.Run("Windows opens the file", func(t *testing.T) {
		var opened string
		v := &Viewer{GOOS: "windows", open: func(p string) error {
			opened = p
			return nil
		}}

		ok, err := v.Open("complexity_proof.png")
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "complexity_proof.png", opened)
	})

	t.Run("Other platforms skip the launch", func(t *testing.T) {
		called := false
		v := &Viewer{GOOS: "linux", open: func(string) error {
			called = true
			return nil
		}}

		ok, err := v.Open("complexity_proof.png")
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.False(t, called)
	})

	t.Run("Launch failure is reported", func(t *testing.T) {
		v := &Viewer{GOOS: "windows", open: func(string) error {
			return errors.New("no association")
		}}

		ok, err := v.Open("complexity_proof.png")
		assert.True(t, ok)
		assert.Error(t, err)
	})
}
