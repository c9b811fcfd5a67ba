package report

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorRGB(t *testing.T) {
	r, g, b := Color("1F3A5F").RGB()
	assert.Equal(t, []int{0x1F, 0x3A, 0x5F}, []int{r, g, b})

	r, g, b = Color("zz").RGB()
	assert.Equal(t, []int{0, 0, 0}, []int{r, g, b})
}

func TestDefaultStyle_Valid(t *testing.T) {
	require.NoError(t, DefaultStyle().Validate())
}

func TestStyleValidate_BadColor(t *testing.T) {
	s := DefaultStyle()
	s.Palette.Primary = "#123456"
	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "primary")
}

func TestGuard_PassesThroughBytes(t *testing.T) {
	out, err := Guard("pdf", func() ([]byte, error) { return []byte("ok"), nil })
	require.NoError(t, err)
	assert.Equal(t, []byte("ok"), out)
}

func TestGuard_WrapsErrors(t *testing.T) {
	cause := errors.New("disk full")
	out, err := Guard("docx", func() ([]byte, error) { return []byte("partial"), cause })
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrRender)
	assert.ErrorIs(t, err, cause)
}

func TestGuard_RecoversPanic(t *testing.T) {
	out, err := Guard("pptx", func() ([]byte, error) { panic("boom") })
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrRender)
	assert.Contains(t, err.Error(), "boom")
}
