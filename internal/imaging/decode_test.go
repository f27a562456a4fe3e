package imaging

import (
	"bytes"
	"image"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optic-derm-explorer/internal/domain"
)

func TestEncodeDecode_PNGRoundTrip(t *testing.T) {
	src, err := Placeholder(domain.CONFOCAL, 40, 30, "B001-A")
	require.NoError(t, err)

	buf, err := EncodePNG(src)
	require.NoError(t, err)

	decoded, err := Decode(bytes.NewReader(buf))
	require.NoError(t, err)

	bounds := decoded.Bounds()
	assert.Equal(t, 40, bounds.Dx())
	assert.Equal(t, 30, bounds.Dy())
	assert.Equal(t, src.Pix, decoded.Pix)
}

func TestDecode_JPEG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 12, 8))
	for i := range src.Pix {
		src.Pix[i] = 200
	}

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, src, nil))

	decoded, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 12, decoded.Bounds().Dx())
	assert.Equal(t, 8, decoded.Bounds().Dy())
}

func TestDecode_ConvertsToRGBA(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 6, 6))
	for i := range gray.Pix {
		gray.Pix[i] = 128
	}
	buf, err := EncodePNG(gray)
	require.NoError(t, err)

	decoded, err := Decode(bytes.NewReader(buf))
	require.NoError(t, err)

	r, g, b, a := decoded.At(3, 3).RGBA()
	assert.Equal(t, r, g)
	assert.Equal(t, g, b)
	assert.Equal(t, uint32(0xffff), a)
}

func TestDecode_CorruptData(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("not an image at all")))
	assert.Error(t, err)
}

func TestDecode_TruncatedPNG(t *testing.T) {
	src, err := Placeholder(domain.RCM, 20, 20, "B002-A")
	require.NoError(t, err)
	buf, err := EncodePNG(src)
	require.NoError(t, err)

	_, err = Decode(bytes.NewReader(buf[:len(buf)/2]))
	assert.Error(t, err)
}
