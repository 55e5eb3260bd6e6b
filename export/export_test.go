package export

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var blackWhite = []byte{0, 0, 0, 255, 255, 255}

func TestCSV(t *testing.T) {
	want := "0, 0, 0\n255, 255, 255\n"
	if diff := cmp.Diff(want, CSV(blackWhite)); diff != "" {
		t.Fatalf("CSV mismatch (-want +got):\n%s", diff)
	}
}

func TestJSON(t *testing.T) {
	want := `[
  {
    "ColorSpace": "RGB",
    "Name": "bw",
    "NanColor": [
      -1,
      -1,
      -1
    ],
    "RGBPoints": [
      0,
      0,
      0,
      0,
      1,
      1,
      1,
      1
    ]
  }
]`
	got, err := JSON(blackWhite, "bw")
	require.NoError(t, err)
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Fatalf("JSON mismatch (-want +got):\n%s", diff)
	}
}

func TestPPM(t *testing.T) {
	want := "P3\n2 1\n255\n0 0 0\n255 255 255\n"
	if diff := cmp.Diff(want, PPM(blackWhite)); diff != "" {
		t.Fatalf("PPM mismatch (-want +got):\n%s", diff)
	}
}

func TestImage(t *testing.T) {
	img := Image(blackWhite, 4)
	require.Equal(t, 2, img.Bounds().Dx())
	require.Equal(t, 4, img.Bounds().Dy())
	for y := 0; y < 4; y++ {
		r, g, b, a := img.At(0, y).RGBA()
		require.Equal(t, []uint32{0, 0, 0, 0xffff}, []uint32{r, g, b, a}, "column 0 row %d", y)
		r, g, b, a = img.At(1, y).RGBA()
		require.Equal(t, []uint32{0xffff, 0xffff, 0xffff, 0xffff}, []uint32{r, g, b, a}, "column 1 row %d", y)
	}
}
