package geom_test

import (
	"errors"
	"math"
	"testing"

	"github.com/roffe/txplot/pkg/geom"
	"github.com/stretchr/testify/assert"
)

func TestBoxValidate(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	tests := []struct {
		name    string
		box     geom.Box
		wantErr bool
	}{
		{name: "symmetric", box: geom.NewBox(-5, -5, 5, 5)},
		{name: "offset", box: geom.NewBox(0, 0, 30, 16e9)},
		{name: "zero width", box: geom.NewBox(1, -5, 1, 5), wantErr: true},
		{name: "zero height", box: geom.NewBox(-5, 2, 5, 2), wantErr: true},
		{name: "inverted", box: geom.NewBox(5, 5, -5, -5), wantErr: true},
		{name: "nan", box: geom.NewBox(nan, 0, 1, 1), wantErr: true},
		{name: "inf", box: geom.NewBox(0, 0, inf, 1), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.box.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			if !errors.Is(err, geom.ErrDegenerateBounds) {
				t.Fatalf("Validate() = %v, want ErrDegenerateBounds", err)
			}
		})
	}
}

func TestBoxDimensions(t *testing.T) {
	b := geom.NewBox(-5, -2, 5, 8)
	assert.Equal(t, float32(10), b.Width())
	assert.Equal(t, float32(10), b.Height())
	assert.Equal(t, geom.NewPoint(0, 3), b.Center())
	assert.True(t, b.Contains(geom.NewPoint(0, 0)))
	assert.False(t, b.Contains(geom.NewPoint(0, -3)))

	fs := geom.BoxFromSize(geom.NewPoint(10, 20), geom.NewSize(100, 50))
	assert.Equal(t, geom.NewBox(10, 20, 110, 70), fs)
	assert.Equal(t, geom.NewSize(200, 100), fs.Size().Scale(2))
}

func TestParseBox(t *testing.T) {
	tests := []struct {
		in      string
		want    geom.Box
		wantErr error
	}{
		{in: "-5,-5,5,5", want: geom.NewBox(-5, -5, 5, 5)},
		{in: " 0, 0 , 30,1e3", want: geom.NewBox(0, 0, 30, 1000)},
		{in: "1,2,3"},
		{in: "a,b,c,d"},
		{in: "0,0,0,1", wantErr: geom.ErrDegenerateBounds},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := geom.ParseBox(tt.in)
			if tt.want == (geom.Box{}) {
				assert.Error(t, err)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
