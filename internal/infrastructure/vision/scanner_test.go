package vision

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"marker-clicker/internal/domain/entity"
	"marker-clicker/internal/infrastructure/bitmap"
	"marker-clicker/internal/infrastructure/bitmap/bitmaptest"
)

func decodeCanvas(t *testing.T, c *bitmaptest.Canvas) *entity.Image {
	t.Helper()
	img, err := bitmap.NewDecoder().Decode(c.Bytes())
	require.NoError(t, err)
	return img
}

func requireNear(t *testing.T, want, got entity.Point) {
	t.Helper()
	dx, dy := got.X-want.X, got.Y-want.Y
	require.True(t, dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1, "got %s, want near %s", got, want)
}

func TestFindMarker_SinglePixelRoundTrip(t *testing.T) {
	c := bitmaptest.NewCanvas(5, 6)
	c.Set(2, 3, entity.MarkerColor)

	circle, err := NewScanner().FindMarker(context.Background(), decodeCanvas(t, c))
	require.NoError(t, err)
	require.Equal(t, entity.Circle{Center: entity.Point{X: 2, Y: 3}, Radius: 1}, circle)
}

func TestFindMarker_LargestWins(t *testing.T) {
	cases := map[string]struct {
		small, large entity.Point
	}{
		"small first": {small: entity.Point{X: 10, Y: 10}, large: entity.Point{X: 40, Y: 40}},
		"large first": {small: entity.Point{X: 45, Y: 45}, large: entity.Point{X: 15, Y: 15}},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			c := bitmaptest.NewCanvas(60, 60)
			c.Disk(tc.small.X, tc.small.Y, 3, entity.MarkerColor)
			c.Disk(tc.large.X, tc.large.Y, 8, entity.MarkerColor)
			img := decodeCanvas(t, c)

			s := NewScanner()
			circle, err := s.FindMarker(context.Background(), img)
			require.NoError(t, err)
			requireNear(t, tc.large, circle.Center)
			require.Greater(t, circle.Radius, s.RadiusAt(img, tc.small.X, tc.small.Y))
		})
	}
}

func TestFindMarker_TieKeepsFirst(t *testing.T) {
	c := bitmaptest.NewCanvas(60, 60)
	c.Disk(10, 10, 5, entity.MarkerColor)
	c.Disk(40, 40, 5, entity.MarkerColor)

	circle, err := NewScanner().FindMarker(context.Background(), decodeCanvas(t, c))
	require.NoError(t, err)
	requireNear(t, entity.Point{X: 10, Y: 10}, circle.Center)
}

func TestFindMarker_NoMarker(t *testing.T) {
	c := bitmaptest.NewCanvas(20, 20)
	// почти красный не считается маркером
	c.Disk(10, 10, 5, entity.RGB{R: 0xFE})
	c.Set(1, 1, entity.RGB{R: 0xFF, G: 0x01})

	circle, err := NewScanner().FindMarker(context.Background(), decodeCanvas(t, c))
	require.ErrorIs(t, err, entity.ErrNoMarker)
	require.Equal(t, entity.Circle{}, circle)
}

func TestFindMarker_BorderPixelsStayInBounds(t *testing.T) {
	c := bitmaptest.NewCanvas(7, 5)
	for _, p := range []entity.Point{{X: 0, Y: 0}, {X: 6, Y: 0}, {X: 0, Y: 4}, {X: 6, Y: 4}} {
		c.Set(p.X, p.Y, entity.MarkerColor)
	}

	circle, err := NewScanner().FindMarker(context.Background(), decodeCanvas(t, c))
	require.NoError(t, err)
	require.Equal(t, entity.Circle{Center: entity.Point{X: 0, Y: 0}, Radius: 1}, circle)
}

func TestFindMarker_FullImageIsBoundedByMaxRadius(t *testing.T) {
	c := bitmaptest.NewCanvas(12, 9)
	for y := 0; y < 9; y++ {
		for x := 0; x < 12; x++ {
			c.Set(x, y, entity.MarkerColor)
		}
	}
	img := decodeCanvas(t, c)

	circle, err := NewScanner().FindMarker(context.Background(), img)
	require.NoError(t, err)
	require.LessOrEqual(t, circle.Radius, MaxRadius(img))
	require.True(t, img.In(circle.Center.X, circle.Center.Y))
}

func TestFindMarker_ContextCancelled(t *testing.T) {
	c := bitmaptest.NewCanvas(4, 4)
	c.Set(1, 1, entity.MarkerColor)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewScanner().FindMarker(ctx, decodeCanvas(t, c))
	require.ErrorIs(t, err, context.Canceled)
}

func TestIsMarker_OutOfBounds(t *testing.T) {
	c := bitmaptest.NewCanvas(2, 2)
	c.Set(0, 0, entity.MarkerColor)
	img := decodeCanvas(t, c)
	s := NewScanner()

	require.True(t, s.IsMarker(img, 0, 0))
	require.False(t, s.IsMarker(img, 1, 0))
	require.False(t, s.IsMarker(img, -1, 0))
	require.False(t, s.IsMarker(img, 0, 2))
	require.Equal(t, 0, s.RadiusAt(img, 1, 1))
}

func TestMaxRadius(t *testing.T) {
	c := bitmaptest.NewCanvas(1, 1)
	require.Equal(t, 1, MaxRadius(decodeCanvas(t, c)))

	c = bitmaptest.NewCanvas(40, 30)
	require.Equal(t, 15, MaxRadius(decodeCanvas(t, c)))
}
