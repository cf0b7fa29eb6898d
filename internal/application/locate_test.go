package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"marker-clicker/internal/domain/entity"
	"marker-clicker/internal/infrastructure/bitmap"
	"marker-clicker/internal/infrastructure/bitmap/bitmaptest"
	"marker-clicker/internal/infrastructure/vision"
)

func newLocateService() *LocateService {
	return NewLocateService(bitmap.NewDecoder(), vision.NewScanner())
}

func writeBitmap(t *testing.T, dir, name string, c *bitmaptest.Canvas) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, c.Bytes(), 0o644))
	return path
}

func markerCanvas(x, y, r int) *bitmaptest.Canvas {
	c := bitmaptest.NewCanvas(40, 30)
	c.Disk(x, y, r, entity.MarkerColor)
	return c
}

func TestLocateService_Locate(t *testing.T) {
	dir := t.TempDir()
	c := bitmaptest.NewCanvas(9, 7)
	c.Set(4, 2, entity.MarkerColor)
	path := writeBitmap(t, dir, "one.bmp", c)

	d, err := newLocateService().Locate(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, path, d.Path)
	require.Equal(t, 9, d.ImageWidth)
	require.Equal(t, 7, d.ImageHeight)
	require.Equal(t, entity.Point{X: 4, Y: 2}, d.Target())
	require.Equal(t, 1, d.Marker.Radius)
}

func TestLocateService_ErrorKinds(t *testing.T) {
	dir := t.TempDir()
	svc := newLocateService()
	ctx := context.Background()

	_, err := svc.Locate(ctx, filepath.Join(dir, "missing.bmp"))
	require.ErrorIs(t, err, entity.ErrIO)

	garbage := filepath.Join(dir, "garbage.bmp")
	require.NoError(t, os.WriteFile(garbage, []byte("not a bitmap"), 0o644))
	_, err = svc.Locate(ctx, garbage)
	require.ErrorIs(t, err, entity.ErrFormat)

	empty := writeBitmap(t, dir, "empty.bmp", bitmaptest.NewCanvas(8, 8))
	d, err := svc.Locate(ctx, empty)
	require.ErrorIs(t, err, entity.ErrNoMarker)
	require.Nil(t, d)
}

func TestLocateService_NotConfigured(t *testing.T) {
	_, err := NewLocateService(nil, nil).LocateBytes(context.Background(), "x", nil)
	require.Error(t, err)
}
