package container

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	app "marker-clicker/internal/application"
	"marker-clicker/internal/domain/entity"
	"marker-clicker/internal/infrastructure/bitmap/bitmaptest"
	"marker-clicker/internal/infrastructure/input"
)

func TestNew_WiresRunAndReports(t *testing.T) {
	dir := t.TempDir()
	c := bitmaptest.NewCanvas(16, 16)
	c.Disk(8, 8, 3, entity.MarkerColor)
	path := filepath.Join(dir, "shot.bmp")
	require.NoError(t, os.WriteFile(path, c.Bytes(), 0o644))

	inj := input.NewDryRunInjector()
	cont := New(inj, nil)
	ctx := context.Background()

	d, err := cont.LocateService.Locate(ctx, path)
	require.NoError(t, err)

	_, err = cont.RunService.Run(ctx, []string{path}, app.RunOptions{})
	require.NoError(t, err)

	reports, err := cont.Reports.List(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	require.Equal(t, d.Marker, *reports[0].Marker)
	require.Equal(t, d.Target(), inj.Events()[0].Point)
}
