package input

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"marker-clicker/internal/domain/entity"
)

func TestDryRunInjector_RecordsMoveThenClick(t *testing.T) {
	inj := NewDryRunInjector()
	ctx := context.Background()

	require.NoError(t, inj.MoveAbsolute(ctx, entity.Point{X: 12, Y: 34}))
	require.NoError(t, inj.ClickPrimary(ctx))
	require.NoError(t, inj.Close())

	require.Equal(t, []Event{
		{Type: "move", Point: entity.Point{X: 12, Y: 34}},
		{Type: "click", Point: entity.Point{X: 12, Y: 34}},
	}, inj.Events())
	require.True(t, inj.Closed())
}

func TestDryRunInjector_HonoursContext(t *testing.T) {
	inj := NewDryRunInjector()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, inj.MoveAbsolute(ctx, entity.Point{}), context.Canceled)
	require.ErrorIs(t, inj.ClickPrimary(ctx), context.Canceled)
	require.Empty(t, inj.Events())
}

func TestOpenXTest_BadDisplay(t *testing.T) {
	inj, err := OpenXTest("no-colon-here")
	require.ErrorIs(t, err, entity.ErrInjection)
	require.Nil(t, inj)
}
