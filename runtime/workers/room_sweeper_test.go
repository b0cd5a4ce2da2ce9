package workers

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chat-session-core/mocks"
)

func TestRoomSweeper_TicksUntilCanceled(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockIRoomRegistryService(ctrl)

	var sweeps atomic.Int32
	service.EXPECT().
		DeleteExpiredRooms(gomock.Any()).
		DoAndReturn(func(now time.Time) (int, error) {
			sweeps.Add(1)
			return 0, nil
		}).
		AnyTimes()

	sweeper := NewRoomSweeper(service, slog.Default(), 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	err := sweeper.Run(ctx)
	req.ErrorIs(err, context.DeadlineExceeded)
	req.GreaterOrEqual(sweeps.Load(), int32(2))
}
