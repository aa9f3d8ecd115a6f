package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-web/internal/logger"
	"github.com/MKhiriev/go-pass-web/internal/mock"
	"github.com/MKhiriev/go-pass-web/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type runnerFunc func(ctx context.Context) error

func (f runnerFunc) Run(ctx context.Context) error { return f(ctx) }

func blockUntilDone(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

func TestApp_UIExitStopsWorkersAndDrains(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockSessionService(ctrl)
	gomock.InOrder(
		session.EXPECT().Logout(),
		session.EXPECT().Wait(),
	)

	workersStopped := make(chan struct{})
	workers := runnerFunc(func(ctx context.Context) error {
		<-ctx.Done()
		close(workersStopped)
		return nil
	})
	ui := runnerFunc(func(context.Context) error { return nil })

	a := NewApp(&service.ClientServices{SessionService: session}, ui, workers, logger.Nop()).(*App)

	require.NoError(t, a.run(context.Background()))

	select {
	case <-workersStopped:
	case <-time.After(time.Second):
		t.Fatal("workers were not stopped")
	}
}

func TestApp_UIErrorIsReturned(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockSessionService(ctrl)
	session.EXPECT().Wait()
	session.EXPECT().Logout()

	boom := errors.New("tty lost")
	ui := runnerFunc(func(context.Context) error { return boom })

	a := NewApp(&service.ClientServices{SessionService: session}, ui, runnerFunc(blockUntilDone), logger.Nop()).(*App)

	assert.ErrorIs(t, a.run(context.Background()), boom)
}

func TestApp_ContextCancelStopsAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockSessionService(ctrl)
	session.EXPECT().Wait()
	session.EXPECT().Logout()

	a := NewApp(&service.ClientServices{SessionService: session}, runnerFunc(blockUntilDone), runnerFunc(blockUntilDone), logger.Nop()).(*App)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("app did not stop")
	}
}
