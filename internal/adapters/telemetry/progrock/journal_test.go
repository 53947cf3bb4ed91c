package progrock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/newsskill/internal/adapters/telemetry/progrock"
	"go.trai.ch/newsskill/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestJournal_SuccessIsSilent(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	// No logger calls are expected.
	recorder := progrock.NewRecorder(progrock.NewJournal(logger))

	vertex := recorder.Record(context.Background(), "install /tmp/demo")
	vertex.Log("replacing existing installation")
	vertex.Log("copied SKILL.md")
	vertex.Complete(nil)

	require.NoError(t, recorder.Close())
}

func TestJournal_ReplaysFailedVertex(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	recorder := progrock.NewRecorder(progrock.NewJournal(logger))

	gomock.InOrder(
		logger.EXPECT().Warn("install /tmp/demo failed: disk full"),
		logger.EXPECT().Info("install /tmp/demo: replacing existing installation"),
		logger.EXPECT().Info("install /tmp/demo: copied SKILL.md"),
		logger.EXPECT().Info("install /tmp/demo: copied scripts"),
	)

	vertex := recorder.Record(context.Background(), "install /tmp/demo")
	vertex.Log("replacing existing installation")
	vertex.Log("copied SKILL.md\ncopied scripts")
	vertex.Complete(errors.New("disk full"))

	require.NoError(t, recorder.Close())
}

func TestJournal_LogsAreKeptPerVertex(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	recorder := progrock.NewRecorder(progrock.NewJournal(logger))

	gomock.InOrder(
		logger.EXPECT().Warn("install /b failed: read-only file system"),
		logger.EXPECT().Info("install /b: copied README.md"),
	)

	first := recorder.Record(context.Background(), "install /a")
	second := recorder.Record(context.Background(), "install /b")
	first.Log("copied SKILL.md")
	second.Log("copied README.md")
	first.Complete(nil)
	second.Complete(errors.New("read-only file system"))

	require.NoError(t, recorder.Close())
}
