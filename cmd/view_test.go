package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmi3/freshreadme/internal/domain"
	domainmocks "github.com/dmi3/freshreadme/internal/domain/mocks"
	m "github.com/dmi3/freshreadme/internal/model"
)

func TestViewCmd_UsesReportFileFlagByDefault(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().View(mock.Anything, domain.ViewArgs{Report: "out/report.json", Format: defaultFormat}).
		Return(m.Summary{Outcome: m.OutcomeInSync}, nil).Once()

	_, err := executeRoot(t, newViewCmd(), "view", "--report-file", "out/report.json")

	require.NoError(t, err)
}

func TestViewCmd_ArgumentWins(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().View(mock.Anything, domain.ViewArgs{Report: "saved.yaml", Format: "json"}).
		Return(m.Summary{Outcome: m.OutcomeInSync}, nil).Once()

	_, err := executeRoot(t, newViewCmd(), "view", "saved.yaml", "--report-file", "ignored.json", "-f", "json")

	require.NoError(t, err)
}

func TestViewCmd_SavedOutcomeSetsExitCode(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().View(mock.Anything, mock.Anything).
		Return(m.Summary{Outcome: m.OutcomeStructural}, nil).Once()

	_, err := executeRoot(t, newViewCmd(), "view", "report.json")

	require.Error(t, err)
	assert.Equal(t, exitStructural, exitCode(err))
}

func TestViewCmd_TooManyArguments(t *testing.T) {
	useWorkflow(t, domainmocks.NewMockWorkflow(t))

	_, err := executeRoot(t, newViewCmd(), "view", "a.json", "b.json")

	require.Error(t, err)
}
