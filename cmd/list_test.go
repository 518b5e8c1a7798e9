package cmd

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmi3/freshreadme/internal/domain"
	domainmocks "github.com/dmi3/freshreadme/internal/domain/mocks"
	m "github.com/dmi3/freshreadme/internal/model"
)

func TestListCmd_IgnoresDrift(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().List(mock.Anything, mock.MatchedBy(func(args domain.SyncArgs) bool {
		return args.Format == "yaml"
	})).Return(m.Summary{Mode: m.ModeList, Outcome: m.OutcomeDrift}, nil).Once()

	_, err := executeRoot(t, newListCmd(), "list", "--format", "yaml")

	require.NoError(t, err)
}

func TestListCmd_ReturnsErrors(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().List(mock.Anything, mock.Anything).
		Return(m.Summary{}, fmt.Errorf("%w: README.md is matched by both filters", m.ErrConfiguration)).Once()

	_, err := executeRoot(t, newListCmd(), "list")

	require.Error(t, err)
	assert.Equal(t, exitConfig, exitCode(err))
}
