package commands_test

import (
	"testing"

	"packaging/internal/core/application/usecases/commands"
	"packaging/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMarkOrderDefectiveCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewMarkOrderDefectiveCommand(id, " damaged in transit ", "operator-1")
	require.NoError(t, err)
	assert.Equal(t, "damaged in transit", cmd.Reason())
	assert.Equal(t, "operator-1", cmd.Operator())
}

func TestNewMarkOrderDefectiveCommand_BlankReason(t *testing.T) {
	id := kernel.NewUUID()
	_, err := commands.NewMarkOrderDefectiveCommand(id, "   ", "operator-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDefectReasonIsRequired)
}

func TestNewMarkOrderDefectiveCommand_EmptyOperator(t *testing.T) {
	id := kernel.NewUUID()
	_, err := commands.NewMarkOrderDefectiveCommand(id, "damaged", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOperatorIsRequired)
}
