package commands

import (
	"errors"

	"packaging/internal/core/domain/model/kernel"
	"packaging/internal/pkg/guard"
)

var ErrPrintLabelCommandIsNotConstructed = errors.New(
	"PrintLabelCommand must be created via NewPrintLabelCommand constructor",
)

// PrintLabelCommand requests the stored document of a label for printing.
// The document is never re-rendered; reprints return the original bytes.
type PrintLabelCommand struct { //nolint:recvcheck //using for validation
	labelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPrintLabelCommand creates a command to print a label.
func NewPrintLabelCommand(labelID kernel.UUID) (PrintLabelCommand, error) {
	cmd := PrintLabelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setLabelID(labelID); err != nil {
		return PrintLabelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PrintLabelCommand) Validate() error {
	return c.guard.Validate(ErrPrintLabelCommandIsNotConstructed)
}

// LabelID returns the identifier of the label to print.
func (c PrintLabelCommand) LabelID() kernel.UUID {
	return c.labelID
}

func (c *PrintLabelCommand) setLabelID(labelID kernel.UUID) error {
	if err := labelID.Validate(); err != nil {
		return err
	}

	c.labelID = labelID
	return nil
}
