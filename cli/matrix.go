package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/navframe/spatialmath"
)

// MatrixAction is the corresponding action for 'matrix'.
func (s *appState) MatrixAction(c *cli.Context) error {
	if c.NArg() != 0 {
		return errors.Errorf("expected no arguments but got %d, usage: %s", c.NArg(), c.Command.UsageText)
	}
	att := s.attitude(c)
	ea := att.EulerAngles()
	s.logger.Debugw("rotation matrix", "attitude", ea.String())
	printf(c.App.Writer, "%s", matrixTable(ea.RotationMatrix()))
	return nil
}

// matrixTable renders rm with the NED axes as rows and the body axes as columns, so each
// column is a body axis expressed in NED.
func matrixTable(rm *spatialmath.RotationMatrix) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"", "forward", "right", "down"})
	for i, name := range []string{"north", "east", "down"} {
		row := rm.Row(i)
		t.AppendRow(table.Row{
			name,
			fmt.Sprintf("%.6f", tidy(row.X)),
			fmt.Sprintf("%.6f", tidy(row.Y)),
			fmt.Sprintf("%.6f", tidy(row.Z)),
		})
	}
	return t.Render()
}
