package cli

import (
	"strings"
	"time"

	"github.com/briandowns/spinner"
)

// startSpinner shows a progress spinner until the returned cleanup runs. The
// caller sets FinalMSG before cleanup to control the line left behind.
func (c *CLI) startSpinner(message string) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(c.errOut))
	s.Suffix = " " + message

	// Ignore color errors - continue without colored spinner if it fails.
	_ = s.Color("cyan")

	s.Start()

	cleanup := func() {
		if s.FinalMSG != "" && !strings.HasSuffix(s.FinalMSG, "\n") {
			s.FinalMSG += "\n"
		}
		s.Stop()
	}
	return s, cleanup
}
