package cmd

import (
	"fmt"

	"patri/internal/domain"
)

// ResetCmd forces the persisted session back to idle. Recovery hatch for a
// session wedged by a bad snapshot; evidence already stored is untouched.
type ResetCmd struct{}

// Run resets the session
func (r *ResetCmd) Run(cli *CLI) error {
	snap := cli.Container.SessionSnapshot()
	if snap.State == domain.StateIdle {
		fmt.Println("Session is already idle.")
		return nil
	}

	if err := cli.Container.Machine.ForceIdle(); err != nil {
		return fmt.Errorf("failed to reset session: %w", err)
	}
	fmt.Printf("Session reset to idle (was %s).\n", snap.State)
	return nil
}
