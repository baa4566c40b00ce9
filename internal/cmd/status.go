package cmd

import (
	"fmt"

	"patri/internal/theme"
)

// StatusCmd prints the persisted session state
type StatusCmd struct{}

// Run prints the session snapshot
func (s *StatusCmd) Run(cli *CLI) error {
	snap := cli.Container.SessionSnapshot()

	fmt.Println("State:        " + theme.StateStyle(string(snap.State)).Render(string(snap.State)))
	if snap.ActiveCaseID != "" {
		fmt.Println("Active case:  " + snap.ActiveCaseID)
	}
	if snap.Dialog != nil {
		fmt.Printf("Describing:   photo %d of batch %s\n", snap.Dialog.Index+1, snap.Dialog.BatchID)
	}
	if snap.Processing.Active {
		fmt.Printf("Processing:   batch %s (%d queued)\n", snap.Processing.CurrentBatchID, len(snap.Processing.Queue))
	}
	if !snap.UpdatedAt.IsZero() {
		fmt.Println("Updated:      " + snap.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
	}
	return nil
}
