package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Gorghs/NSS-ops/pkg/core/datacache"
	"github.com/Gorghs/NSS-ops/pkg/core/model"
)

// WatchCmd creates the watch command
func WatchCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Poll the backend and stream live snapshot updates (Ctrl-C to stop)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			updates, unsubscribe := app.Cache.Subscribe()
			defer unsubscribe()

			app.Cache.Start(app.Cfg.PollInterval())
			defer app.Cache.Stop()

			fmt.Printf("\nWatching (every %s) - Ctrl-C to stop\n\n", app.Cfg.PollInterval())

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigCh)

			for {
				select {
				case <-sigCh:
					fmt.Println("\nStopping watch")
					return nil
				case update := <-updates:
					printUpdate(update)
				}
			}
		},
	}
}

func printUpdate(update datacache.Update) {
	if update.Err != nil {
		fmt.Println("refresh failed - showing last known data")
		return
	}

	snap := update.Snapshot
	flag := ""
	if snap.DisasterMode {
		flag = " ⚠️ DISASTER MODE"
	}

	verified := 0
	pending := 0
	for _, a := range snap.Activities {
		switch a.Status {
		case model.StatusVerified:
			verified++
		case model.StatusProofSubmitted:
			pending++
		}
	}

	fmt.Printf("activities=%d (verified=%d, pending_proof=%d) volunteers=%d%s\n",
		len(snap.Activities), verified, pending, len(snap.Volunteers), flag)
}
