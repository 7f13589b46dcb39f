package remove

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"dario.lol/udns/internal/flags"
	"dario.lol/udns/internal/ui"
	"dario.lol/udns/internal/ultradns"
	"github.com/spf13/cobra"
)

var (
	zoneNames []string
	yes       bool
)

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "Delete one or more zones by name",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(zoneNames) == 0 {
			return errors.New("at least one --name is required")
		}
		return nil
	},
	Run: executeDeleteZones,
}

func init() {
	zonesCmd.Flags().StringSliceVarP(&zoneNames, flags.NameFlag, "n", nil, "Zone name to delete (repeatable)")
	flags.RegisterConfirmation(zonesCmd, &yes)
	DeleteCmd.AddCommand(zonesCmd)
}

func executeDeleteZones(cmd *cobra.Command, args []string) {
	session, err := ultradns.ConnectMutating()
	if err != nil {
		fmt.Println(ui.ErrorMessage("Cannot delete zones", err))
		os.Exit(1)
	}

	if !yes {
		confirmed, err := ui.Confirm(fmt.Sprintf("Are you sure you want to delete %d zone(s): %s?", len(zoneNames), strings.Join(zoneNames, ", ")))
		if err != nil || !confirmed {
			fmt.Println(ui.Warning("Zone deletion cancelled."))
			return
		}
	}

	if failed := deleteZones(session, zoneNames); failed > 0 {
		os.Exit(1)
	}
}

// deleteZones issues one delete call per name, independent of the outcome
// of earlier calls. Returns the number of failures.
func deleteZones(session *ultradns.Session, names []string) int {
	failed := 0
	for _, name := range names {
		if err := session.DeleteZone(context.Background(), name); err != nil {
			fmt.Println(ui.ErrorMessage(fmt.Sprintf("Error deleting zone %s", name), err))
			failed++
			continue
		}
		fmt.Println(ui.Success(fmt.Sprintf("Deleted zone %s", name)))
	}
	return failed
}
