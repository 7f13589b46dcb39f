package create

import (
	"context"
	"errors"
	"fmt"
	"os"

	"dario.lol/udns/internal/flags"
	"dario.lol/udns/internal/prompt"
	"dario.lol/udns/internal/ui"
	"dario.lol/udns/internal/ultradns"
	"github.com/spf13/cobra"
)

var (
	zoneType    string
	accountName string
	zoneNames   []string
	transfer    bool
)

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "Create one or more zones",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if zoneType == "" {
			return errors.New("--type is required")
		}
		if err := flags.Choice(flags.TypeFlag, zoneType, ultradns.ZoneTypePrimary, ultradns.ZoneTypeSecondary); err != nil {
			return err
		}
		if accountName == "" {
			return errors.New("--account is required")
		}
		if len(zoneNames) == 0 {
			return errors.New("at least one --name is required")
		}
		return nil
	},
	Run: executeCreateZones,
}

func init() {
	zonesCmd.Flags().StringVarP(&zoneType, flags.TypeFlag, "t", "", "Type of zone to create (PRIMARY, SECONDARY)")
	zonesCmd.Flags().StringVarP(&accountName, flags.AccountFlag, "a", "", "Account to create the zones in")
	zonesCmd.Flags().StringSliceVarP(&zoneNames, flags.NameFlag, "n", nil, "Zone name to create (repeatable)")
	zonesCmd.Flags().BoolVar(&transfer, "transfer", false, "Seed a PRIMARY zone by transfer from its current primary")
	CreateCmd.AddCommand(zonesCmd)
}

func executeCreateZones(cmd *cobra.Command, args []string) {
	session, err := ultradns.ConnectMutating()
	if err != nil {
		fmt.Println(ui.ErrorMessage("Cannot create zones", err))
		os.Exit(1)
	}

	spec := ultradns.ZoneSpec{Type: zoneType, AccountName: accountName, Transfer: transfer}
	if zoneType == ultradns.ZoneTypeSecondary || transfer {
		ns, err := prompt.RunPrimaryNameServerPrompt()
		if err != nil {
			if errors.Is(err, prompt.ErrUserCancelled) {
				fmt.Println(ui.Warning("Zone creation cancelled."))
				return
			}
			fmt.Println(ui.ErrorMessage("Error reading nameserver details", err))
			os.Exit(1)
		}
		spec.PrimaryNS = ns.IP
		spec.TSIGKey = ns.TSIGKey
		spec.TSIGSecret = ns.TSIGSecret
	}

	if failed := createZones(session, spec, zoneNames); failed > 0 {
		os.Exit(1)
	}
}

// createZones issues one create call per name and reports each outcome.
// Returns the number of failures.
func createZones(session *ultradns.Session, spec ultradns.ZoneSpec, names []string) int {
	failed := 0
	for _, name := range names {
		zone := spec
		zone.Name = name
		if err := session.CreateZone(context.Background(), zone); err != nil {
			fmt.Println(ui.ErrorMessage(fmt.Sprintf("Error creating zone %s", name), err))
			failed++
			continue
		}
		fmt.Println(ui.Success(fmt.Sprintf("Created zone %s", name)))
	}
	return failed
}
