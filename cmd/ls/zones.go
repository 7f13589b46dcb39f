package ls

import (
	"context"
	"fmt"
	"maps"
	"os"
	"slices"
	"strconv"
	"time"

	"dario.lol/udns/internal/executor"
	"dario.lol/udns/internal/flags"
	"dario.lol/udns/internal/pagination"
	"dario.lol/udns/internal/presenter"
	"dario.lol/udns/internal/ui"
	"dario.lol/udns/internal/ultradns"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	zoneType    string
	zoneName    string
	zoneStatus  string
	zonesExport string
)

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "List zones, filterable by name, type, and status",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if err := flags.Choice(flags.TypeFlag, zoneType, ultradns.ZoneTypeAlias, ultradns.ZoneTypePrimary, ultradns.ZoneTypeSecondary); err != nil {
			return err
		}
		return flags.Choice(flags.StatusFlag, zoneStatus, ultradns.ZoneStatusActive, ultradns.ZoneStatusSuspended)
	},
	Run: executor.NewBuilder[*ultradns.Session, map[string]ultradns.Zone]().
		Setup("Authenticating", ultradns.Connect).
		Fetch("Fetching zones", fetchZones).
		Display(printZones).
		Build().
		CobraRun(),
}

func init() {
	zonesCmd.Flags().StringVarP(&zoneType, flags.TypeFlag, "t", "", "Filter on type of zone (ALIAS, PRIMARY, SECONDARY)")
	zonesCmd.Flags().StringVarP(&zoneName, flags.NameFlag, "n", "", "Search string for domain name")
	zonesCmd.Flags().StringVarP(&zoneStatus, flags.StatusFlag, "s", "", "Filter on status of zone (ACTIVE, SUSPENDED)")
	flags.RegisterExport(zonesCmd, &zonesExport)
	LsCmd.AddCommand(zonesCmd)
}

// collectZones drains every page of the zone listing into one name-keyed
// map.
func collectZones(session *ultradns.Session, q ultradns.ZoneQuery) (map[string]ultradns.Zone, error) {
	return pagination.Collect(func(cursor string) (pagination.Page[ultradns.Zone], error) {
		page, err := session.ListZones(context.Background(), q, cursor)
		if err != nil {
			return pagination.Page[ultradns.Zone]{}, err
		}
		log.WithFields(log.Fields{"zones": len(page.Zones), "more": page.Next != ""}).Debug("fetched zone page")
		return pagination.Page[ultradns.Zone]{Items: page.Zones, Next: page.Next}, nil
	})
}

func fetchZones(session *ultradns.Session, _ *cobra.Command, _ []string, _ chan<- string) (map[string]ultradns.Zone, error) {
	q := ultradns.ZoneQuery{Name: zoneName, Type: zoneType, Status: zoneStatus}
	return collectZones(session, q)
}

func printZones(zones map[string]ultradns.Zone, fetchDuration time.Duration, err error) {
	if err != nil {
		fmt.Println(ui.ErrorMessage("Error fetching zones", err))
		os.Exit(1)
	}

	tbl := presenter.New("Name", "Type", "Status", "Account", "Records")
	for _, name := range slices.Sorted(maps.Keys(zones)) {
		zone := zones[name]
		tbl.AddRow(zone.Name, zone.Type, zone.Status, zone.AccountName, strconv.Itoa(zone.RecordCount))
	}

	if tbl.Len() == 0 {
		fmt.Println(ui.Warning("No zones found"))
	} else {
		fmt.Println(tbl.Render())
		fmt.Println(ui.Success(fmt.Sprintf("Listed %d zone(s) in %v", tbl.Len(), fetchDuration)))
	}

	if zonesExport != "" {
		if err := tbl.ExportCSV(zonesExport); err != nil {
			log.WithError(err).WithField("file", zonesExport).Warn("csv export failed")
		}
	}
}
