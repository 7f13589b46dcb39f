package ls

import (
	"context"
	"fmt"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"
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
	recordZones   []string
	recordOwner   string
	recordsExport string
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "List record sets, per zone or across all zones",
	Run: executor.NewBuilder[*ultradns.Session, *recordListing]().
		Setup("Authenticating", ultradns.Connect).
		Fetch("Fetching records", fetchRecords).
		Display(printRecords).
		Build().
		CobraRun(),
}

func init() {
	recordsCmd.Flags().StringSliceVarP(&recordZones, flags.ZoneFlag, "z", nil, "Zone to list records for (repeatable; default all zones)")
	recordsCmd.Flags().StringVarP(&recordOwner, flags.OwnerFlag, "o", "", "Search string for record owner name")
	flags.RegisterExport(recordsCmd, &recordsExport)
	LsCmd.AddCommand(recordsCmd)
}

// recordListing is the aggregated result across zones. Skipped lists the
// zones whose record listing came back unusable.
type recordListing struct {
	Records map[string]map[string]ultradns.RecordSet
	Skipped []string
}

// collectRecords aggregates record sets zone by zone. A zone whose listing
// cannot be paged through is skipped and reported; a credential rejection
// aborts the whole listing.
func collectRecords(session *ultradns.Session, zones []string, owner string, progress chan<- string) (*recordListing, error) {
	listing := &recordListing{Records: make(map[string]map[string]ultradns.RecordSet)}
	for _, zone := range zones {
		if progress != nil {
			progress <- fmt.Sprintf("Fetching records for %s", zone)
		}
		merged, err := pagination.CollectOffset(func(offset int) (pagination.OffsetPage[ultradns.RecordSet], error) {
			page, err := session.ListRecordSets(context.Background(), zone, owner, offset)
			if err != nil {
				return pagination.OffsetPage[ultradns.RecordSet]{}, err
			}
			items := make(map[string]ultradns.RecordSet, len(page.Records))
			for name, record := range page.Records {
				record.Type = pagination.TypeName(record.Type)
				items[name] = record
			}
			return pagination.OffsetPage[ultradns.RecordSet]{Items: items, Returned: page.Returned, Total: page.Total}, nil
		})
		if err != nil {
			if ultradns.IsAuthError(err) {
				return nil, err
			}
			log.WithField("zone", zone).WithError(err).Debug("skipping zone: unusable record listing response")
			listing.Skipped = append(listing.Skipped, zone)
			continue
		}
		listing.Records[zone] = merged
	}
	return listing, nil
}

func fetchRecords(session *ultradns.Session, _ *cobra.Command, _ []string, progress chan<- string) (*recordListing, error) {
	zones := recordZones
	if len(zones) == 0 {
		all, err := collectZones(session, ultradns.ZoneQuery{})
		if err != nil {
			return nil, err
		}
		zones = slices.Sorted(maps.Keys(all))
	}
	return collectRecords(session, zones, recordOwner, progress)
}

func printRecords(listing *recordListing, fetchDuration time.Duration, err error) {
	if err != nil {
		fmt.Println(ui.ErrorMessage("Error fetching records", err))
		os.Exit(1)
	}

	tbl := presenter.New("Zone", "Owner", "Type", "TTL", "RData")
	for _, zone := range slices.Sorted(maps.Keys(listing.Records)) {
		records := listing.Records[zone]
		for _, owner := range slices.Sorted(maps.Keys(records)) {
			record := records[owner]
			tbl.AddRow(zone, record.OwnerName, record.Type, strconv.Itoa(record.TTL), strings.Join(record.RData, " "))
		}
	}

	if tbl.Len() == 0 {
		fmt.Println(ui.Warning("No records found"))
	} else {
		fmt.Println(tbl.Render())
		fmt.Println(ui.Success(fmt.Sprintf("Listed %d record set(s) in %v", tbl.Len(), fetchDuration)))
	}

	for _, zone := range listing.Skipped {
		fmt.Println(ui.Warning(fmt.Sprintf("Skipped zone %s: record listing returned an unusable response", zone)))
	}

	if recordsExport != "" {
		if err := tbl.ExportCSV(recordsExport); err != nil {
			log.WithError(err).WithField("file", recordsExport).Warn("csv export failed")
		}
	}
}
