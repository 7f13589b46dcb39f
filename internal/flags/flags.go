package flags

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

const (
	ExportFlag  = "export"
	NameFlag    = "name"
	TypeFlag    = "type"
	StatusFlag  = "status"
	ZoneFlag    = "zone"
	OwnerFlag   = "owner"
	AccountFlag = "account"
	YesFlag     = "yes"
)

func RegisterExport(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(target, ExportFlag, "", "Write the listed rows to a csv file")
}

func RegisterConfirmation(cmd *cobra.Command, target *bool) {
	cmd.Flags().BoolVarP(target, YesFlag, "y", false, "Skip confirmation prompt")
}

// Choice validates an enumerated flag value. The empty string is allowed
// and means the flag was not set.
func Choice(flag, value string, allowed ...string) error {
	if value == "" || slices.Contains(allowed, value) {
		return nil
	}
	return fmt.Errorf("invalid --%s %q: must be one of %s", flag, value, strings.Join(allowed, ", "))
}
