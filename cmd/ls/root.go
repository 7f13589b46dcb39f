package ls

import (
	"github.com/spf13/cobra"
)

var LsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List zones, records, accounts, and tasks",
}
