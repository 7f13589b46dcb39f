package ls

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"dario.lol/udns/internal/executor"
	"dario.lol/udns/internal/presenter"
	"dario.lol/udns/internal/ui"
	"dario.lol/udns/internal/ultradns"
	"github.com/spf13/cobra"
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List accounts visible to the current user",
	Run: executor.NewBuilder[*ultradns.Session, []ultradns.Account]().
		Setup("Authenticating", ultradns.Connect).
		Fetch("Fetching accounts", fetchAccounts).
		Display(printAccounts).
		Build().
		CobraRun(),
}

func init() {
	LsCmd.AddCommand(accountsCmd)
}

func fetchAccounts(session *ultradns.Session, _ *cobra.Command, _ []string, _ chan<- string) ([]ultradns.Account, error) {
	return session.ListAccounts(context.Background())
}

func printAccounts(accounts []ultradns.Account, fetchDuration time.Duration, err error) {
	if err != nil {
		fmt.Println(ui.ErrorMessage("Error fetching accounts", err))
		os.Exit(1)
	}

	if len(accounts) == 0 {
		fmt.Println(ui.Warning("No accounts found"))
		return
	}

	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Name < accounts[j].Name })

	tbl := presenter.New("Account", "Type", "Owner", "Users", "Groups")
	for _, account := range accounts {
		tbl.AddRow(account.Name, account.Type, account.Owner,
			strconv.Itoa(account.Users), strconv.Itoa(account.Groups))
	}
	fmt.Println(tbl.Render())
	fmt.Println(ui.Success(fmt.Sprintf("Listed %d account(s) in %v", len(accounts), fetchDuration)))
}
