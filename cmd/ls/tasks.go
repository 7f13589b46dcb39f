package ls

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"dario.lol/udns/internal/executor"
	"dario.lol/udns/internal/presenter"
	"dario.lol/udns/internal/ui"
	"dario.lol/udns/internal/ultradns"
	"github.com/spf13/cobra"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List background tasks",
	Run: executor.NewBuilder[*ultradns.Session, []ultradns.Task]().
		Setup("Authenticating", ultradns.Connect).
		Fetch("Fetching tasks", fetchTasks).
		Display(printTasks).
		Build().
		CobraRun(),
}

func init() {
	LsCmd.AddCommand(tasksCmd)
}

func fetchTasks(session *ultradns.Session, _ *cobra.Command, _ []string, _ chan<- string) ([]ultradns.Task, error) {
	return session.ListTasks(context.Background())
}

func printTasks(tasks []ultradns.Task, fetchDuration time.Duration, err error) {
	if err != nil {
		fmt.Println(ui.ErrorMessage("Error fetching tasks", err))
		os.Exit(1)
	}

	if len(tasks) == 0 {
		fmt.Println(ui.Warning("No tasks found"))
		return
	}

	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })

	tbl := presenter.New("Task", "Code", "Message", "Result")
	for _, task := range tasks {
		tbl.AddRow(task.ID, task.Code, task.Message, task.ResultURI)
	}
	fmt.Println(tbl.Render())
	fmt.Println(ui.Success(fmt.Sprintf("Listed %d task(s) in %v", len(tasks), fetchDuration)))
}
