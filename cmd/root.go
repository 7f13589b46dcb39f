package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"dario.lol/udns/cmd/create"
	"dario.lol/udns/cmd/ls"
	"dario.lol/udns/cmd/remove"
	"dario.lol/udns/internal/config"
	"dario.lol/udns/internal/constants"
	"dario.lol/udns/internal/ui"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss/v2"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:     "udns",
	Short:   fmt.Sprintf("CLI to manage UltraDNS zones version %s", constants.Version),
	Long:    ``,
	Version: constants.Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetLevel(log.WarnLevel)
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("username", "", "UltraDNS username (env ULTRA_UNAME)")
	pf.String("password", "", "UltraDNS password (env ULTRA_PWORD)")
	pf.String("token", "", "UltraDNS bearer token, read-only (env ULTRA_TOKEN)")
	pf.BoolVar(&verbose, "verbose", false, "Display debug information")
	config.Bind(pf)

	rootCmd.AddCommand(ls.LsCmd)
	rootCmd.AddCommand(create.CreateCmd)
	rootCmd.AddCommand(remove.DeleteCmd)
}

func configureColorScheme(_ lipgloss.LightDarkFunc) fang.ColorScheme {
	return ui.FangTheme()
}

func Execute() {
	if err := fang.Execute(context.Background(), rootCmd, fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {}), fang.WithColorSchemeFunc(configureColorScheme), fang.WithVersion(constants.Version)); err != nil {
		println(ui.ErrorBox("Error executing command", err))
		os.Exit(1)
	}
}
