package prompt

import (
	"errors"
	"net"

	"dario.lol/udns/internal/ui"
	"github.com/charmbracelet/huh"
)

var ErrUserCancelled = errors.New("cancelled by user")

// PrimaryNameServer is the transfer source for secondary and
// primary-by-transfer zone creation.
type PrimaryNameServer struct {
	IP         string
	TSIGKey    string
	TSIGSecret string
}

// RunPrimaryNameServerPrompt asks for the primary nameserver IP and, on
// opt-in, a TSIG key and secret for authenticated transfers.
func RunPrimaryNameServerPrompt() (PrimaryNameServer, error) {
	var ns PrimaryNameServer
	var useTSIG bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Primary nameserver IP").
				Description("The nameserver the zone contents are transferred from").
				Placeholder("203.0.113.53").
				Value(&ns.IP).
				Validate(func(s string) error {
					if net.ParseIP(s) == nil {
						return errors.New("enter a valid IP address")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Configure a TSIG key for transfers?").
				Affirmative("Yes").
				Negative("No").
				Value(&useTSIG),
		),
	).WithTheme(ui.HuhTheme())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return PrimaryNameServer{}, ErrUserCancelled
		}
		return PrimaryNameServer{}, err
	}

	if !useTSIG {
		return ns, nil
	}

	tsigForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("TSIG key name").
				Placeholder("transfer-key").
				Value(&ns.TSIGKey).
				Validate(func(s string) error {
					if len(s) == 0 {
						return errors.New("key name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("TSIG secret").
				Placeholder("Enter the shared secret...").
				EchoMode(huh.EchoModePassword).
				Value(&ns.TSIGSecret).
				Validate(func(s string) error {
					if len(s) == 0 {
						return errors.New("secret cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(ui.HuhTheme())

	if err := tsigForm.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return PrimaryNameServer{}, ErrUserCancelled
		}
		return PrimaryNameServer{}, err
	}

	return ns, nil
}
