package cmd

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/streamio-cli/streamio/auth"
	"github.com/streamio-cli/streamio/color"
	"github.com/streamio-cli/streamio/icon"
	"github.com/streamio-cli/streamio/key"
	"github.com/streamio-cli/streamio/streamio"
	"github.com/streamio-cli/streamio/style"
	"github.com/zalando/go-keyring"
)

// writeConfig persists viper's state, creating the config file on first use.
func writeConfig() error {
	err := viper.WriteConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfig()
	}
	return err
}

func init() {
	rootCmd.AddCommand(authCmd)
}

// authCmd groups the account credential commands.
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the Streamio account credentials",
}

func init() {
	authCmd.AddCommand(authLoginCmd)
	authLoginCmd.Flags().Bool("no-verify", false, "Store the credentials without checking them against the API")
}

// authLoginCmd asks for the account pair, checks it and stores it.
var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store the Streamio username in the config and the password in the system keyring",
	Run: func(cmd *cobra.Command, args []string) {
		var creds streamio.Credentials

		handleErr(survey.AskOne(&survey.Input{
			Message: "Streamio username:",
			Default: viper.GetString(key.APIUsername),
		}, &creds.Username, survey.WithValidator(survey.Required)))

		handleErr(survey.AskOne(&survey.Password{
			Message: "Streamio password:",
			Help:    "Stored in the system keyring, never in the config file",
		}, &creds.Password, survey.WithValidator(survey.Required)))

		if !lo.Must(cmd.Flags().GetBool("no-verify")) {
			_, err := newClient().FetchPage(cmd.Context(), creds, streamio.PageRequest{
				Limit: 1,
				Sort:  streamio.CreatedAtDesc,
			})
			if err != nil {
				handleErr(fmt.Errorf("credentials rejected: %w", err))
			}
		}

		handleErr(auth.SetPassword(creds.Username, creds.Password))

		viper.Set(key.APIUsername, creds.Username)
		handleErr(writeConfig())

		fmt.Printf(
			"%s logged in as %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(creds.Username),
		)
	},
}

func init() {
	authCmd.AddCommand(authLogoutCmd)
}

// authLogoutCmd forgets the stored password.
var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored password of the configured username from the system keyring",
	Run: func(cmd *cobra.Command, args []string) {
		username := viper.GetString(key.APIUsername)

		err := auth.DeletePassword(username)
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Printf("%s no password stored for %s\n", icon.Get(icon.Mark), style.Fg(color.Purple)(username))
			return
		}
		handleErr(err)

		fmt.Printf(
			"%s logged out %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(username),
		)
	},
}

func init() {
	authCmd.AddCommand(authStatusCmd)
}

// authStatusCmd reports where the credentials come from.
var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which Streamio account is configured and where its password comes from",
	Run: func(cmd *cobra.Command, args []string) {
		username := viper.GetString(key.APIUsername)
		if username == "" {
			fmt.Printf(
				"%s no username configured, run %s\n",
				style.Fg(color.Yellow)(icon.Get(icon.Unconfigured)),
				style.Bold("streamio auth login"),
			)
			return
		}

		var source string
		switch {
		case viper.GetString(key.APIPassword) != "":
			source = "config or environment"
		default:
			_, err := auth.GetPassword(username)
			switch {
			case err == nil:
				source = "system keyring"
			case errors.Is(err, keyring.ErrNotFound):
				source = style.Fg(color.Red)("missing")
			default:
				handleErr(err)
			}
		}

		fmt.Printf("%s %s\n", style.Fg(color.Blue)("Username:"), style.Fg(color.Purple)(username))
		fmt.Printf("%s %s %s\n", style.Fg(color.Blue)("Password:"), icon.Get(icon.Lock), source)
	},
}
