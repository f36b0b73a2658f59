package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fivetwenty-io/fiken-client/pkg/fiken"
	"github.com/fivetwenty-io/fiken-client/pkg/fikenclient"
)

// secretReader reads a secret without echo. Tests replace it.
var secretReader = func(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	secret, err := term.ReadPassword(int(os.Stdin.Fd())) //nolint:gosec // fd fits in int
	fmt.Fprintln(os.Stderr)

	if err != nil {
		return "", fmt.Errorf("failed to read secret: %w", err)
	}

	return strings.TrimSpace(string(secret)), nil
}

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		apiToken     string
		accessToken  string
		refreshToken string
		clientID     string
		clientSecret string
		company      string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store Fiken credentials",
		Long: `Verify and store credentials in the config file.

With no flags a personal API token is prompted for. For an OAuth2
authorization pass --access-token, --refresh-token, --client-id and
--client-secret; missing secrets are prompted for.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			oauth := accessToken != "" || refreshToken != "" || clientID != ""

			var err error

			switch {
			case oauth:
				if clientID == "" {
					clientID = readLine(cmd.InOrStdin(), "Client ID: ")
				}

				for _, secret := range []struct {
					value  *string
					prompt string
				}{
					{&accessToken, "Access token: "},
					{&refreshToken, "Refresh token: "},
					{&clientSecret, "Client secret: "},
				} {
					*secret.value, err = promptIfEmpty(*secret.value, secret.prompt)
					if err != nil {
						return err
					}
				}
			default:
				apiToken, err = promptIfEmpty(apiToken, "API token: ")
				if err != nil {
					return err
				}
			}

			config, err := loadConfig()
			if err != nil {
				return err
			}

			if oauth {
				now := time.Now()
				config.APIToken = ""
				config.AccessToken = accessToken
				config.RefreshToken = refreshToken
				config.ClientID = clientID
				config.ClientSecret = clientSecret
				config.TokenExpiresAt = nil
				config.LastRefreshed = &now
			} else {
				config.APIToken = apiToken
				config.AccessToken, config.RefreshToken, config.ClientSecret = "", "", ""
				config.TokenExpiresAt, config.LastRefreshed = nil, nil
			}

			if company != "" {
				config.Company = company
			}

			user, err := verifyLogin(cmd.Context(), config)
			if err != nil {
				return err
			}

			err = saveConfig(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s <%s>\n", user.Name, user.Email)

			return nil
		},
	}

	cmd.Flags().StringVar(&apiToken, "api-token", "", "personal API token")
	cmd.Flags().StringVar(&accessToken, "access-token", "", "OAuth2 access token")
	cmd.Flags().StringVar(&refreshToken, "refresh-token", "", "OAuth2 refresh token")
	cmd.Flags().StringVar(&clientID, "client-id", "", "OAuth2 client ID")
	cmd.Flags().StringVar(&clientSecret, "client-secret", "", "OAuth2 client secret")
	cmd.Flags().StringVar(&company, "default-company", "", "company slug to use by default")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove stored credentials",
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}

			config.APIToken = ""
			config.AccessToken = ""
			config.RefreshToken = ""
			config.ClientSecret = ""
			config.TokenExpiresAt = nil
			config.LastRefreshed = nil

			err = saveConfig(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")

			return nil
		},
	}
}

func promptIfEmpty(value, prompt string) (string, error) {
	if value != "" {
		return value, nil
	}

	return secretReader(prompt)
}

// verifyLogin fetches the user with the new credentials.
func verifyLogin(ctx context.Context, config *Config) (*fiken.Userinfo, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := fikenclient.New(ctx, config.clientConfig(nil))
	if err != nil {
		return nil, err //nolint:wrapcheck // configuration errors are descriptive
	}
	defer client.Close()

	user, err := client.User().Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to verify credentials: %w", err)
	}

	return user, nil
}

// readLine reads one trimmed line, for non-secret prompts.
func readLine(reader io.Reader, prompt string) string {
	fmt.Fprint(os.Stderr, prompt)

	line, _ := bufio.NewReader(reader).ReadString('\n')

	return strings.TrimSpace(line)
}
