package cli

import (
	"context"
	"fmt"
	"github.com/clambin/go-common/charmer"
	"github.com/rossdargan/layz-spa/internal/configflow"
	"github.com/rossdargan/layz-spa/pkg/layzspa"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"
)

var loginCmd = cobra.Command{
	Use:   "login",
	Short: "Log in to the Lay-Z-Spa API and add the account's spa",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		return login(cmd.Context(), viper.GetViper(), email, password, cmd.OutOrStdout(), charmer.GetLogger(cmd))
	},
}

func init() {
	loginCmd.Flags().String("email", "", "Lay-Z-Spa account email address")
	loginCmd.Flags().String("password", "", "Lay-Z-Spa account password")
}

func login(ctx context.Context, v *viper.Viper, email, password string, out io.Writer, logger *slog.Logger) error {
	flow := configflow.Flow{
		Auth:   layzspa.New(layzspa.WithBaseURL(v.GetString("api.url"))),
		Logger: logger.With("component", "configflow"),
	}
	result := flow.Step(ctx, &configflow.UserInput{Email: email, Password: password})
	if result.Type != configflow.ResultTypeCreateEntry {
		return fmt.Errorf("login failed: %s", formatErrors(result.Errors))
	}

	entry := result.Entry()
	if err := configflow.NewStore(v.GetString("entries.path")).Add(entry); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	_, err := fmt.Fprintf(out, "added %s (%s)\n", entry.Title, entry.ID)
	return err
}

func formatErrors(errs map[string]string) string {
	text := make([]string, 0, len(errs))
	for _, field := range slices.Sorted(maps.Keys(errs)) {
		text = append(text, field+": "+errs[field])
	}
	return strings.Join(text, ", ")
}
