package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lite-lake/subdomaind/internal/domain"
	"github.com/lite-lake/subdomaind/internal/domain/entity"
)

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#7C3AED"))

var labelStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#6B7280")).
	Width(12)

var valueStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#10B981"))

var showCmd = &cobra.Command{
	Use:   "show <domain>",
	Short: "Show an issued subdomain",
	Long:  "Look up an issued subdomain by label or dotted path. The secret is masked.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := runShow(cmd.Context(), os.Stdout, args[0])
		if errors.Is(err, domain.ErrSubdomainNotFound) {
			fmt.Fprintf(os.Stderr, "subdomain '%s' not found\n", args[0])
			os.Exit(1)
		}
		exitOnError("Error", err)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(ctx context.Context, out io.Writer, name string) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	configureLogging(cfg)

	st, err := openStore(ctx, cfg, os.LookupEnv, false)
	if err != nil {
		return err
	}
	defer st.Close()

	sub, err := st.FindByDomain(ctx, entity.SubdomainLabel(name))
	if err != nil {
		return err
	}

	_, err = io.WriteString(out, renderSubdomain(sub)+"\n")
	return err
}

func renderSubdomain(sub *entity.Subdomain) string {
	title := cases.Title(language.English)
	rows := []struct {
		label string
		value string
	}{
		{"domain", sub.Domain},
		{"secret", maskSecret(sub.Secret)},
		{"created at", sub.CreatedAt.UTC().Format(time.RFC3339)},
	}

	lines := []string{titleStyle.Render("Subdomain " + sub.Domain)}
	for _, r := range rows {
		lines = append(lines, labelStyle.Render(title.String(r.label))+valueStyle.Render(r.value))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// maskSecret keeps enough of the secret to tell two records apart.
func maskSecret(s string) string {
	const visible = 4
	if len(s) <= visible*2 {
		return strings.Repeat("*", len(s))
	}
	return s[:visible] + strings.Repeat("*", 8) + s[len(s)-visible:]
}
