package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MGTheTrain/crypto-workbench/internal/app"
	"github.com/MGTheTrain/crypto-workbench/internal/domain/workbench"
	"github.com/MGTheTrain/crypto-workbench/internal/pkg/config"
	"github.com/MGTheTrain/crypto-workbench/internal/pkg/logger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func setupLogger() (logger.Logger, error) {
	if err := logger.InitLogger(config.DefaultLoggerSettings()); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

func newWorkbenchService(settings *config.WorkbenchSettings, log logger.Logger) (workbench.Service, error) {
	codecs, err := app.NewCodecs(settings, log)
	if err != nil {
		return nil, err
	}
	return app.NewWorkbenchService(codecs, settings, log)
}

// printResult writes a labelled result; multi-line values start on their own line
func printResult(w io.Writer, label, value string) {
	fmt.Fprintf(w, "%s %s\n%s\n", color.GreenString("✓"), color.CyanString(label+":"), value)
}

// secretFlag returns the value of the named flag. When the flag is empty and stdin is a
// terminal the value is read without echo instead, keeping keys out of shell history.
func secretFlag(cmd *cobra.Command, name, prompt string) (string, error) {
	value, err := cmd.Flags().GetString(name)
	if err != nil || value != "" {
		return value, err
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", nil
	}

	fmt.Fprint(cmd.ErrOrStderr(), prompt)
	secret, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}

	return strings.TrimSpace(string(secret)), nil
}
