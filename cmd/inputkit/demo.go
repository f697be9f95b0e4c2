package main

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/inputkit/internal/config"
	"github.com/alexisbeaulieu97/inputkit/internal/theme"
	"github.com/alexisbeaulieu97/inputkit/internal/tui"
)

var errNotTerminal = errors.New("demo requires an interactive terminal")

type demoOptions struct {
	DocPath   string
	ThemePath string
}

func newDemoCmd(root *rootFlags) *cobra.Command {
	opts := demoOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run an interactive form of themed inputs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(cmd.InOrStdin()) || !isTerminal(cmd.OutOrStdout()) {
				return errNotTerminal
			}
			log, err := root.newLogger(cmd)
			if err != nil {
				return err
			}
			root.applyColorProfile(cmd.OutOrStdout())

			doc, th, err := demoDocument(opts)
			if err != nil {
				return err
			}
			model, err := tui.NewModel(doc, th,
				tui.WithLogger(log),
				tui.WithValidator("email", validateEmail),
				tui.WithValidator("password", validatePassword),
			)
			if err != nil {
				return err
			}

			program := tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithMouseAllMotion(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			final, err := program.Run()
			if err != nil {
				return fmt.Errorf("run demo: %w", err)
			}
			if m, ok := final.(tui.Model); ok {
				return m.Err()
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.DocPath, "file", "f", "", "Preview document to host instead of the built-in form")
	cmd.Flags().StringVar(&opts.ThemePath, "theme", "", "Theme file overriding the document's theme")

	return cmd
}

func demoDocument(opts demoOptions) (*config.Document, *theme.Theme, error) {
	if opts.DocPath == "" {
		th, err := loadTheme(opts.ThemePath)
		return builtinDocument(), th, err
	}
	if err := validateFilePath("document", opts.DocPath); err != nil {
		return nil, nil, err
	}
	doc, err := config.ParseConfig(opts.DocPath)
	if err != nil {
		return nil, nil, err
	}
	th, err := documentTheme(doc, opts.DocPath, opts.ThemePath)
	return doc, th, err
}

func builtinDocument() *config.Document {
	return &config.Document{
		Name:  "Sign in",
		Width: 48,
		Inputs: []config.InputSpec{
			{
				Name:        "email",
				Placeholder: "you@example.com",
				Required:    true,
				Helper:      "We never share your address.",
				Right:       &config.AdornmentSpec{Kind: "status"},
			},
			{
				Name:        "password",
				Placeholder: "at least 8 characters",
				Type:        "password",
				Required:    true,
				Left:        &config.AdornmentSpec{Kind: "icon", Text: "*"},
			},
			{
				Name:        "organisation",
				Placeholder: "managed by your administrator",
				Disabled:    true,
			},
		},
	}
}

func validateEmail(value string) error {
	if value == "" {
		return nil
	}
	at := strings.Index(value, "@")
	if at <= 0 || at == len(value)-1 {
		return errors.New("enter a valid email address")
	}
	return nil
}

func validatePassword(value string) error {
	if value != "" && len(value) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}
