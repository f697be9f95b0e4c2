package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/inputkit/internal/config"
	"github.com/alexisbeaulieu97/inputkit/internal/logger"
	"github.com/alexisbeaulieu97/inputkit/internal/theme"
	"github.com/alexisbeaulieu97/inputkit/internal/ui/components"
	"github.com/alexisbeaulieu97/inputkit/internal/widgets/input"
)

const defaultPreviewWidth = 40

type previewOptions struct {
	DocPath   string
	ThemePath string
	Width     int
}

func newPreviewCmd(root *rootFlags) *cobra.Command {
	opts := previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render every input of a preview document in each declared state",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFilePath("document", opts.DocPath); err != nil {
				return err
			}
			log, err := root.newLogger(cmd)
			if err != nil {
				return err
			}
			root.applyColorProfile(cmd.OutOrStdout())
			return runPreview(cmd.OutOrStdout(), opts, log)
		},
	}

	cmd.Flags().StringVarP(&opts.DocPath, "file", "f", "", "Path to preview document")
	cmd.Flags().StringVar(&opts.ThemePath, "theme", "", "Theme file overriding the document's theme")
	cmd.Flags().IntVarP(&opts.Width, "width", "w", 0, "Render width overriding the document's width")
	cmd.MarkFlagRequired("file") //nolint:errcheck

	return cmd
}

func runPreview(out io.Writer, opts previewOptions, log *logger.Logger) error {
	doc, err := config.ParseConfig(opts.DocPath)
	if err != nil {
		return err
	}
	th, err := documentTheme(doc, opts.DocPath, opts.ThemePath)
	if err != nil {
		return err
	}

	width := opts.Width
	if width <= 0 {
		width = doc.Width
	}
	if width <= 0 {
		width = defaultPreviewWidth
	}
	ctx := components.DefaultContext().WithConstraints(components.WithMaxWidth(width))

	log.WithFields(map[string]any{"inputs": len(doc.Inputs), "width": width}).Debug("rendering preview")
	for _, spec := range doc.Inputs {
		for _, state := range spec.PreviewStates() {
			rendered, err := renderState(th, spec, state, ctx, log)
			if err != nil {
				return fmt.Errorf("input %q state %q: %w", spec.Name, state.Name, err)
			}
			fmt.Fprintf(out, "%s · %s\n%s\n\n", spec.Name, state.Name, rendered)
		}
	}
	return nil
}

// renderState mounts a fresh input, drives it into state, renders once
// and unmounts it again.
func renderState(resolver theme.Resolver, spec config.InputSpec, state config.StateSpec, ctx components.RenderContext, log *logger.Logger) (string, error) {
	in := input.New(resolver, spec.Options(),
		input.WithHoverDetector(input.FixedHover(state.Hovered)),
		input.WithLogger(log),
	)
	if state.Focused {
		in.Update(input.FocusMsg{})
	}

	rendered, err := in.Render(ctx)
	if unmountErr := in.Unmount(); err == nil {
		err = unmountErr
	}
	return rendered, err
}
