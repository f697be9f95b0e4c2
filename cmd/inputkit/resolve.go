package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/inputkit/internal/logger"
	"github.com/alexisbeaulieu97/inputkit/internal/styling"
	"github.com/alexisbeaulieu97/inputkit/internal/widgets/input"
)

type resolveOptions struct {
	ThemePath string
	Component string
	Props     []string
	States    []string
}

// resolveReport is the YAML document printed by the resolve command.
type resolveReport struct {
	Component string        `yaml:"component"`
	State     styling.State `yaml:"state"`
	Resolved  styling.Props `yaml:"resolved"`
	Container styling.Props `yaml:"container"`
	Primitive styling.Props `yaml:"primitive"`
	Overlays  overlayReport `yaml:"overlays,omitempty"`
	Final     styling.Props `yaml:"final"`
}

type overlayReport struct {
	Hover    styling.Props `yaml:"hover,omitempty"`
	Focus    styling.Props `yaml:"focus,omitempty"`
	Disabled styling.Props `yaml:"disabled,omitempty"`
	Invalid  styling.Props `yaml:"invalid,omitempty"`
}

func newResolveCmd(root *rootFlags) *cobra.Command {
	opts := resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the theme-resolved props of a component and how they are routed",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := root.newLogger(cmd)
			if err != nil {
				return err
			}
			report, err := runResolve(opts, log)
			if err != nil {
				return err
			}
			encoder := yaml.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent(2)
			if err := encoder.Encode(report); err != nil {
				return fmt.Errorf("encode report: %w", err)
			}
			return encoder.Close()
		},
	}

	cmd.Flags().StringVar(&opts.ThemePath, "theme", "", "Theme file (defaults to the built-in theme)")
	cmd.Flags().StringVarP(&opts.Component, "component", "c", input.ComponentName, "Component name")
	cmd.Flags().StringArrayVarP(&opts.Props, "props", "p", nil, "Prop as key=value; dotted keys address overlays (_hover.borderColor=red)")
	cmd.Flags().StringSliceVarP(&opts.States, "state", "s", nil, "Interaction states to apply (hovered, focused)")

	return cmd
}

func runResolve(opts resolveOptions, log *logger.Logger) (*resolveReport, error) {
	th, err := loadTheme(opts.ThemePath)
	if err != nil {
		return nil, err
	}
	raw, err := parseProps(opts.Props)
	if err != nil {
		return nil, err
	}

	var hovered, focused bool
	for _, s := range opts.States {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "hovered", "hover":
			hovered = true
		case "focused", "focus":
			focused = true
		default:
			return nil, fmt.Errorf("unknown state %q", s)
		}
	}

	resolved := th.Resolve(opts.Component, raw)
	state := input.DeriveState(resolved, hovered, focused)
	routed := input.Route(resolved, state)
	log.WithFields(logger.Fields{
		"component": opts.Component,
		"props":     len(raw),
		"resolved":  len(resolved),
	}).Debug("resolved props")

	return &resolveReport{
		Component: opts.Component,
		State:     state,
		Resolved:  resolved,
		Container: routed.Container,
		Primitive: routed.Field,
		Overlays: overlayReport{
			Hover:    routed.Overlays.Hover,
			Focus:    routed.Overlays.Focus,
			Disabled: routed.Overlays.Disabled,
			Invalid:  routed.Overlays.Invalid,
		},
		Final: routed.Box,
	}, nil
}

// parseProps turns key=value pairs into props. Values are decoded as YAML
// scalars, so numbers and booleans keep their type.
func parseProps(pairs []string) (styling.Props, error) {
	props := styling.Props{}
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid prop %q: expected key=value", pair)
		}

		var value any
		if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
			return nil, fmt.Errorf("invalid prop %q: %w", pair, err)
		}
		if value == nil {
			value = raw
		}

		parent, leaf, nested := strings.Cut(key, ".")
		if !nested {
			props[key] = value
			continue
		}
		overlay, _ := props.Nested(parent)
		overlay = overlay.Merge(styling.Props{leaf: value})
		props[parent] = overlay
	}
	return props, nil
}
