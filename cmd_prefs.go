package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sharmila1320/Kawaiifolio/internal/pins"
	"github.com/sharmila1320/Kawaiifolio/internal/theme"
)

var (
	pinsListType  string
	pinsListSaved bool
)

var themeCmd = &cobra.Command{
	Use:   "theme [light|dark|system]",
	Short: "Show or set the stored theme preference",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prefs, err := openPrefs()
		if err != nil {
			return err
		}
		if len(args) == 1 {
			mode, err := theme.ParseMode(args[0])
			if err != nil {
				return err
			}
			if err := prefs.SetThemeMode(mode); err != nil {
				return err
			}
			logger.Debug("theme preference saved", zap.String("mode", string(mode)))
		}
		fmt.Fprintln(cmd.OutOrStdout(), prefs.ThemeMode())
		return nil
	},
}

var pinsCmd = &cobra.Command{
	Use:   "pins",
	Short: "Manage saved pins",
}

var pinsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List pinboard pins as id and title",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		typ, err := pins.ParseType(pinsListType)
		if err != nil {
			return err
		}
		prefs, err := openPrefs()
		if err != nil {
			return err
		}
		for _, p := range pins.Filter(typ) {
			saved := prefs.IsSaved(p.ID)
			if pinsListSaved && !saved {
				continue
			}
			mark := " "
			if saved {
				mark = "*"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\t%s\n", mark, p.ID, p.Title)
		}
		return nil
	},
}

var pinsToggleCmd = &cobra.Command{
	Use:   "toggle <pin-id>",
	Short: "Save a pin, or unsave it if already saved",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prefs, err := openPrefs()
		if err != nil {
			return err
		}
		saved, err := prefs.ToggleSavedPin(args[0])
		if err != nil {
			return err
		}
		if saved {
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", args[0])
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
		}
		return nil
	},
}

func init() {
	f := pinsListCmd.Flags()
	f.StringVarP(&pinsListType, "type", "t", "all", "Only list pins of this type (all|project|experience|skill|achievement|resume|blog|sticker)")
	f.BoolVarP(&pinsListSaved, "saved", "s", false, "Only list saved pins")
}
