package cli

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/viant/graphid/idmanager"
	"gopkg.in/yaml.v3"
)

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <value>...",
		Short: "Check values against the identifier contract",
		Long: `Decode each argument as a YAML value and report whether it is a valid
identifier, absent or of an invalid type:

  VALID    - a string, used as-is
  ABSENT   - null, an identifier would be allocated
  INVALID  - any other type

Examples:
  graphid check V3 '"42"' 42 null`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager := idmanager.New("", nil)
			invalid := 0
			for _, arg := range args {
				var candidate interface{}
				if err := yaml.Unmarshal([]byte(arg), &candidate); err != nil {
					return fmt.Errorf("failed to decode %q: %w", arg, err)
				}
				result := manager.Normalize(candidate)
				if result.Kind == idmanager.Invalid {
					invalid++
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", status(result), arg)
			}
			if invalid > 0 {
				return fmt.Errorf("%d invalid identifier(s)", invalid)
			}
			return nil
		},
	}
	return cmd
}

func status(result idmanager.Result) string {
	switch {
	case result.IsValid():
		return color.New(color.FgGreen).Sprint("VALID  ")
	case result.IsAbsent():
		return color.New(color.FgYellow).Sprint("ABSENT ")
	}
	var typeErr *idmanager.InvalidIdentifierTypeError
	label := "INVALID"
	if errors.As(result.Err, &typeErr) {
		label = fmt.Sprintf("INVALID (%s)", typeErr.Type)
	}
	return color.New(color.FgRed).Sprint(label)
}
