package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"contact-notif/pkg/models"
)

func newInvokeCommand(ctx *commandContext) *cobra.Command {
	var eventPath string

	cmd := &cobra.Command{
		Use:   "invoke",
		Short: "Process a single workflow event and print the output fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readEvent(cmd.InOrStdin(), eventPath)
			if err != nil {
				return err
			}
			event, err := models.ParseInboundEvent(data)
			if err != nil {
				return err
			}

			result, err := ctx.notificationService().Notify(cmd.Context(), event)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	cmd.Flags().StringVarP(&eventPath, "event", "e", "-", "Event JSON file, or - for stdin")
	return cmd
}

func readEvent(stdin io.Reader, path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read event from stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read event file: %w", err)
	}
	return data, nil
}
