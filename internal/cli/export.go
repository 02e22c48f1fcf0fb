package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ecoquest-app/ecoquest/internal/app/insights"
)

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Write to file instead of stdout")
	exportCmd.Flags().IntVar(&exportDays, "days", 30, "Activity window for the insights report")
	rootCmd.AddCommand(exportCmd)
}

var (
	exportOut  string
	exportDays int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export your full game state and insights as JSON",
	RunE:  runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	store, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	state := store.State()
	payload := map[string]interface{}{
		"exportedAt": time.Now().UTC(),
		"state":      state,
		"insights":   insights.BuildReport(state, time.Now(), exportDays),
	}

	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}

	if exportOut == "" {
		fmt.Println(string(out))
		return nil
	}
	if err := os.WriteFile(exportOut, out, 0600); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	fmt.Printf("Exported to %s\n", exportOut)
	return nil
}
