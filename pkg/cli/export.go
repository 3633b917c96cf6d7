package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"lifedash/config"
	"lifedash/database"
	"lifedash/entities"
	"lifedash/pkg/export"
	"lifedash/pkg/storage"
)

func NewExportCommand() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the persisted collections to an XLSX workbook",
		Long:  "Exports journals and community posts. Goals and health metrics live only in a running session and are exported through GET /api/export instead.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			db := database.OpenSQLite(cfg.DBPath)
			store := storage.NewSQLite(db)

			var journals []entities.Journal
			storage.LoadJSON(store, storage.KeyJournals, &journals)
			var posts []entities.Post
			storage.LoadJSON(store, storage.KeyPosts, &posts)

			f, err := export.Workbook(nil, nil, journals, posts)
			if err != nil {
				return err
			}
			if err := f.SaveAs(out); err != nil {
				return err
			}
			fmt.Printf("wrote %s (%d journals, %d posts)\n", out, len(journals), len(posts))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "lifedash.xlsx", "output file")
	return cmd
}
