package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sandfall/internal/savestore"
)

func newSavesCmd() *cobra.Command {
	var dbPath string
	cmd := &cobra.Command{
		Use:   "saves",
		Short: "Manage saved scenes",
	}
	cmd.PersistentFlags().StringVar(&dbPath, "db", defaultSaveDB, "path to the save database")

	list := &cobra.Command{
		Use:   "list",
		Short: "List saved scenes, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := savestore.Open(dbPath, logger)
			if err != nil {
				return err
			}
			defer store.Close()

			slots, err := store.List()
			if err != nil {
				return err
			}
			if len(slots) == 0 {
				logger.Info("no saved scenes", "db", dbPath)
				return nil
			}
			tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tGRID\tCREATED")
			for _, s := range slots {
				fmt.Fprintf(tw, "%s\t%dx%d\t%s\n", s.Name, s.Width, s.Height,
					s.CreatedAt.Local().Format("2006-01-02 15:04:05"))
			}
			return tw.Flush()
		},
	}

	del := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := savestore.Open(dbPath, logger)
			if err != nil {
				return err
			}
			defer store.Close()
			return store.Delete(args[0])
		},
	}

	cmd.AddCommand(list, del)
	return cmd
}
