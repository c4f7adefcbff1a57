package cmd

import (
	"fmt"

	"github.com/DataMends/attrify/internal/job"
	"github.com/spf13/cobra"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List recorded flatten runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			return fmt.Errorf("no config loaded")
		}
		records, err := job.List(cfg.JobsDir)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("(no jobs)")
			return nil
		}
		for _, r := range records {
			fmt.Printf("- %s  %s → %s  [%s/%s]  %d rows, %d attributes\n",
				r.CreatedAt.Format("2006-01-02 15:04"), r.Source, r.Output, r.Format, r.SubLines, r.Rows, r.Attributes)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(jobsCmd)
}
