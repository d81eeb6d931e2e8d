package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"go-doctor-directory/cmd/bootstrap"
	"go-doctor-directory/config"
	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/usecase"
	"go-doctor-directory/pkg/logger"
	"go-doctor-directory/pkg/validator"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the directory and print the matching doctors",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := dto.SearchDoctorsRequest{}
		req.Search, _ = cmd.Flags().GetString("search")
		req.Specialty, _ = cmd.Flags().GetString("specialty")
		req.Availability, _ = cmd.Flags().GetString("availability")
		req.Sort, _ = cmd.Flags().GetString("sort")
		seedFile, _ := cmd.Flags().GetString("seed")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		if seedFile != "" {
			cfg.Directory.Source = config.SourceFile
			cfg.Directory.SeedFile = seedFile
		}

		// Logs go to stderr so stdout stays machine readable
		log := logger.NewWithOutput(cfg.Log, os.Stderr)
		v := validator.NewValidator()

		if err := v.Validate(&req); err != nil {
			return v.Describe(err)
		}

		ctx := context.Background()
		doctorRepo, err := bootstrap.LoadDirectory(ctx, cfg, log, v)
		if err != nil {
			return err
		}

		resp, err := usecase.NewDoctorDirectoryUsecase(log, doctorRepo).SearchDoctors(ctx, &req)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printDoctorListJSON(cmd.OutOrStdout(), resp)
		}
		return printDoctorListTable(cmd.OutOrStdout(), resp)
	},
}

func init() {
	searchCmd.Flags().StringP("search", "q", "", "match name or specialty (case-insensitive)")
	searchCmd.Flags().String("specialty", "", "exact specialty, empty for all")
	searchCmd.Flags().StringP("availability", "a", "", "available, busy or offline")
	searchCmd.Flags().StringP("sort", "s", "distance", "distance, rating, experience, fee or availability")
	searchCmd.Flags().String("seed", "", "YAML dataset to search instead of the configured source")
	searchCmd.Flags().Bool("json", false, "output as JSON")
}

func printDoctorListJSON(w io.Writer, resp *dto.DoctorListResponse) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

func printDoctorListTable(w io.Writer, resp *dto.DoctorListResponse) error {
	if len(resp.Doctors) == 0 {
		fmt.Fprintln(w, "No doctors found. Try adjusting your search or filters.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSPECIALTY\tRATING\tEXP\tDISTANCE\tFEE\tSTATUS")
	for _, d := range resp.Doctors {
		fmt.Fprintf(tw, "%s\tDr. %s\t%s\t%.1f\t%dy\t%s\t$%s\t%s\n",
			d.ID, d.Name, d.Specialty, d.Rating, d.Experience, d.Distance,
			d.ConsultationFee.StringFixed(2), d.AvailabilityLabel)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%d doctors found, %d available now, %d patients in queue\n",
		resp.Stats.DoctorsFound, resp.Stats.AvailableNow, resp.Stats.PatientsInQueue)
	return nil
}
