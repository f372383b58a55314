package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tcxian/ppinet/internal/storage"
)

func init() {
	networksCmd.AddCommand(networksListCmd)
	networksCmd.AddCommand(networksRmCmd)
	rootCmd.AddCommand(networksCmd)
}

var networksCmd = &cobra.Command{
	Use:   "networks",
	Short: "Manage locally stored networks",
}

var networksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored networks",
	Args:  cobra.NoArgs,
	RunE:  runNetworksList,
}

var networksRmCmd = &cobra.Command{
	Use:   "rm <network>",
	Short: "Delete a stored network",
	Args:  cobra.ExactArgs(1),
	RunE:  runNetworksRm,
}

func runNetworksList(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		exitWithError(ExitError, "opening network store: %v", err)
	}
	defer db.Close()

	metas, err := db.ListNetworks()
	if err != nil {
		exitWithError(ExitError, "listing networks: %v", err)
	}
	if metas == nil {
		metas = []storage.NetworkMeta{}
	}

	if humanOutput {
		if len(metas) == 0 {
			fmt.Println("No stored networks")
			return nil
		}
		for _, m := range metas {
			fmt.Printf("%s\t%s %q (taxon %d)\t%d interactions\t%s\n",
				m.Name, m.Provider, m.Query, m.Taxon, m.Interactions, m.FetchedAt.Format("2006-01-02"))
		}
		return nil
	}

	return outputJSON(metas)
}

func runNetworksRm(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		exitWithError(ExitError, "opening network store: %v", err)
	}
	defer db.Close()

	if err := db.DeleteNetwork(args[0]); err != nil {
		if errors.Is(err, storage.ErrNetworkNotFound) {
			exitWithError(ExitNotFound, "%v", err)
		}
		exitWithError(ExitError, "deleting network: %v", err)
	}

	if humanOutput {
		fmt.Printf("Deleted %q\n", args[0])
		return nil
	}

	return outputJSON(StatusResponse{Status: "deleted", Network: args[0]})
}
