package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/tcxian/ppinet/internal/biogrid"
	"github.com/tcxian/ppinet/internal/config"
	"github.com/tcxian/ppinet/internal/interaction"
	"github.com/tcxian/ppinet/internal/provider"
	"github.com/tcxian/ppinet/internal/storage"
	"github.com/tcxian/ppinet/internal/stringdb"
)

var (
	fetchOrganism string
	fetchLimit    int
	fetchKey      string
	fetchSave     string
)

func init() {
	fetchCmd.PersistentFlags().StringVar(&fetchOrganism, "organism", "", "Organism: taxonomy ID or human, mouse, yeast (default from config)")
	fetchCmd.PersistentFlags().StringVar(&fetchSave, "save", "", "Store the fetched network locally under this name")

	fetchBioGRIDCmd.Flags().StringVar(&fetchKey, "key", "", "BioGRID access key (overrides config and environment)")
	fetchSTRINGCmd.Flags().IntVar(&fetchLimit, "limit", 0, "Maximum interaction partners to request (default 20)")

	fetchCmd.AddCommand(fetchBioGRIDCmd)
	fetchCmd.AddCommand(fetchSTRINGCmd)
	rootCmd.AddCommand(fetchCmd)
}

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch an interaction network from a provider",
}

var fetchBioGRIDCmd = &cobra.Command{
	Use:   "biogrid <gene>",
	Short: "Fetch experimental interactions from BioGRID",
	Long: `Fetch experimental protein interactions from the BioGRID webservice.

BioGRID requires an access key; register at https://webservice.thebiogrid.org.
The key is read from --key, the PPINET_BIOGRID_KEY or BIOGRID_ACCESS_KEY
environment variables (a .env file is honored), or the global config.

Examples:
  ppinet fetch biogrid TP53
  ppinet fetch biogrid BRCA1 --organism mouse --save brca1-mouse`,
	Args: cobra.ExactArgs(1),
	RunE: runFetchBioGRID,
}

var fetchSTRINGCmd = &cobra.Command{
	Use:   "string <protein>",
	Short: "Fetch functional associations from STRING",
	Long: `Fetch functional protein associations from the STRING database.
No credential is required.

Examples:
  ppinet fetch string TP53
  ppinet fetch string TP53 --organism yeast --limit 40 --save tp53-yeast`,
	Args: cobra.ExactArgs(1),
	RunE: runFetchSTRING,
}

// FetchResponse is the JSON output of a fetch command.
type FetchResponse struct {
	Provider     string               `json:"provider"`
	Query        string               `json:"query"`
	Taxon        int                  `json:"taxon"`
	Interactions int                  `json:"interactions"`
	Saved        string               `json:"saved,omitempty"`
	Records      []interaction.Record `json:"records"`
}

func runFetchBioGRID(cmd *cobra.Command, args []string) error {
	taxon, err := resolveOrganism(provider.Organisms)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	key := fetchKey
	if key == "" {
		key = config.GetBioGRIDAccessKey()
	}

	opts := []biogrid.ClientOption{biogrid.WithAccessKey(key)}
	if timeout := config.GetHTTPTimeout(); timeout > 0 {
		opts = append(opts, biogrid.WithHTTPClient(&http.Client{Timeout: timeout}))
	}

	client := biogrid.NewClient(opts...)
	q := provider.Query{Protein: args[0], TaxonID: taxon}

	records, err := client.Fetch(context.Background(), q)
	if err != nil {
		exitWithFetchError(err)
	}

	return finishFetch(client.Name(), q, records)
}

func runFetchSTRING(cmd *cobra.Command, args []string) error {
	taxon, err := resolveOrganism(provider.Species)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	limit := fetchLimit
	if limit <= 0 {
		limit = config.GetSTRINGLimit()
	}

	var opts []stringdb.ClientOption
	if timeout := config.GetHTTPTimeout(); timeout > 0 {
		opts = append(opts, stringdb.WithHTTPClient(&http.Client{Timeout: timeout}))
	}

	client := stringdb.NewClient(opts...)
	q := provider.Query{Protein: args[0], TaxonID: taxon, Limit: limit}

	records, err := client.Fetch(context.Background(), q)
	if err != nil {
		exitWithFetchError(err)
	}

	return finishFetch(client.Name(), q, records)
}

// resolveOrganism resolves the --organism flag (or the configured default)
// against a provider's taxon table.
func resolveOrganism(names map[string]int) (int, error) {
	organism := fetchOrganism
	if organism == "" {
		organism = config.GetDefaultOrganism()
	}
	return provider.ResolveTaxon(organism, names)
}

// finishFetch optionally stores the records, then reports the result.
func finishFetch(providerName string, q provider.Query, records []interaction.Record) error {
	if fetchSave != "" {
		db, err := openStore()
		if err != nil {
			exitWithError(ExitError, "opening network store: %v", err)
		}
		defer db.Close()

		meta := storage.NetworkMeta{
			Name:      fetchSave,
			Provider:  providerName,
			Query:     q.Protein,
			Taxon:     q.TaxonID,
			FetchedAt: time.Now(),
		}
		if err := db.SaveNetwork(meta, records); err != nil {
			exitWithError(ExitError, "saving network: %v", err)
		}
	}

	if humanOutput {
		fmt.Printf("Retrieved %d interactions for %s from %s (taxon %d)\n", len(records), q.Protein, providerName, q.TaxonID)
		printInteractionsHuman(records)
		if fetchSave != "" {
			fmt.Printf("Saved as %q\n", fetchSave)
		}
		return nil
	}

	return outputJSON(FetchResponse{
		Provider:     providerName,
		Query:        q.Protein,
		Taxon:        q.TaxonID,
		Interactions: len(records),
		Saved:        fetchSave,
		Records:      records,
	})
}
