package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/molbridge/molbridge/pubchem"
	"github.com/molbridge/molbridge/pugrest"
)

var propertyTags string

// propertyCmd represents the property command
var propertyCmd = &cobra.Command{
	Use:   "property [cids or name]",
	Short: "Fetch a compound property table",
	Long: `Fetch selected properties for one or more compounds. Arguments are
either numeric compound ids or a single chemical name, which is
resolved first.

Examples:
  molbridge property 2244 962 --tags MolecularWeight,IUPACName
  molbridge property aspirin --tags molecular_weight,xlogp
  molbridge property 2244 --filter 'num(MolecularWeight) < 200'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runProperty,
}

func init() {
	propertyCmd.Flags().StringVarP(&propertyTags, "tags", "t", "MolecularFormula,MolecularWeight,IUPACName", "comma-separated property tags")
	propertyCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression, or @name from config")
	propertyCmd.Flags().StringVarP(&outputName, "output", "o", "table", "output format (table, json)")
	addNamespaceFlag(propertyCmd)
}

func runProperty(cmd *cobra.Command, args []string) error {
	tags, err := pugrest.ParsePropertyTags(propertyTags)
	if err != nil {
		return fmt.Errorf("invalid --tags: %w", err)
	}

	flt, err := resolveFilter()
	if err != nil {
		return err
	}

	ctx := context.Background()
	rows, err := fetchProperties(ctx, args, tags)
	if err != nil {
		return err
	}

	if flt != nil {
		rows, err = flt.Apply(rows)
		if err != nil {
			return err
		}
		logger.Debug().Str("filter", flt.String()).Int("rows", len(rows)).Msg("Applied filter")
	}

	if len(rows) == 0 {
		fmt.Println("No matching compounds.")
		return nil
	}

	switch outputName {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "table":
		printPropertyTable(rows, tags)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", outputName)
	}
}

func printPropertyTable(rows []pubchem.PropertyRecord, tags []pugrest.PropertyTag) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprint(w, "CID")
	for _, tag := range tags {
		fmt.Fprintf(w, "\t%s", tag)
	}
	fmt.Fprintln(w)

	for _, row := range rows {
		fmt.Fprintf(w, "%d", row.CID())
		for _, tag := range tags {
			fmt.Fprintf(w, "\t%s", formatCell(row[string(tag)]))
		}
		fmt.Fprintln(w)
	}
}

func formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return "-"
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

// fetchProperties fetches property rows for the positional arguments.
// All-numeric argument lists go through the chunked CID batch path;
// anything else is a single identifier resolved via --namespace
// auto-detection.
func fetchProperties(ctx context.Context, args []string, tags []pugrest.PropertyTag) ([]pubchem.PropertyRecord, error) {
	if nsName == "" || nsName == "cid" {
		cids := make([]uint32, 0, len(args))
		for _, arg := range args {
			n, err := strconv.ParseUint(arg, 10, 32)
			if err != nil {
				cids = nil
				break
			}
			cids = append(cids, uint32(n))
		}
		if cids != nil {
			return client.Properties(ctx, cids, tags...)
		}
		if nsName == "cid" {
			return nil, fmt.Errorf("--namespace cid requires numeric arguments")
		}
	}

	if len(args) != 1 {
		return nil, fmt.Errorf("non-CID lookups take exactly one identifier")
	}

	ns, ids, err := compoundSelector(args[0])
	if err != nil {
		return nil, err
	}

	body, err := client.Do(ctx, pugrest.Request{
		Domain:      pugrest.DomainCompound,
		Namespace:   ns,
		Identifiers: ids,
		Operation:   pugrest.Properties(tags...),
	})
	if err != nil {
		return nil, err
	}
	return pubchem.DecodePropertyTable(body)
}
