package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/molbridge/molbridge/pubchem"
	"github.com/molbridge/molbridge/pugrest"
)

var (
	nsName       string
	recordFormat string
)

// synonymsCmd represents the synonyms command
var synonymsCmd = &cobra.Command{
	Use:   "synonyms <identifier>",
	Short: "List the deposited synonyms of a compound",
	Args:  cobra.ExactArgs(1),
	RunE:  runSynonyms,
}

// recordCmd represents the record command
var recordCmd = &cobra.Command{
	Use:   "record <identifier>",
	Short: "Print the full compound record",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecord,
}

// sdfCmd represents the sdf command
var sdfCmd = &cobra.Command{
	Use:   "sdf <identifier>",
	Short: "Print the structure-data file of a compound",
	Args:  cobra.ExactArgs(1),
	RunE:  runSDF,
}

func init() {
	for _, c := range []*cobra.Command{synonymsCmd, recordCmd, sdfCmd} {
		addNamespaceFlag(c)
	}
	recordCmd.Flags().StringVarP(&recordFormat, "format", "F", "JSON", "output format (JSON, XML, SDF, CSV, TXT, ...)")
}

func addNamespaceFlag(c *cobra.Command) {
	c.Flags().StringVarP(&nsName, "namespace", "n", "", "identifier namespace (cid, name, smiles, inchi, inchikey, formula, ...); auto-detected when empty")
}

// compoundSelector builds the namespace and identifiers for one
// compound argument. Without --namespace, numeric arguments are
// treated as CIDs, "InChI=" strings as InChI, everything else as a
// name.
func compoundSelector(arg string) (pugrest.Namespace, pugrest.Identifiers, error) {
	name := nsName
	if name == "" {
		switch {
		case isNumeric(arg):
			name = "cid"
		case strings.HasPrefix(arg, "InChI="):
			name = "inchi"
		default:
			name = "name"
		}
	}

	ns, err := pugrest.ParseNamespace(pugrest.DomainCompound, name)
	if err != nil {
		return nil, pugrest.Identifiers{}, fmt.Errorf("invalid --namespace %q", name)
	}

	if ns == pugrest.CompoundCID {
		n, err := strconv.ParseUint(arg, 10, 32)
		if err != nil {
			return nil, pugrest.Identifiers{}, fmt.Errorf("%q is not a compound id", arg)
		}
		ids, err := pugrest.ID(uint32(n))
		return ns, ids, err
	}

	ids, err := pugrest.Query(arg)
	return ns, ids, err
}

func isNumeric(s string) bool {
	_, err := strconv.ParseUint(s, 10, 32)
	return err == nil
}

func runSynonyms(cmd *cobra.Command, args []string) error {
	ns, ids, err := compoundSelector(args[0])
	if err != nil {
		return err
	}

	body, err := client.Do(context.Background(), pugrest.Request{
		Domain:      pugrest.DomainCompound,
		Namespace:   ns,
		Identifiers: ids,
		Operation:   pugrest.CompoundSynonyms,
	})
	if err != nil {
		return err
	}

	list, err := pubchem.DecodeInformationList(body)
	if err != nil {
		return err
	}
	if len(list.Information) == 0 {
		fmt.Printf("No synonyms found for %s.\n", args[0])
		return nil
	}
	for _, s := range list.Information[0].Synonym {
		fmt.Println(s)
	}
	return nil
}

func runRecord(cmd *cobra.Command, args []string) error {
	format, err := pugrest.ParseOutputFormat(recordFormat)
	if err != nil {
		return fmt.Errorf("invalid --format %q", recordFormat)
	}
	return fetchRecord(args[0], format)
}

func runSDF(cmd *cobra.Command, args []string) error {
	return fetchRecord(args[0], pugrest.SDF)
}

func fetchRecord(arg string, format pugrest.OutputFormat) error {
	ns, ids, err := compoundSelector(arg)
	if err != nil {
		return err
	}

	body, err := client.Do(context.Background(), pugrest.Request{
		Domain:      pugrest.DomainCompound,
		Namespace:   ns,
		Identifiers: ids,
		Output:      format,
	})
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(body)
	return err
}
