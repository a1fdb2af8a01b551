// Command gribls inspects GRIB files: it lists the raw records of a file
// and, when a metadata decoder is linked in, the inferred variables.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/nwpgo/grib"
	"github.com/nwpgo/grib/message"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gribls:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "gribls",
		Short:        "Inspect GRIB files",
		SilenceUsage: true,
	}
	root.AddCommand(newScanCmd(), newVarsCmd())
	return root
}

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan <file>",
		Short: "List the raw GRIB records of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := message.ScanFile(args[0])
			if err != nil {
				return err
			}
			for i, rec := range records {
				fmt.Fprintf(cmd.OutOrStdout(), "%4d  offset=%-10d edition=%d size=%d\n",
					i, rec.Offset, rec.Edition, len(rec.Data))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d records\n", len(records))
			return nil
		},
	}
}

func newVarsCmd() *cobra.Command {
	var catalogPath string
	cmd := &cobra.Command{
		Use:   "vars <file>",
		Short: "List the variables inferred from a file's metadata",
		Long: "List the variables inferred from a file's metadata.\n\n" +
			"Requires a metadata decoder registered via message.SetDefaultDecoder,\n" +
			"e.g. by linking in an ecCodes-backed decoder implementation.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if message.DefaultDecoder() == nil {
				return fmt.Errorf("no metadata decoder linked into this build")
			}
			opts := []grib.Option{}
			if catalogPath != "" {
				catalog, err := grib.LoadCatalog(catalogPath)
				if err != nil {
					return err
				}
				opts = append(opts, grib.WithCatalog(catalog))
			}
			ds, err := grib.Open(args[0], opts...)
			if err != nil {
				return err
			}
			defer ds.Close()

			vars, err := ds.Variables()
			if err != nil {
				return err
			}
			names, err := ds.VariableNames()
			if err != nil {
				return err
			}
			for _, name := range names {
				v := vars[name]
				fmt.Fprintf(cmd.OutOrStdout(), "%s  dims=%v shape=%v size=%d\n",
					name, v.Dimensions(), v.Shape(), v.Size())
				printAttrs(cmd, v)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "TOML file with extra grid-type key catalogs")
	return cmd
}

func printAttrs(cmd *cobra.Command, v *grib.Variable) {
	attrs := v.NCAttrs()
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(cmd.OutOrStdout(), "    %s = %s\n", k, attrs[k])
	}
}
