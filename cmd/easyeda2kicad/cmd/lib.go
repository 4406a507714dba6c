package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/easyeda2kicad/easyeda2kicad/pkg/kicad/sexp"
	"github.com/easyeda2kicad/easyeda2kicad/pkg/kicad/sexp/kicadsexp"
	"github.com/easyeda2kicad/easyeda2kicad/pkg/kicad/symlib"
)

var (
	kicadVersionFlag string
	dryRun           bool
)

var libCmd = &cobra.Command{
	Use:   "lib",
	Short: "Symbol library file operations",
	Long:  `Commands for patching KiCad symbol library files (.kicad_sym, .lib)`,
}

var libAddCmd = &cobra.Command{
	Use:   "add <library> <entry_file>",
	Short: "Append a symbol entry to a library",
	Long: `Append an entry to a symbol library, creating the library with an
empty header first when it does not exist. The entry file holds the full
textual entry in the target grammar.`,
	Args: cobra.ExactArgs(2),
	RunE: runLibAdd,
}

var libSetCmd = &cobra.Command{
	Use:   "set <library> <name> <entry_file>",
	Short: "Overwrite a symbol entry",
	Long: `Replace the entry for a symbol with new content. When the symbol is
not in the library yet, the entry is appended instead.`,
	Args: cobra.ExactArgs(3),
	RunE: runLibSet,
}

var libAddUnitsCmd = &cobra.Command{
	Use:   "add-units <library> <name> <unit_file>...",
	Short: "Append extra units to a multi-unit symbol",
	Args:  cobra.MinimumNArgs(3),
	RunE:  runLibAddUnits,
}

var libDeleteCmd = &cobra.Command{
	Use:   "delete <library> <lcsc_id> <name>",
	Short: "Delete a legacy-grammar entry by name and LCSC id",
	Args:  cobra.ExactArgs(3),
	RunE:  runLibDelete,
}

var libExistsCmd = &cobra.Command{
	Use:   "exists <library> <name>",
	Short: "Check whether a symbol is already in a library",
	Args:  cobra.ExactArgs(2),
	RunE:  runLibExists,
}

var libCheckCmd = &cobra.Command{
	Use:   "check <library>",
	Short: "Verify that a library is structurally sound",
	Args:  cobra.ExactArgs(1),
	RunE:  runLibCheck,
}

var libInfoCmd = &cobra.Command{
	Use:   "info <library>",
	Short: "Show library information",
	Args:  cobra.ExactArgs(1),
	RunE:  runLibInfo,
}

func init() {
	rootCmd.AddCommand(libCmd)
	libCmd.AddCommand(libAddCmd)
	libCmd.AddCommand(libSetCmd)
	libCmd.AddCommand(libAddUnitsCmd)
	libCmd.AddCommand(libDeleteCmd)
	libCmd.AddCommand(libExistsCmd)
	libCmd.AddCommand(libCheckCmd)
	libCmd.AddCommand(libInfoCmd)

	libCmd.PersistentFlags().StringVar(&kicadVersionFlag, "kicad-version", "v6",
		"target library grammar (v5, v6)")
	libCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false,
		"print the rewrite as a unified diff instead of touching the file")
}

func openLibrary(path string) (*symlib.Library, error) {
	version, err := symlib.ParseVersion(kicadVersionFlag)
	if err != nil {
		return nil, err
	}

	lib := &symlib.Library{
		Path:    path,
		Version: version,
		Log:     logger,
	}
	if dryRun {
		lib.DryRun = os.Stdout
	}
	return lib, nil
}

func runLibAdd(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary(args[0])
	if err != nil {
		return err
	}

	entry, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("reading entry file: %w", err)
	}

	created, err := lib.Ensure()
	if err != nil {
		return err
	}
	if created {
		logger.Info("created symbol library", "lib", lib.Path)
	}

	return lib.Add(string(entry))
}

func runLibSet(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary(args[0])
	if err != nil {
		return err
	}

	entry, err := os.ReadFile(args[2])
	if err != nil {
		return fmt.Errorf("reading entry file: %w", err)
	}

	return lib.Set(args[1], string(entry))
}

func runLibAddUnits(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary(args[0])
	if err != nil {
		return err
	}

	var units []string
	for _, path := range args[2:] {
		unit, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading unit file %s: %w", path, err)
		}
		units = append(units, string(unit))
	}

	return lib.AddUnits(args[1], units)
}

func runLibDelete(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary(args[0])
	if err != nil {
		return err
	}
	return lib.Delete(args[1], args[2])
}

func runLibExists(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary(args[0])
	if err != nil {
		return err
	}

	found, spelling, err := lib.Exists(args[1])
	if err != nil {
		return err
	}
	if !found {
		fmt.Printf("%s: not found\n", args[1])
		return nil
	}
	fmt.Printf("%s: found (stored as %q)\n", args[1], spelling)
	return nil
}

func runLibCheck(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary(args[0])
	if err != nil {
		return err
	}

	if err := lib.Check(); err != nil {
		return err
	}
	fmt.Printf("%s: OK\n", args[0])
	return nil
}

func runLibInfo(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening library: %w", err)
	}
	defer f.Close()

	forms, err := kicadsexp.Parse(f)
	if err != nil {
		return fmt.Errorf("error parsing library: %w", err)
	}
	if len(forms) == 0 {
		return fmt.Errorf("empty library file")
	}
	root := forms[0]

	rootName, err := sexp.GetNodeName(root)
	if err != nil || rootName != "kicad_symbol_lib" {
		return fmt.Errorf("not a KiCad symbol library: expected 'kicad_symbol_lib', got '%s'", rootName)
	}

	fmt.Printf("Library: %s\n", args[0])
	if versionNode, found := sexp.FindNode(root, "version"); found {
		if ver, err := sexp.GetInt(versionNode, 1); err == nil {
			fmt.Printf("Version: %d\n", ver)
		}
	}
	if genNode, found := sexp.FindNode(root, "generator"); found {
		if gen, err := sexp.GetString(genNode, 1); err == nil {
			fmt.Printf("Generator: %s\n", gen)
		}
	}
	fmt.Println()

	symbols := sexp.FindAllNodes(root, "symbol")
	fmt.Printf("Symbols: %d\n", len(symbols))
	for _, sym := range symbols {
		name, err := sexp.GetString(sym, 1)
		if err != nil {
			continue
		}
		fmt.Printf("  %s\n", name)
	}
	return nil
}
