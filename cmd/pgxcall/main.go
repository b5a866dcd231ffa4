// Package main provides the pgxcall command-line tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/openpgx/pgxcall/internal/datasource/snptrait"
	"github.com/openpgx/pgxcall/internal/diplotype"
	"github.com/openpgx/pgxcall/internal/genome"
	"github.com/openpgx/pgxcall/internal/reference"
	"github.com/openpgx/pgxcall/internal/report"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "pgxcall",
		Short: "Star-allele diplotype caller for raw genotype data",
		Long: `pgxcall reconstructs star-allele diplotypes and drug-metabolism
phenotypes from direct-to-consumer raw genotype files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initConfig()
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newReportCmd(&verbose))
	cmd.AddCommand(newGenesCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// initConfig loads ~/.pgxcall.yaml if present.
func initConfig() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	viper.AddConfigPath(home)
	viper.SetConfigName(".pgxcall")
	viper.SetConfigType("yaml")
	_ = viper.ReadInConfig()
}

// buildLogger creates a stderr logger. Verbose mode enables debug output.
func buildLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

// loadReference loads the gene reference set: a YAML file when given, the
// built-in set otherwise.
func loadReference(path string) (*reference.Set, error) {
	if path == "" {
		path = viper.GetString("reference.file")
	}
	if path != "" {
		return reference.LoadFile(path)
	}
	return reference.Default()
}

func newReportCmd(verbose *bool) *cobra.Command {
	var (
		refPath    string
		traitsPath string
		outputFile string
		workers    int
	)

	cmd := &cobra.Command{
		Use:   "report <genotype-file>",
		Short: "Call diplotypes and phenotypes from a raw genotype file",
		Long: `Parse a direct-to-consumer raw genotype file (plain or gzipped,
'-' for stdin), call the diplotype and metabolizer phenotype for every
reference gene, and write a tab-delimited report.`,
		Example: `  pgxcall report genome.txt
  pgxcall report --traits traits.tsv -o report.tsv genome.txt.gz
  cat genome.txt | pgxcall report -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(args[0], refPath, traitsPath, outputFile, workers, *verbose)
		},
	}

	cmd.Flags().StringVar(&refPath, "reference", "", "Gene reference YAML file (default: built-in set)")
	cmd.Flags().StringVar(&traitsPath, "traits", "", "Single-SNP trait table TSV (optional)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().IntVar(&workers, "workers", 0, "Worker pool size (default: one per CPU)")

	return cmd
}

func runReport(inputPath, refPath, traitsPath, outputFile string, workers int, verbose bool) error {
	logger, err := buildLogger(verbose)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()

	set, err := loadReference(refPath)
	if err != nil {
		return fmt.Errorf("load gene reference: %w", err)
	}

	// A gap in the phenotype table is a configuration error and aborts
	// before any genotype data is read.
	table, err := reference.NewPhenotypeTable()
	if err != nil {
		return fmt.Errorf("phenotype table: %w", err)
	}

	parser, err := genome.NewParser(inputPath)
	if err != nil {
		return err
	}
	defer parser.Close()

	obs, err := genome.Collect(parser)
	if err != nil {
		return err
	}
	logger.Info("loaded genotype observations",
		zap.String("input", inputPath),
		zap.Int("markers", len(obs)))

	engine := diplotype.New(set, table)
	engine.SetLogger(logger)
	engine.SetWorkers(workers)
	results := engine.CallAll(obs)

	out := os.Stdout
	if outputFile != "" {
		out, err = os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer out.Close()
	}

	tw := report.NewTabWriter(out)
	if err := tw.WriteHeader(); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, name := range set.Names() {
		if err := tw.Write(results[name]); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	if traitsPath == "" {
		traitsPath = viper.GetString("traits.file")
	}
	if traitsPath != "" {
		if err := writeTraitFindings(out, traitsPath, obs); err != nil {
			return err
		}
	}

	return nil
}

// writeTraitFindings loads the trait table into an in-memory DuckDB store
// and appends matched findings to the report.
func writeTraitFindings(out *os.File, traitsPath string, obs genome.Observations) error {
	store, err := snptrait.Open("")
	if err != nil {
		return fmt.Errorf("open trait store: %w", err)
	}
	defer store.Close()

	if err := store.Load(traitsPath); err != nil {
		return err
	}

	findings := store.FindAll(obs)
	if len(findings) == 0 {
		return nil
	}

	fmt.Fprintln(out)
	tw := report.NewTraitWriter(out)
	if err := tw.WriteHeader(); err != nil {
		return fmt.Errorf("write trait header: %w", err)
	}
	for _, f := range findings {
		if err := tw.Write(f); err != nil {
			return fmt.Errorf("write trait finding: %w", err)
		}
	}
	return tw.Flush()
}

func newGenesCmd() *cobra.Command {
	var refPath string

	cmd := &cobra.Command{
		Use:   "genes",
		Short: "List the genes in the reference set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := loadReference(refPath)
			if err != nil {
				return fmt.Errorf("load gene reference: %w", err)
			}
			for _, g := range set.Genes() {
				fmt.Printf("%s\t%d alleles\t%d markers", g.Name, len(g.Alleles), len(g.Markers))
				if g.Caveat != "" {
					fmt.Printf("\t(%s)", g.Caveat)
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&refPath, "reference", "", "Gene reference YAML file (default: built-in set)")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("pgxcall version %s (%s) built %s\n", version, commit, date)
		},
	}
}
