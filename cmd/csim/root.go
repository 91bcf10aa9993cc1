package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sarchlab/csim/cache"
	"github.com/sarchlab/csim/datarecording"
	"github.com/sarchlab/csim/trace"
	"github.com/sarchlab/csim/tracing"
)

var rootCmd = &cobra.Command{
	Use: "csim",
	Short: "csim replays a memory-access trace against a simulated " +
		"set-associative cache.",
	Long: `csim replays a memory-access trace against a simulated ` +
		`set-associative cache with LRU replacement and reports the ` +
		`aggregate hit, miss, and eviction counts. Only tags and recency ` +
		`are modeled; no data moves and no timing is simulated.`,
	SilenceUsage: true,
	RunE:         runSimulation,
}

func init() {
	flags := rootCmd.Flags()
	flags.IntP("set-index-bits", "s", 0,
		"number of set index bits (the cache has 2^s sets)")
	flags.IntP("associativity", "E", 0,
		"number of lines per set")
	flags.IntP("block-offset-bits", "b", 0,
		"number of block offset bits (blocks are 2^b bytes)")
	flags.StringP("trace", "t", "",
		"trace file to replay")
	flags.BoolP("verbose", "v", false,
		"print the outcome of each trace record")
	flags.Bool("record", false,
		"record every access and the run summary into a SQLite database")
	flags.String("db", "",
		"database name for --record (defaults to $CSIM_DB or a generated name)")
}

func runSimulation(cmd *cobra.Command, _ []string) error {
	setIndexBits, _ := cmd.Flags().GetInt("set-index-bits")
	associativity, _ := cmd.Flags().GetInt("associativity")
	blockOffsetBits, _ := cmd.Flags().GetInt("block-offset-bits")
	traceFile, _ := cmd.Flags().GetString("trace")

	if err := validateGeometryFlags(
		setIndexBits, associativity, blockOffsetBits, traceFile); err != nil {
		return err
	}

	c := cache.MakeBuilder().
		WithSetIndexBits(setIndexBits).
		WithAssociativity(associativity).
		WithBlockOffsetBits(blockOffsetBits).
		Build()
	replayer := trace.NewReplayer(c)

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		replayer.AcceptTracer(
			tracing.NewLoggerTracer(log.New(cmd.OutOrStdout(), "", 0)))
	}

	var dbTracer *tracing.DBTracer
	if record, _ := cmd.Flags().GetBool("record"); record {
		dbPath, _ := cmd.Flags().GetString("db")
		dbTracer = tracing.NewDBTracer(datarecording.New(databaseName(dbPath)))
		replayer.AcceptTracer(dbTracer)
	}

	f, err := os.Open(traceFile)
	if err != nil {
		return fmt.Errorf("cannot open trace file: %w", err)
	}
	defer f.Close()

	if err := replayer.Replay(trace.NewScanner(f)); err != nil {
		return fmt.Errorf("cannot read trace file: %w", err)
	}

	if dbTracer != nil {
		dbTracer.EndRun(traceFile, c.Geometry(), c.Stats())
	}

	stats := c.Stats()
	fmt.Fprintf(cmd.OutOrStdout(), "hits:%d misses:%d evictions:%d\n",
		stats.Hits, stats.Misses, stats.Evictions)

	return nil
}

func validateGeometryFlags(
	setIndexBits, associativity, blockOffsetBits int,
	traceFile string,
) error {
	if setIndexBits <= 0 || associativity <= 0 || blockOffsetBits <= 0 ||
		traceFile == "" {
		return fmt.Errorf(
			"the -s, -E, -b, and -t flags are required and must be positive")
	}

	if setIndexBits+blockOffsetBits > 64 {
		return fmt.Errorf(
			"set index and block offset bits must fit in a 64-bit address")
	}

	return nil
}

// databaseName resolves the recording database name from the flag, then a
// CSIM_DB entry in the environment or a .env file. Empty means generated.
func databaseName(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}

	_ = godotenv.Load()

	return os.Getenv("CSIM_DB")
}
