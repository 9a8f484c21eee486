package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"pelagos/internal/config"
	"pelagos/internal/stats"
	"pelagos/pkg/pelagos"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "run":
		return runRun(ctx, args[1:])
	case "runs":
		return runRuns(ctx, args[1:])
	case "species":
		return runSpecies(ctx, args[1:])
	case "summary":
		return runSummary(ctx, args[1:])
	case "describe":
		return runDescribe(ctx, args[1:])
	case "survey":
		return runSurvey(ctx, args[1:])
	case "export":
		return runExport(ctx, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: pelagosctl <run|runs|species|summary|describe|survey|export> [flags]", msg)
}

// outputFlags are shared by every command that touches the run archive.
// Flags left empty fall back to the output section of the loaded config.
type outputFlags struct {
	configPath *string
	storeKind  *string
	dbPath     *string
}

func newOutputFlags(fs *flag.FlagSet) *outputFlags {
	return &outputFlags{
		configPath: fs.String("config", "", "YAML config path"),
		storeKind:  fs.String("store", "", "store backend: memory|sqlite (default from config)"),
		dbPath:     fs.String("db-path", "", "sqlite database path (default from config)"),
	}
}

// load reads the config file and fills any output flag the user did not pass.
func (o *outputFlags) load() (config.Config, error) {
	cfg, err := config.Load(*o.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if *o.storeKind == "" {
		*o.storeKind = cfg.Output.Store
	}
	if *o.dbPath == "" {
		*o.dbPath = cfg.Output.DBPath
	}
	return cfg, nil
}

func (o *outputFlags) newClient(ctx context.Context) (*pelagos.Client, error) {
	return pelagos.NewClient(ctx, pelagos.Options{StoreKind: *o.storeKind, DBPath: *o.dbPath})
}

func runRun(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	out := newOutputFlags(fs)
	population := fs.Int("population", 0, "population size (overrides config)")
	generations := fs.Int("generations", 0, "generations to run (overrides config)")
	seed := fs.Int64("seed", 0, "random seed, 0 derives one from the clock")
	runID := fs.String("run-id", "", "run identifier, defaults to a fresh UUID")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := out.load()
	if err != nil {
		return err
	}
	if *population > 0 {
		cfg.Run.Population = *population
	}
	if *generations > 0 {
		cfg.Run.Generations = *generations
	}
	if *seed != 0 {
		cfg.Run.Seed = *seed
	}
	if cfg.Run.Seed == 0 {
		cfg.Run.Seed = time.Now().UnixNano()
	}

	client, err := out.newClient(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	fmt.Printf("starting simulation: %d creatures, %d generations, seed=%d\n",
		cfg.Run.Population, cfg.Run.Generations, cfg.Run.Seed)

	completed := 0
	progress := func() {
		completed++
		if completed%10 == 0 || completed == cfg.Run.Generations {
			fmt.Printf("generation %d/%d complete\n", completed, cfg.Run.Generations)
		}
	}

	summary, err := client.Run(ctx, pelagos.RunRequest{
		RunID:             *runID,
		Population:        cfg.Run.Population,
		Generations:       cfg.Run.Generations,
		Seed:              cfg.Run.Seed,
		MutationRate:      cfg.Run.MutationRate,
		SurvivalThreshold: cfg.Run.SurvivalThreshold,
		MinSurvivors:      cfg.Run.MinSurvivors,
		EliteFallback:     cfg.Run.EliteFallback,
		DepthJitter:       cfg.Run.DepthJitter,
		Progress:          progress,
	})
	if err != nil {
		return err
	}

	fmt.Printf("run=%s generations=%d species=%d best_fitness=%.2f mean_fitness=%.2f\n",
		summary.RunID, summary.Generations, summary.TotalSpecies,
		summary.BestFitness, summary.Fitness.Mean)
	return nil
}

func runRuns(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("runs", flag.ContinueOnError)
	out := newOutputFlags(fs)
	limit := fs.Int("limit", 20, "maximum runs to list")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if _, err := out.load(); err != nil {
		return err
	}

	client, err := out.newClient(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	runs, err := client.Runs(ctx)
	if err != nil {
		return err
	}
	if *limit > 0 && len(runs) > *limit {
		runs = runs[:*limit]
	}
	for _, r := range runs {
		fmt.Printf("%s  %s  pop=%d gens=%d species=%d best=%.2f seed=%d\n",
			r.RunID, r.CreatedAtUTC, r.PopulationSize, r.Generations,
			r.TotalSpecies, r.BestFitness, r.Seed)
	}
	return nil
}

func runSpecies(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("species", flag.ContinueOnError)
	out := newOutputFlags(fs)
	runID := fs.String("run-id", "", "run identifier, defaults to the newest run")
	generation := fs.Int("generation", 0, "generation to show, 0 means the last")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if _, err := out.load(); err != nil {
		return err
	}

	client, err := out.newClient(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	id, err := client.ResolveRunID(ctx, *runID)
	if err != nil {
		return err
	}
	log, err := client.SpeciesLog(ctx, id)
	if err != nil {
		return err
	}
	if len(log) == 0 {
		return fmt.Errorf("species log for run %s is empty", id)
	}

	entry := log[len(log)-1]
	if *generation > 0 {
		found := false
		for _, e := range log {
			if e.Generation == *generation {
				entry = e
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("run %s has no generation %d", id, *generation)
		}
	}

	fmt.Printf("run=%s generation=%d\n", id, entry.Generation)
	return stats.WriteSpeciesReport(os.Stdout, entry.Species)
}

func runSummary(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("summary", flag.ContinueOnError)
	out := newOutputFlags(fs)
	runID := fs.String("run-id", "", "run identifier, defaults to the newest run")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if _, err := out.load(); err != nil {
		return err
	}

	client, err := out.newClient(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	id, err := client.ResolveRunID(ctx, *runID)
	if err != nil {
		return err
	}
	population, err := client.Population(ctx, id)
	if err != nil {
		return err
	}

	fitness := stats.SummarizeFitness(population.Creatures)
	fmt.Printf("run=%s generation=%d creatures=%d mean_fitness=%.2f±%.2f best=%.2f\n",
		id, population.Generation, len(population.Creatures),
		fitness.Mean, fitness.StdDev, fitness.Best)

	bands := stats.AggregateByDepth(population.Creatures, 1000)
	depths := make([]int, 0, len(bands))
	for depth := range bands {
		depths = append(depths, depth)
	}
	sort.Ints(depths)
	for _, depth := range depths {
		total := 0.0
		for _, count := range bands[depth] {
			total += count
		}
		fmt.Printf("  ~%4dm: %.0f creatures\n", depth, total)
	}
	return nil
}

func runDescribe(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("describe", flag.ContinueOnError)
	out := newOutputFlags(fs)
	runID := fs.String("run-id", "", "run identifier, defaults to the newest run")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if _, err := out.load(); err != nil {
		return err
	}

	client, err := out.newClient(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	id, err := client.ResolveRunID(ctx, *runID)
	if err != nil {
		return err
	}
	population, err := client.Population(ctx, id)
	if err != nil {
		return err
	}
	return stats.WritePopulationReport(os.Stdout, population.Creatures)
}

func runSurvey(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("survey", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML config path")
	runs := fs.Int("runs", 0, "simulation runs per depth (overrides config)")
	step := fs.Int("step", 0, "depth step in meters (overrides config)")
	seed := fs.Int64("seed", 0, "random seed, 0 derives one from the clock")
	outPath := fs.String("out", "", "optional CSV output path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *runs > 0 {
		cfg.Survey.Runs = *runs
	}
	if *step > 0 {
		cfg.Survey.Step = *step
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	fmt.Printf("surveying depths 0-6000m every %dm: %d runs of %d creatures, %d generations each\n",
		cfg.Survey.Step, cfg.Survey.Runs, cfg.Survey.Population, cfg.Survey.Generations)

	points, err := stats.DepthSurvey(ctx, stats.SurveyConfig{
		Population:  cfg.Survey.Population,
		Generations: cfg.Survey.Generations,
		Runs:        cfg.Survey.Runs,
		Step:        cfg.Survey.Step,
		Seed:        *seed,
	}, func(depth int) {
		fmt.Printf("depth %dm done\n", depth)
	})
	if err != nil {
		return err
	}

	fmt.Printf("%-7s %-8s %-8s %-8s %-8s %-8s\n",
		"depth", "eyes", "biolum", "plants", "no_eyes", "total")
	for _, point := range points {
		fmt.Printf("%-7d %-8.1f %-8.1f %-8.1f %-8.1f %-8.1f\n",
			point.Depth,
			point.Counts[stats.CategoryEyes],
			point.Counts[stats.CategoryBioluminescence],
			point.Counts[stats.CategoryPlants],
			point.Counts[stats.CategoryNoEyesAnimal],
			point.TotalSurvivors)
	}

	if *outPath != "" {
		if err := stats.ExportSurvey(*outPath, points); err != nil {
			return err
		}
		fmt.Printf("survey written to %s\n", *outPath)
	}
	return nil
}

func runExport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	out := newOutputFlags(fs)
	runID := fs.String("run-id", "", "run identifier, defaults to the newest run")
	outDir := fs.String("out", "", "artifact output directory (default from config)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := out.load()
	if err != nil {
		return err
	}
	if *outDir == "" {
		*outDir = cfg.Output.Dir
	}

	client, err := out.newClient(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	id, err := client.ResolveRunID(ctx, *runID)
	if err != nil {
		return err
	}
	dir, err := client.Export(ctx, id, *outDir)
	if err != nil {
		return err
	}
	fmt.Printf("exported run %s to %s\n", id, dir)
	return nil
}
