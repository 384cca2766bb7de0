// Package evolve collects two small numerical exercises.
//
// Package queens solves the 8-queens puzzle with a genetic algorithm: boards are
// encoded column by column, scored by the number of attacking queen pairs, and
// evolved with tournament selection, single-point crossover, single-gene mutation
// and elitism.
//
// Package linreg fits a univariate linear model by batch gradient descent.
//
// Basic usage:
//
//	// Load configuration
//	config, err := queens.LoadConfig("configs/queens-config")
//	if err != nil {
//		log.Fatalf("Error loading config: %v", err)
//	}
//
//	// Create a new population from a seeded source
//	pop, err := queens.NewPopulation(config, rand.New(rand.NewSource(1)))
//	if err != nil {
//		log.Fatalf("Error creating population: %v", err)
//	}
//
//	// Evolve and inspect the per-generation statistics
//	if err := pop.Run(config.GA.Generations); err != nil {
//		log.Fatalf("Error running evolution: %v", err)
//	}
//	best, conflicts, _ := pop.Best()
//	fmt.Println(best, conflicts, pop.Stats)
package evolve
