package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"scheduling/internal/asp"
	"scheduling/internal/model"
)

func main() {
	// Define arguments
	timeLimitPtr := flag.Int("time_limit", 2, "Time limit in seconds for the constraint solver")
	clingoPtr := flag.String("clingo", "clingo", "Name or path of the clingo executable")
	flag.Parse()
	timeLimit := *timeLimitPtr

	// Validate arguments
	if timeLimit <= 0 {
		log.Fatal("the time limit must be positive")
	} else if flag.NArg() != 1 {
		log.Fatal("an instance file must be specified")
	}

	fmt.Println("Loading the problem instance...")
	instance, err := model.Load(flag.Arg(0))
	if err != nil {
		log.Fatalf("cannot load the instance: %v", err)
	}

	fmt.Println("Generating the logic program and calling the solver...")
	scheduler := model.NewScheduler(asp.NewClingoSolver(*clingoPtr))
	interpretation, err := scheduler.Build(instance, time.Duration(timeLimit)*time.Second)
	if err != nil {
		log.Fatalf("an error occurred during scheduling: %v", err)
	} else if interpretation == nil {
		fmt.Println("No schedule found within the time limit. Perhaps not enough assistants are available?")
		return
	}

	fmt.Println("Schedule:")
	for _, group := range instance.Groups {
		fmt.Printf(" %s: %s\n", group.Name, strings.Join(interpretation.Schedule[group.Index], ", "))
	}
	fmt.Println()
	fmt.Printf("Solution cost: %d\n", interpretation.Cost)
	fmt.Println("Non-optimalities:")
	for _, line := range interpretation.NonOptimalities {
		fmt.Println(" " + line)
	}
}
