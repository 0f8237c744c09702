package main

import "github.com/Georgakopoulos-Soares-lab/Minimum-cost-Genome-Planner/cmd"

func main() {
	cmd.Execute() // initialize cobra commands
}
