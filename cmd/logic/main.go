// Command logic is the command line front end for the symbolic
// expression evaluator implemented in pkg/logic.
package main

func main() {
	Execute()
}
