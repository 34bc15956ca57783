// Command indexctl loads graph element associations into an equality index
// and inspects it.
package main

func main() {
	execute()
}
