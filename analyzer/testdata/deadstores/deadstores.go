package deadstores

import "fmt"

func count(s string) int { return len(s) }

func deadStore() {
	n := count("a")
	fmt.Println(n)
	n = count("b") // want `Reused variable 'n' is never read \(rg:dead\)`
}

func overwritten() {
	n := count("a")
	fmt.Println(n)
	n = count("b") // want `Reused variable 'n' is never read \(rg:dead\)`
	n = count("c") // want `Reused variable 'n' \(rg:reuse\)`
	fmt.Println(n)
}
