package nodeadstores

import "fmt"

func count(s string) int { return len(s) }

func deadStore() {
	n := count("a")
	fmt.Println(n)
	n = count("b")
}

func reused() {
	n := count("a")
	fmt.Println(n)
	n = count("b") // want `Reused variable 'n' \(rg:reuse\)`
	fmt.Println(n)
}
