// Code generated by hand. DO NOT EDIT.

package generated

import "fmt"

func count(s string) int { return len(s) }

func generated() {
	n := count("a")
	fmt.Println(n)
	n = count("b") // want `Reused variable 'n' \(rg:reuse\)`
	fmt.Println(n)
}
