// Code generated by hand. DO NOT EDIT.

package a

import "fmt"

func generated() {
	n := count("a")
	fmt.Println(n)
	n = count("b")
	fmt.Println(n)
}
