package a

import (
	"fmt"
	"os"
)

func count(s string) int { return len(s) }

func straight() {
	n := count("a")
	fmt.Println(n)
	n = count("b") // want `Reused variable 'n' \(rg:reuse\)`
	fmt.Println(n)
}

func nested() func() {
	return func() {
		m := count("a")
		fmt.Println(m)
		m = count("b") // want `Reused variable 'm' \(rg:reuse\)`
		fmt.Println(m)
	}
}

func switched(k int) {
	s := "none"
	switch k {
	case 1:
		s = "one" // want `Reused variable 's' \(rg:reuse\)`
		fmt.Println(s)
	default:
		fmt.Println(s)
	}
}

func declared() {
	var s string
	s = "a"
	fmt.Println(s)
	s = "b" // want `Reused variable 's' \(rg:reuse\)`
	fmt.Println(s)
}

func returned(ok bool) {
	s := "a"
	fmt.Println(s)
	if ok {
		s = "b" // want `Reused variable 's' \(rg:reuse\)`
		fmt.Println(s)
		return
	}
	fmt.Println(s)
}

func accumulate(values []int) int {
	sum := 0
	for _, v := range values {
		sum = sum + v
	}
	return sum
}

func loopBreak(values []string) string {
	s := ""
	for _, v := range values {
		if v == "" {
			break
		}
		s = v
	}
	return s
}

func forInit() {
	for i := 0; i < 3; i++ {
		fmt.Println(i)
	}
}

func branch(ok bool) {
	s := "a"
	if ok {
		s = "b"
	}
	fmt.Println(s)
}

func captured() func() string {
	s := "a"
	fmt.Println(s)
	s = "b"
	return func() string { return s }
}

func address() {
	x := 1
	fmt.Println(x)
	x = 2
	p := &x
	fmt.Println(*p)
}

type counter struct{ n int }

func (c *counter) inc() { c.n++ }

func pointerReceiver() {
	c := counter{}
	c.inc()
	fmt.Println(c.n)
	c = counter{n: 5}
	c.inc()
	fmt.Println(c.n)
}

func deadStore() {
	n := count("a")
	fmt.Println(n)
	n = count("b") // want `Reused variable 'n' is never read \(rg:dead\)`
}

func errs() error {
	_, err := os.Open("a")
	if err != nil {
		return err
	}
	_, err = os.Open("b")
	return err
}

func suppressed() {
	n := count("a")
	fmt.Println(n)
	n = count("b") //nolint:reuseguard
	fmt.Println(n)
}

//nolint:reuseguard
func suppressedFunc() {
	n := count("a")
	fmt.Println(n)
	n = count("b")
	fmt.Println(n)
}
