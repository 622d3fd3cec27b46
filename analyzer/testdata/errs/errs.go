package errs

import "os"

func open() error {
	_, err := os.Open("a")
	if err != nil {
		return err
	}
	_, err = os.Open("b") // want `Reused variable 'err' \(rg:reuse\)`
	return err
}

func retry() error {
	var err error
	for range 3 {
		if _, err = os.Open("a"); err == nil {
			break
		}
	}
	return err
}
