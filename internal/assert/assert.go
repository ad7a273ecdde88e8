package assert

// That panics when condition does not hold. It guards programmer errors only;
// anything a caller can get wrong at runtime is reported as an error instead.
func That(condition bool, message ...string) {
	if !condition {
		if len(message) == 1 {
			panic(message[0])
		}
		panic("failed assertion")
	}
}
